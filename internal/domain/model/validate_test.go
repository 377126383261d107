package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain", input: "hello", want: "hello"},
		{name: "trimmed", input: "  hello \n", want: "hello"},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: " \t\n ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RequiredText(tt.input, "text")
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)

				var verr *ValidationError
				require.True(t, errors.As(err, &verr))
				assert.Equal(t, "text", verr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestText(t *testing.T) {
	assert.Equal(t, "", Text("   "))
	assert.Equal(t, "a b", Text(" a b "))
}

func TestAbsoluteHTTPURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "empty is unset", input: "", want: ""},
		{name: "blank is unset", input: "   ", want: ""},
		{name: "http", input: "http://example.com", want: "http://example.com"},
		{name: "https with path", input: "https://example.com/path", want: "https://example.com/path"},
		{name: "upper case scheme", input: "HTTPS://example.com", want: "HTTPS://example.com"},
		{name: "trimmed", input: " https://example.com/a?b=c ", want: "https://example.com/a?b=c"},
		{name: "with port", input: "http://localhost:8065/hooks/x", want: "http://localhost:8065/hooks/x"},
		{name: "scheme relative", input: "//github.com", wantErr: true},
		{name: "ftp", input: "ftp://github.com", wantErr: true},
		{name: "websocket", input: "wss://github.com", wantErr: true},
		{name: "mailto", input: "mailto:someone@example.com", wantErr: true},
		{name: "no host", input: "http://", wantErr: true},
		{name: "only port", input: "http://:80", wantErr: true},
		{name: "relative path", input: "/hooks/abc", wantErr: true},
		{name: "garbage", input: "not a url", wantErr: true},
		{name: "bad escape", input: "http://example.com/%zz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AbsoluteHTTPURL(tt.input, "image_url")
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				assert.Contains(t, err.Error(), "image_url")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoerceBool(t *testing.T) {
	tests := []struct {
		input any
		want  bool
	}{
		{nil, false},
		{true, true},
		{false, false},
		{"true", true},
		{"false", false},
		{"1", true},
		{"0", false},
		{"", false},
		{"yes", true},
		{0, false},
		{1, true},
		{int64(-3), true},
		{uint8(0), false},
		{0.0, false},
		{0.5, true},
		{[]any{}, false},
		{[]any{1}, true},
		{struct{}{}, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CoerceBool(tt.input), "CoerceBool(%#v)", tt.input)
	}
}

func TestKeep(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  bool
	}{
		{"nil", nil, false},
		{"empty string", "", false},
		{"string", "x", true},
		{"false", false, false},
		{"true", true, false},
		{"zero", 0, false},
		{"number", 42, false},
		{"empty map", Map{}, false},
		{"map", Map{{Key: "a", Value: "b"}}, true},
		{"empty list", []Map{}, false},
		{"list", []Map{{}}, true},
		{"empty plain map", map[string]any{}, false},
		{"plain map", map[string]any{"a": 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Keep(tt.input))
		})
	}
}

func TestFilterKeepsOrder(t *testing.T) {
	in := Map{
		{Key: "z", Value: "last"},
		{Key: "empty", Value: ""},
		{Key: "a", Value: "first"},
		{Key: "flag", Value: false},
		{Key: "list", Value: []Map{{{Key: "short", Value: false}}}},
	}

	got := Filter(in)
	assert.Equal(t, []string{"z", "a", "list"}, got.Keys())

	list, ok := got.Get("list")
	require.True(t, ok)
	short, ok := list.([]Map)[0].Get("short")
	require.True(t, ok)
	assert.Equal(t, false, short)
}
