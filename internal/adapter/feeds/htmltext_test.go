package feeds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "   ", want: ""},
		{name: "plain", input: " just text ", want: "just text"},
		{name: "inline markup", input: "<b>bold</b> and <i>italic</i>", want: "bold and italic"},
		{name: "paragraphs", input: "<p>first</p><p>second   line</p>", want: "first\nsecond line"},
		{name: "list", input: "<ul><li>one</li><li>two</li></ul>", want: "one\ntwo"},
		{name: "line break", input: "a<br>b", want: "a\nb"},
		{name: "script dropped", input: "<p>keep</p><script>alert(1)</script>", want: "keep"},
		{name: "entities", input: "fish &amp; chips", want: "fish & chips"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainText(tt.input))
		})
	}
}
