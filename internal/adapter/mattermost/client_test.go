package mattermost

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mattermost-notifier/internal/domain/model"
)

func testMessage(t *testing.T) *model.Message {
	t.Helper()

	msg, err := model.NewMessage("This is a *test*.")
	require.NoError(t, err)
	msg.SetChannel("tests").SetUsername("A Tester")

	a, err := model.NewAttachment("fallback")
	require.NoError(t, err)
	require.NoError(t, msg.AddAttachment(a))
	return msg
}

func TestClient_Send(t *testing.T) {
	var (
		receivedBody    []byte
		receivedHeaders http.Header
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/hooks/secret", r.URL.Path)
		receivedHeaders = r.Header.Clone()
		receivedBody, _ = io.ReadAll(r.Body)
		w.Header().Set("X-Foo", "Bar")
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	c := NewClient(server.URL+"/hooks/secret", 5*time.Second, nil)
	res, err := c.Send(context.Background(), server.URL+"/hooks/secret", testMessage(t), WithHeader("X-Request-Id", "42"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "Bar", res.Header.Get("X-Foo"))
	assert.Equal(t, "ok", string(res.Body))

	assert.Equal(t, "application/json", receivedHeaders.Get("Content-Type"))
	assert.Equal(t, "42", receivedHeaders.Get("X-Request-Id"))

	var payload map[string]any
	require.NoError(t, json.Unmarshal(receivedBody, &payload))
	assert.Equal(t, "This is a *test*.", payload["text"])
	assert.Equal(t, "tests", payload["channel"])
	assert.Equal(t, "A Tester", payload["username"])
	assert.NotContains(t, payload, "icon_url")

	attachments, ok := payload["attachments"].([]any)
	require.True(t, ok)
	require.Len(t, attachments, 1)
	assert.Equal(t, map[string]any{"fallback": "fallback"}, attachments[0])
}

func TestClient_Notify(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c := NewClient(server.URL, time.Second, nil)
	require.NoError(t, c.Notify(context.Background(), testMessage(t)))
	assert.Equal(t, 1, calls)
}

func TestClient_SendServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"id":"web.incoming_webhook.disabled.app_error"}`, http.StatusNotImplemented)
	}))
	defer server.Close()

	c := NewClient(server.URL, time.Second, nil)

	res, err := c.Send(context.Background(), server.URL+"/hooks/secret", testMessage(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDelivery)

	var derr *DeliveryError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, http.StatusNotImplemented, derr.StatusCode)
	assert.Equal(t, server.URL, derr.URL)
	assert.NotContains(t, err.Error(), "secret")
	require.NotNil(t, res)
	assert.Equal(t, http.StatusNotImplemented, res.StatusCode)

	res, err = c.Send(context.Background(), server.URL, testMessage(t), WithHTTPErrors(false))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotImplemented, res.StatusCode)
}

func TestClient_SendTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c := NewClient(url, time.Second, nil)
	_, err := c.Send(context.Background(), url, testMessage(t))
	assert.ErrorIs(t, err, ErrDelivery)

	var derr *DeliveryError
	require.True(t, errors.As(err, &derr))
	assert.Zero(t, derr.StatusCode)
	assert.NotNil(t, errors.Unwrap(derr))
}

func TestClient_SendCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(server.URL, time.Second, nil)
	_, err := c.Send(ctx, server.URL, testMessage(t))
	assert.ErrorIs(t, err, ErrDelivery)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_SendCustomHTTPClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c := NewClient("", time.Second, nil)
	res, err := c.Send(context.Background(), server.URL, testMessage(t), WithHTTPClient(server.Client()))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestClient_SendRejectsInvalidInput(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	c := NewClient(server.URL, time.Second, nil)

	_, err := c.Send(context.Background(), server.URL, new(model.Message))
	assert.ErrorIs(t, err, model.ErrValidation)
	assert.NotErrorIs(t, err, ErrDelivery)

	_, err = c.Send(context.Background(), server.URL, nil)
	assert.ErrorIs(t, err, model.ErrInvalidType)

	_, err = c.Send(context.Background(), "", testMessage(t))
	assert.ErrorIs(t, err, ErrDelivery)

	assert.Zero(t, requests)
}
