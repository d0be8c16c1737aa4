package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"autoserv/internal/domain/constants"
	"autoserv/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PushFormat(t *testing.T) {
	var (
		got       PushMessage
		requestID string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	event := &service.AccountRegisteredEvent{
		RequestID:    "req-9",
		AccountID:    "0190aaaa-0000-7000-8000-000000000001",
		Name:         "Ada",
		Email:        "ada@example.com",
		RegisteredAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	err := NewLocalHTTPPublisher(server.URL, newDiscardLogger()).PublishAccountRegistered(context.Background(), event)
	require.NoError(t, err)

	assert.Equal(t, "req-9", requestID)
	assert.Equal(t, localSubscription, got.Subscription)
	assert.Equal(t, event.AccountID, got.Message.MessageID)
	assert.Equal(t, constants.EventTypeAccountRegistered, got.Message.Attributes["event_type"])
	assert.Equal(t, "req-9", got.Message.Attributes["request_id"])

	raw, err := base64.StdEncoding.DecodeString(got.Message.Data)
	require.NoError(t, err)

	var decoded service.AccountRegisteredEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, event.AccountID, decoded.AccountID)
	assert.Equal(t, event.Email, decoded.Email)
	assert.True(t, event.RegisteredAt.Equal(decoded.RegisteredAt))
	assert.NotContains(t, string(raw), "hash")
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	err := NewLocalHTTPPublisher(server.URL, newDiscardLogger()).
		PublishAccountRegistered(context.Background(), &service.AccountRegisteredEvent{AccountID: "a"})

	assert.ErrorContains(t, err, "503")
}

func TestEncodeAccountRegistered_NilEvent(t *testing.T) {
	_, _, err := encodeAccountRegistered(nil)
	assert.Error(t, err)
}
