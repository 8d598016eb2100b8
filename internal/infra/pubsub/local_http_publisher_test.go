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

	"socialnet/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEvent() *service.ActivityEvent {
	return &service.ActivityEvent{
		RequestID:  "req-123",
		EventType:  service.EventPostCreated,
		ActorID:    "actor-1",
		SubjectID:  "post-1",
		OccurredAt: "2026-01-02T15:04:05Z",
	}
}

func TestLocalHTTPPublisher_PublishActivityEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestIDHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))
		requestIDHeader = r.Header.Get("X-Request-Id")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))
	event := newTestEvent()

	err := publisher.PublishActivityEvent(context.Background(), event)

	require.NoError(t, err)
	assert.Equal(t, "req-123", requestIDHeader)
	assert.Equal(t, "projects/local/subscriptions/activity-sub", received.Subscription)
	assert.NotEmpty(t, received.Message.MessageID)
	assert.Equal(t, service.EventPostCreated, received.Message.Attributes["event_type"])
	assert.Equal(t, "actor-1", received.Message.Attributes["actor_id"])
	assert.Equal(t, "req-123", received.Message.Attributes["request_id"])

	// The payload round-trips through the base64 data field.
	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.ActivityEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))

	err := publisher.PublishActivityEvent(context.Background(), newTestEvent())

	assert.Error(t, err)
}

func TestLocalHTTPPublisher_UnreachableEndpoint(t *testing.T) {
	publisher := NewLocalHTTPPublisher("http://127.0.0.1:1", slog.New(slog.DiscardHandler))

	err := publisher.PublishActivityEvent(context.Background(), newTestEvent())

	assert.Error(t, err)
}
