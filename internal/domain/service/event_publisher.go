package service

import (
	"context"
)

// Activity event types published by the usecase layer.
const (
	EventUserRegistered = "user.registered"
	EventUserFollowed   = "user.followed"
	EventPostCreated    = "post.created"
)

// ActivityEvent represents a domain activity published for async consumers
// (feed builders, notification fan-out, analytics).
type ActivityEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	EventType  string `json:"event_type"`
	ActorID    string `json:"actor_id"`
	SubjectID  string `json:"subject_id,omitempty"` // Post ID, followed user ID, etc.
	OccurredAt string `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishActivityEvent publishes an activity event for async processing.
	// Failures must not fail the originating request; callers log and move on.
	PublishActivityEvent(ctx context.Context, event *ActivityEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
