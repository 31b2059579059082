package service

import (
	"context"
)

// Notification event types. Each type renders to a different push
// message and resolves a different audience.
const (
	EventNewSession      = "new_session"
	EventSessionEnded    = "session_ended"
	EventSessionResponse = "session_response"
	EventFriendRequest   = "friend_request"
	EventFriendAccepted  = "friend_accepted"
)

// NotificationEvent describes something that happened in the app that
// friends should be told about. It is either dispatched inline or
// published to a queue for the worker to deliver.
type NotificationEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	EventID   string `json:"event_id"`
	Type      string `json:"type"`

	// ActorID is the user whose action produced the event.
	ActorID   string `json:"actor_id"`
	ActorName string `json:"actor_name"`

	// Session fields, set for session-related event types.
	SessionID    string `json:"session_id,omitempty"`
	SessionTitle string `json:"session_title,omitempty"`
	Message      string `json:"message,omitempty"`

	// ResponseKind is set for session_response events (join, decline, later).
	ResponseKind string `json:"response_kind,omitempty"`

	// AudienceIDs is the pre-resolved list of recipient user IDs.
	AudienceIDs []string `json:"audience_ids"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNotificationEvent publishes a notification event for async processing
	PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
