package ports

import (
	"context"
	"time"
)

const (
	EventUserRegistered          = "user.registered"
	EventUserDeleted             = "user.deleted"
	EventFreelancerDeleted       = "freelancer.deleted"
	EventFreelancerDeletePartial = "freelancer.deletion_partial"
)

// DirectoryEvent notifies downstream consumers of identity lifecycle changes.
type DirectoryEvent struct {
	Type         string    `json:"type"`
	SubjectID    string    `json:"subject_id"`
	UserID       string    `json:"user_id,omitempty"`
	FreelancerID string    `json:"freelancer_id,omitempty"`
	State        string    `json:"state,omitempty"`
	RequestID    string    `json:"-"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// EventSink accepts events for asynchronous delivery. Enqueue never blocks
// on the broker.
type EventSink interface {
	Enqueue(event DirectoryEvent)
}

// EventPublisher delivers a single event to the broker.
type EventPublisher interface {
	Publish(ctx context.Context, event DirectoryEvent) error
}
