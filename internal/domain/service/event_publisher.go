package service

import (
	"context"
	"time"
)

// Account event types.
const (
	AccountEventRegistered = "account.registered"
	AccountEventLoggedIn   = "account.logged_in"
)

// AccountEvent announces an account lifecycle change to downstream consumers.
// It never carries password material.
type AccountEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAccountEvent publishes an account event
	PublishAccountEvent(ctx context.Context, event *AccountEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
