package service

import (
	"context"
)

// DomainEvent is a side effect handed to the worker for push delivery.
type DomainEvent struct {
	RequestID string            `json:"request_id,omitempty"` // For distributed tracing
	EventID   string            `json:"event_id"`
	Type      string            `json:"type"`    // payment.verified, payment.rejected, order.created
	UserID    string            `json:"user_id"` // Seller whose devices receive the push
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Data      map[string]string `json:"data,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish publishes a domain event for async processing
	Publish(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
