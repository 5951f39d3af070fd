package service

import (
	"context"
	"time"
)

// CartEvent describes a cart mutation for downstream consumers (analytics, order banner
// push, abandoned cart reminders).
type CartEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	EventID    string    `json:"event_id"`
	CartKey    string    `json:"cart_key"`
	Kind       string    `json:"kind"`
	StoreID    string    `json:"store_id,omitempty"`
	LineCount  int       `json:"line_count"`
	ItemCount  int       `json:"item_count"`
	GrandTotal string    `json:"grand_total"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCartEvent publishes a cart event for async processing
	PublishCartEvent(ctx context.Context, event *CartEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
