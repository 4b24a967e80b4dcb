package service

import (
	"context"
)

// PlanRequestedEvent asks the solve worker to process a pending plan
type PlanRequestedEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	PlanID    string `json:"plan_id"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPlanRequested publishes a plan for asynchronous solving
	PublishPlanRequested(ctx context.Context, event *PlanRequestedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
