package service

import (
	"context"
	"time"
)

// DutyEventType names a change to a pharmacy's duty schedule.
type DutyEventType string

const (
	DutyEventScheduled   DutyEventType = "duty.scheduled"
	DutyEventRescheduled DutyEventType = "duty.rescheduled"
	DutyEventCancelled   DutyEventType = "duty.cancelled"
)

// DutyEvent is published after a duty period change has been committed.
type DutyEvent struct {
	RequestID    string        `json:"request_id,omitempty"` // For distributed tracing
	EventID      string        `json:"event_id"`
	Type         DutyEventType `json:"type"`
	PharmacyID   string        `json:"pharmacy_id"`
	DutyPeriodID string        `json:"duty_period_id"`
	StartAt      time.Time     `json:"start_at"`
	EndAt        time.Time     `json:"end_at"`
	OccurredAt   time.Time     `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDutyEvent publishes a duty change for downstream consumers.
	PublishDutyEvent(ctx context.Context, event *DutyEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
