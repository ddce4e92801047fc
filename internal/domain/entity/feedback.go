package entity

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackStatus tracks how an administrator handled a feedback message.
type FeedbackStatus string

const (
	FeedbackStatusPending   FeedbackStatus = "PENDING"
	FeedbackStatusResolved  FeedbackStatus = "RESOLVED"
	FeedbackStatusDismissed FeedbackStatus = "DISMISSED"
)

// IsValid checks if the status is a known value.
func (s FeedbackStatus) IsValid() bool {
	switch s {
	case FeedbackStatusPending, FeedbackStatusResolved, FeedbackStatusDismissed:
		return true
	default:
		return false
	}
}

// Feedback is a free-text message sent by a visitor, optionally about a pharmacy.
type Feedback struct {
	ID         uuid.UUID
	Message    string
	Email      *string
	PharmacyID *uuid.UUID
	Status     FeedbackStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
