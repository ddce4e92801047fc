package model

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackModel is the GORM-specific struct for the 'feedbacks' table.
type FeedbackModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Message    string     `gorm:"type:text;not null"`
	Email      *string    `gorm:"type:varchar(255)"`
	PharmacyID *uuid.UUID `gorm:"type:uuid;index:idx_feedbacks_pharmacy"`
	Status     string     `gorm:"type:varchar(20);not null;default:PENDING;index:idx_feedbacks_status"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (FeedbackModel) TableName() string {
	return "feedbacks"
}
