package model

import (
	"time"

	"github.com/google/uuid"
)

// DutyPeriodModel is the GORM-specific struct for the 'duty_periods' table.
// Overlap between periods of one pharmacy is also rejected by an exclusion constraint.
type DutyPeriodModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	PharmacyID uuid.UUID `gorm:"type:uuid;not null;index:idx_duty_periods_window,priority:1"`
	StartAt    time.Time `gorm:"type:timestamptz;not null;index:idx_duty_periods_window,priority:2"`
	EndAt      time.Time `gorm:"type:timestamptz;not null;index:idx_duty_periods_window,priority:3"`
	Note       *string   `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (DutyPeriodModel) TableName() string {
	return "duty_periods"
}
