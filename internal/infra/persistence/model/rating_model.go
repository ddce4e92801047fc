package model

import (
	"time"

	"github.com/google/uuid"
)

// RatingModel is the GORM-specific struct for the 'ratings' table.
type RatingModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	PharmacyID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_ratings_pharmacy_anonymous,priority:1"`
	Score       int       `gorm:"type:smallint;not null"`
	Comment     *string   `gorm:"type:varchar(500)"`
	Approved    bool      `gorm:"not null;default:false"`
	AnonymousID string    `gorm:"type:varchar(128);not null;uniqueIndex:uq_ratings_pharmacy_anonymous,priority:2"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (RatingModel) TableName() string {
	return "ratings"
}
