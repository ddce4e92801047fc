package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PharmacyModel is the GORM-specific struct for the 'pharmacies' table.
type PharmacyModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name         string         `gorm:"type:varchar(200);not null"`
	Address      string         `gorm:"type:text;not null"`
	City         string         `gorm:"type:varchar(120);not null;index:idx_pharmacies_city"`
	District     *string        `gorm:"type:varchar(120)"`
	Phone        string         `gorm:"type:varchar(40);not null"`
	Email        *string        `gorm:"type:varchar(255)"`
	Description  *string        `gorm:"type:text"`
	Latitude     float64        `gorm:"type:double precision;not null"`
	Longitude    float64        `gorm:"type:double precision;not null"`
	OpeningHours datatypes.JSON `gorm:"type:jsonb"`
	Status       string         `gorm:"type:varchar(20);not null;default:PENDING;index:idx_pharmacies_status"`
	ViewCount    int64          `gorm:"not null;default:0"`
	OwnerID      *uuid.UUID     `gorm:"type:uuid;uniqueIndex:uq_pharmacies_owner"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	DutyPeriods []DutyPeriodModel `gorm:"foreignKey:PharmacyID"`
	Ratings     []RatingModel     `gorm:"foreignKey:PharmacyID"`
}

// TableName explicitly sets the table name for GORM.
func (PharmacyModel) TableName() string {
	return "pharmacies"
}
