package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// PharmacyStatus is the moderation state of a pharmacy listing.
type PharmacyStatus string

const (
	PharmacyStatusPending  PharmacyStatus = "PENDING"
	PharmacyStatusApproved PharmacyStatus = "APPROVED"
	PharmacyStatusRejected PharmacyStatus = "REJECTED"
)

// IsValid checks if the status is a known value.
func (s PharmacyStatus) IsValid() bool {
	switch s {
	case PharmacyStatusPending, PharmacyStatusApproved, PharmacyStatusRejected:
		return true
	default:
		return false
	}
}

// PharmacyStatuses lists every moderation state in display order.
func PharmacyStatuses() []PharmacyStatus {
	return []PharmacyStatus{PharmacyStatusPending, PharmacyStatusApproved, PharmacyStatusRejected}
}

// Pharmacy is a listed pharmacy. DutyPeriods and Ratings are only populated
// when the caller asked the repository to preload them.
type Pharmacy struct {
	ID           uuid.UUID
	Name         string
	Address      string
	City         string
	District     *string
	Phone        string
	Email        *string
	Description  *string
	Latitude     float64
	Longitude    float64
	OpeningHours json.RawMessage // Opaque to the service, stored as-is.
	Status       PharmacyStatus
	ViewCount    int64
	OwnerID      *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time

	DutyPeriods []*DutyPeriod
	Ratings     []*Rating
}

// Location returns the pharmacy coordinate as an orb point (lon, lat).
func (p *Pharmacy) Location() orb.Point {
	return orb.Point{p.Longitude, p.Latitude}
}

// IsApproved reports whether the pharmacy is publicly discoverable.
func (p *Pharmacy) IsApproved() bool {
	return p.Status == PharmacyStatusApproved
}

// IsOwnedBy reports whether userID owns the pharmacy.
func (p *Pharmacy) IsOwnedBy(userID uuid.UUID) bool {
	return p.OwnerID != nil && *p.OwnerID == userID
}
