package usecase

import (
	"context"
	"encoding/json"
	"time"

	"pharmaduty/internal/domain/discovery"
	"pharmaduty/internal/domain/entity"
	"pharmaduty/internal/domain/rating"

	"github.com/google/uuid"
)

// PharmacyInput carries the editable fields of a pharmacy, for both
// registration and update.
type PharmacyInput struct {
	Name         string
	Address      string
	City         string
	District     *string
	Phone        string
	Email        *string
	Description  *string
	Latitude     float64
	Longitude    float64
	OpeningHours json.RawMessage
}

// PublicProfile is the detail page of a pharmacy.
type PublicProfile struct {
	Pharmacy        *entity.Pharmacy
	Rating          rating.Summary
	RecentRatings   []*entity.Rating
	UpcomingPeriods []*entity.DutyPeriod
	IsOnDuty        bool
	At              time.Time
}

// AdminListInput filters the moderation back office.
type AdminListInput struct {
	Status   *entity.PharmacyStatus
	Search   string
	Page     int
	PageSize int
}

// AdminPharmacyPage is one page of the back office listing.
type AdminPharmacyPage struct {
	Pharmacies   []*entity.Pharmacy
	Pagination   discovery.Pagination
	StatusCounts map[entity.PharmacyStatus]int64
}

// ModerationAction is a bulk decision on pending listings.
type ModerationAction string

const (
	ModerationApprove ModerationAction = "approve"
	ModerationReject  ModerationAction = "reject"
)

// PharmacyUsecase defines pharmacy registration, profile and moderation.
type PharmacyUsecase interface {
	// Register creates the actor's pharmacy in PENDING state. An owner holds at most one.
	Register(ctx context.Context, actor *entity.Actor, input *PharmacyInput) (*entity.Pharmacy, error)

	// GetPublicProfile hides non-approved pharmacies from anyone but their
	// owner and admins, and counts the view. actor may be nil.
	GetPublicProfile(ctx context.Context, actor *entity.Actor, pharmacyID uuid.UUID) (*PublicProfile, error)

	// Update replaces the editable fields. Owner or admin.
	Update(ctx context.Context, actor *entity.Actor, pharmacyID uuid.UUID, input *PharmacyInput) (*entity.Pharmacy, error)

	// AdminList pages through every pharmacy regardless of status.
	AdminList(ctx context.Context, actor *entity.Actor, input *AdminListInput) (*AdminPharmacyPage, error)

	// Moderate applies action to ids and returns how many were updated.
	Moderate(ctx context.Context, actor *entity.Actor, ids []uuid.UUID, action ModerationAction) (int64, error)

	// ProfileQRCode returns a PNG linking to the public page of an approved pharmacy.
	ProfileQRCode(ctx context.Context, pharmacyID uuid.UUID) ([]byte, error)
}
