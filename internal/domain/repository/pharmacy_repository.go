// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"pharmaduty/internal/domain/entity"
	"pharmaduty/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Domain-specific errors for pharmacy persistence.
var (
	// ErrPharmacyNotFound is returned when a pharmacy is not found.
	ErrPharmacyNotFound = errors.New("pharmacy not found")
	// ErrPharmacyOwnerConflict is returned when an owner already has a pharmacy.
	ErrPharmacyOwnerConflict = errors.New("owner already has a pharmacy")
)

// PharmacyFilter selects candidates for discovery.
type PharmacyFilter struct {
	Status *entity.PharmacyStatus
	// Bound restricts candidates to a bounding box when set.
	Bound *orb.Bound
	// DutyPeriodsAt preloads the duty periods containing this instant.
	DutyPeriodsAt *time.Time
	// WithApprovedRatings preloads approved ratings.
	WithApprovedRatings bool
}

// AdminPharmacyFilter selects pharmacies for the moderation back office.
type AdminPharmacyFilter struct {
	Status *entity.PharmacyStatus
	Search string
	Offset int
	Limit  int
}

// PharmacyRepository defines the interface for pharmacy-related database operations.
type PharmacyRepository interface {
	// FindPharmacyByID retrieves a pharmacy without preloads.
	FindPharmacyByID(ctx context.Context, id uuid.UUID) (*entity.Pharmacy, error)

	// FindPharmacyByOwner returns ErrPharmacyNotFound when the owner has none.
	FindPharmacyByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Pharmacy, error)

	// ListPharmacies returns discovery candidates with the requested preloads.
	ListPharmacies(ctx context.Context, filter PharmacyFilter) ([]*entity.Pharmacy, error)

	// ListPharmaciesForAdmin returns a page ordered by creation date (newest first) and the total.
	ListPharmaciesForAdmin(ctx context.Context, filter AdminPharmacyFilter) ([]*entity.Pharmacy, int64, error)

	// CountPharmaciesByStatus returns the number of pharmacies per status.
	CountPharmaciesByStatus(ctx context.Context) (map[entity.PharmacyStatus]int64, error)

	CreatePharmacy(ctx context.Context, pharmacy *entity.Pharmacy) error
	UpdatePharmacy(ctx context.Context, pharmacy *entity.Pharmacy) error

	// UpdatePharmacyStatus sets status on every listed pharmacy and returns the number updated.
	UpdatePharmacyStatus(ctx context.Context, ids []uuid.UUID, status entity.PharmacyStatus) (int64, error)

	IncrementViewCount(ctx context.Context, id uuid.UUID) error

	// LockPharmacy serializes duty writes for one pharmacy until the surrounding
	// transaction ends. It must be called through a RepositoryFactory.
	LockPharmacy(ctx context.Context, id uuid.UUID) (*entity.Pharmacy, error)
}
