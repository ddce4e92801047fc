package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinRatingScore        = 1
	MaxRatingScore        = 5
	MaxRatingCommentRunes = 500
)

// Rating is an anonymous score left on a pharmacy. At most one rating exists
// per (PharmacyID, AnonymousID).
type Rating struct {
	ID          uuid.UUID
	PharmacyID  uuid.UUID
	Score       int
	Comment     *string
	Approved    bool
	AnonymousID string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
