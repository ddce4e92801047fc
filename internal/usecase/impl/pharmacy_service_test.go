package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"pharmaduty/internal/domain/entity"
	domainerrors "pharmaduty/internal/domain/errors"
	"pharmaduty/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPharmacyInput() *usecase.PharmacyInput {
	district := "Cocody"
	return &usecase.PharmacyInput{
		Name:         "  Pharmacie des Deux Plateaux ",
		Address:      "Boulevard Latrille",
		City:         "Abidjan",
		District:     &district,
		Phone:        "+225 27 22 41 00",
		Latitude:     5.3600,
		Longitude:    -3.9900,
		OpeningHours: json.RawMessage(`{"mon":"08:00-20:00"}`),
	}
}

func TestPharmacyService_Register(t *testing.T) {
	f := newMemoryFixture(t, mustTime(t, "2024-01-01T12:00:00Z"))
	ctx := context.Background()
	owner := ownerActor(uuid.New())

	pharmacy, err := f.pharmacy.Register(ctx, owner, validPharmacyInput())
	require.NoError(t, err)
	assert.Equal(t, "Pharmacie des Deux Plateaux", pharmacy.Name)
	assert.Equal(t, entity.PharmacyStatusPending, pharmacy.Status)
	assert.True(t, pharmacy.IsOwnedBy(owner.UserID))
	assert.JSONEq(t, `{"mon":"08:00-20:00"}`, string(pharmacy.OpeningHours))

	_, err = f.pharmacy.Register(ctx, owner, validPharmacyInput())
	require.ErrorIs(t, err, domainerrors.ErrPharmacyAlreadyExists)

	_, err = f.pharmacy.Register(ctx, nil, validPharmacyInput())
	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestPharmacyService_Register_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*usecase.PharmacyInput)
		field  string
	}{
		{name: "blank name", mutate: func(in *usecase.PharmacyInput) { in.Name = "   " }, field: "name"},
		{name: "short address", mutate: func(in *usecase.PharmacyInput) { in.Address = "Rue" }, field: "address"},
		{name: "short phone", mutate: func(in *usecase.PharmacyInput) { in.Phone = "0102" }, field: "phone"},
		{name: "latitude out of range", mutate: func(in *usecase.PharmacyInput) { in.Latitude = -91 }, field: "latitude"},
		{name: "longitude out of range", mutate: func(in *usecase.PharmacyInput) { in.Longitude = 181 }, field: "longitude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newMemoryFixture(t, time.Now())
			input := validPharmacyInput()
			tt.mutate(input)

			_, err := f.pharmacy.Register(context.Background(), ownerActor(uuid.New()), input)

			var validationErr *domainerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Len(t, validationErr.Fields, 1)
			assert.Equal(t, tt.field, validationErr.Fields[0].Field)
		})
	}
}

func TestPharmacyService_GetPublicProfile(t *testing.T) {
	f := newMemoryFixture(t, mustTime(t, "2024-01-02T02:00:00Z"))
	ctx := context.Background()

	pharmacy := f.seedPharmacy(t, "Pharmacie du Port", entity.PharmacyStatusApproved, 5.30, -4.01)
	f.seedDuty(t, pharmacy.ID, mustTime(t, "2023-12-30T20:00:00Z"), mustTime(t, "2023-12-31T08:00:00Z"))
	f.seedDuty(t, pharmacy.ID, mustTime(t, "2024-01-01T20:00:00Z"), mustTime(t, "2024-01-02T08:00:00Z"))
	f.seedDuty(t, pharmacy.ID, mustTime(t, "2024-01-05T20:00:00Z"), mustTime(t, "2024-01-06T08:00:00Z"))
	for range 12 {
		f.seedRating(t, pharmacy.ID, 4, true)
	}
	f.seedRating(t, pharmacy.ID, 1, false)

	profile, err := f.pharmacy.GetPublicProfile(ctx, nil, pharmacy.ID)
	require.NoError(t, err)
	assert.True(t, profile.IsOnDuty)
	assert.Len(t, profile.UpcomingPeriods, 2)
	assert.Equal(t, 12, profile.Rating.Count)
	assert.InDelta(t, 4.0, profile.Rating.Average, 1e-9)
	assert.Len(t, profile.RecentRatings, 10)
	assert.Equal(t, int64(1), profile.Pharmacy.ViewCount)

	again, err := f.pharmacy.GetPublicProfile(ctx, nil, pharmacy.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), again.Pharmacy.ViewCount)
}

func TestPharmacyService_GetPublicProfile_PendingVisibility(t *testing.T) {
	f := newMemoryFixture(t, mustTime(t, "2024-01-02T02:00:00Z"))
	ctx := context.Background()

	pending := f.seedPharmacy(t, "Pharmacie en attente", entity.PharmacyStatusPending, 5.30, -4.01)

	_, err := f.pharmacy.GetPublicProfile(ctx, nil, pending.ID)
	require.ErrorIs(t, err, domainerrors.ErrPharmacyNotFound)

	_, err = f.pharmacy.GetPublicProfile(ctx, ownerActor(uuid.New()), pending.ID)
	require.ErrorIs(t, err, domainerrors.ErrPharmacyNotFound)

	profile, err := f.pharmacy.GetPublicProfile(ctx, ownerActor(*pending.OwnerID), pending.ID)
	require.NoError(t, err)
	assert.False(t, profile.IsOnDuty)

	_, err = f.pharmacy.GetPublicProfile(ctx, adminActor(), pending.ID)
	require.NoError(t, err)
}

func TestPharmacyService_Update(t *testing.T) {
	f := newMemoryFixture(t, mustTime(t, "2024-01-02T02:00:00Z"))
	ctx := context.Background()

	pharmacy := f.seedPharmacy(t, "Pharmacie du Port", entity.PharmacyStatusApproved, 5.30, -4.01)

	_, err := f.pharmacy.Update(ctx, ownerActor(uuid.New()), pharmacy.ID, validPharmacyInput())
	require.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = f.pharmacy.Update(ctx, ownerActor(*pharmacy.OwnerID), uuid.New(), validPharmacyInput())
	require.ErrorIs(t, err, domainerrors.ErrPharmacyNotFound)

	updated, err := f.pharmacy.Update(ctx, ownerActor(*pharmacy.OwnerID), pharmacy.ID, validPharmacyInput())
	require.NoError(t, err)
	assert.Equal(t, "Pharmacie des Deux Plateaux", updated.Name)
	assert.Equal(t, entity.PharmacyStatusApproved, updated.Status)
	require.NotNil(t, updated.District)
	assert.Equal(t, "Cocody", *updated.District)
}

func TestPharmacyService_AdminListAndModerate(t *testing.T) {
	f := newMemoryFixture(t, mustTime(t, "2024-01-02T02:00:00Z"))
	ctx := context.Background()
	admin := adminActor()

	first := f.seedPharmacy(t, "Pharmacie Alpha", entity.PharmacyStatusPending, 5.30, -4.01)
	second := f.seedPharmacy(t, "Pharmacie Beta", entity.PharmacyStatusPending, 5.31, -4.02)
	f.seedPharmacy(t, "Pharmacie Gamma", entity.PharmacyStatusApproved, 5.32, -4.03)

	_, err := f.pharmacy.AdminList(ctx, ownerActor(uuid.New()), &usecase.AdminListInput{})
	require.ErrorIs(t, err, domainerrors.ErrForbidden)

	pending := entity.PharmacyStatusPending
	page, err := f.pharmacy.AdminList(ctx, admin, &usecase.AdminListInput{Status: &pending, PageSize: 1})
	require.NoError(t, err)
	assert.Len(t, page.Pharmacies, 1)
	assert.Equal(t, 2, page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.TotalPages)
	assert.Equal(t, int64(2), page.StatusCounts[entity.PharmacyStatusPending])
	assert.Equal(t, int64(1), page.StatusCounts[entity.PharmacyStatusApproved])
	assert.Equal(t, int64(0), page.StatusCounts[entity.PharmacyStatusRejected])

	bogus := entity.PharmacyStatus("ARCHIVED")
	_, err = f.pharmacy.AdminList(ctx, admin, &usecase.AdminListInput{Status: &bogus})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	updated, err := f.pharmacy.Moderate(ctx, admin, []uuid.UUID{first.ID, uuid.New(), uuid.Nil}, usecase.ModerationApprove)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	updated, err = f.pharmacy.Moderate(ctx, admin, []uuid.UUID{second.ID}, usecase.ModerationReject)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	page, err = f.pharmacy.AdminList(ctx, admin, &usecase.AdminListInput{Search: "alpha"})
	require.NoError(t, err)
	require.Len(t, page.Pharmacies, 1)
	assert.Equal(t, entity.PharmacyStatusApproved, page.Pharmacies[0].Status)
	assert.Equal(t, int64(0), page.StatusCounts[entity.PharmacyStatusPending])
	assert.Equal(t, int64(1), page.StatusCounts[entity.PharmacyStatusRejected])

	_, err = f.pharmacy.Moderate(ctx, admin, []uuid.UUID{first.ID}, "archive")
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = f.pharmacy.Moderate(ctx, admin, []uuid.UUID{uuid.Nil}, usecase.ModerationApprove)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPharmacyService_ProfileQRCode(t *testing.T) {
	f := newMemoryFixture(t, mustTime(t, "2024-01-02T02:00:00Z"))
	ctx := context.Background()

	approved := f.seedPharmacy(t, "Pharmacie du Port", entity.PharmacyStatusApproved, 5.30, -4.01)
	pending := f.seedPharmacy(t, "Pharmacie en attente", entity.PharmacyStatusPending, 5.30, -4.01)

	png, err := f.pharmacy.ProfileQRCode(ctx, approved.ID)
	require.NoError(t, err)
	assert.Equal(t, "png:"+approved.ID.String(), string(png))

	_, err = f.pharmacy.ProfileQRCode(ctx, pending.ID)
	require.ErrorIs(t, err, domainerrors.ErrPharmacyNotFound)
}
