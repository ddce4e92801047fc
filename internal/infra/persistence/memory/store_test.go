package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"pharmaduty/internal/domain/entity"
	"pharmaduty/internal/domain/geo"
	"pharmaduty/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestStore() *Store {
	return NewStore(WithClock(func() time.Time { return baseTime }))
}

func seedPharmacy(t *testing.T, store *Store, name string, status entity.PharmacyStatus) *entity.Pharmacy {
	t.Helper()

	pharmacy := &entity.Pharmacy{
		Name:      name,
		Address:   "1 rue de la Paix",
		City:      "Paris",
		Phone:     "0102030405",
		Latitude:  48.8566,
		Longitude: 2.3522,
		Status:    status,
	}
	require.NoError(t, NewPharmacyRepository(store).CreatePharmacy(context.Background(), pharmacy))

	return pharmacy
}

func TestTransactionManager_RollbackRevertsWrites(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore()
	pharmacy := seedPharmacy(t, store, "Pharmacie Centrale", entity.PharmacyStatusApproved)
	txManager := NewTransactionManager(store)

	boom := errors.New("boom")
	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		period := &entity.DutyPeriod{
			PharmacyID: pharmacy.ID,
			StartAt:    baseTime,
			EndAt:      baseTime.Add(12 * time.Hour),
		}
		require.NoError(t, factory.NewDutyPeriodRepository().CreateDutyPeriod(ctx, period))
		_, err := factory.NewPharmacyRepository().UpdatePharmacyStatus(ctx, []uuid.UUID{pharmacy.ID}, entity.PharmacyStatusRejected)
		require.NoError(t, err)

		return boom
	})
	require.ErrorIs(t, err, boom)

	periods, err := NewDutyPeriodRepository(store).ListDutyPeriods(ctx, repository.DutyPeriodFilter{PharmacyID: &pharmacy.ID})
	require.NoError(t, err)
	assert.Empty(t, periods)

	reloaded, err := NewPharmacyRepository(store).FindPharmacyByID(ctx, pharmacy.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PharmacyStatusApproved, reloaded.Status)
}

func TestTransactionManager_CommitKeepsWrites(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore()
	pharmacy := seedPharmacy(t, store, "Pharmacie Centrale", entity.PharmacyStatusApproved)

	err := NewTransactionManager(store).Execute(ctx, func(factory repository.RepositoryFactory) error {
		_, err := factory.NewPharmacyRepository().LockPharmacy(ctx, pharmacy.ID)
		if err != nil {
			return err
		}

		return factory.NewDutyPeriodRepository().CreateDutyPeriod(ctx, &entity.DutyPeriod{
			PharmacyID: pharmacy.ID,
			StartAt:    baseTime,
			EndAt:      baseTime.Add(time.Hour),
		})
	})
	require.NoError(t, err)

	periods, err := NewDutyPeriodRepository(store).ListDutyPeriods(ctx, repository.DutyPeriodFilter{PharmacyID: &pharmacy.ID})
	require.NoError(t, err)
	assert.Len(t, periods, 1)
}

func TestDutyPeriodRepository_RejectsOverlapLikeExclusionConstraint(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore()
	pharmacy := seedPharmacy(t, store, "Pharmacie Centrale", entity.PharmacyStatusApproved)
	repo := NewDutyPeriodRepository(store)

	first := &entity.DutyPeriod{PharmacyID: pharmacy.ID, StartAt: baseTime, EndAt: baseTime.Add(10 * time.Hour)}
	require.NoError(t, repo.CreateDutyPeriod(ctx, first))

	touching := &entity.DutyPeriod{PharmacyID: pharmacy.ID, StartAt: first.EndAt, EndAt: first.EndAt.Add(time.Hour)}
	err := repo.CreateDutyPeriod(ctx, touching)
	require.ErrorIs(t, err, repository.ErrDutyPeriodConflict)

	// Moving a period over itself is not a conflict.
	first.EndAt = first.EndAt.Add(time.Hour)
	require.NoError(t, repo.UpdateDutyPeriod(ctx, first))

	missing := &entity.DutyPeriod{PharmacyID: uuid.New(), StartAt: baseTime, EndAt: baseTime.Add(time.Hour)}
	require.ErrorIs(t, repo.CreateDutyPeriod(ctx, missing), repository.ErrPharmacyNotFound)
}

func TestLockPharmacy_SerializesConcurrentSchedules(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore()
	pharmacy := seedPharmacy(t, store, "Pharmacie Centrale", entity.PharmacyStatusApproved)
	txManager := NewTransactionManager(store)

	const writers = 8

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		rejected  atomic.Int32
	)

	start := make(chan struct{})
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start

			err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
				if _, err := factory.NewPharmacyRepository().LockPharmacy(ctx, pharmacy.ID); err != nil {
					return err
				}

				periodStart := baseTime.Add(time.Duration(i) * time.Minute)
				periodEnd := periodStart.Add(2 * time.Hour)
				dutyRepo := factory.NewDutyPeriodRepository()

				conflicts, err := dutyRepo.FindOverlapping(ctx, pharmacy.ID, periodStart, periodEnd, uuid.Nil)
				if err != nil {
					return err
				}
				if len(conflicts) > 0 {
					return errors.New("overlap")
				}

				return dutyRepo.CreateDutyPeriod(ctx, &entity.DutyPeriod{
					PharmacyID: pharmacy.ID,
					StartAt:    periodStart,
					EndAt:      periodEnd,
				})
			})
			if err != nil {
				rejected.Add(1)

				return
			}
			succeeded.Add(1)
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(writers-1), rejected.Load())

	periods, err := NewDutyPeriodRepository(store).ListDutyPeriods(ctx, repository.DutyPeriodFilter{PharmacyID: &pharmacy.ID})
	require.NoError(t, err)
	assert.Len(t, periods, 1)
}

func TestPharmacyRepository_ListPharmacies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore()
	approved := seedPharmacy(t, store, "Pharmacie du Centre", entity.PharmacyStatusApproved)
	seedPharmacy(t, store, "Pharmacie en attente", entity.PharmacyStatusPending)

	far := &entity.Pharmacy{
		Name: "Pharmacie de Lyon", Address: "2 place Bellecour", City: "Lyon", Phone: "0401020304",
		Latitude: 45.7640, Longitude: 4.8357, Status: entity.PharmacyStatusApproved,
	}
	require.NoError(t, NewPharmacyRepository(store).CreatePharmacy(ctx, far))

	dutyRepo := NewDutyPeriodRepository(store)
	require.NoError(t, dutyRepo.CreateDutyPeriod(ctx, &entity.DutyPeriod{
		PharmacyID: approved.ID, StartAt: baseTime.Add(-time.Hour), EndAt: baseTime.Add(time.Hour),
	}))
	require.NoError(t, dutyRepo.CreateDutyPeriod(ctx, &entity.DutyPeriod{
		PharmacyID: approved.ID, StartAt: baseTime.Add(24 * time.Hour), EndAt: baseTime.Add(30 * time.Hour),
	}))

	ratingRepo := NewRatingRepository(store)
	require.NoError(t, ratingRepo.CreateRating(ctx, &entity.Rating{PharmacyID: approved.ID, Score: 5, Approved: true, AnonymousID: "a"}))
	require.NoError(t, ratingRepo.CreateRating(ctx, &entity.Rating{PharmacyID: approved.ID, Score: 1, Approved: false, AnonymousID: "b"}))

	status := entity.PharmacyStatusApproved
	at := baseTime
	bound := orb.Bound{Min: orb.Point{2.0, 48.5}, Max: orb.Point{2.7, 49.2}}

	pharmacies, err := NewPharmacyRepository(store).ListPharmacies(ctx, repository.PharmacyFilter{
		Status:              &status,
		Bound:               &bound,
		DutyPeriodsAt:       &at,
		WithApprovedRatings: true,
	})
	require.NoError(t, err)
	require.Len(t, pharmacies, 1)

	assert.Equal(t, approved.ID, pharmacies[0].ID)
	assert.Len(t, pharmacies[0].DutyPeriods, 1)
	require.Len(t, pharmacies[0].Ratings, 1)
	assert.Equal(t, 5, pharmacies[0].Ratings[0].Score)
}

func TestPharmacyRepository_ListPharmaciesAcrossAntimeridian(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore()
	repo := NewPharmacyRepository(store)

	for _, p := range []*entity.Pharmacy{
		{Name: "Pharmacie de Taveuni", Latitude: -17, Longitude: 179.9},
		{Name: "Pharmacie de Rabi", Latitude: -17, Longitude: -179.9},
		{Name: "Pharmacie de Suva", Latitude: -18.14, Longitude: 178.44},
	} {
		p.Address, p.City, p.Phone, p.Status = "1 rue", "Fidji", "0102030405", entity.PharmacyStatusApproved
		require.NoError(t, repo.CreatePharmacy(ctx, p))
	}

	bound := geo.BoundAround(orb.Point{179.95, -17}, 50, 1)
	pharmacies, err := repo.ListPharmacies(ctx, repository.PharmacyFilter{Bound: &bound})
	require.NoError(t, err)

	names := make([]string, 0, len(pharmacies))
	for _, p := range pharmacies {
		names = append(names, p.Name)
	}
	assert.ElementsMatch(t, []string{"Pharmacie de Taveuni", "Pharmacie de Rabi"}, names)
}

func TestPharmacyRepository_OwnerIsUnique(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore()
	repo := NewPharmacyRepository(store)
	ownerID := uuid.New()

	first := &entity.Pharmacy{Name: "A", Address: "a", City: "Paris", Phone: "1", OwnerID: &ownerID}
	require.NoError(t, repo.CreatePharmacy(ctx, first))
	assert.Equal(t, entity.PharmacyStatusPending, first.Status)

	second := &entity.Pharmacy{Name: "B", Address: "b", City: "Paris", Phone: "2", OwnerID: &ownerID}
	require.ErrorIs(t, repo.CreatePharmacy(ctx, second), repository.ErrPharmacyOwnerConflict)

	found, err := repo.FindPharmacyByOwner(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)
}

func TestPharmacyRepository_AdminListingAndCounts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore()
	seedPharmacy(t, store, "Pharmacie Alpha", entity.PharmacyStatusPending)
	seedPharmacy(t, store, "Pharmacie Beta", entity.PharmacyStatusPending)
	seedPharmacy(t, store, "Grande Pharmacie", entity.PharmacyStatusApproved)

	repo := NewPharmacyRepository(store)
	pending := entity.PharmacyStatusPending

	items, total, err := repo.ListPharmaciesForAdmin(ctx, repository.AdminPharmacyFilter{Status: &pending, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, items, 1)

	items, total, err = repo.ListPharmaciesForAdmin(ctx, repository.AdminPharmacyFilter{Search: "grande", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Grande Pharmacie", items[0].Name)

	counts, err := repo.CountPharmaciesByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[entity.PharmacyStatus]int64{
		entity.PharmacyStatusPending:  2,
		entity.PharmacyStatusApproved: 1,
		entity.PharmacyStatusRejected: 0,
	}, counts)
}

func TestRatingRepository_UniquePerAnonymousID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore()
	pharmacy := seedPharmacy(t, store, "Pharmacie Centrale", entity.PharmacyStatusApproved)
	repo := NewRatingRepository(store)

	rating := &entity.Rating{PharmacyID: pharmacy.ID, Score: 4, AnonymousID: "visitor", Approved: true}
	require.NoError(t, repo.CreateRating(ctx, rating))

	dup := &entity.Rating{PharmacyID: pharmacy.ID, Score: 2, AnonymousID: "visitor"}
	require.ErrorIs(t, repo.CreateRating(ctx, dup), repository.ErrRatingConflict)

	found, err := repo.FindRatingByAnonymousID(ctx, pharmacy.ID, "visitor")
	require.NoError(t, err)
	assert.Equal(t, rating.ID, found.ID)

	require.NoError(t, repo.SetRatingApproval(ctx, rating.ID, false))
	approved, err := repo.ListApprovedRatings(ctx, pharmacy.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, approved)

	require.ErrorIs(t, repo.SetRatingApproval(ctx, uuid.New(), true), repository.ErrRatingNotFound)
}

func TestFeedbackRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore()
	pharmacy := seedPharmacy(t, store, "Pharmacie Centrale", entity.PharmacyStatusApproved)
	repo := NewFeedbackRepository(store)

	missing := uuid.New()
	require.ErrorIs(t, repo.CreateFeedback(ctx, &entity.Feedback{Message: "hello", PharmacyID: &missing}), repository.ErrPharmacyNotFound)

	feedback := &entity.Feedback{Message: "Horaires faux", PharmacyID: &pharmacy.ID}
	require.NoError(t, repo.CreateFeedback(ctx, feedback))
	assert.Equal(t, entity.FeedbackStatusPending, feedback.Status)

	updated, err := repo.UpdateFeedbackStatus(ctx, feedback.ID, entity.FeedbackStatusResolved)
	require.NoError(t, err)
	assert.Equal(t, entity.FeedbackStatusResolved, updated.Status)

	resolved := entity.FeedbackStatusResolved
	items, total, err := repo.ListFeedbacks(ctx, repository.FeedbackFilter{Status: &resolved, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, feedback.ID, items[0].ID)

	_, err = repo.UpdateFeedbackStatus(ctx, uuid.New(), entity.FeedbackStatusDismissed)
	require.ErrorIs(t, err, repository.ErrFeedbackNotFound)
}
