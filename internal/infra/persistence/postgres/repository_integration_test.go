package postgres_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"pharmaduty/internal/domain/entity"
	domainerrors "pharmaduty/internal/domain/errors"
	"pharmaduty/internal/domain/geo"
	"pharmaduty/internal/domain/repository"
	"pharmaduty/internal/infra/persistence/migrations"
	pgrepo "pharmaduty/internal/infra/persistence/postgres"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// RepositoryIntegrationTestSuite runs the GORM repositories against a real PostgreSQL.
type RepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB

	pharmacies repository.PharmacyRepository
	duties     repository.DutyPeriodRepository
	ratings    repository.RatingRepository
	feedbacks  repository.FeedbackRepository
	txManager  repository.TransactionManager
}

func TestRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping PostgreSQL integration tests in short mode")
	}

	suite.Run(t, new(RepositoryIntegrationTestSuite))
}

// SetupSuite starts PostgreSQL and applies the embedded migrations.
func (suite *RepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(migrations.Up(db, slog.New(slog.NewTextHandler(io.Discard, nil))))

	suite.pharmacies = pgrepo.NewPharmacyRepository(db)
	suite.duties = pgrepo.NewDutyPeriodRepository(db)
	suite.ratings = pgrepo.NewRatingRepository(db)
	suite.feedbacks = pgrepo.NewFeedbackRepository(db)
	suite.txManager = pgrepo.NewTransactionManager(db)
}

// SetupTest truncates every table so tests do not interfere.
func (suite *RepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE feedbacks, ratings, duty_periods, pharmacies").Error
	suite.Require().NoError(err)
}

// TearDownSuite terminates the PostgreSQL container.
func (suite *RepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *RepositoryIntegrationTestSuite) createPharmacy(name string, lat, lng float64, status entity.PharmacyStatus) *entity.Pharmacy {
	pharmacy := &entity.Pharmacy{
		ID:           uuid.New(),
		Name:         name,
		Address:      "1 rue de la Paix",
		City:         "Paris",
		Phone:        "0102030405",
		Latitude:     lat,
		Longitude:    lng,
		OpeningHours: []byte(`{"mon":"09:00-19:00"}`),
		Status:       status,
	}
	suite.Require().NoError(suite.pharmacies.CreatePharmacy(context.Background(), pharmacy))

	return pharmacy
}

func (suite *RepositoryIntegrationTestSuite) TestListPharmacies_PreloadsAndBound() {
	ctx := context.Background()
	at := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	paris := suite.createPharmacy("Pharmacie du Louvre", 48.8606, 2.3376, entity.PharmacyStatusApproved)
	suite.createPharmacy("Pharmacie Bellecour", 45.7578, 4.8320, entity.PharmacyStatusApproved)
	suite.createPharmacy("Pharmacie en attente", 48.8600, 2.3400, entity.PharmacyStatusPending)

	suite.Require().NoError(suite.duties.CreateDutyPeriod(ctx, &entity.DutyPeriod{
		ID: uuid.New(), PharmacyID: paris.ID, StartAt: at.Add(-time.Hour), EndAt: at.Add(time.Hour),
	}))
	suite.Require().NoError(suite.ratings.CreateRating(ctx, &entity.Rating{
		ID: uuid.New(), PharmacyID: paris.ID, Score: 4, Approved: true, AnonymousID: "a",
	}))
	suite.Require().NoError(suite.ratings.CreateRating(ctx, &entity.Rating{
		ID: uuid.New(), PharmacyID: paris.ID, Score: 1, Approved: false, AnonymousID: "b",
	}))

	status := entity.PharmacyStatusApproved
	bound := orb.Bound{Min: orb.Point{2.0, 48.5}, Max: orb.Point{2.7, 49.2}}

	result, err := suite.pharmacies.ListPharmacies(ctx, repository.PharmacyFilter{
		Status:              &status,
		Bound:               &bound,
		DutyPeriodsAt:       &at,
		WithApprovedRatings: true,
	})
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(paris.ID, result[0].ID)
	suite.Len(result[0].DutyPeriods, 1)
	suite.Len(result[0].Ratings, 1)
	suite.JSONEq(`{"mon":"09:00-19:00"}`, string(result[0].OpeningHours))
}

func (suite *RepositoryIntegrationTestSuite) TestListPharmacies_BoundAcrossAntimeridian() {
	ctx := context.Background()

	taveuni := suite.createPharmacy("Pharmacie de Taveuni", -17, 179.9, entity.PharmacyStatusApproved)
	rabi := suite.createPharmacy("Pharmacie de Rabi", -17, -179.9, entity.PharmacyStatusApproved)
	suite.createPharmacy("Pharmacie de Suva", -18.14, 178.44, entity.PharmacyStatusApproved)

	bound := geo.BoundAround(orb.Point{179.95, -17}, 50, 1)
	result, err := suite.pharmacies.ListPharmacies(ctx, repository.PharmacyFilter{Bound: &bound})
	suite.Require().NoError(err)

	ids := make([]uuid.UUID, 0, len(result))
	for _, p := range result {
		ids = append(ids, p.ID)
	}
	suite.ElementsMatch([]uuid.UUID{taveuni.ID, rabi.ID}, ids)
}

func (suite *RepositoryIntegrationTestSuite) TestDutyPeriods_ExclusionConstraint() {
	ctx := context.Background()
	start := time.Date(2024, 3, 15, 20, 0, 0, 0, time.UTC)
	pharmacy := suite.createPharmacy("Pharmacie de Garde", 48.85, 2.35, entity.PharmacyStatusApproved)

	first := &entity.DutyPeriod{ID: uuid.New(), PharmacyID: pharmacy.ID, StartAt: start, EndAt: start.Add(12 * time.Hour)}
	suite.Require().NoError(suite.duties.CreateDutyPeriod(ctx, first))

	touching := &entity.DutyPeriod{ID: uuid.New(), PharmacyID: pharmacy.ID, StartAt: first.EndAt, EndAt: first.EndAt.Add(time.Hour)}
	err := suite.duties.CreateDutyPeriod(ctx, touching)
	suite.Require().ErrorIs(err, repository.ErrDutyPeriodConflict)

	overlapping, err := suite.duties.FindOverlapping(ctx, pharmacy.ID, first.EndAt, first.EndAt.Add(time.Hour), uuid.Nil)
	suite.Require().NoError(err)
	suite.Len(overlapping, 1)

	overlapping, err = suite.duties.FindOverlapping(ctx, pharmacy.ID, first.StartAt, first.EndAt, first.ID)
	suite.Require().NoError(err)
	suite.Empty(overlapping)

	suite.Require().NoError(suite.duties.DeleteDutyPeriod(ctx, first.ID))
	suite.Require().ErrorIs(suite.duties.DeleteDutyPeriod(ctx, first.ID), repository.ErrDutyPeriodNotFound)
}

func (suite *RepositoryIntegrationTestSuite) TestTransaction_LockSerializesSchedules() {
	ctx := context.Background()
	start := time.Date(2024, 3, 16, 20, 0, 0, 0, time.UTC)
	pharmacy := suite.createPharmacy("Pharmacie Concurrente", 48.85, 2.35, entity.PharmacyStatusApproved)

	const writers = 5

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
	)

	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			err := suite.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
				if _, err := factory.NewPharmacyRepository().LockPharmacy(ctx, pharmacy.ID); err != nil {
					return err
				}

				periodStart := start.Add(time.Duration(i) * time.Minute)
				dutyRepo := factory.NewDutyPeriodRepository()

				conflicts, err := dutyRepo.FindOverlapping(ctx, pharmacy.ID, periodStart, periodStart.Add(time.Hour), uuid.Nil)
				if err != nil {
					return err
				}
				if len(conflicts) > 0 {
					return domainerrors.NewOverlapError(pharmacy.ID)
				}

				return dutyRepo.CreateDutyPeriod(ctx, &entity.DutyPeriod{
					ID: uuid.New(), PharmacyID: pharmacy.ID, StartAt: periodStart, EndAt: periodStart.Add(time.Hour),
				})
			})
			if err == nil {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	suite.Equal(int32(1), succeeded.Load())
}

func (suite *RepositoryIntegrationTestSuite) TestTransaction_RollbackOnError() {
	ctx := context.Background()
	pharmacy := suite.createPharmacy("Pharmacie Rollback", 48.85, 2.35, entity.PharmacyStatusApproved)
	boom := errors.New("boom")

	err := suite.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		start := time.Date(2024, 3, 17, 8, 0, 0, 0, time.UTC)
		if err := factory.NewDutyPeriodRepository().CreateDutyPeriod(ctx, &entity.DutyPeriod{
			ID: uuid.New(), PharmacyID: pharmacy.ID, StartAt: start, EndAt: start.Add(time.Hour),
		}); err != nil {
			return err
		}

		return boom
	})
	suite.Require().ErrorIs(err, boom)

	periods, err := suite.duties.ListDutyPeriods(ctx, repository.DutyPeriodFilter{PharmacyID: &pharmacy.ID})
	suite.Require().NoError(err)
	suite.Empty(periods)
}

func (suite *RepositoryIntegrationTestSuite) TestPharmacies_AdminAndModeration() {
	ctx := context.Background()
	ownerID := uuid.New()

	owned := &entity.Pharmacy{
		ID: uuid.New(), Name: "Pharmacie 100%_Bio", Address: "3 rue", City: "Nantes", Phone: "02",
		Latitude: 47.21, Longitude: -1.55, Status: entity.PharmacyStatusPending, OwnerID: &ownerID,
	}
	suite.Require().NoError(suite.pharmacies.CreatePharmacy(ctx, owned))

	dup := &entity.Pharmacy{
		ID: uuid.New(), Name: "Autre", Address: "4 rue", City: "Nantes", Phone: "03",
		Latitude: 47.21, Longitude: -1.55, Status: entity.PharmacyStatusPending, OwnerID: &ownerID,
	}
	suite.Require().ErrorIs(suite.pharmacies.CreatePharmacy(ctx, dup), repository.ErrPharmacyOwnerConflict)

	items, total, err := suite.pharmacies.ListPharmaciesForAdmin(ctx, repository.AdminPharmacyFilter{Search: "100%_", Limit: 10})
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(owned.ID, items[0].ID)

	updated, err := suite.pharmacies.UpdatePharmacyStatus(ctx, []uuid.UUID{owned.ID, uuid.New()}, entity.PharmacyStatusApproved)
	suite.Require().NoError(err)
	suite.Equal(int64(1), updated)

	counts, err := suite.pharmacies.CountPharmaciesByStatus(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(1), counts[entity.PharmacyStatusApproved])
	suite.Equal(int64(0), counts[entity.PharmacyStatusPending])

	suite.Require().NoError(suite.pharmacies.IncrementViewCount(ctx, owned.ID))
	reloaded, err := suite.pharmacies.FindPharmacyByOwner(ctx, ownerID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), reloaded.ViewCount)
}

func (suite *RepositoryIntegrationTestSuite) TestRatingsAndFeedback() {
	ctx := context.Background()
	pharmacy := suite.createPharmacy("Pharmacie Avis", 48.85, 2.35, entity.PharmacyStatusApproved)

	rating := &entity.Rating{ID: uuid.New(), PharmacyID: pharmacy.ID, Score: 5, Approved: true, AnonymousID: "visitor"}
	suite.Require().NoError(suite.ratings.CreateRating(ctx, rating))
	suite.Require().ErrorIs(
		suite.ratings.CreateRating(ctx, &entity.Rating{ID: uuid.New(), PharmacyID: pharmacy.ID, Score: 1, AnonymousID: "visitor"}),
		repository.ErrRatingConflict,
	)

	rating.Score = 3
	suite.Require().NoError(suite.ratings.UpdateRating(ctx, rating))

	found, err := suite.ratings.FindRatingByAnonymousID(ctx, pharmacy.ID, "visitor")
	suite.Require().NoError(err)
	suite.Equal(3, found.Score)

	feedback := &entity.Feedback{ID: uuid.New(), Message: "Téléphone erroné", PharmacyID: &pharmacy.ID, Status: entity.FeedbackStatusPending}
	suite.Require().NoError(suite.feedbacks.CreateFeedback(ctx, feedback))

	updated, err := suite.feedbacks.UpdateFeedbackStatus(ctx, feedback.ID, entity.FeedbackStatusDismissed)
	suite.Require().NoError(err)
	suite.Equal(entity.FeedbackStatusDismissed, updated.Status)
	suite.Equal("Téléphone erroné", updated.Message)
}
