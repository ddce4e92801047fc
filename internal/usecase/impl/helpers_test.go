package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"pharmaduty/config"
	"pharmaduty/internal/domain/entity"
	"pharmaduty/internal/domain/service"
	"pharmaduty/internal/infra/clock"
	"pharmaduty/internal/infra/metrics"
	"pharmaduty/internal/infra/persistence/memory"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Rating: &config.RatingConfig{AnonymousKey: "test-key", AutoApprove: true},
	}
	cfg.ApplyDefaults()

	return cfg
}

func newTestMetrics() *metrics.Metrics {
	return metrics.New(prometheus.NewRegistry())
}

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)

	return parsed
}

func ownerActor(ownerID uuid.UUID) *entity.Actor {
	return &entity.Actor{UserID: ownerID, Roles: entity.Roles{entity.RolePharmacist}}
}

func adminActor() *entity.Actor {
	return &entity.Actor{UserID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}}
}

// memoryFixture wires the services on an in-memory store.
type memoryFixture struct {
	store     *memory.Store
	clock     clock.Fixed
	publisher *recordingPublisher
	metrics   *metrics.Metrics
	duty      *dutyService
	discovery *discoveryService
	rating    *ratingService
	pharmacy  *pharmacyService
	feedback  *feedbackService
}

func newMemoryFixture(t *testing.T, now time.Time) *memoryFixture {
	t.Helper()

	store := memory.NewStore(memory.WithClock(func() time.Time { return now }))
	fixedClock := clock.Fixed(now)
	publisher := &recordingPublisher{}
	m := newTestMetrics()
	cfg := newTestConfig()

	txManager := memory.NewTransactionManager(store)
	pharmacyRepo := memory.NewPharmacyRepository(store)
	dutyRepo := memory.NewDutyPeriodRepository(store)
	ratingRepo := memory.NewRatingRepository(store)
	feedbackRepo := memory.NewFeedbackRepository(store)

	return &memoryFixture{
		store:     store,
		clock:     fixedClock,
		publisher: publisher,
		metrics:   m,
		duty: NewDutyService(DutyServiceParams{
			TxManager:    txManager,
			PharmacyRepo: pharmacyRepo,
			DutyRepo:     dutyRepo,
			Publisher:    publisher,
			Clock:        fixedClock,
			Metrics:      m,
			Logger:       newDiscardLogger(),
		}).(*dutyService),
		discovery: NewDiscoveryService(DiscoveryServiceParams{
			PharmacyRepo: pharmacyRepo,
			Clock:        fixedClock,
			Metrics:      m,
			Config:       cfg,
		}).(*discoveryService),
		rating: NewRatingService(RatingServiceParams{
			TxManager:    txManager,
			PharmacyRepo: pharmacyRepo,
			RatingRepo:   ratingRepo,
			Anonymizer:   prefixAnonymizer{},
			Metrics:      m,
			Config:       cfg,
		}).(*ratingService),
		pharmacy: NewPharmacyService(PharmacyServiceParams{
			PharmacyRepo:  pharmacyRepo,
			DutyRepo:      dutyRepo,
			RatingRepo:    ratingRepo,
			QRCodeService: stubQRCode{},
			Clock:         fixedClock,
			Config:        cfg,
		}).(*pharmacyService),
		feedback: NewFeedbackService(FeedbackServiceParams{
			FeedbackRepo: feedbackRepo,
			PharmacyRepo: pharmacyRepo,
			Config:       cfg,
		}).(*feedbackService),
	}
}

// seedPharmacy stores a pharmacy with the given status and returns it.
func (f *memoryFixture) seedPharmacy(t *testing.T, name string, status entity.PharmacyStatus, lat, lon float64) *entity.Pharmacy {
	t.Helper()

	ownerID := uuid.New()
	pharmacy := &entity.Pharmacy{
		ID:        uuid.New(),
		Name:      name,
		Address:   "1 rue de la Paix",
		City:      "Abidjan",
		Phone:     "0102030405",
		Latitude:  lat,
		Longitude: lon,
		Status:    status,
		OwnerID:   &ownerID,
	}
	require.NoError(t, memory.NewPharmacyRepository(f.store).CreatePharmacy(context.Background(), pharmacy))

	return pharmacy
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []*service.DutyEvent
}

func (p *recordingPublisher) PublishDutyEvent(_ context.Context, event *service.DutyEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)

	return nil
}

func (p *recordingPublisher) Events() []*service.DutyEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]*service.DutyEvent(nil), p.events...)
}

func (p *recordingPublisher) Close() error {
	return nil
}

// prefixAnonymizer keeps origins readable in assertions.
type prefixAnonymizer struct{}

func (prefixAnonymizer) AnonymousID(origin string) string {
	return "anon:" + origin
}

type stubQRCode struct{}

func (stubQRCode) GeneratePharmacyQR(pharmacyID uuid.UUID) ([]byte, error) {
	return []byte("png:" + pharmacyID.String()), nil
}
