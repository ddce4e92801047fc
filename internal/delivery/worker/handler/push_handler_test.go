package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"pharmaduty/config"
	"pharmaduty/internal/domain/entity"
	"pharmaduty/internal/domain/repository"
	"pharmaduty/internal/domain/service"
	"pharmaduty/internal/infra/persistence/memory"
	mockRepo "pharmaduty/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordedEvent struct {
	eventType string
	outcome   string
}

type fakeRecorder struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (r *fakeRecorder) RecordDutyEventReceived(eventType, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, recordedEvent{eventType: eventType, outcome: outcome})
}

func (r *fakeRecorder) outcomes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.outcome)
	}

	return out
}

var (
	nightStart = time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC)
	nightEnd   = time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC)
)

// seedPeriod stores one overnight period and returns it.
func seedPeriod(t *testing.T, store *memory.Store) *entity.DutyPeriod {
	t.Helper()

	ctx := context.Background()
	pharmacy := &entity.Pharmacy{Name: "Pharmacie de la Gare", City: "Abidjan", Status: entity.PharmacyStatusApproved}
	require.NoError(t, memory.NewPharmacyRepository(store).CreatePharmacy(ctx, pharmacy))

	period := &entity.DutyPeriod{PharmacyID: pharmacy.ID, StartAt: nightStart, EndAt: nightEnd}
	require.NoError(t, memory.NewDutyPeriodRepository(store).CreateDutyPeriod(ctx, period))

	return period
}

func pushBody(t *testing.T, event *service.DutyEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = event.EventID
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/local/subscriptions/duty-events-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func push(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func newTestPushHandler(repo repository.DutyPeriodRepository, recorder EventRecorder) *PushHandler {
	return NewPushHandler(PushHandlerParams{
		Config:   &config.Config{},
		Logger:   slog.New(slog.DiscardHandler),
		DutyRepo: repo,
		Recorder: recorder,
	})
}

func TestPushHandler_Reconcile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		build       func(period *entity.DutyPeriod) *service.DutyEvent
		wantOutcome string
	}{
		{
			name: "scheduled and stored",
			build: func(p *entity.DutyPeriod) *service.DutyEvent {
				return &service.DutyEvent{Type: service.DutyEventScheduled, DutyPeriodID: p.ID.String(), PharmacyID: p.PharmacyID.String(), StartAt: nightStart, EndAt: nightEnd}
			},
			wantOutcome: OutcomeApplied,
		},
		{
			name: "rescheduled again since",
			build: func(p *entity.DutyPeriod) *service.DutyEvent {
				return &service.DutyEvent{Type: service.DutyEventRescheduled, DutyPeriodID: p.ID.String(), PharmacyID: p.PharmacyID.String(), StartAt: nightStart, EndAt: nightEnd.Add(time.Hour)}
			},
			wantOutcome: OutcomeSuperseded,
		},
		{
			name: "scheduled then cancelled",
			build: func(p *entity.DutyPeriod) *service.DutyEvent {
				return &service.DutyEvent{Type: service.DutyEventScheduled, DutyPeriodID: uuid.NewString(), PharmacyID: p.PharmacyID.String(), StartAt: nightStart, EndAt: nightEnd}
			},
			wantOutcome: OutcomeStale,
		},
		{
			name: "cancelled and gone",
			build: func(p *entity.DutyPeriod) *service.DutyEvent {
				return &service.DutyEvent{Type: service.DutyEventCancelled, DutyPeriodID: uuid.NewString(), PharmacyID: p.PharmacyID.String()}
			},
			wantOutcome: OutcomeApplied,
		},
		{
			name: "cancelled but still stored",
			build: func(p *entity.DutyPeriod) *service.DutyEvent {
				return &service.DutyEvent{Type: service.DutyEventCancelled, DutyPeriodID: p.ID.String(), PharmacyID: p.PharmacyID.String()}
			},
			wantOutcome: OutcomeInconsistent,
		},
		{
			name: "malformed period id is acknowledged",
			build: func(p *entity.DutyPeriod) *service.DutyEvent {
				return &service.DutyEvent{Type: service.DutyEventScheduled, DutyPeriodID: "42", PharmacyID: p.PharmacyID.String()}
			},
			wantOutcome: OutcomeMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := memory.NewStore()
			period := seedPeriod(t, store)
			recorder := &fakeRecorder{}
			h := newTestPushHandler(memory.NewDutyPeriodRepository(store), recorder)

			event := tt.build(period)
			event.EventID = uuid.NewString()

			rec := push(h, pushBody(t, event, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, []string{tt.wantOutcome}, recorder.outcomes())
		})
	}
}

func TestPushHandler_RepositoryFailureIsRetried(t *testing.T) {
	t.Parallel()

	repo := mockRepo.NewMockDutyPeriodRepository(t)
	repo.EXPECT().FindDutyPeriodByID(mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))
	recorder := &fakeRecorder{}
	h := newTestPushHandler(repo, recorder)

	event := &service.DutyEvent{EventID: uuid.NewString(), Type: service.DutyEventScheduled, DutyPeriodID: uuid.NewString(), PharmacyID: uuid.NewString()}
	rec := push(h, pushBody(t, event, map[string]string{"request_id": "req-7"}))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, []string{OutcomeRetry}, recorder.outcomes())
}

func TestPushHandler_RejectsBadRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		verify     func(*http.Request) error
		wantStatus int
	}{
		{name: "not json", body: `{"message":`, wantStatus: http.StatusBadRequest},
		{name: "data not base64", body: `{"message":{"data":"%%%"}}`, wantStatus: http.StatusBadRequest},
		{name: "data not an event", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("[1,2]")) + `"}}`, wantStatus: http.StatusBadRequest},
		{
			name:       "unsigned push",
			body:       `{}`,
			verify:     func(*http.Request) error { return errors.New("missing authorization header") },
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			recorder := &fakeRecorder{}
			h := newTestPushHandler(mockRepo.NewMockDutyPeriodRepository(t), recorder)
			h.verify = tt.verify

			rec := push(h, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Empty(t, recorder.outcomes())
		})
	}
}

func TestNewPushHandler_VerifiesGooglePushOutsideDevelopment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		env        string
		provider   string
		wantVerify bool
	}{
		{name: "google in production", env: "production", provider: "google", wantVerify: true},
		{name: "google locally", env: "local", provider: "google", wantVerify: false},
		{name: "local publisher", env: "production", provider: "local", wantVerify: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: tt.provider}}
			cfg.Env.Env = tt.env

			h := NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.New(slog.DiscardHandler)})

			assert.Equal(t, tt.wantVerify, h.verify != nil)
		})
	}
}
