package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"pharmaduty/config"
	deliverycontext "pharmaduty/internal/delivery/context"
	"pharmaduty/internal/domain/constants"
	"pharmaduty/internal/domain/entity"
	"pharmaduty/internal/domain/repository"
	"pharmaduty/internal/domain/service"
	"pharmaduty/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// Outcomes of reconciling a received event with the stored schedule.
const (
	OutcomeApplied      = "applied"
	OutcomeStale        = "stale"
	OutcomeSuperseded   = "superseded"
	OutcomeInconsistent = "inconsistent"
	OutcomeMalformed    = "malformed"
	OutcomeRetry        = "retry"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// EventRecorder counts received duty events.
type EventRecorder interface {
	RecordDutyEventReceived(eventType, outcome string)
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	_, ok := errors.AsType[*retryableError](err)

	return ok
}

// PushHandler receives duty events pushed by Pub/Sub or the local publisher
// and checks them against the stored schedule.
type PushHandler struct {
	verify   func(*http.Request) error
	logger   *slog.Logger
	dutyRepo repository.DutyPeriodRepository
	recorder EventRecorder
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	DutyRepo repository.DutyPeriodRepository
	Recorder EventRecorder
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		logger:   params.Logger,
		dutyRepo: params.DutyRepo,
		recorder: params.Recorder,
	}

	// Google signs push requests, the local publisher does not
	if params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		!constants.IsDevelopment(params.Config.Env.Env) {
		h.verify = verifyPubSubToken
	}

	return h
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verify != nil {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.DutyEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse duty event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	outcome, err := h.reconcile(ctx, &event)
	h.recorder.RecordDutyEventReceived(string(event.Type), outcome)
	if err != nil {
		reqLogger.Error("[Worker] Failed to process duty event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// 503 makes Pub/Sub redeliver, anything else is acknowledged
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	level := slog.LevelInfo
	if outcome != OutcomeApplied {
		level = slog.LevelWarn
	}
	reqLogger.Log(ctx, level, "[Worker] Duty event processed",
		slog.String("event_id", event.EventID),
		slog.String("type", string(event.Type)),
		slog.String("pharmacy_id", event.PharmacyID),
		slog.String("duty_period_id", event.DutyPeriodID),
		slog.String("outcome", outcome),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event, then the
// X-Request-Id of the push itself.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.DutyEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// reconcile compares the event with the current state of its duty period.
// Events may arrive late or out of order, so a mismatch is reported, not fixed.
func (h *PushHandler) reconcile(ctx context.Context, event *service.DutyEvent) (string, error) {
	periodID, err := uuid.Parse(event.DutyPeriodID)
	if err != nil {
		return OutcomeMalformed, errors.Wrap(err, "duty_period_id")
	}
	if _, err := uuid.Parse(event.PharmacyID); err != nil {
		return OutcomeMalformed, errors.Wrap(err, "pharmacy_id")
	}

	period, err := h.dutyRepo.FindDutyPeriodByID(ctx, periodID)
	found := err == nil
	if err != nil && !errors.Is(err, repository.ErrDutyPeriodNotFound) {
		return OutcomeRetry, newRetryableError(errors.WithStack(err))
	}

	switch event.Type {
	case service.DutyEventScheduled, service.DutyEventRescheduled:
		if !found {
			return OutcomeStale, nil
		}

		return compareWindow(period, event), nil
	case service.DutyEventCancelled:
		if found {
			return OutcomeInconsistent, nil
		}

		return OutcomeApplied, nil
	default:
		return OutcomeMalformed, errors.Errorf("unknown event type %q", event.Type)
	}
}

func compareWindow(period *entity.DutyPeriod, event *service.DutyEvent) string {
	if period.StartAt.Equal(event.StartAt) && period.EndAt.Equal(event.EndAt) {
		return OutcomeApplied
	}

	return OutcomeSuperseded
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return errors.New("invalid authorization header format")
	}

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
