package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "pharmaduty/internal/delivery/context"
	"pharmaduty/internal/domain/duty"
	"pharmaduty/internal/domain/entity"
	domainerrors "pharmaduty/internal/domain/errors"
	"pharmaduty/internal/domain/lifecycle"
	"pharmaduty/internal/domain/repository"
	"pharmaduty/internal/domain/service"
	"pharmaduty/internal/usecase"
	"pharmaduty/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	dutyOperationSchedule   = "schedule"
	dutyOperationReschedule = "reschedule"
	dutyOperationCancel     = "cancel"
)

// dutyService implements the DutyUsecase interface.
type dutyService struct {
	txManager    repository.TransactionManager
	pharmacyRepo repository.PharmacyRepository
	dutyRepo     repository.DutyPeriodRepository
	publisher    service.EventPublisher
	clock        service.Clock
	metrics      service.Metrics
	logger       *slog.Logger
}

// DutyServiceParams holds dependencies for DutyService, injected by Fx.
type DutyServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	PharmacyRepo repository.PharmacyRepository
	DutyRepo     repository.DutyPeriodRepository
	Publisher    service.EventPublisher
	Clock        service.Clock
	Metrics      service.Metrics
	Logger       *slog.Logger
}

// NewDutyService is the constructor for dutyService.
func NewDutyService(params DutyServiceParams) usecase.DutyUsecase {
	return &dutyService{
		txManager:    params.TxManager,
		pharmacyRepo: params.PharmacyRepo,
		dutyRepo:     params.DutyRepo,
		publisher:    params.Publisher,
		clock:        params.Clock,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}
}

// GetDutyStatus reports whether the pharmacy is on duty at the given instant.
// Pharmacies that are not approved are reported as not found.
func (s *dutyService) GetDutyStatus(ctx context.Context, pharmacyID uuid.UUID, at *time.Time) (*usecase.DutyStatus, error) {
	instant := s.clock.Now()
	if at != nil {
		instant = *at
	}

	pharmacy, err := s.pharmacyRepo.FindPharmacyByID(ctx, pharmacyID)
	if err != nil {
		return nil, translateRepositoryError(err, "failed to find pharmacy")
	}
	if !pharmacy.IsApproved() {
		return nil, errors.WithStack(domainerrors.ErrPharmacyNotFound)
	}

	periods, err := s.dutyRepo.ListDutyPeriods(ctx, repository.DutyPeriodFilter{
		PharmacyID: &pharmacyID,
		Covering:   &instant,
	})
	if err != nil {
		return nil, translateRepositoryError(err, "failed to list duty periods")
	}

	return &usecase.DutyStatus{
		PharmacyID: pharmacyID,
		At:         instant,
		IsOnDuty:   duty.IsOnDuty(periods, instant),
		Periods:    periods,
	}, nil
}

// ScheduleDuty creates a duty period. The pharmacy row is locked for the
// whole check-and-insert so concurrent schedules cannot both pass the check.
func (s *dutyService) ScheduleDuty(ctx context.Context, actor *entity.Actor, input *usecase.ScheduleDutyInput) (*entity.DutyPeriod, error) {
	period, err := s.scheduleDuty(ctx, actor, input)
	s.metrics.RecordDutyMutation(dutyOperationSchedule, mutationOutcome(err))
	if err != nil {
		return nil, err
	}

	s.publish(ctx, service.DutyEventScheduled, period)

	return period, nil
}

func (s *dutyService) scheduleDuty(ctx context.Context, actor *entity.Actor, input *usecase.ScheduleDutyInput) (*entity.DutyPeriod, error) {
	if actor == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}
	if err := validateDutyWindow(input.StartAt, input.EndAt); err != nil {
		return nil, err
	}

	pharmacyID, err := s.resolvePharmacyID(ctx, actor, input.PharmacyID)
	if err != nil {
		return nil, err
	}

	period := &entity.DutyPeriod{
		ID:         uuid.New(),
		PharmacyID: pharmacyID,
		StartAt:    input.StartAt.UTC(),
		EndAt:      input.EndAt.UTC(),
		Note:       util.NilIfBlank(input.Note),
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if _, err := lockManagedPharmacy(ctx, factory, actor, pharmacyID); err != nil {
			return err
		}

		dutyRepo := factory.NewDutyPeriodRepository()
		if err := checkOverlap(ctx, dutyRepo, pharmacyID, period.StartAt, period.EndAt, uuid.Nil); err != nil {
			return err
		}

		return translateRepositoryError(dutyRepo.CreateDutyPeriod(ctx, period), "failed to create duty period")
	})
	if err != nil {
		return nil, err
	}

	return period, nil
}

// RescheduleDuty moves a duty period to a new window.
func (s *dutyService) RescheduleDuty(ctx context.Context, actor *entity.Actor, periodID uuid.UUID, input *usecase.RescheduleDutyInput) (*entity.DutyPeriod, error) {
	period, err := s.rescheduleDuty(ctx, actor, periodID, input)
	s.metrics.RecordDutyMutation(dutyOperationReschedule, mutationOutcome(err))
	if err != nil {
		return nil, err
	}

	s.publish(ctx, service.DutyEventRescheduled, period)

	return period, nil
}

func (s *dutyService) rescheduleDuty(ctx context.Context, actor *entity.Actor, periodID uuid.UUID, input *usecase.RescheduleDutyInput) (*entity.DutyPeriod, error) {
	if actor == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}
	if err := validateDutyWindow(input.StartAt, input.EndAt); err != nil {
		return nil, err
	}

	var updated *entity.DutyPeriod
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		dutyRepo := factory.NewDutyPeriodRepository()

		period, err := lockPeriodForWrite(ctx, factory, dutyRepo, actor, periodID)
		if err != nil {
			return err
		}

		start, end := input.StartAt.UTC(), input.EndAt.UTC()
		if err := checkOverlap(ctx, dutyRepo, period.PharmacyID, start, end, period.ID); err != nil {
			return err
		}

		period.StartAt = start
		period.EndAt = end
		period.Note = util.NilIfBlank(input.Note)
		if err := dutyRepo.UpdateDutyPeriod(ctx, period); err != nil {
			return translateRepositoryError(err, "failed to update duty period")
		}
		updated = period

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// CancelDuty deletes a duty period.
func (s *dutyService) CancelDuty(ctx context.Context, actor *entity.Actor, periodID uuid.UUID) error {
	period, err := s.cancelDuty(ctx, actor, periodID)
	s.metrics.RecordDutyMutation(dutyOperationCancel, mutationOutcome(err))
	if err != nil {
		return err
	}

	s.publish(ctx, service.DutyEventCancelled, period)

	return nil
}

func (s *dutyService) cancelDuty(ctx context.Context, actor *entity.Actor, periodID uuid.UUID) (*entity.DutyPeriod, error) {
	if actor == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	var deleted *entity.DutyPeriod
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		dutyRepo := factory.NewDutyPeriodRepository()

		period, err := lockPeriodForWrite(ctx, factory, dutyRepo, actor, periodID)
		if err != nil {
			return err
		}

		if err := dutyRepo.DeleteDutyPeriod(ctx, period.ID); err != nil {
			return translateRepositoryError(err, "failed to delete duty period")
		}
		deleted = period

		return nil
	})
	if err != nil {
		return nil, err
	}

	return deleted, nil
}

// ListDutyPeriods returns the duty calendar ordered by start.
func (s *dutyService) ListDutyPeriods(ctx context.Context, input *usecase.ListDutyPeriodsInput) ([]*entity.DutyPeriod, error) {
	filter := repository.DutyPeriodFilter{
		PharmacyID: input.PharmacyID,
		Covering:   input.Covering,
	}
	if input.Upcoming {
		now := s.clock.Now()
		filter.EndingAfter = &now
	}

	periods, err := s.dutyRepo.ListDutyPeriods(ctx, filter)
	if err != nil {
		return nil, translateRepositoryError(err, "failed to list duty periods")
	}

	return periods, nil
}

// resolvePharmacyID picks the pharmacy a new period belongs to. Owners
// default to their own pharmacy; admins must name one unless they own one.
func (s *dutyService) resolvePharmacyID(ctx context.Context, actor *entity.Actor, requested *uuid.UUID) (uuid.UUID, error) {
	if requested != nil && *requested != uuid.Nil {
		return *requested, nil
	}

	owned, err := s.pharmacyRepo.FindPharmacyByOwner(ctx, actor.UserID)
	switch {
	case err == nil:
		return owned.ID, nil
	case !errors.Is(err, repository.ErrPharmacyNotFound):
		return uuid.Nil, translateRepositoryError(err, "failed to find pharmacy by owner")
	case actor.IsAdmin():
		return uuid.Nil, domainerrors.Invalid("pharmacy_id", "required")
	default:
		return uuid.Nil, domainerrors.ErrForbidden.WithDetails("a pharmacy is required to schedule duty periods")
	}
}

// lockManagedPharmacy takes the per-pharmacy write lock and checks the actor may manage it.
func lockManagedPharmacy(ctx context.Context, factory repository.RepositoryFactory, actor *entity.Actor, pharmacyID uuid.UUID) (*entity.Pharmacy, error) {
	pharmacy, err := factory.NewPharmacyRepository().LockPharmacy(ctx, pharmacyID)
	if err != nil {
		return nil, translateRepositoryError(err, "failed to lock pharmacy")
	}
	if !actor.CanManage(pharmacy) {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	return pharmacy, nil
}

// lockPeriodForWrite loads a period, locks its pharmacy and reloads the
// period so the caller sees the state other writers committed before the lock.
func lockPeriodForWrite(ctx context.Context, factory repository.RepositoryFactory, dutyRepo repository.DutyPeriodRepository, actor *entity.Actor, periodID uuid.UUID) (*entity.DutyPeriod, error) {
	period, err := dutyRepo.FindDutyPeriodByID(ctx, periodID)
	if err != nil {
		return nil, translateRepositoryError(err, "failed to find duty period")
	}

	if _, err := lockManagedPharmacy(ctx, factory, actor, period.PharmacyID); err != nil {
		return nil, err
	}

	period, err = dutyRepo.FindDutyPeriodByID(ctx, periodID)
	if err != nil {
		return nil, translateRepositoryError(err, "failed to find duty period")
	}

	return period, nil
}

func checkOverlap(ctx context.Context, dutyRepo repository.DutyPeriodRepository, pharmacyID uuid.UUID, start, end time.Time, exclude uuid.UUID) error {
	existing, err := dutyRepo.FindOverlapping(ctx, pharmacyID, start, end, exclude)
	if err != nil {
		return translateRepositoryError(err, "failed to find overlapping duty periods")
	}

	if conflicts := duty.FindConflicts(existing, start, end, exclude); len(conflicts) > 0 {
		return domainerrors.NewOverlapError(pharmacyID, conflicts...)
	}

	return nil
}

func validateDutyWindow(start, end time.Time) error {
	var fields []domainerrors.FieldError
	if start.IsZero() {
		fields = append(fields, domainerrors.FieldError{Field: "start_at", Reason: "required"})
	}
	if end.IsZero() {
		fields = append(fields, domainerrors.FieldError{Field: "end_at", Reason: "required"})
	}
	if len(fields) == 0 && !duty.ValidWindow(start, end) {
		fields = append(fields, domainerrors.FieldError{Field: "end_at", Reason: "must be after start_at"})
	}
	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields...)
	}

	return nil
}

func mutationOutcome(err error) string {
	if err == nil {
		return "success"
	}

	switch {
	case errors.Is(err, domainerrors.ErrDutyOverlap):
		return "overlap"
	case errors.Is(err, domainerrors.ErrConcurrencyConflict):
		return "conflict"
	case errors.Is(err, domainerrors.ErrValidationFailed):
		return "invalid"
	case errors.Is(err, domainerrors.ErrForbidden), errors.Is(err, domainerrors.ErrUnauthorized):
		return "forbidden"
	case errors.Is(err, domainerrors.ErrPharmacyNotFound), errors.Is(err, domainerrors.ErrDutyPeriodNotFound):
		return "not_found"
	default:
		return "error"
	}
}

// publish sends a duty event once the change is committed. Delivery failures
// are logged and counted, never returned.
func (s *dutyService) publish(ctx context.Context, eventType service.DutyEventType, period *entity.DutyPeriod) {
	event := &service.DutyEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		EventID:      uuid.New().String(),
		Type:         eventType,
		PharmacyID:   period.PharmacyID.String(),
		DutyPeriodID: period.ID.String(),
		StartAt:      period.StartAt,
		EndAt:        period.EndAt,
		OccurredAt:   s.clock.Now(),
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()

	if err := s.publisher.PublishDutyEvent(publishCtx, event); err != nil {
		s.metrics.RecordEventPublishFailure(string(eventType))
		requestLogger(ctx, s.logger).Warn("Failed to publish duty event",
			slog.String("event_id", event.EventID),
			slog.String("type", string(eventType)),
			slog.String("duty_period_id", event.DutyPeriodID),
			slog.Any("error", err),
		)
	}
}
