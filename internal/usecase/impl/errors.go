package impl

import (
	"context"
	"log/slog"

	deliverycontext "pharmaduty/internal/delivery/context"
	"pharmaduty/internal/domain/entity"
	domainerrors "pharmaduty/internal/domain/errors"
	"pharmaduty/internal/domain/repository"
	"pharmaduty/internal/util"

	"github.com/pkg/errors"
)

// translateRepositoryError replaces persistence sentinels with the AppError the
// client sees. Unknown errors are wrapped with message.
func translateRepositoryError(err error, message string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrPharmacyNotFound):
		return errors.WithStack(domainerrors.ErrPharmacyNotFound)
	case errors.Is(err, repository.ErrDutyPeriodNotFound):
		return errors.WithStack(domainerrors.ErrDutyPeriodNotFound)
	case errors.Is(err, repository.ErrRatingNotFound):
		return errors.WithStack(domainerrors.ErrRatingNotFound)
	case errors.Is(err, repository.ErrFeedbackNotFound):
		return errors.WithStack(domainerrors.ErrFeedbackNotFound)
	case errors.Is(err, repository.ErrPharmacyOwnerConflict):
		return errors.WithStack(domainerrors.ErrPharmacyAlreadyExists)
	case errors.Is(err, repository.ErrDutyPeriodConflict),
		errors.Is(err, repository.ErrRatingConflict):
		return domainerrors.ErrConcurrencyConflict.WrapMessage(message)
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return errors.Wrap(err, message)
}

func requireAdmin(actor *entity.Actor) error {
	if actor == nil {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}
	if !actor.IsAdmin() {
		return errors.WithStack(domainerrors.ErrForbidden)
	}

	return nil
}

// requestLogger returns the request-scoped logger when the delivery layer set one.
func requestLogger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, fallback)
}

// pageOffset converts a 1-based page into a row offset.
func pageOffset(page, pageSize int) int {
	return util.PageOffset(page, pageSize)
}
