package postgres

import (
	"context"
	"time"

	"pharmaduty/internal/domain/entity"
	domainerrors "pharmaduty/internal/domain/errors"
	"pharmaduty/internal/domain/repository"
	"pharmaduty/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// dutyPeriodRepository implements the domain.DutyPeriodRepository interface.
type dutyPeriodRepository struct {
	db *gorm.DB
}

// NewDutyPeriodRepository is the constructor for dutyPeriodRepository.
func NewDutyPeriodRepository(db *gorm.DB) repository.DutyPeriodRepository {
	return &dutyPeriodRepository{db: db}
}

// FindDutyPeriodByID retrieves a duty period by its unique ID.
func (repo *dutyPeriodRepository) FindDutyPeriodByID(ctx context.Context, id uuid.UUID) (*entity.DutyPeriod, error) {
	var periodM model.DutyPeriodModel
	if err := repo.db.WithContext(ctx).First(&periodM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDutyPeriodNotFound
		}

		return nil, errors.Wrap(err, "failed to find duty period by ID")
	}

	return toDutyPeriodDomain(&periodM), nil
}

// ListDutyPeriods returns duty periods matching filter ordered by start.
func (repo *dutyPeriodRepository) ListDutyPeriods(ctx context.Context, filter repository.DutyPeriodFilter) ([]*entity.DutyPeriod, error) {
	query := repo.db.WithContext(ctx)

	if filter.PharmacyID != nil {
		query = query.Where("pharmacy_id = ?", *filter.PharmacyID)
	}
	if filter.Covering != nil {
		query = query.Where("start_at <= ? AND end_at >= ?", *filter.Covering, *filter.Covering)
	}
	if filter.EndingAfter != nil {
		query = query.Where("end_at >= ?", *filter.EndingAfter)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var periodModels []*model.DutyPeriodModel
	if err := query.Order("start_at ASC").Order("id").Find(&periodModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list duty periods")
	}

	periods := make([]*entity.DutyPeriod, 0, len(periodModels))
	for _, periodM := range periodModels {
		periods = append(periods, toDutyPeriodDomain(periodM))
	}

	return periods, nil
}

// FindOverlapping returns the periods of a pharmacy intersecting [start, end], bounds included.
func (repo *dutyPeriodRepository) FindOverlapping(ctx context.Context, pharmacyID uuid.UUID, start, end time.Time, excludeID uuid.UUID) ([]*entity.DutyPeriod, error) {
	query := repo.db.WithContext(ctx).
		Where("pharmacy_id = ? AND start_at <= ? AND end_at >= ?", pharmacyID, end, start)

	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var periodModels []*model.DutyPeriodModel
	if err := query.Order("start_at ASC").Find(&periodModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find overlapping duty periods")
	}

	periods := make([]*entity.DutyPeriod, 0, len(periodModels))
	for _, periodM := range periodModels {
		periods = append(periods, toDutyPeriodDomain(periodM))
	}

	return periods, nil
}

// CreateDutyPeriod persists a new duty period.
func (repo *dutyPeriodRepository) CreateDutyPeriod(ctx context.Context, period *entity.DutyPeriod) error {
	periodM := fromDutyPeriodDomain(period)

	if err := repo.db.WithContext(ctx).Create(periodM).Error; err != nil {
		return translateDutyWriteError(err, "failed to create duty period")
	}

	period.ID = periodM.ID
	period.CreatedAt = periodM.CreatedAt
	period.UpdatedAt = periodM.UpdatedAt

	return nil
}

// UpdateDutyPeriod rewrites the window and note of an existing period.
func (repo *dutyPeriodRepository) UpdateDutyPeriod(ctx context.Context, period *entity.DutyPeriod) error {
	periodM := fromDutyPeriodDomain(period)
	periodM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.DutyPeriodModel{ID: period.ID}).
		Select("start_at", "end_at", "note", "updated_at").
		Updates(periodM)
	if result.Error != nil {
		return translateDutyWriteError(result.Error, "failed to update duty period")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDutyPeriodNotFound
	}

	period.UpdatedAt = periodM.UpdatedAt

	return nil
}

// DeleteDutyPeriod removes a duty period by its ID.
func (repo *dutyPeriodRepository) DeleteDutyPeriod(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.DutyPeriodModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete duty period")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDutyPeriodNotFound
	}

	return nil
}

func translateDutyWriteError(err error, details string) error {
	switch {
	case isExclusionViolation(err), isConcurrencyFailure(err):
		return errors.WithStack(repository.ErrDutyPeriodConflict)
	case isForeignKeyConstraintViolation(err):
		return errors.WithStack(repository.ErrPharmacyNotFound)
	case isCheckConstraintViolation(err), isNotNullConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage("invalid duty period window")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

// --- Mapper Functions ---

// toDutyPeriodDomain converts a GORM DutyPeriodModel to a domain DutyPeriod entity.
func toDutyPeriodDomain(data *model.DutyPeriodModel) *entity.DutyPeriod {
	if data == nil {
		return nil
	}

	return &entity.DutyPeriod{
		ID:         data.ID,
		PharmacyID: data.PharmacyID,
		StartAt:    data.StartAt.UTC(),
		EndAt:      data.EndAt.UTC(),
		Note:       data.Note,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromDutyPeriodDomain converts a domain DutyPeriod entity to a GORM DutyPeriodModel.
func fromDutyPeriodDomain(data *entity.DutyPeriod) *model.DutyPeriodModel {
	if data == nil {
		return nil
	}

	return &model.DutyPeriodModel{
		ID:         data.ID,
		PharmacyID: data.PharmacyID,
		StartAt:    data.StartAt,
		EndAt:      data.EndAt,
		Note:       data.Note,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
