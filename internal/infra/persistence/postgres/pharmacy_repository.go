// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"pharmaduty/internal/domain/entity"
	domainerrors "pharmaduty/internal/domain/errors"
	"pharmaduty/internal/domain/geo"
	"pharmaduty/internal/domain/repository"
	"pharmaduty/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// pharmacyUpdatableColumns are the columns an owner or admin may change.
var pharmacyUpdatableColumns = []string{
	"name", "address", "city", "district", "phone", "email",
	"description", "latitude", "longitude", "opening_hours", "updated_at",
}

// pharmacyRepository implements the domain.PharmacyRepository interface.
type pharmacyRepository struct {
	db *gorm.DB
}

// NewPharmacyRepository is the constructor for pharmacyRepository.
func NewPharmacyRepository(db *gorm.DB) repository.PharmacyRepository {
	return &pharmacyRepository{db: db}
}

// FindPharmacyByID retrieves a pharmacy by its unique ID.
func (repo *pharmacyRepository) FindPharmacyByID(ctx context.Context, id uuid.UUID) (*entity.Pharmacy, error) {
	var pharmacyM model.PharmacyModel
	if err := repo.db.WithContext(ctx).First(&pharmacyM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPharmacyNotFound
		}

		return nil, errors.Wrap(err, "failed to find pharmacy by ID")
	}

	return toPharmacyDomain(&pharmacyM), nil
}

// FindPharmacyByOwner retrieves the pharmacy registered by ownerID.
func (repo *pharmacyRepository) FindPharmacyByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Pharmacy, error) {
	var pharmacyM model.PharmacyModel
	if err := repo.db.WithContext(ctx).First(&pharmacyM, "owner_id = ?", ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPharmacyNotFound
		}

		return nil, errors.Wrap(err, "failed to find pharmacy by owner")
	}

	return toPharmacyDomain(&pharmacyM), nil
}

// ListPharmacies loads discovery candidates from a read replica when one is configured.
func (repo *pharmacyRepository) ListPharmacies(ctx context.Context, filter repository.PharmacyFilter) ([]*entity.Pharmacy, error) {
	query := repo.db.WithContext(ctx).Clauses(dbresolver.Read)

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	if filter.Bound != nil {
		bound := *filter.Bound
		query = query.Where("latitude BETWEEN ? AND ?", bound.Min.Lat(), bound.Max.Lat())
		if geo.WrapsAntimeridian(bound) {
			query = query.Where("(longitude >= ? OR longitude <= ?)", bound.Min.Lon(), bound.Max.Lon())
		} else {
			query = query.Where("longitude BETWEEN ? AND ?", bound.Min.Lon(), bound.Max.Lon())
		}
	}

	if filter.DutyPeriodsAt != nil {
		at := *filter.DutyPeriodsAt
		query = query.Preload("DutyPeriods", "start_at <= ? AND end_at >= ?", at, at)
	}

	if filter.WithApprovedRatings {
		query = query.Preload("Ratings", "approved = ?", true)
	}

	var pharmacyModels []*model.PharmacyModel
	if err := query.Order("id").Find(&pharmacyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pharmacies")
	}

	pharmacies := make([]*entity.Pharmacy, 0, len(pharmacyModels))
	for _, pharmacyM := range pharmacyModels {
		pharmacies = append(pharmacies, toPharmacyDomain(pharmacyM))
	}

	return pharmacies, nil
}

// ListPharmaciesForAdmin returns one page of pharmacies for moderation and the matching total.
func (repo *pharmacyRepository) ListPharmaciesForAdmin(ctx context.Context, filter repository.AdminPharmacyFilter) ([]*entity.Pharmacy, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.PharmacyModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		query = query.Where("name ILIKE ? OR city ILIKE ? OR address ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count pharmacies")
	}

	var pharmacyModels []*model.PharmacyModel
	if err := query.Order("created_at DESC").Offset(filter.Offset).Limit(filter.Limit).Find(&pharmacyModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list pharmacies for admin")
	}

	pharmacies := make([]*entity.Pharmacy, 0, len(pharmacyModels))
	for _, pharmacyM := range pharmacyModels {
		pharmacies = append(pharmacies, toPharmacyDomain(pharmacyM))
	}

	return pharmacies, total, nil
}

// CountPharmaciesByStatus returns the number of pharmacies per moderation status.
func (repo *pharmacyRepository) CountPharmaciesByStatus(ctx context.Context) (map[entity.PharmacyStatus]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}

	err := repo.db.WithContext(ctx).
		Model(&model.PharmacyModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count pharmacies by status")
	}

	counts := make(map[entity.PharmacyStatus]int64, len(entity.PharmacyStatuses()))
	for _, status := range entity.PharmacyStatuses() {
		counts[status] = 0
	}
	for _, row := range rows {
		counts[entity.PharmacyStatus(row.Status)] = row.Count
	}

	return counts, nil
}

// CreatePharmacy persists a new pharmacy.
func (repo *pharmacyRepository) CreatePharmacy(ctx context.Context, pharmacy *entity.Pharmacy) error {
	pharmacyM := fromPharmacyDomain(pharmacy)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(pharmacyM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.WithStack(repository.ErrPharmacyOwnerConflict)
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing or invalid pharmacy information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create pharmacy")
	}

	pharmacy.ID = pharmacyM.ID
	pharmacy.CreatedAt = pharmacyM.CreatedAt
	pharmacy.UpdatedAt = pharmacyM.UpdatedAt

	return nil
}

// UpdatePharmacy updates the editable profile columns.
func (repo *pharmacyRepository) UpdatePharmacy(ctx context.Context, pharmacy *entity.Pharmacy) error {
	pharmacyM := fromPharmacyDomain(pharmacy)
	pharmacyM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.PharmacyModel{ID: pharmacy.ID}).
		Select(pharmacyUpdatableColumns).
		Updates(pharmacyM)
	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) || isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing or invalid pharmacy information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update pharmacy")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPharmacyNotFound
	}

	pharmacy.UpdatedAt = pharmacyM.UpdatedAt

	return nil
}

// UpdatePharmacyStatus moves every listed pharmacy to status.
func (repo *pharmacyRepository) UpdatePharmacyStatus(ctx context.Context, ids []uuid.UUID, status entity.PharmacyStatus) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.PharmacyModel{}).
		Where("id IN ?", ids).
		Updates(map[string]any{"status": string(status), "updated_at": time.Now()})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update pharmacy status")
	}

	return result.RowsAffected, nil
}

// IncrementViewCount bumps the public profile view counter.
func (repo *pharmacyRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PharmacyModel{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment view count")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPharmacyNotFound
	}

	return nil
}

// LockPharmacy takes a row lock on the pharmacy for the rest of the transaction.
func (repo *pharmacyRepository) LockPharmacy(ctx context.Context, id uuid.UUID) (*entity.Pharmacy, error) {
	var pharmacyM model.PharmacyModel

	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write, clause.Locking{Strength: "UPDATE"}).
		First(&pharmacyM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPharmacyNotFound
		}
		if isConcurrencyFailure(err) {
			return nil, domainerrors.ErrConcurrencyConflict.WrapMessage("pharmacy is locked by another writer")
		}

		return nil, errors.Wrap(err, "failed to lock pharmacy")
	}

	return toPharmacyDomain(&pharmacyM), nil
}

// escapeLike escapes LIKE wildcards in user input.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// --- Mapper Functions ---

// toPharmacyDomain converts a GORM PharmacyModel to a domain Pharmacy entity.
func toPharmacyDomain(data *model.PharmacyModel) *entity.Pharmacy {
	if data == nil {
		return nil
	}

	pharmacy := &entity.Pharmacy{
		ID:          data.ID,
		Name:        data.Name,
		Address:     data.Address,
		City:        data.City,
		District:    data.District,
		Phone:       data.Phone,
		Email:       data.Email,
		Description: data.Description,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		Status:      entity.PharmacyStatus(data.Status),
		ViewCount:   data.ViewCount,
		OwnerID:     data.OwnerID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	if len(data.OpeningHours) > 0 {
		pharmacy.OpeningHours = json.RawMessage(data.OpeningHours)
	}

	if data.DutyPeriods != nil {
		pharmacy.DutyPeriods = make([]*entity.DutyPeriod, 0, len(data.DutyPeriods))
		for i := range data.DutyPeriods {
			pharmacy.DutyPeriods = append(pharmacy.DutyPeriods, toDutyPeriodDomain(&data.DutyPeriods[i]))
		}
	}

	if data.Ratings != nil {
		pharmacy.Ratings = make([]*entity.Rating, 0, len(data.Ratings))
		for i := range data.Ratings {
			pharmacy.Ratings = append(pharmacy.Ratings, toRatingDomain(&data.Ratings[i]))
		}
	}

	return pharmacy
}

// fromPharmacyDomain converts a domain Pharmacy entity to a GORM PharmacyModel.
// Preloaded associations are not carried over.
func fromPharmacyDomain(data *entity.Pharmacy) *model.PharmacyModel {
	if data == nil {
		return nil
	}

	pharmacyM := &model.PharmacyModel{
		ID:          data.ID,
		Name:        data.Name,
		Address:     data.Address,
		City:        data.City,
		District:    data.District,
		Phone:       data.Phone,
		Email:       data.Email,
		Description: data.Description,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		Status:      string(data.Status),
		ViewCount:   data.ViewCount,
		OwnerID:     data.OwnerID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	if len(data.OpeningHours) > 0 {
		pharmacyM.OpeningHours = datatypes.JSON(data.OpeningHours)
	}

	return pharmacyM
}
