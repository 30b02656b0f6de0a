// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/entity"
	"github.com/budgetbook/backend/internal/integration/persistence/model"
)

// monthRepository implements the adapter.MonthRepository interface.
type monthRepository struct {
	db *gorm.DB
}

// NewMonthRepository creates a new month repository instance.
func NewMonthRepository(db *gorm.DB) adapter.MonthRepository {
	return &monthRepository{
		db: db,
	}
}

// GetOrCreate returns the user's row for (month, year), creating it when
// absent. A concurrent insert losing the unique-constraint race is retried
// as a read, so both callers converge on the surviving row.
func (r *monthRepository) GetOrCreate(ctx context.Context, userID uuid.UUID, month, year int) (*entity.Month, error) {
	existing, err := r.Find(ctx, userID, month, year)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	monthModel := model.MonthFromEntity(entity.NewMonth(userID, month, year))
	result := r.db.WithContext(ctx).Create(monthModel)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			existing, err := r.Find(ctx, userID, month, year)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return existing, nil
			}
		}
		return nil, result.Error
	}
	return monthModel.ToEntity(), nil
}

// Find returns the user's row for (month, year), or nil when absent.
func (r *monthRepository) Find(ctx context.Context, userID uuid.UUID, month, year int) (*entity.Month, error) {
	var monthModel model.MonthModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		First(&monthModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return monthModel.ToEntity(), nil
}

// ListRecent returns up to limit months, newest first.
func (r *monthRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Month, error) {
	var monthModels []model.MonthModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("year DESC, month DESC").
		Limit(limit).
		Find(&monthModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return monthsToEntities(monthModels), nil
}

// ListThrough returns every month up to and including (month, year), newest
// first. Months recorded ahead of the calendar stay out of the result.
func (r *monthRepository) ListThrough(ctx context.Context, userID uuid.UUID, month, year int) ([]*entity.Month, error) {
	var monthModels []model.MonthModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND (year < ? OR (year = ? AND month <= ?))", userID, year, year, month).
		Order("year DESC, month DESC").
		Find(&monthModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return monthsToEntities(monthModels), nil
}

func monthsToEntities(monthModels []model.MonthModel) []*entity.Month {
	months := make([]*entity.Month, len(monthModels))
	for i, mm := range monthModels {
		months[i] = mm.ToEntity()
	}
	return months
}

// isUniqueViolation reports whether err is a unique-constraint violation
// from either the gorm error translator or the postgres driver directly.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
