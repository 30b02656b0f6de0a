package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/entity"
	"github.com/budgetbook/backend/internal/integration/persistence/model"
)

// incomeRepository implements the adapter.IncomeRepository interface.
type incomeRepository struct {
	db *gorm.DB
}

// NewIncomeRepository creates a new income repository instance.
func NewIncomeRepository(db *gorm.DB) adapter.IncomeRepository {
	return &incomeRepository{
		db: db,
	}
}

// FindByMonth retrieves the month's income row, or nil when absent.
func (r *incomeRepository) FindByMonth(ctx context.Context, userID, monthID uuid.UUID) (*entity.Income, error) {
	var incomeModel model.IncomeModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND month_id = ?", userID, monthID).
		First(&incomeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return incomeModel.ToEntity(), nil
}

// Upsert creates the month's income row or replaces its amounts.
func (r *incomeRepository) Upsert(ctx context.Context, income *entity.Income) error {
	incomeModel := model.IncomeFromEntity(income)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "month_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"gross_income", "tax_deduction", "nis_deduction", "other_deductions", "net_income",
			}),
		}).
		Create(incomeModel)
	return result.Error
}

// additionalIncomeRepository implements adapter.AdditionalIncomeRepository.
type additionalIncomeRepository struct {
	db *gorm.DB
}

// NewAdditionalIncomeRepository creates a new additional income repository
// instance.
func NewAdditionalIncomeRepository(db *gorm.DB) adapter.AdditionalIncomeRepository {
	return &additionalIncomeRepository{
		db: db,
	}
}

// FindByID retrieves an entry by id, or nil when absent.
func (r *additionalIncomeRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.AdditionalIncome, error) {
	var incomeModel model.AdditionalIncomeModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&incomeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return incomeModel.ToEntity(), nil
}

// ListByMonth retrieves the month's additional income entries.
func (r *additionalIncomeRepository) ListByMonth(ctx context.Context, userID, monthID uuid.UUID) ([]*entity.AdditionalIncome, error) {
	var incomeModels []model.AdditionalIncomeModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND month_id = ?", userID, monthID).
		Order("created_at ASC").
		Find(&incomeModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.AdditionalIncome, len(incomeModels))
	for i, im := range incomeModels {
		entries[i] = im.ToEntity()
	}
	return entries, nil
}

// Create inserts a new additional income entry.
func (r *additionalIncomeRepository) Create(ctx context.Context, income *entity.AdditionalIncome) error {
	return r.db.WithContext(ctx).Create(model.AdditionalIncomeFromEntity(income)).Error
}

// Update saves the entry.
func (r *additionalIncomeRepository) Update(ctx context.Context, income *entity.AdditionalIncome) error {
	return r.db.WithContext(ctx).Save(model.AdditionalIncomeFromEntity(income)).Error
}

// Delete removes the entry.
func (r *additionalIncomeRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&model.AdditionalIncomeModel{}).Error
}
