package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/entity"
	"github.com/budgetbook/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// FindByID retrieves an expense by id, or nil when absent.
func (r *expenseRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Expense, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// ListByMonth retrieves the month's expenses.
func (r *expenseRepository) ListByMonth(ctx context.Context, userID, monthID uuid.UUID) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND month_id = ?", userID, monthID).
		Order("created_at ASC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.Expense, len(expenseModels))
	for i, em := range expenseModels {
		expenses[i] = em.ToEntity()
	}
	return expenses, nil
}

// Create inserts a new expense.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	return r.db.WithContext(ctx).Create(model.ExpenseFromEntity(expense)).Error
}

// Update saves the expense.
func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	return r.db.WithContext(ctx).Save(model.ExpenseFromEntity(expense)).Error
}

// Delete removes the expense.
func (r *expenseRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&model.ExpenseModel{}).Error
}

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// FindByID retrieves a category by id, or nil when absent.
func (r *categoryRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.ExpenseCategory, error) {
	var categoryModel model.ExpenseCategoryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// List retrieves the user's categories.
func (r *categoryRepository) List(ctx context.Context, userID uuid.UUID) ([]*entity.ExpenseCategory, error) {
	var categoryModels []model.ExpenseCategoryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.ExpenseCategory, len(categoryModels))
	for i, cm := range categoryModels {
		categories[i] = cm.ToEntity()
	}
	return categories, nil
}

// SeedDefaults inserts the default category set for the user and returns
// it.
func (r *categoryRepository) SeedDefaults(ctx context.Context, userID uuid.UUID) ([]*entity.ExpenseCategory, error) {
	categories := make([]*entity.ExpenseCategory, len(entity.DefaultCategoryNames))
	categoryModels := make([]*model.ExpenseCategoryModel, len(entity.DefaultCategoryNames))
	for i, name := range entity.DefaultCategoryNames {
		categories[i] = entity.NewExpenseCategory(userID, name, entity.CategoryTypeExpense)
		categoryModels[i] = model.ExpenseCategoryFromEntity(categories[i])
	}

	if err := r.db.WithContext(ctx).Create(categoryModels).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
