package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Expense, error)
	ListByMonth(ctx context.Context, userID, monthID uuid.UUID) ([]*entity.Expense, error)
	Create(ctx context.Context, expense *entity.Expense) error
	Update(ctx context.Context, expense *entity.Expense) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// CategoryRepository defines the interface for expense category persistence.
type CategoryRepository interface {
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.ExpenseCategory, error)
	List(ctx context.Context, userID uuid.UUID) ([]*entity.ExpenseCategory, error)

	// SeedDefaults inserts the default category set for a user that has none.
	SeedDefaults(ctx context.Context, userID uuid.UUID) ([]*entity.ExpenseCategory, error)
}
