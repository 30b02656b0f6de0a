package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/domain/entity"
)

// IncomeRepository defines the interface for primary income persistence.
// Each month holds at most one primary income row.
type IncomeRepository interface {
	// FindByMonth returns the income row for the month, or nil when absent.
	FindByMonth(ctx context.Context, userID, monthID uuid.UUID) (*entity.Income, error)

	// Upsert creates the month's income row or replaces its amounts.
	Upsert(ctx context.Context, income *entity.Income) error
}

// AdditionalIncomeRepository defines the interface for additional income
// persistence operations.
type AdditionalIncomeRepository interface {
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.AdditionalIncome, error)
	ListByMonth(ctx context.Context, userID, monthID uuid.UUID) ([]*entity.AdditionalIncome, error)
	Create(ctx context.Context, income *entity.AdditionalIncome) error
	Update(ctx context.Context, income *entity.AdditionalIncome) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
