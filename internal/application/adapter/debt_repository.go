package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/domain/entity"
)

// DebtRepository defines the interface for debt persistence operations.
type DebtRepository interface {
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Debt, error)
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Debt, error)
	Create(ctx context.Context, debt *entity.Debt) error
	Update(ctx context.Context, debt *entity.Debt) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
