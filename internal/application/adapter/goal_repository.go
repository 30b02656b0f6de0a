package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Goal, error)
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)
	Create(ctx context.Context, goal *entity.Goal) error
	Update(ctx context.Context, goal *entity.Goal) error
	Delete(ctx context.Context, userID, id uuid.UUID) error

	// LinkAccount attaches a savings account to a goal. Linking twice is a
	// no-op.
	LinkAccount(ctx context.Context, goalID, accountID uuid.UUID) error
	UnlinkAccount(ctx context.Context, goalID, accountID uuid.UUID) error

	// LinkedAccountIDs returns the savings accounts linked to each of the
	// user's goals.
	LinkedAccountIDs(ctx context.Context, userID uuid.UUID) (map[uuid.UUID][]uuid.UUID, error)
}
