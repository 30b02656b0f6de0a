package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/domain/entity"
)

// SubscriptionRepository defines the interface for subscription persistence
// operations.
type SubscriptionRepository interface {
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Subscription, error)
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Subscription, error)
	Create(ctx context.Context, subscription *entity.Subscription) error
	Update(ctx context.Context, subscription *entity.Subscription) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
