package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/domain/entity"
)

// InsightRepository defines the interface for insight persistence operations.
type InsightRepository interface {
	List(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Insight, error)
	Create(ctx context.Context, insight *entity.Insight) error
}
