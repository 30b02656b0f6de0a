package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/entity"
	"github.com/budgetbook/backend/internal/integration/persistence/model"
)

// insightRepository implements the adapter.InsightRepository interface.
type insightRepository struct {
	db *gorm.DB
}

// NewInsightRepository creates a new insight repository instance.
func NewInsightRepository(db *gorm.DB) adapter.InsightRepository {
	return &insightRepository{
		db: db,
	}
}

// List retrieves the user's most recent insights.
func (r *insightRepository) List(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Insight, error) {
	var insightModels []model.InsightModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&insightModels)
	if result.Error != nil {
		return nil, result.Error
	}

	insights := make([]*entity.Insight, len(insightModels))
	for i, im := range insightModels {
		insights[i] = im.ToEntity()
	}
	return insights, nil
}

// Create inserts a new insight.
func (r *insightRepository) Create(ctx context.Context, insight *entity.Insight) error {
	return r.db.WithContext(ctx).Create(model.InsightFromEntity(insight)).Error
}
