package insight

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/entity"
)

// DefaultListLimit caps the number of insights returned.
const DefaultListLimit = 20

// ListInsightsInput represents the input for listing insights.
type ListInsightsInput struct {
	UserID uuid.UUID
}

// ListInsightsOutput represents the output of listing insights, newest
// first.
type ListInsightsOutput struct {
	Insights []*entity.Insight
}

// ListInsightsUseCase handles listing stored insights.
type ListInsightsUseCase struct {
	insightRepo adapter.InsightRepository
}

// NewListInsightsUseCase creates a new ListInsightsUseCase instance.
func NewListInsightsUseCase(insightRepo adapter.InsightRepository) *ListInsightsUseCase {
	return &ListInsightsUseCase{
		insightRepo: insightRepo,
	}
}

// Execute lists the user's most recent insights.
func (uc *ListInsightsUseCase) Execute(ctx context.Context, input ListInsightsInput) (*ListInsightsOutput, error) {
	insights, err := uc.insightRepo.List(ctx, input.UserID, DefaultListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list insights: %w", err)
	}
	return &ListInsightsOutput{Insights: insights}, nil
}
