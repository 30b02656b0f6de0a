// Package insight contains AI insight use cases.
package insight

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/application/usecase/dashboard"
	"github.com/budgetbook/backend/internal/application/usecase/period"
	"github.com/budgetbook/backend/internal/domain/entity"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// GenerateInsightInput represents the input for generating a monthly
// insight.
type GenerateInsightInput struct {
	UserID uuid.UUID
	Month  int
	Year   int
}

// GenerateInsightOutput represents the output of generating an insight.
type GenerateInsightOutput struct {
	Insight *entity.Insight
}

// GenerateInsightUseCase builds a prompt from the month's aggregated
// numbers, asks the AI service for a commentary, and stores the result.
type GenerateInsightUseCase struct {
	monthRepo   adapter.MonthRepository
	overview    *dashboard.GetOverviewUseCase
	insightRepo adapter.InsightRepository
	aiService   adapter.AIService
}

// NewGenerateInsightUseCase creates a new GenerateInsightUseCase instance.
func NewGenerateInsightUseCase(
	monthRepo adapter.MonthRepository,
	overview *dashboard.GetOverviewUseCase,
	insightRepo adapter.InsightRepository,
	aiService adapter.AIService,
) *GenerateInsightUseCase {
	return &GenerateInsightUseCase{
		monthRepo:   monthRepo,
		overview:    overview,
		insightRepo: insightRepo,
		aiService:   aiService,
	}
}

// Execute generates and stores an insight for the month.
func (uc *GenerateInsightUseCase) Execute(ctx context.Context, input GenerateInsightInput) (*GenerateInsightOutput, error) {
	if err := period.ValidatePeriod(input.Month, input.Year); err != nil {
		return nil, err
	}
	if !uc.aiService.IsAvailable() {
		return nil, domainerror.NewInsightError(
			domainerror.ErrCodeInsightUnavailable,
			"insight service is unavailable",
			domainerror.ErrInsightServiceUnavailable,
		)
	}

	month, err := uc.monthRepo.GetOrCreate(ctx, input.UserID, input.Month, input.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve month: %w", err)
	}

	overview, err := uc.overview.Execute(ctx, dashboard.GetOverviewInput{
		UserID: input.UserID,
		Month:  input.Month,
		Year:   input.Year,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate month: %w", err)
	}

	prompt := buildPrompt(month, overview)
	response, err := uc.aiService.GenerateInsight(ctx, prompt)
	if err != nil {
		return nil, domainerror.NewInsightError(
			domainerror.ErrCodeInsightGeneration,
			"failed to generate insight",
			err,
		)
	}

	monthID := month.ID
	saved := entity.NewInsight(input.UserID, &monthID, prompt, response)
	if err := uc.insightRepo.Create(ctx, saved); err != nil {
		return nil, fmt.Errorf("failed to store insight: %w", err)
	}

	return &GenerateInsightOutput{Insight: saved}, nil
}

// buildPrompt renders the month's totals into a compact prompt.
func buildPrompt(month *entity.Month, overview *dashboard.GetOverviewOutput) string {
	prompt := fmt.Sprintf(
		"You are a personal finance assistant. Summarize this month (%s) in 3 short sentences "+
			"and give one actionable suggestion.\n"+
			"Total income: %s\nTotal expenses: %s\nNet savings: %s\nTotal saved across accounts: %s\n"+
			"Active subscriptions total: %s\n",
		month.Label(),
		overview.TotalIncome.StringFixed(2),
		overview.TotalExpenses.StringFixed(2),
		overview.NetSavings.StringFixed(2),
		overview.TotalSavings.StringFixed(2),
		overview.SubscriptionsTotal.StringFixed(2),
	)
	for _, c := range overview.Expenses {
		prompt += fmt.Sprintf("Spent %s on %s\n", c.Amount.StringFixed(2), c.Category)
	}
	return prompt
}
