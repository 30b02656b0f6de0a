// Package income contains income-related use cases.
package income

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/application/usecase/period"
	"github.com/budgetbook/backend/internal/domain/entity"
)

// GetIncomeInput represents the input for fetching a month's income.
type GetIncomeInput struct {
	UserID uuid.UUID
	Month  int
	Year   int
}

// GetIncomeOutput represents a month's primary and additional income.
// Income is nil when the month has no primary income row yet.
type GetIncomeOutput struct {
	Income     *entity.Income
	Additional []*entity.AdditionalIncome
}

// GetIncomeUseCase handles fetching a month's income.
type GetIncomeUseCase struct {
	monthRepo      adapter.MonthRepository
	incomeRepo     adapter.IncomeRepository
	additionalRepo adapter.AdditionalIncomeRepository
}

// NewGetIncomeUseCase creates a new GetIncomeUseCase instance.
func NewGetIncomeUseCase(
	monthRepo adapter.MonthRepository,
	incomeRepo adapter.IncomeRepository,
	additionalRepo adapter.AdditionalIncomeRepository,
) *GetIncomeUseCase {
	return &GetIncomeUseCase{
		monthRepo:      monthRepo,
		incomeRepo:     incomeRepo,
		additionalRepo: additionalRepo,
	}
}

// Execute returns the month's income rows.
func (uc *GetIncomeUseCase) Execute(ctx context.Context, input GetIncomeInput) (*GetIncomeOutput, error) {
	if err := period.ValidatePeriod(input.Month, input.Year); err != nil {
		return nil, err
	}

	month, err := uc.monthRepo.GetOrCreate(ctx, input.UserID, input.Month, input.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve month: %w", err)
	}

	income, err := uc.incomeRepo.FindByMonth(ctx, input.UserID, month.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get income: %w", err)
	}

	additional, err := uc.additionalRepo.ListByMonth(ctx, input.UserID, month.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list additional income: %w", err)
	}

	return &GetIncomeOutput{
		Income:     income,
		Additional: additional,
	}, nil
}
