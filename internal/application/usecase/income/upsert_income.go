package income

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/application/usecase/period"
	"github.com/budgetbook/backend/internal/domain/entity"
)

// UpsertIncomeInput represents the input for setting a month's income.
// NetIncome is stored as submitted and never recomputed from the deductions.
type UpsertIncomeInput struct {
	UserID          uuid.UUID
	Month           int
	Year            int
	GrossIncome     decimal.Decimal
	TaxDeduction    decimal.Decimal
	NISDeduction    decimal.Decimal
	OtherDeductions decimal.Decimal
	NetIncome       decimal.Decimal
}

// UpsertIncomeOutput represents the output of setting a month's income.
type UpsertIncomeOutput struct {
	Income *entity.Income
}

// UpsertIncomeUseCase handles creating or replacing a month's income row.
type UpsertIncomeUseCase struct {
	monthRepo  adapter.MonthRepository
	incomeRepo adapter.IncomeRepository
}

// NewUpsertIncomeUseCase creates a new UpsertIncomeUseCase instance.
func NewUpsertIncomeUseCase(monthRepo adapter.MonthRepository, incomeRepo adapter.IncomeRepository) *UpsertIncomeUseCase {
	return &UpsertIncomeUseCase{
		monthRepo:  monthRepo,
		incomeRepo: incomeRepo,
	}
}

// Execute writes the month's income. Each month holds a single income row.
func (uc *UpsertIncomeUseCase) Execute(ctx context.Context, input UpsertIncomeInput) (*UpsertIncomeOutput, error) {
	if err := period.ValidatePeriod(input.Month, input.Year); err != nil {
		return nil, err
	}

	month, err := uc.monthRepo.GetOrCreate(ctx, input.UserID, input.Month, input.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve month: %w", err)
	}

	income := entity.NewIncome(
		input.UserID,
		month.ID,
		input.GrossIncome,
		input.TaxDeduction,
		input.NISDeduction,
		input.OtherDeductions,
		input.NetIncome,
	)
	if err := uc.incomeRepo.Upsert(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to upsert income: %w", err)
	}

	return &UpsertIncomeOutput{Income: income}, nil
}
