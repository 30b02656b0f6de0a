package income

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/application/usecase/period"
	"github.com/budgetbook/backend/internal/domain/entity"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// AddAdditionalIncomeInput represents the input for adding an additional
// income entry.
type AddAdditionalIncomeInput struct {
	UserID uuid.UUID
	Month  int
	Year   int
	Label  string
	Amount decimal.Decimal
}

// AddAdditionalIncomeOutput represents the output of adding an additional
// income entry.
type AddAdditionalIncomeOutput struct {
	Income *entity.AdditionalIncome
}

// AddAdditionalIncomeUseCase handles adding additional income entries.
type AddAdditionalIncomeUseCase struct {
	monthRepo      adapter.MonthRepository
	additionalRepo adapter.AdditionalIncomeRepository
}

// NewAddAdditionalIncomeUseCase creates a new AddAdditionalIncomeUseCase instance.
func NewAddAdditionalIncomeUseCase(
	monthRepo adapter.MonthRepository,
	additionalRepo adapter.AdditionalIncomeRepository,
) *AddAdditionalIncomeUseCase {
	return &AddAdditionalIncomeUseCase{
		monthRepo:      monthRepo,
		additionalRepo: additionalRepo,
	}
}

// Execute adds an additional income entry to the month.
func (uc *AddAdditionalIncomeUseCase) Execute(ctx context.Context, input AddAdditionalIncomeInput) (*AddAdditionalIncomeOutput, error) {
	if err := period.ValidatePeriod(input.Month, input.Year); err != nil {
		return nil, err
	}
	if input.Label == "" {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeMissingName,
			"label is required",
			domainerror.ErrMissingName,
		)
	}

	month, err := uc.monthRepo.GetOrCreate(ctx, input.UserID, input.Month, input.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve month: %w", err)
	}

	income := entity.NewAdditionalIncome(input.UserID, month.ID, input.Label, input.Amount)
	if err := uc.additionalRepo.Create(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to create additional income: %w", err)
	}

	return &AddAdditionalIncomeOutput{Income: income}, nil
}
