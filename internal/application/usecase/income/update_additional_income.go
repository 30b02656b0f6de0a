package income

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/entity"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// UpdateAdditionalIncomeInput represents the input for updating an
// additional income entry. Nil fields are left unchanged.
type UpdateAdditionalIncomeInput struct {
	UserID uuid.UUID
	ID     uuid.UUID
	Label  *string
	Amount *decimal.Decimal
}

// UpdateAdditionalIncomeOutput represents the output of updating an
// additional income entry.
type UpdateAdditionalIncomeOutput struct {
	Income *entity.AdditionalIncome
}

// UpdateAdditionalIncomeUseCase handles updating additional income entries.
type UpdateAdditionalIncomeUseCase struct {
	additionalRepo adapter.AdditionalIncomeRepository
}

// NewUpdateAdditionalIncomeUseCase creates a new UpdateAdditionalIncomeUseCase instance.
func NewUpdateAdditionalIncomeUseCase(additionalRepo adapter.AdditionalIncomeRepository) *UpdateAdditionalIncomeUseCase {
	return &UpdateAdditionalIncomeUseCase{
		additionalRepo: additionalRepo,
	}
}

// Execute applies the partial update to the entry.
func (uc *UpdateAdditionalIncomeUseCase) Execute(ctx context.Context, input UpdateAdditionalIncomeInput) (*UpdateAdditionalIncomeOutput, error) {
	income, err := uc.additionalRepo.FindByID(ctx, input.UserID, input.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find additional income: %w", err)
	}
	if income == nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeAdditionalIncomeNotFound,
			"additional income entry not found",
			domainerror.ErrAdditionalIncomeNotFound,
		)
	}

	if input.Label != nil {
		if *input.Label == "" {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeMissingName,
				"label is required",
				domainerror.ErrMissingName,
			)
		}
		income.Label = *input.Label
	}
	if input.Amount != nil {
		income.Amount = *input.Amount
	}

	if err := uc.additionalRepo.Update(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to update additional income: %w", err)
	}

	return &UpdateAdditionalIncomeOutput{Income: income}, nil
}
