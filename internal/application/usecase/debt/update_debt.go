package debt

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/entity"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// UpdateDebtInput represents the input for updating a debt. Nil fields are
// left unchanged. ClearInterestRate removes the rate.
type UpdateDebtInput struct {
	UserID            uuid.UUID
	ID                uuid.UUID
	Name              *string
	Principal         *decimal.Decimal
	InterestRate      *decimal.Decimal
	ClearInterestRate bool
	MonthlyPayment    *decimal.Decimal
}

// UpdateDebtOutput represents the output of updating a debt.
type UpdateDebtOutput struct {
	Debt *entity.Debt
}

// UpdateDebtUseCase handles updating debts.
type UpdateDebtUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewUpdateDebtUseCase creates a new UpdateDebtUseCase instance.
func NewUpdateDebtUseCase(debtRepo adapter.DebtRepository) *UpdateDebtUseCase {
	return &UpdateDebtUseCase{
		debtRepo: debtRepo,
	}
}

// Execute applies the partial update to the debt.
func (uc *UpdateDebtUseCase) Execute(ctx context.Context, input UpdateDebtInput) (*UpdateDebtOutput, error) {
	debt, err := uc.debtRepo.FindByID(ctx, input.UserID, input.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find debt: %w", err)
	}
	if debt == nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeDebtNotFound,
			"debt not found",
			domainerror.ErrDebtNotFound,
		)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeMissingName,
				"debt name is required",
				domainerror.ErrMissingName,
			)
		}
		debt.Name = *input.Name
	}
	if input.Principal != nil {
		debt.Principal = *input.Principal
	}
	if input.ClearInterestRate {
		debt.InterestRate = nil
	} else if input.InterestRate != nil {
		debt.InterestRate = input.InterestRate
	}
	if input.MonthlyPayment != nil {
		debt.MonthlyPayment = *input.MonthlyPayment
	}

	if err := uc.debtRepo.Update(ctx, debt); err != nil {
		return nil, fmt.Errorf("failed to update debt: %w", err)
	}

	return &UpdateDebtOutput{Debt: debt}, nil
}
