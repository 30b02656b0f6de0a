package debt

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/application/adapter"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// DeleteDebtInput represents the input for deleting a debt.
type DeleteDebtInput struct {
	UserID uuid.UUID
	ID     uuid.UUID
}

// DeleteDebtUseCase handles deleting debts.
type DeleteDebtUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewDeleteDebtUseCase creates a new DeleteDebtUseCase instance.
func NewDeleteDebtUseCase(debtRepo adapter.DebtRepository) *DeleteDebtUseCase {
	return &DeleteDebtUseCase{
		debtRepo: debtRepo,
	}
}

// Execute deletes the debt.
func (uc *DeleteDebtUseCase) Execute(ctx context.Context, input DeleteDebtInput) error {
	debt, err := uc.debtRepo.FindByID(ctx, input.UserID, input.ID)
	if err != nil {
		return fmt.Errorf("failed to find debt: %w", err)
	}
	if debt == nil {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeDebtNotFound,
			"debt not found",
			domainerror.ErrDebtNotFound,
		)
	}

	if err := uc.debtRepo.Delete(ctx, input.UserID, input.ID); err != nil {
		return fmt.Errorf("failed to delete debt: %w", err)
	}
	return nil
}
