package income

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/application/adapter"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// DeleteAdditionalIncomeInput represents the input for deleting an
// additional income entry.
type DeleteAdditionalIncomeInput struct {
	UserID uuid.UUID
	ID     uuid.UUID
}

// DeleteAdditionalIncomeUseCase handles deleting additional income entries.
type DeleteAdditionalIncomeUseCase struct {
	additionalRepo adapter.AdditionalIncomeRepository
}

// NewDeleteAdditionalIncomeUseCase creates a new DeleteAdditionalIncomeUseCase instance.
func NewDeleteAdditionalIncomeUseCase(additionalRepo adapter.AdditionalIncomeRepository) *DeleteAdditionalIncomeUseCase {
	return &DeleteAdditionalIncomeUseCase{
		additionalRepo: additionalRepo,
	}
}

// Execute deletes the entry.
func (uc *DeleteAdditionalIncomeUseCase) Execute(ctx context.Context, input DeleteAdditionalIncomeInput) error {
	income, err := uc.additionalRepo.FindByID(ctx, input.UserID, input.ID)
	if err != nil {
		return fmt.Errorf("failed to find additional income: %w", err)
	}
	if income == nil {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeAdditionalIncomeNotFound,
			"additional income entry not found",
			domainerror.ErrAdditionalIncomeNotFound,
		)
	}

	if err := uc.additionalRepo.Delete(ctx, input.UserID, input.ID); err != nil {
		return fmt.Errorf("failed to delete additional income: %w", err)
	}
	return nil
}
