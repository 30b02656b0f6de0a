package savings

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/application/adapter"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// DeleteTransactionInput represents the input for deleting a savings
// transaction.
type DeleteTransactionInput struct {
	UserID uuid.UUID
	ID     uuid.UUID
}

// DeleteTransactionUseCase handles deleting savings transactions.
type DeleteTransactionUseCase struct {
	savingsRepo adapter.SavingsRepository
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(savingsRepo adapter.SavingsRepository) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		savingsRepo: savingsRepo,
	}
}

// Execute deletes the transaction.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	transaction, err := uc.savingsRepo.FindTransactionByID(ctx, input.UserID, input.ID)
	if err != nil {
		return fmt.Errorf("failed to find transaction: %w", err)
	}
	if transaction == nil {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeTransactionNotFound,
			"savings transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	if err := uc.savingsRepo.DeleteTransaction(ctx, input.UserID, input.ID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}
