package savings

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/application/adapter"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// DeleteAccountInput represents the input for deleting a savings account.
type DeleteAccountInput struct {
	UserID uuid.UUID
	ID     uuid.UUID
}

// DeleteAccountUseCase handles deleting savings accounts. The account's
// transactions and goal links go with it.
type DeleteAccountUseCase struct {
	savingsRepo adapter.SavingsRepository
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(savingsRepo adapter.SavingsRepository) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		savingsRepo: savingsRepo,
	}
}

// Execute deletes the account.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) error {
	account, err := uc.savingsRepo.FindAccountByID(ctx, input.UserID, input.ID)
	if err != nil {
		return fmt.Errorf("failed to find account: %w", err)
	}
	if account == nil {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeAccountNotFound,
			"savings account not found",
			domainerror.ErrAccountNotFound,
		)
	}

	if err := uc.savingsRepo.DeleteAccount(ctx, input.UserID, input.ID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}
