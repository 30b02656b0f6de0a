package savings

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/entity"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// ListTransactionsInput represents the input for listing an account's
// transactions.
type ListTransactionsInput struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.SavingsTransaction
}

// ListTransactionsUseCase handles listing an account's transactions.
type ListTransactionsUseCase struct {
	savingsRepo adapter.SavingsRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(savingsRepo adapter.SavingsRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		savingsRepo: savingsRepo,
	}
}

// Execute lists the account's transactions.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	account, err := uc.savingsRepo.FindAccountByID(ctx, input.UserID, input.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	if account == nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeAccountNotFound,
			"savings account not found",
			domainerror.ErrAccountNotFound,
		)
	}

	transactions, err := uc.savingsRepo.ListTransactionsByAccount(ctx, input.UserID, input.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &ListTransactionsOutput{Transactions: transactions}, nil
}
