// Package savings contains savings account and transaction use cases.
package savings

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/entity"
)

// ListAccountsInput represents the input for listing savings accounts.
type ListAccountsInput struct {
	UserID          uuid.UUID
	IncludeArchived bool
}

// AccountWithBalance pairs an account with its cumulative balance.
type AccountWithBalance struct {
	Account *entity.SavingsAccount
	Balance decimal.Decimal
}

// ListAccountsOutput represents the output of listing savings accounts.
type ListAccountsOutput struct {
	Accounts []AccountWithBalance
}

// ListAccountsUseCase handles listing savings accounts with balances.
type ListAccountsUseCase struct {
	savingsRepo adapter.SavingsRepository
}

// NewListAccountsUseCase creates a new ListAccountsUseCase instance.
func NewListAccountsUseCase(savingsRepo adapter.SavingsRepository) *ListAccountsUseCase {
	return &ListAccountsUseCase{
		savingsRepo: savingsRepo,
	}
}

// Execute lists the accounts with their cumulative balances. The balance is
// the initial balance plus every transaction ever recorded, regardless of
// month.
func (uc *ListAccountsUseCase) Execute(ctx context.Context, input ListAccountsInput) (*ListAccountsOutput, error) {
	accounts, err := uc.savingsRepo.ListAccounts(ctx, input.UserID, input.IncludeArchived)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	transactions, err := uc.savingsRepo.ListAllTransactions(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	balances := entity.CumulativeBalances(accounts, transactions)
	out := make([]AccountWithBalance, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, AccountWithBalance{
			Account: account,
			Balance: balances[account.ID],
		})
	}

	return &ListAccountsOutput{Accounts: out}, nil
}
