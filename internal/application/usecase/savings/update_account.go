package savings

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/entity"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// UpdateAccountInput represents the input for updating a savings account.
// Nil fields are left unchanged. ClearTarget removes the target amount.
type UpdateAccountInput struct {
	UserID       uuid.UUID
	ID           uuid.UUID
	Name         *string
	Type         *string
	Currency     *string
	TargetAmount *decimal.Decimal
	ClearTarget  bool
	IsArchived   *bool
}

// UpdateAccountOutput represents the output of updating a savings account.
type UpdateAccountOutput struct {
	Account *entity.SavingsAccount
	Balance decimal.Decimal
}

// UpdateAccountUseCase handles updating savings accounts.
type UpdateAccountUseCase struct {
	savingsRepo adapter.SavingsRepository
}

// NewUpdateAccountUseCase creates a new UpdateAccountUseCase instance.
func NewUpdateAccountUseCase(savingsRepo adapter.SavingsRepository) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{
		savingsRepo: savingsRepo,
	}
}

// Execute applies the partial update to the account.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*UpdateAccountOutput, error) {
	account, err := uc.savingsRepo.FindAccountByID(ctx, input.UserID, input.ID)
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

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeMissingName,
				"account name is required",
				domainerror.ErrMissingName,
			)
		}
		account.Name = *input.Name
	}
	if input.Type != nil {
		account.Type = *input.Type
	}
	if input.Currency != nil {
		account.Currency = *input.Currency
	}
	if input.ClearTarget {
		account.TargetAmount = nil
	} else if input.TargetAmount != nil {
		account.TargetAmount = input.TargetAmount
	}
	if input.IsArchived != nil {
		account.IsArchived = *input.IsArchived
	}

	if err := uc.savingsRepo.UpdateAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	transactions, err := uc.savingsRepo.ListTransactionsByAccount(ctx, input.UserID, account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list account transactions: %w", err)
	}
	balance := account.InitialBalance
	for _, t := range transactions {
		balance = balance.Add(t.Amount)
	}

	return &UpdateAccountOutput{Account: account, Balance: balance}, nil
}
