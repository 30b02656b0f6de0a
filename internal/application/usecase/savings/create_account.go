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

// CreateAccountInput represents the input for creating a savings account.
type CreateAccountInput struct {
	UserID         uuid.UUID
	Name           string
	Type           string
	Currency       string
	InitialBalance decimal.Decimal
	TargetAmount   *decimal.Decimal
}

// CreateAccountOutput represents the output of creating a savings account.
type CreateAccountOutput struct {
	Account *entity.SavingsAccount
	Balance decimal.Decimal
}

// CreateAccountUseCase handles savings account creation.
type CreateAccountUseCase struct {
	savingsRepo adapter.SavingsRepository
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(savingsRepo adapter.SavingsRepository) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		savingsRepo: savingsRepo,
	}
}

// Execute creates the savings account.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeMissingName,
			"account name is required",
			domainerror.ErrMissingName,
		)
	}

	account := entity.NewSavingsAccount(
		input.UserID,
		input.Name,
		input.Type,
		input.Currency,
		input.InitialBalance,
		input.TargetAmount,
	)
	if err := uc.savingsRepo.CreateAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &CreateAccountOutput{Account: account, Balance: account.InitialBalance}, nil
}
