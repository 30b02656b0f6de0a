package savings

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/application/usecase/period"
	"github.com/budgetbook/backend/internal/domain/entity"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// AddTransactionInput represents the input for recording a savings
// transaction. Amount is signed: negative means a withdrawal.
type AddTransactionInput struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
	Month     int
	Year      int
	Amount    decimal.Decimal
}

// AddTransactionOutput represents the output of recording a transaction.
type AddTransactionOutput struct {
	Transaction *entity.SavingsTransaction
}

// AddTransactionUseCase handles recording savings transactions.
type AddTransactionUseCase struct {
	monthRepo   adapter.MonthRepository
	savingsRepo adapter.SavingsRepository
}

// NewAddTransactionUseCase creates a new AddTransactionUseCase instance.
func NewAddTransactionUseCase(monthRepo adapter.MonthRepository, savingsRepo adapter.SavingsRepository) *AddTransactionUseCase {
	return &AddTransactionUseCase{
		monthRepo:   monthRepo,
		savingsRepo: savingsRepo,
	}
}

// Execute records the transaction against the account and month.
func (uc *AddTransactionUseCase) Execute(ctx context.Context, input AddTransactionInput) (*AddTransactionOutput, error) {
	if err := period.ValidatePeriod(input.Month, input.Year); err != nil {
		return nil, err
	}

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

	month, err := uc.monthRepo.GetOrCreate(ctx, input.UserID, input.Month, input.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve month: %w", err)
	}

	transaction := entity.NewSavingsTransaction(input.UserID, input.AccountID, month.ID, input.Amount)
	if err := uc.savingsRepo.CreateTransaction(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &AddTransactionOutput{Transaction: transaction}, nil
}
