package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/domain/entity"
)

// SavingsRepository defines the interface for savings accounts and their
// transactions.
type SavingsRepository interface {
	FindAccountByID(ctx context.Context, userID, id uuid.UUID) (*entity.SavingsAccount, error)
	ListAccounts(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]*entity.SavingsAccount, error)
	CreateAccount(ctx context.Context, account *entity.SavingsAccount) error
	UpdateAccount(ctx context.Context, account *entity.SavingsAccount) error
	DeleteAccount(ctx context.Context, userID, id uuid.UUID) error

	FindTransactionByID(ctx context.Context, userID, id uuid.UUID) (*entity.SavingsTransaction, error)
	ListTransactionsByAccount(ctx context.Context, userID, accountID uuid.UUID) ([]*entity.SavingsTransaction, error)
	ListAllTransactions(ctx context.Context, userID uuid.UUID) ([]*entity.SavingsTransaction, error)
	CreateTransaction(ctx context.Context, transaction *entity.SavingsTransaction) error
	DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error
}
