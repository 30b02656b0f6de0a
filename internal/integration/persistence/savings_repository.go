package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/entity"
	"github.com/budgetbook/backend/internal/integration/persistence/model"
)

// savingsRepository implements the adapter.SavingsRepository interface.
type savingsRepository struct {
	db *gorm.DB
}

// NewSavingsRepository creates a new savings repository instance.
func NewSavingsRepository(db *gorm.DB) adapter.SavingsRepository {
	return &savingsRepository{
		db: db,
	}
}

// FindAccountByID retrieves an account by id, or nil when absent.
func (r *savingsRepository) FindAccountByID(ctx context.Context, userID, id uuid.UUID) (*entity.SavingsAccount, error) {
	var accountModel model.SavingsAccountModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&accountModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return accountModel.ToEntity(), nil
}

// ListAccounts retrieves the user's accounts, optionally with archived
// ones.
func (r *savingsRepository) ListAccounts(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]*entity.SavingsAccount, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if !includeArchived {
		query = query.Where("is_archived = ?", false)
	}

	var accountModels []model.SavingsAccountModel
	result := query.Order("created_at ASC").Find(&accountModels)
	if result.Error != nil {
		return nil, result.Error
	}

	accounts := make([]*entity.SavingsAccount, len(accountModels))
	for i, am := range accountModels {
		accounts[i] = am.ToEntity()
	}
	return accounts, nil
}

// CreateAccount inserts a new account.
func (r *savingsRepository) CreateAccount(ctx context.Context, account *entity.SavingsAccount) error {
	return r.db.WithContext(ctx).Create(model.SavingsAccountFromEntity(account)).Error
}

// UpdateAccount saves the account.
func (r *savingsRepository) UpdateAccount(ctx context.Context, account *entity.SavingsAccount) error {
	return r.db.WithContext(ctx).Save(model.SavingsAccountFromEntity(account)).Error
}

// DeleteAccount removes the account. Transactions and goal links cascade.
func (r *savingsRepository) DeleteAccount(ctx context.Context, userID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&model.SavingsAccountModel{}).Error
}

// FindTransactionByID retrieves a transaction by id, or nil when absent.
func (r *savingsRepository) FindTransactionByID(ctx context.Context, userID, id uuid.UUID) (*entity.SavingsTransaction, error) {
	var transactionModel model.SavingsTransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// ListTransactionsByAccount retrieves an account's transactions, newest
// first.
func (r *savingsRepository) ListTransactionsByAccount(ctx context.Context, userID, accountID uuid.UUID) ([]*entity.SavingsTransaction, error) {
	var transactionModels []model.SavingsTransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND account_id = ?", userID, accountID).
		Order("created_at DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return transactionsToEntities(transactionModels), nil
}

// ListAllTransactions retrieves every transaction the user ever recorded.
func (r *savingsRepository) ListAllTransactions(ctx context.Context, userID uuid.UUID) ([]*entity.SavingsTransaction, error) {
	var transactionModels []model.SavingsTransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return transactionsToEntities(transactionModels), nil
}

// CreateTransaction inserts a new transaction.
func (r *savingsRepository) CreateTransaction(ctx context.Context, transaction *entity.SavingsTransaction) error {
	return r.db.WithContext(ctx).Create(model.SavingsTransactionFromEntity(transaction)).Error
}

// DeleteTransaction removes the transaction.
func (r *savingsRepository) DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&model.SavingsTransactionModel{}).Error
}

func transactionsToEntities(transactionModels []model.SavingsTransactionModel) []*entity.SavingsTransaction {
	transactions := make([]*entity.SavingsTransaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions
}
