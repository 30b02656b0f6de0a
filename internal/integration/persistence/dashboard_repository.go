package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/budgetbook/backend/internal/application/usecase/dashboard"
	"github.com/budgetbook/backend/internal/domain/entity"
	"github.com/budgetbook/backend/internal/integration/persistence/model"
)

// dashboardRepository implements the dashboard.Repository interface with
// batched queries: one round trip per concern regardless of how many months
// are aggregated.
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository instance.
func NewDashboardRepository(db *gorm.DB) dashboard.Repository {
	return &dashboardRepository{
		db: db,
	}
}

// NetIncomeByMonths returns each month's stored net income.
func (r *dashboardRepository) NetIncomeByMonths(ctx context.Context, userID uuid.UUID, monthIDs []uuid.UUID) (map[uuid.UUID]decimal.Decimal, error) {
	if len(monthIDs) == 0 {
		return map[uuid.UUID]decimal.Decimal{}, nil
	}

	var rows []struct {
		MonthID   uuid.UUID
		NetIncome decimal.Decimal
	}
	result := r.db.WithContext(ctx).
		Model(&model.IncomeModel{}).
		Select("month_id, net_income").
		Where("user_id = ? AND month_id IN ?", userID, monthIDs).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	byMonth := make(map[uuid.UUID]decimal.Decimal, len(rows))
	for _, row := range rows {
		byMonth[row.MonthID] = row.NetIncome
	}
	return byMonth, nil
}

// AdditionalIncomeByMonths returns every additional income entry for the
// given months.
func (r *dashboardRepository) AdditionalIncomeByMonths(ctx context.Context, userID uuid.UUID, monthIDs []uuid.UUID) ([]dashboard.AdditionalIncomeRow, error) {
	if len(monthIDs) == 0 {
		return []dashboard.AdditionalIncomeRow{}, nil
	}

	var rows []struct {
		MonthID uuid.UUID
		Amount  decimal.Decimal
	}
	result := r.db.WithContext(ctx).
		Model(&model.AdditionalIncomeModel{}).
		Select("month_id, amount").
		Where("user_id = ? AND month_id IN ?", userID, monthIDs).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	out := make([]dashboard.AdditionalIncomeRow, len(rows))
	for i, row := range rows {
		out[i] = dashboard.AdditionalIncomeRow{MonthID: row.MonthID, Amount: row.Amount}
	}
	return out, nil
}

// ExpensesByMonths returns every expense for the given months joined with
// its category name. The join is LEFT so an expense survives its category.
func (r *dashboardRepository) ExpensesByMonths(ctx context.Context, userID uuid.UUID, monthIDs []uuid.UUID) ([]dashboard.ExpenseRow, error) {
	if len(monthIDs) == 0 {
		return []dashboard.ExpenseRow{}, nil
	}

	var rows []struct {
		MonthID      uuid.UUID
		Amount       decimal.Decimal
		CategoryName *string
	}
	result := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Select("expenses.month_id, expenses.amount, expense_categories.name AS category_name").
		Joins("LEFT JOIN expense_categories ON expense_categories.id = expenses.category_id").
		Where("expenses.user_id = ? AND expenses.month_id IN ?", userID, monthIDs).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	out := make([]dashboard.ExpenseRow, len(rows))
	for i, row := range rows {
		out[i] = dashboard.ExpenseRow{
			MonthID:      row.MonthID,
			Amount:       row.Amount,
			CategoryName: row.CategoryName,
		}
	}
	return out, nil
}

// SavingsAccounts returns all of the user's accounts, archived included.
func (r *dashboardRepository) SavingsAccounts(ctx context.Context, userID uuid.UUID) ([]*entity.SavingsAccount, error) {
	var accountModels []model.SavingsAccountModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&accountModels)
	if result.Error != nil {
		return nil, result.Error
	}

	accounts := make([]*entity.SavingsAccount, len(accountModels))
	for i, am := range accountModels {
		accounts[i] = am.ToEntity()
	}
	return accounts, nil
}

// SavingsTransactions returns every savings transaction the user ever
// recorded.
func (r *dashboardRepository) SavingsTransactions(ctx context.Context, userID uuid.UUID) ([]*entity.SavingsTransaction, error) {
	var transactionModels []model.SavingsTransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return transactionsToEntities(transactionModels), nil
}

// SavingsTransactionsByMonths returns the transactions recorded in the
// given months.
func (r *dashboardRepository) SavingsTransactionsByMonths(ctx context.Context, userID uuid.UUID, monthIDs []uuid.UUID) ([]*entity.SavingsTransaction, error) {
	if len(monthIDs) == 0 {
		return []*entity.SavingsTransaction{}, nil
	}

	var transactionModels []model.SavingsTransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND month_id IN ?", userID, monthIDs).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return transactionsToEntities(transactionModels), nil
}

// Goals returns the user's goals.
func (r *dashboardRepository) Goals(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var goalModels []model.GoalModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.Goal, len(goalModels))
	for i, gm := range goalModels {
		goals[i] = gm.ToEntity()
	}
	return goals, nil
}

// GoalLinks returns the account ids linked to each of the user's goals.
func (r *dashboardRepository) GoalLinks(ctx context.Context, userID uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	var links []model.GoalAccountModel
	result := r.db.WithContext(ctx).
		Joins("JOIN goals ON goals.id = goal_accounts.goal_id").
		Where("goals.user_id = ?", userID).
		Find(&links)
	if result.Error != nil {
		return nil, result.Error
	}

	byGoal := make(map[uuid.UUID][]uuid.UUID, len(links))
	for _, link := range links {
		byGoal[link.GoalID] = append(byGoal[link.GoalID], link.AccountID)
	}
	return byGoal, nil
}

// Debts returns the user's debts.
func (r *dashboardRepository) Debts(ctx context.Context, userID uuid.UUID) ([]*entity.Debt, error) {
	var debtModels []model.DebtModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&debtModels)
	if result.Error != nil {
		return nil, result.Error
	}

	debts := make([]*entity.Debt, len(debtModels))
	for i, dm := range debtModels {
		debts[i] = dm.ToEntity()
	}
	return debts, nil
}

// Subscriptions returns the user's subscriptions.
func (r *dashboardRepository) Subscriptions(ctx context.Context, userID uuid.UUID) ([]*entity.Subscription, error) {
	var subscriptionModels []model.SubscriptionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&subscriptionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	subscriptions := make([]*entity.Subscription, len(subscriptionModels))
	for i, sm := range subscriptionModels {
		subscriptions[i] = sm.ToEntity()
	}
	return subscriptions, nil
}
