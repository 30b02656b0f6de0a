// Package dashboard contains dashboard aggregation use cases.
package dashboard

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/domain/entity"
)

// Repository defines the interface for dashboard data operations. All
// per-month accessors are batched: callers pass the full set of month ids and
// group in memory.
type Repository interface {
	// NetIncomeByMonths returns each month's stored net income, keyed by
	// month id. Months without an income row are absent from the map.
	NetIncomeByMonths(ctx context.Context, userID uuid.UUID, monthIDs []uuid.UUID) (map[uuid.UUID]decimal.Decimal, error)

	// AdditionalIncomeByMonths returns every additional income entry for the
	// given months.
	AdditionalIncomeByMonths(ctx context.Context, userID uuid.UUID, monthIDs []uuid.UUID) ([]AdditionalIncomeRow, error)

	// ExpensesByMonths returns every expense for the given months, joined
	// with its category name. CategoryName is nil when the category row is
	// gone.
	ExpensesByMonths(ctx context.Context, userID uuid.UUID, monthIDs []uuid.UUID) ([]ExpenseRow, error)

	// SavingsAccounts returns all of the user's accounts, archived included.
	SavingsAccounts(ctx context.Context, userID uuid.UUID) ([]*entity.SavingsAccount, error)

	// SavingsTransactions returns every savings transaction the user ever
	// recorded, for cumulative balance computation.
	SavingsTransactions(ctx context.Context, userID uuid.UUID) ([]*entity.SavingsTransaction, error)

	// SavingsTransactionsByMonths returns the savings transactions recorded
	// in the given months.
	SavingsTransactionsByMonths(ctx context.Context, userID uuid.UUID, monthIDs []uuid.UUID) ([]*entity.SavingsTransaction, error)

	Goals(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)

	// GoalLinks returns the savings account ids linked to each goal.
	GoalLinks(ctx context.Context, userID uuid.UUID) (map[uuid.UUID][]uuid.UUID, error)

	Debts(ctx context.Context, userID uuid.UUID) ([]*entity.Debt, error)

	Subscriptions(ctx context.Context, userID uuid.UUID) ([]*entity.Subscription, error)
}

// AdditionalIncomeRow is an additional income entry scoped to a month.
type AdditionalIncomeRow struct {
	MonthID uuid.UUID
	Amount  decimal.Decimal
}

// ExpenseRow is an expense joined with its category name.
type ExpenseRow struct {
	MonthID      uuid.UUID
	Amount       decimal.Decimal
	CategoryName *string
}
