package dashboard

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/domain/entity"
)

// fakeMonthRepo keeps month rows in memory for a single user.
type fakeMonthRepo struct {
	months []*entity.Month
}

func (r *fakeMonthRepo) GetOrCreate(_ context.Context, userID uuid.UUID, month, year int) (*entity.Month, error) {
	for _, m := range r.months {
		if m.UserID == userID && m.Month == month && m.Year == year {
			return m, nil
		}
	}
	created := entity.NewMonth(userID, month, year)
	r.months = append(r.months, created)
	return created, nil
}

func (r *fakeMonthRepo) Find(_ context.Context, userID uuid.UUID, month, year int) (*entity.Month, error) {
	for _, m := range r.months {
		if m.UserID == userID && m.Month == month && m.Year == year {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMonthRepo) ListRecent(_ context.Context, userID uuid.UUID, limit int) ([]*entity.Month, error) {
	out := r.sortedDesc(userID)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeMonthRepo) ListThrough(_ context.Context, userID uuid.UUID, month, year int) ([]*entity.Month, error) {
	var out []*entity.Month
	for _, m := range r.sortedDesc(userID) {
		if m.Year < year || (m.Year == year && m.Month <= month) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMonthRepo) sortedDesc(userID uuid.UUID) []*entity.Month {
	var out []*entity.Month
	for _, m := range r.months {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year > out[j].Year
		}
		return out[i].Month > out[j].Month
	})
	return out
}

// fakeRepository serves dashboard reads from in-memory fixtures. The batched
// accessors honor the requested month id set, mirroring the real queries.
type fakeRepository struct {
	netIncome     map[uuid.UUID]decimal.Decimal
	additional    []AdditionalIncomeRow
	expenses      []ExpenseRow
	accounts      []*entity.SavingsAccount
	transactions  []*entity.SavingsTransaction
	goals         []*entity.Goal
	goalLinks     map[uuid.UUID][]uuid.UUID
	debts         []*entity.Debt
	subscriptions []*entity.Subscription
}

func (r *fakeRepository) NetIncomeByMonths(_ context.Context, _ uuid.UUID, monthIDs []uuid.UUID) (map[uuid.UUID]decimal.Decimal, error) {
	out := make(map[uuid.UUID]decimal.Decimal)
	for _, id := range monthIDs {
		if net, ok := r.netIncome[id]; ok {
			out[id] = net
		}
	}
	return out, nil
}

func (r *fakeRepository) AdditionalIncomeByMonths(_ context.Context, _ uuid.UUID, monthIDs []uuid.UUID) ([]AdditionalIncomeRow, error) {
	wanted := idSet(monthIDs)
	var out []AdditionalIncomeRow
	for _, row := range r.additional {
		if _, ok := wanted[row.MonthID]; ok {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeRepository) ExpensesByMonths(_ context.Context, _ uuid.UUID, monthIDs []uuid.UUID) ([]ExpenseRow, error) {
	wanted := idSet(monthIDs)
	var out []ExpenseRow
	for _, row := range r.expenses {
		if _, ok := wanted[row.MonthID]; ok {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeRepository) SavingsAccounts(_ context.Context, _ uuid.UUID) ([]*entity.SavingsAccount, error) {
	return r.accounts, nil
}

func (r *fakeRepository) SavingsTransactions(_ context.Context, _ uuid.UUID) ([]*entity.SavingsTransaction, error) {
	return r.transactions, nil
}

func (r *fakeRepository) SavingsTransactionsByMonths(_ context.Context, _ uuid.UUID, monthIDs []uuid.UUID) ([]*entity.SavingsTransaction, error) {
	wanted := idSet(monthIDs)
	var out []*entity.SavingsTransaction
	for _, t := range r.transactions {
		if _, ok := wanted[t.MonthID]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeRepository) Goals(_ context.Context, _ uuid.UUID) ([]*entity.Goal, error) {
	return r.goals, nil
}

func (r *fakeRepository) GoalLinks(_ context.Context, _ uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	if r.goalLinks == nil {
		return map[uuid.UUID][]uuid.UUID{}, nil
	}
	return r.goalLinks, nil
}

func (r *fakeRepository) Debts(_ context.Context, _ uuid.UUID) ([]*entity.Debt, error) {
	return r.debts, nil
}

func (r *fakeRepository) Subscriptions(_ context.Context, _ uuid.UUID) ([]*entity.Subscription, error) {
	return r.subscriptions, nil
}

func strPtr(s string) *string { return &s }
