package dashboard

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/application/adapter"
)

const (
	// DefaultChangesLimit is the month window used when the limit parameter
	// is absent or unusable.
	DefaultChangesLimit = 12

	// MaxChangesLimit caps the "all" window.
	MaxChangesLimit = 120
)

// GetChangesInput represents the input for the month-over-month trend.
type GetChangesInput struct {
	UserID uuid.UUID

	// Limit is the raw query value: a number of months or "all".
	Limit string
}

// ChangeRow is one month's totals in the trend, with deltas against the
// previous row. Deltas are nil on the earliest row.
type ChangeRow struct {
	MonthID       uuid.UUID
	Label         string
	Month         int
	Year          int
	Income        decimal.Decimal
	Expenses      decimal.Decimal
	Savings       decimal.Decimal
	Subscriptions decimal.Decimal
	DeltaIncome   *decimal.Decimal
	DeltaExpenses *decimal.Decimal
	DeltaSavings  *decimal.Decimal
}

// GetChangesOutput represents the trend rows in chronological order.
type GetChangesOutput struct {
	Rows []ChangeRow
}

// GetChangesUseCase builds the month-over-month trend for recorded months.
type GetChangesUseCase struct {
	monthRepo adapter.MonthRepository
	repo      Repository
}

// NewGetChangesUseCase creates a new GetChangesUseCase instance.
func NewGetChangesUseCase(monthRepo adapter.MonthRepository, repo Repository) *GetChangesUseCase {
	return &GetChangesUseCase{
		monthRepo: monthRepo,
		repo:      repo,
	}
}

// Execute returns totals for the N most recent recorded months, oldest
// first. Savings here is the month's contribution total, not the cumulative
// balance.
func (uc *GetChangesUseCase) Execute(ctx context.Context, input GetChangesInput) (*GetChangesOutput, error) {
	limit := parseLimit(input.Limit)

	months, err := uc.monthRepo.ListRecent(ctx, input.UserID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list months: %w", err)
	}
	if len(months) == 0 {
		return &GetChangesOutput{Rows: []ChangeRow{}}, nil
	}

	// ListRecent is newest first; the trend reads oldest first.
	for i, j := 0, len(months)-1; i < j; i, j = i+1, j-1 {
		months[i], months[j] = months[j], months[i]
	}

	monthIDs := make([]uuid.UUID, len(months))
	for i, m := range months {
		monthIDs[i] = m.ID
	}

	netIncome, err := uc.repo.NetIncomeByMonths(ctx, input.UserID, monthIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load income: %w", err)
	}
	additional, err := uc.repo.AdditionalIncomeByMonths(ctx, input.UserID, monthIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load additional income: %w", err)
	}
	expenses, err := uc.repo.ExpensesByMonths(ctx, input.UserID, monthIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	transactions, err := uc.repo.SavingsTransactionsByMonths(ctx, input.UserID, monthIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load savings transactions: %w", err)
	}
	subscriptions, err := uc.repo.Subscriptions(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load subscriptions: %w", err)
	}

	incomeByMonth := make(map[uuid.UUID]decimal.Decimal, len(months))
	for id, net := range netIncome {
		incomeByMonth[id] = net
	}
	for _, row := range additional {
		incomeByMonth[row.MonthID] = incomeByMonth[row.MonthID].Add(row.Amount)
	}

	expensesByMonth := make(map[uuid.UUID]decimal.Decimal, len(months))
	for _, row := range expenses {
		expensesByMonth[row.MonthID] = expensesByMonth[row.MonthID].Add(row.Amount)
	}

	savingsByMonth := make(map[uuid.UUID]decimal.Decimal, len(months))
	for _, t := range transactions {
		savingsByMonth[t.MonthID] = savingsByMonth[t.MonthID].Add(t.Amount)
	}

	subscriptionsTotal := activeSubscriptionsTotal(subscriptions)

	rows := make([]ChangeRow, 0, len(months))
	for i, m := range months {
		row := ChangeRow{
			MonthID:       m.ID,
			Label:         m.Label(),
			Month:         m.Month,
			Year:          m.Year,
			Income:        incomeByMonth[m.ID],
			Expenses:      expensesByMonth[m.ID],
			Savings:       savingsByMonth[m.ID],
			Subscriptions: subscriptionsTotal,
		}
		if i > 0 {
			prev := rows[i-1]
			row.DeltaIncome = deltaPtr(row.Income, prev.Income)
			row.DeltaExpenses = deltaPtr(row.Expenses, prev.Expenses)
			row.DeltaSavings = deltaPtr(row.Savings, prev.Savings)
		}
		rows = append(rows, row)
	}

	return &GetChangesOutput{Rows: rows}, nil
}

// parseLimit interprets the raw limit parameter. "all" opens the window to
// the cap; anything unusable falls back to the default.
func parseLimit(raw string) int {
	if raw == "all" {
		return MaxChangesLimit
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 || n > DefaultChangesLimit {
		return DefaultChangesLimit
	}
	return n
}

func deltaPtr(current, previous decimal.Decimal) *decimal.Decimal {
	delta := current.Sub(previous)
	return &delta
}
