package dashboard

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/application/usecase/period"
	"github.com/budgetbook/backend/internal/domain/entity"
)

// GetOverviewInput represents the input for the dashboard overview.
type GetOverviewInput struct {
	UserID uuid.UUID
	Month  int
	Year   int

	// AllTime aggregates across every recorded month up to the current
	// calendar month instead of a single period.
	AllTime bool
}

// CategoryBreakdown is one expense category's slice of the month.
type CategoryBreakdown struct {
	ID       string
	Category string
	Amount   decimal.Decimal
	Change   decimal.Decimal
}

// GoalProgress is a goal with the combined balance of its linked accounts.
type GoalProgress struct {
	ID         uuid.UUID
	Name       string
	Target     decimal.Decimal
	Current    decimal.Decimal
	TargetDate *time.Time
}

// AccountBalance is a savings account with its cumulative balance.
type AccountBalance struct {
	ID     uuid.UUID
	Name   string
	Saved  decimal.Decimal
	Target *decimal.Decimal
}

// GetOverviewOutput represents the aggregated dashboard overview.
type GetOverviewOutput struct {
	TotalIncome        decimal.Decimal
	TotalExpenses      decimal.Decimal
	NetSavings         decimal.Decimal
	TotalSavings       decimal.Decimal
	SubscriptionsTotal decimal.Decimal
	Expenses           []CategoryBreakdown
	Goals              []GoalProgress
	Debts              []*entity.Debt
	Savings            []AccountBalance
}

// GetOverviewUseCase aggregates a user's dashboard for one month or all time.
type GetOverviewUseCase struct {
	monthRepo adapter.MonthRepository
	repo      Repository
	now       func() time.Time
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(monthRepo adapter.MonthRepository, repo Repository) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		monthRepo: monthRepo,
		repo:      repo,
		now:       time.Now,
	}
}

// Execute aggregates the overview. Monthly mode compares the expense
// breakdown against the previous calendar month; all-time mode sums every
// month up to the current one and reports zero change for every category.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, input GetOverviewInput) (*GetOverviewOutput, error) {
	var currentIDs, previousIDs []uuid.UUID

	if input.AllTime {
		now := uc.now()
		months, err := uc.monthRepo.ListThrough(ctx, input.UserID, int(now.Month()), now.Year())
		if err != nil {
			return nil, fmt.Errorf("failed to list months: %w", err)
		}
		for _, m := range months {
			currentIDs = append(currentIDs, m.ID)
		}
	} else {
		if err := period.ValidatePeriod(input.Month, input.Year); err != nil {
			return nil, err
		}

		current, err := uc.monthRepo.GetOrCreate(ctx, input.UserID, input.Month, input.Year)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve month: %w", err)
		}
		prevMonth, prevYear := entity.PreviousPeriod(input.Month, input.Year)
		previous, err := uc.monthRepo.GetOrCreate(ctx, input.UserID, prevMonth, prevYear)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve previous month: %w", err)
		}

		currentIDs = []uuid.UUID{current.ID}
		previousIDs = []uuid.UUID{previous.ID}
	}

	allIDs := make([]uuid.UUID, 0, len(currentIDs)+len(previousIDs))
	allIDs = append(allIDs, currentIDs...)
	allIDs = append(allIDs, previousIDs...)

	var (
		netIncome     map[uuid.UUID]decimal.Decimal
		additional    []AdditionalIncomeRow
		expenses      []ExpenseRow
		accounts      []*entity.SavingsAccount
		transactions  []*entity.SavingsTransaction
		goals         []*entity.Goal
		goalLinks     map[uuid.UUID][]uuid.UUID
		debts         []*entity.Debt
		subscriptions []*entity.Subscription
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		netIncome, err = uc.repo.NetIncomeByMonths(gctx, input.UserID, allIDs)
		return err
	})
	g.Go(func() (err error) {
		additional, err = uc.repo.AdditionalIncomeByMonths(gctx, input.UserID, allIDs)
		return err
	})
	g.Go(func() (err error) {
		expenses, err = uc.repo.ExpensesByMonths(gctx, input.UserID, allIDs)
		return err
	})
	g.Go(func() (err error) {
		accounts, err = uc.repo.SavingsAccounts(gctx, input.UserID)
		return err
	})
	g.Go(func() (err error) {
		transactions, err = uc.repo.SavingsTransactions(gctx, input.UserID)
		return err
	})
	g.Go(func() (err error) {
		goals, err = uc.repo.Goals(gctx, input.UserID)
		return err
	})
	g.Go(func() (err error) {
		goalLinks, err = uc.repo.GoalLinks(gctx, input.UserID)
		return err
	})
	g.Go(func() (err error) {
		debts, err = uc.repo.Debts(gctx, input.UserID)
		return err
	})
	g.Go(func() (err error) {
		subscriptions, err = uc.repo.Subscriptions(gctx, input.UserID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load overview data: %w", err)
	}

	current := idSet(currentIDs)
	previous := idSet(previousIDs)

	totalIncome := decimal.Zero
	for id := range current {
		if net, ok := netIncome[id]; ok {
			totalIncome = totalIncome.Add(net)
		}
	}
	for _, row := range additional {
		if _, ok := current[row.MonthID]; ok {
			totalIncome = totalIncome.Add(row.Amount)
		}
	}

	totalExpenses := decimal.Zero
	byCategory := make(map[string]decimal.Decimal)
	prevByCategory := make(map[string]decimal.Decimal)
	for _, row := range expenses {
		name := entity.FallbackCategoryName
		if row.CategoryName != nil {
			name = *row.CategoryName
		}
		if _, ok := current[row.MonthID]; ok {
			totalExpenses = totalExpenses.Add(row.Amount)
			byCategory[name] = byCategory[name].Add(row.Amount)
		} else if _, ok := previous[row.MonthID]; ok {
			prevByCategory[name] = prevByCategory[name].Add(row.Amount)
		}
	}

	// Categories with no spend this period are dropped, not reported
	// as a negative change.
	breakdown := make([]CategoryBreakdown, 0, len(byCategory))
	for name, amount := range byCategory {
		change := decimal.Zero
		if !input.AllTime {
			change = changePercent(amount, prevByCategory[name])
		}
		breakdown = append(breakdown, CategoryBreakdown{
			ID:       slugify(name),
			Category: name,
			Amount:   amount,
			Change:   change,
		})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if !breakdown[i].Amount.Equal(breakdown[j].Amount) {
			return breakdown[i].Amount.GreaterThan(breakdown[j].Amount)
		}
		return breakdown[i].Category < breakdown[j].Category
	})

	// Balances cover archived accounts too: goal progress still counts
	// them, only the savings list and total exclude them.
	balances := entity.CumulativeBalances(accounts, transactions)

	totalSavings := decimal.Zero
	savings := make([]AccountBalance, 0, len(accounts))
	for _, account := range accounts {
		if account.IsArchived {
			continue
		}
		totalSavings = totalSavings.Add(balances[account.ID])
		savings = append(savings, AccountBalance{
			ID:     account.ID,
			Name:   account.Name,
			Saved:  balances[account.ID],
			Target: account.TargetAmount,
		})
	}

	progress := make([]GoalProgress, 0, len(goals))
	for _, goal := range goals {
		saved := decimal.Zero
		for _, accountID := range goalLinks[goal.ID] {
			saved = saved.Add(balances[accountID])
		}
		progress = append(progress, GoalProgress{
			ID:         goal.ID,
			Name:       goal.Name,
			Target:     goal.TargetAmount,
			Current:    saved,
			TargetDate: goal.TargetDate,
		})
	}

	return &GetOverviewOutput{
		TotalIncome:        totalIncome,
		TotalExpenses:      totalExpenses,
		NetSavings:         totalIncome.Sub(totalExpenses),
		TotalSavings:       totalSavings,
		SubscriptionsTotal: activeSubscriptionsTotal(subscriptions),
		Expenses:           breakdown,
		Goals:              progress,
		Debts:              debts,
		Savings:            savings,
	}, nil
}

// changePercent computes the percentage change from previous to current.
// A zero baseline with spend reads as 100, a zero baseline without as 0.
func changePercent(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsPositive() {
		return current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100))
	}
	if current.IsPositive() {
		return decimal.NewFromInt(100)
	}
	return decimal.Zero
}

// activeSubscriptionsTotal sums the amounts of active subscriptions.
func activeSubscriptionsTotal(subscriptions []*entity.Subscription) decimal.Decimal {
	total := decimal.Zero
	for _, s := range subscriptions {
		if s.IsActive {
			total = total.Add(s.Amount)
		}
	}
	return total
}

// slugify builds a stable identifier from a category name.
func slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

func idSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
