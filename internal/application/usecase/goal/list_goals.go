// Package goal contains savings goal use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/entity"
)

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	UserID uuid.UUID
}

// GoalWithProgress pairs a goal with its linked accounts and progress.
type GoalWithProgress struct {
	Goal             *entity.Goal
	LinkedAccountIDs []uuid.UUID
	Current          decimal.Decimal
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []GoalWithProgress
}

// ListGoalsUseCase handles listing goals with progress. Progress is the sum
// of the linked accounts' cumulative balances, archived accounts included.
type ListGoalsUseCase struct {
	goalRepo    adapter.GoalRepository
	savingsRepo adapter.SavingsRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository, savingsRepo adapter.SavingsRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo:    goalRepo,
		savingsRepo: savingsRepo,
	}
}

// Execute lists the user's goals with progress.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.List(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	links, err := uc.goalRepo.LinkedAccountIDs(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goal links: %w", err)
	}

	accounts, err := uc.savingsRepo.ListAccounts(ctx, input.UserID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	transactions, err := uc.savingsRepo.ListAllTransactions(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	balances := entity.CumulativeBalances(accounts, transactions)

	out := make([]GoalWithProgress, 0, len(goals))
	for _, g := range goals {
		current := decimal.Zero
		for _, accountID := range links[g.ID] {
			current = current.Add(balances[accountID])
		}
		out = append(out, GoalWithProgress{
			Goal:             g,
			LinkedAccountIDs: links[g.ID],
			Current:          current,
		})
	}

	return &ListGoalsOutput{Goals: out}, nil
}
