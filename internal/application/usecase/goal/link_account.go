package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/application/adapter"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// LinkAccountInput represents the input for linking a savings account to a
// goal.
type LinkAccountInput struct {
	UserID    uuid.UUID
	GoalID    uuid.UUID
	AccountID uuid.UUID
}

// LinkAccountUseCase handles linking savings accounts to goals.
type LinkAccountUseCase struct {
	goalRepo    adapter.GoalRepository
	savingsRepo adapter.SavingsRepository
}

// NewLinkAccountUseCase creates a new LinkAccountUseCase instance.
func NewLinkAccountUseCase(goalRepo adapter.GoalRepository, savingsRepo adapter.SavingsRepository) *LinkAccountUseCase {
	return &LinkAccountUseCase{
		goalRepo:    goalRepo,
		savingsRepo: savingsRepo,
	}
}

// Execute links the account to the goal. Linking twice is a no-op.
func (uc *LinkAccountUseCase) Execute(ctx context.Context, input LinkAccountInput) error {
	goal, err := uc.goalRepo.FindByID(ctx, input.UserID, input.GoalID)
	if err != nil {
		return fmt.Errorf("failed to find goal: %w", err)
	}
	if goal == nil {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}

	account, err := uc.savingsRepo.FindAccountByID(ctx, input.UserID, input.AccountID)
	if err != nil {
		return fmt.Errorf("failed to find account: %w", err)
	}
	if account == nil {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeAccountNotFound,
			"savings account not found",
			domainerror.ErrAccountNotFound,
		)
	}

	if err := uc.goalRepo.LinkAccount(ctx, input.GoalID, input.AccountID); err != nil {
		return fmt.Errorf("failed to link account: %w", err)
	}
	return nil
}
