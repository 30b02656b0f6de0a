package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/application/adapter"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// UnlinkAccountInput represents the input for unlinking a savings account
// from a goal.
type UnlinkAccountInput struct {
	UserID    uuid.UUID
	GoalID    uuid.UUID
	AccountID uuid.UUID
}

// UnlinkAccountUseCase handles unlinking savings accounts from goals.
type UnlinkAccountUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUnlinkAccountUseCase creates a new UnlinkAccountUseCase instance.
func NewUnlinkAccountUseCase(goalRepo adapter.GoalRepository) *UnlinkAccountUseCase {
	return &UnlinkAccountUseCase{
		goalRepo: goalRepo,
	}
}

// Execute removes the link. The goal's progress loses exactly that
// account's balance.
func (uc *UnlinkAccountUseCase) Execute(ctx context.Context, input UnlinkAccountInput) error {
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

	if err := uc.goalRepo.UnlinkAccount(ctx, input.GoalID, input.AccountID); err != nil {
		return fmt.Errorf("failed to unlink account: %w", err)
	}
	return nil
}
