package subscription

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/application/adapter"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// DeleteSubscriptionInput represents the input for deleting a subscription.
type DeleteSubscriptionInput struct {
	UserID uuid.UUID
	ID     uuid.UUID
}

// DeleteSubscriptionUseCase handles deleting subscriptions.
type DeleteSubscriptionUseCase struct {
	subscriptionRepo adapter.SubscriptionRepository
}

// NewDeleteSubscriptionUseCase creates a new DeleteSubscriptionUseCase instance.
func NewDeleteSubscriptionUseCase(subscriptionRepo adapter.SubscriptionRepository) *DeleteSubscriptionUseCase {
	return &DeleteSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
	}
}

// Execute deletes the subscription.
func (uc *DeleteSubscriptionUseCase) Execute(ctx context.Context, input DeleteSubscriptionInput) error {
	subscription, err := uc.subscriptionRepo.FindByID(ctx, input.UserID, input.ID)
	if err != nil {
		return fmt.Errorf("failed to find subscription: %w", err)
	}
	if subscription == nil {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeSubscriptionNotFound,
			"subscription not found",
			domainerror.ErrSubscriptionNotFound,
		)
	}

	if err := uc.subscriptionRepo.Delete(ctx, input.UserID, input.ID); err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	return nil
}
