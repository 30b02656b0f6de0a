package subscription

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/entity"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// UpdateSubscriptionInput represents the input for updating a subscription.
// Nil fields are left unchanged. ClearBillingDay removes the billing day.
type UpdateSubscriptionInput struct {
	UserID          uuid.UUID
	ID              uuid.UUID
	Name            *string
	Amount          *decimal.Decimal
	BillingDay      *int
	ClearBillingDay bool
	IsActive        *bool
}

// UpdateSubscriptionOutput represents the output of updating a subscription.
type UpdateSubscriptionOutput struct {
	Subscription *entity.Subscription
}

// UpdateSubscriptionUseCase handles updating subscriptions.
type UpdateSubscriptionUseCase struct {
	subscriptionRepo adapter.SubscriptionRepository
}

// NewUpdateSubscriptionUseCase creates a new UpdateSubscriptionUseCase instance.
func NewUpdateSubscriptionUseCase(subscriptionRepo adapter.SubscriptionRepository) *UpdateSubscriptionUseCase {
	return &UpdateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
	}
}

// Execute applies the partial update to the subscription.
func (uc *UpdateSubscriptionUseCase) Execute(ctx context.Context, input UpdateSubscriptionInput) (*UpdateSubscriptionOutput, error) {
	subscription, err := uc.subscriptionRepo.FindByID(ctx, input.UserID, input.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find subscription: %w", err)
	}
	if subscription == nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeSubscriptionNotFound,
			"subscription not found",
			domainerror.ErrSubscriptionNotFound,
		)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeMissingName,
				"subscription name is required",
				domainerror.ErrMissingName,
			)
		}
		subscription.Name = *input.Name
	}
	if input.Amount != nil {
		subscription.Amount = *input.Amount
	}
	if input.ClearBillingDay {
		subscription.BillingDay = nil
	} else if input.BillingDay != nil {
		subscription.BillingDay = input.BillingDay
	}
	if input.IsActive != nil {
		subscription.IsActive = *input.IsActive
	}

	if err := uc.subscriptionRepo.Update(ctx, subscription); err != nil {
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}

	return &UpdateSubscriptionOutput{Subscription: subscription}, nil
}
