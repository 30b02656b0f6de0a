// Package subscription contains subscription-related use cases.
package subscription

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/entity"
)

// ListSubscriptionsInput represents the input for listing subscriptions.
type ListSubscriptionsInput struct {
	UserID uuid.UUID
}

// ListSubscriptionsOutput represents the output of listing subscriptions.
// ActiveTotal sums only active subscriptions.
type ListSubscriptionsOutput struct {
	Subscriptions []*entity.Subscription
	ActiveTotal   decimal.Decimal
}

// ListSubscriptionsUseCase handles listing subscriptions.
type ListSubscriptionsUseCase struct {
	subscriptionRepo adapter.SubscriptionRepository
}

// NewListSubscriptionsUseCase creates a new ListSubscriptionsUseCase instance.
func NewListSubscriptionsUseCase(subscriptionRepo adapter.SubscriptionRepository) *ListSubscriptionsUseCase {
	return &ListSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
	}
}

// Execute lists the user's subscriptions.
func (uc *ListSubscriptionsUseCase) Execute(ctx context.Context, input ListSubscriptionsInput) (*ListSubscriptionsOutput, error) {
	subscriptions, err := uc.subscriptionRepo.List(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	total := decimal.Zero
	for _, s := range subscriptions {
		if s.IsActive {
			total = total.Add(s.Amount)
		}
	}

	return &ListSubscriptionsOutput{
		Subscriptions: subscriptions,
		ActiveTotal:   total,
	}, nil
}
