package dto

import (
	"time"

	"github.com/budgetbook/backend/internal/application/usecase/subscription"
	"github.com/budgetbook/backend/internal/domain/entity"
)

// CreateSubscriptionRequest represents the request to create a
// subscription.
type CreateSubscriptionRequest struct {
	Name       string  `json:"name" binding:"required"`
	Amount     float64 `json:"amount"`
	BillingDay *int    `json:"billingDay"`
}

// UpdateSubscriptionRequest represents the request to update a
// subscription.
type UpdateSubscriptionRequest struct {
	Name            *string  `json:"name"`
	Amount          *float64 `json:"amount"`
	BillingDay      *int     `json:"billingDay"`
	ClearBillingDay bool     `json:"clearBillingDay"`
	IsActive        *bool    `json:"isActive"`
}

// SubscriptionResponse represents a subscription.
type SubscriptionResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	BillingDay *int    `json:"billingDay,omitempty"`
	IsActive   bool    `json:"isActive"`
	CreatedAt  string  `json:"createdAt"`
}

// ToSubscriptionResponse converts a subscription entity to its response
// DTO.
func ToSubscriptionResponse(s *entity.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:         s.ID.String(),
		Name:       s.Name,
		Amount:     toFloat(s.Amount),
		BillingDay: s.BillingDay,
		IsActive:   s.IsActive,
		CreatedAt:  s.CreatedAt.Format(time.RFC3339),
	}
}

// SubscriptionListResponse represents the user's subscriptions with the
// active total.
type SubscriptionListResponse struct {
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
	ActiveTotal   float64                `json:"activeTotal"`
}

// ToSubscriptionListResponse converts the list output to a response.
func ToSubscriptionListResponse(output *subscription.ListSubscriptionsOutput) SubscriptionListResponse {
	out := make([]SubscriptionResponse, len(output.Subscriptions))
	for i, s := range output.Subscriptions {
		out[i] = ToSubscriptionResponse(s)
	}
	return SubscriptionListResponse{
		Subscriptions: out,
		ActiveTotal:   toFloat(output.ActiveTotal),
	}
}
