// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Subscription is a named recurring amount. Only active subscriptions
// contribute to dashboard totals.
type Subscription struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Name       string
	Amount     decimal.Decimal
	BillingDay *int
	IsActive   bool
	CreatedAt  time.Time
}

// NewSubscription creates a new Subscription entity.
func NewSubscription(userID uuid.UUID, name string, amount decimal.Decimal, billingDay *int) *Subscription {
	return &Subscription{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       name,
		Amount:     amount,
		BillingDay: billingDay,
		IsActive:   true,
		CreatedAt:  time.Now().UTC(),
	}
}
