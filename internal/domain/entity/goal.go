// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal is a named savings target. A goal is linked to zero or more savings
// accounts; its progress is the sum of the cumulative balances of the linked
// accounts.
type Goal struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	TargetAmount decimal.Decimal
	TargetDate   *time.Time
	CreatedAt    time.Time
}

// NewGoal creates a new Goal entity.
func NewGoal(userID uuid.UUID, name string, targetAmount decimal.Decimal, targetDate *time.Time) *Goal {
	return &Goal{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         name,
		TargetAmount: targetAmount,
		TargetDate:   targetDate,
		CreatedAt:    time.Now().UTC(),
	}
}

// GoalAccount links a goal to a savings account.
type GoalAccount struct {
	GoalID    uuid.UUID
	AccountID uuid.UUID
}
