// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Debt is a named principal with an optional interest rate and a monthly
// payment amount. No payoff lifecycle is modeled.
type Debt struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Principal      decimal.Decimal
	InterestRate   *decimal.Decimal
	MonthlyPayment decimal.Decimal
	CreatedAt      time.Time
}

// NewDebt creates a new Debt entity.
func NewDebt(userID uuid.UUID, name string, principal decimal.Decimal, interestRate *decimal.Decimal, monthlyPayment decimal.Decimal) *Debt {
	return &Debt{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           name,
		Principal:      principal,
		InterestRate:   interestRate,
		MonthlyPayment: monthlyPayment,
		CreatedAt:      time.Now().UTC(),
	}
}
