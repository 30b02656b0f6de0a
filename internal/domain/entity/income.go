// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Income is the single primary income entry for a (user, month). Net income
// is a stored value supplied by the user; it is trusted as-is and never
// recomputed from gross and deductions.
type Income struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	MonthID         uuid.UUID
	GrossIncome     decimal.Decimal
	TaxDeduction    decimal.Decimal
	NISDeduction    decimal.Decimal
	OtherDeductions decimal.Decimal
	NetIncome       decimal.Decimal
	CreatedAt       time.Time
}

// NewIncome creates a new primary income entry for a month.
func NewIncome(userID, monthID uuid.UUID, gross, tax, nis, other, net decimal.Decimal) *Income {
	return &Income{
		ID:              uuid.New(),
		UserID:          userID,
		MonthID:         monthID,
		GrossIncome:     gross,
		TaxDeduction:    tax,
		NISDeduction:    nis,
		OtherDeductions: other,
		NetIncome:       net,
		CreatedAt:       time.Now().UTC(),
	}
}

// AdditionalIncome is a labeled income amount beyond the primary entry
// (side jobs, bonuses). A month can carry any number of them.
type AdditionalIncome struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	MonthID   uuid.UUID
	Label     string
	Amount    decimal.Decimal
	CreatedAt time.Time
}

// NewAdditionalIncome creates a new additional income entry.
func NewAdditionalIncome(userID, monthID uuid.UUID, label string, amount decimal.Decimal) *AdditionalIncome {
	return &AdditionalIncome{
		ID:        uuid.New(),
		UserID:    userID,
		MonthID:   monthID,
		Label:     label,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}
}
