// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingsAccount is a named savings bucket with an initial balance. The
// account balance is cumulative: initial balance plus every transaction ever
// posted to the account, regardless of which month each transaction belongs to.
type SavingsAccount struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Type           string
	Currency       string
	InitialBalance decimal.Decimal
	TargetAmount   *decimal.Decimal
	IsArchived     bool
	CreatedAt      time.Time
}

// NewSavingsAccount creates a new savings account.
func NewSavingsAccount(userID uuid.UUID, name, accountType, currency string, initialBalance decimal.Decimal, targetAmount *decimal.Decimal) *SavingsAccount {
	if accountType == "" {
		accountType = "general"
	}
	if currency == "" {
		currency = "USD"
	}
	return &SavingsAccount{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           name,
		Type:           accountType,
		Currency:       currency,
		InitialBalance: initialBalance,
		TargetAmount:   targetAmount,
		CreatedAt:      time.Now().UTC(),
	}
}

// SavingsTransaction is a signed amount posted to a savings account and
// recorded under a month.
type SavingsTransaction struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	AccountID uuid.UUID
	MonthID   uuid.UUID
	Amount    decimal.Decimal
	CreatedAt time.Time
}

// NewSavingsTransaction creates a new savings transaction.
func NewSavingsTransaction(userID, accountID, monthID uuid.UUID, amount decimal.Decimal) *SavingsTransaction {
	return &SavingsTransaction{
		ID:        uuid.New(),
		UserID:    userID,
		AccountID: accountID,
		MonthID:   monthID,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}
}

// CumulativeBalances computes the cumulative balance of each account from a
// single batched transaction fetch: initial balance plus the sum of all of
// the account's transactions. Transactions referencing accounts not present
// in the accounts slice are ignored.
func CumulativeBalances(accounts []*SavingsAccount, transactions []*SavingsTransaction) map[uuid.UUID]decimal.Decimal {
	balances := make(map[uuid.UUID]decimal.Decimal, len(accounts))
	for _, a := range accounts {
		balances[a.ID] = a.InitialBalance
	}
	for _, t := range transactions {
		if balance, ok := balances[t.AccountID]; ok {
			balances[t.AccountID] = balance.Add(t.Amount)
		}
	}
	return balances
}
