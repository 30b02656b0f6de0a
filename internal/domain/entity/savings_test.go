package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestCumulativeBalances(t *testing.T) {
	userID := uuid.New()
	monthID := uuid.New()

	checking := NewSavingsAccount(userID, "Emergency Fund", "", "", decimal.NewFromInt(1000), nil)
	vacation := NewSavingsAccount(userID, "Vacation", "", "", decimal.Zero, nil)

	t.Run("initial balance with no transactions", func(t *testing.T) {
		balances := CumulativeBalances([]*SavingsAccount{checking}, nil)
		if !balances[checking.ID].Equal(decimal.NewFromInt(1000)) {
			t.Errorf("balance = %s, want 1000", balances[checking.ID])
		}
	})

	t.Run("sums signed transactions per account", func(t *testing.T) {
		transactions := []*SavingsTransaction{
			NewSavingsTransaction(userID, checking.ID, monthID, decimal.NewFromInt(500)),
			NewSavingsTransaction(userID, checking.ID, monthID, decimal.NewFromInt(-200)),
			NewSavingsTransaction(userID, vacation.ID, monthID, decimal.NewFromInt(300)),
		}

		balances := CumulativeBalances([]*SavingsAccount{checking, vacation}, transactions)

		if !balances[checking.ID].Equal(decimal.NewFromInt(1300)) {
			t.Errorf("checking balance = %s, want 1300", balances[checking.ID])
		}
		if !balances[vacation.ID].Equal(decimal.NewFromInt(300)) {
			t.Errorf("vacation balance = %s, want 300", balances[vacation.ID])
		}
	})

	t.Run("ignores transactions for unknown accounts", func(t *testing.T) {
		orphan := NewSavingsTransaction(userID, uuid.New(), monthID, decimal.NewFromInt(999))

		balances := CumulativeBalances([]*SavingsAccount{checking}, []*SavingsTransaction{orphan})

		if len(balances) != 1 {
			t.Fatalf("expected 1 balance entry, got %d", len(balances))
		}
		if !balances[checking.ID].Equal(decimal.NewFromInt(1000)) {
			t.Errorf("balance = %s, want 1000", balances[checking.ID])
		}
	})
}
