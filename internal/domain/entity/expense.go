// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryType represents the type of an expense category.
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// FallbackCategoryName is the label used in breakdowns when an expense has
// no resolvable category (e.g. the category was deleted).
const FallbackCategoryName = "Other"

// DefaultCategoryNames are seeded for a user the first time categories are
// listed and none exist yet.
var DefaultCategoryNames = []string{
	"Housing",
	"Utilities",
	"Transportation",
	"Food",
	"Healthcare",
	"Entertainment",
	"Other",
}

// ExpenseCategory is a named classification bucket owned by a user.
type ExpenseCategory struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Name   string
	Type   CategoryType
}

// NewExpenseCategory creates a new expense category.
func NewExpenseCategory(userID uuid.UUID, name string, categoryType CategoryType) *ExpenseCategory {
	return &ExpenseCategory{
		ID:     uuid.New(),
		UserID: userID,
		Name:   name,
		Type:   categoryType,
	}
}

// Expense is a named amount tied to (user, month, category).
type Expense struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	MonthID    uuid.UUID
	CategoryID uuid.UUID
	Name       string
	Amount     decimal.Decimal
	CreatedAt  time.Time
}

// NewExpense creates a new expense entry.
func NewExpense(userID, monthID, categoryID uuid.UUID, name string, amount decimal.Decimal) *Expense {
	return &Expense{
		ID:         uuid.New(),
		UserID:     userID,
		MonthID:    monthID,
		CategoryID: categoryID,
		Name:       name,
		Amount:     amount,
		CreatedAt:  time.Now().UTC(),
	}
}
