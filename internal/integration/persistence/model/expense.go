package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/domain/entity"
)

// ExpenseCategoryModel represents the expense_categories table.
type ExpenseCategoryModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name   string    `gorm:"type:varchar(100);not null"`
	Type   string    `gorm:"type:varchar(20);not null;default:'expense'"`
}

// TableName returns the table name for the ExpenseCategoryModel.
func (ExpenseCategoryModel) TableName() string {
	return "expense_categories"
}

// ToEntity converts an ExpenseCategoryModel to a domain entity.
func (m *ExpenseCategoryModel) ToEntity() *entity.ExpenseCategory {
	return &entity.ExpenseCategory{
		ID:     m.ID,
		UserID: m.UserID,
		Name:   m.Name,
		Type:   entity.CategoryType(m.Type),
	}
}

// ExpenseCategoryFromEntity creates an ExpenseCategoryModel from a domain
// entity.
func ExpenseCategoryFromEntity(category *entity.ExpenseCategory) *ExpenseCategoryModel {
	return &ExpenseCategoryModel{
		ID:     category.ID,
		UserID: category.UserID,
		Name:   category.Name,
		Type:   string(category.Type),
	}
}

// ExpenseModel represents the expenses table. Category deletion cascades.
type ExpenseModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	MonthID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Category   *ExpenseCategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	Name       string          `gorm:"type:varchar(255);not null"`
	Amount     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:         m.ID,
		UserID:     m.UserID,
		MonthID:    m.MonthID,
		CategoryID: m.CategoryID,
		Name:       m.Name,
		Amount:     m.Amount,
		CreatedAt:  m.CreatedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:         expense.ID,
		UserID:     expense.UserID,
		MonthID:    expense.MonthID,
		CategoryID: expense.CategoryID,
		Name:       expense.Name,
		Amount:     expense.Amount,
		CreatedAt:  expense.CreatedAt,
	}
}
