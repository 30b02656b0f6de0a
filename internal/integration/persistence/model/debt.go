package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/domain/entity"
)

// DebtModel represents the debts table in the database.
type DebtModel struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID        `gorm:"type:uuid;not null;index"`
	Name           string           `gorm:"type:varchar(255);not null"`
	Principal      decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	InterestRate   *decimal.Decimal `gorm:"type:decimal(6,3)"`
	MonthlyPayment decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	CreatedAt      time.Time        `gorm:"not null"`
}

// TableName returns the table name for the DebtModel.
func (DebtModel) TableName() string {
	return "debts"
}

// ToEntity converts a DebtModel to a domain Debt entity.
func (m *DebtModel) ToEntity() *entity.Debt {
	return &entity.Debt{
		ID:             m.ID,
		UserID:         m.UserID,
		Name:           m.Name,
		Principal:      m.Principal,
		InterestRate:   m.InterestRate,
		MonthlyPayment: m.MonthlyPayment,
		CreatedAt:      m.CreatedAt,
	}
}

// DebtFromEntity creates a DebtModel from a domain Debt entity.
func DebtFromEntity(debt *entity.Debt) *DebtModel {
	return &DebtModel{
		ID:             debt.ID,
		UserID:         debt.UserID,
		Name:           debt.Name,
		Principal:      debt.Principal,
		InterestRate:   debt.InterestRate,
		MonthlyPayment: debt.MonthlyPayment,
		CreatedAt:      debt.CreatedAt,
	}
}
