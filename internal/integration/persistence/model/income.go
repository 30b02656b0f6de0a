package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/domain/entity"
)

// IncomeModel represents the income table in the database. One row per
// (user, month).
type IncomeModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_income_user_month"`
	MonthID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_income_user_month"`
	GrossIncome     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TaxDeduction    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	NISDeduction    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	OtherDeductions decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	NetIncome       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt       time.Time       `gorm:"not null"`
}

// TableName returns the table name for the IncomeModel.
func (IncomeModel) TableName() string {
	return "income"
}

// ToEntity converts an IncomeModel to a domain Income entity.
func (m *IncomeModel) ToEntity() *entity.Income {
	return &entity.Income{
		ID:              m.ID,
		UserID:          m.UserID,
		MonthID:         m.MonthID,
		GrossIncome:     m.GrossIncome,
		TaxDeduction:    m.TaxDeduction,
		NISDeduction:    m.NISDeduction,
		OtherDeductions: m.OtherDeductions,
		NetIncome:       m.NetIncome,
		CreatedAt:       m.CreatedAt,
	}
}

// IncomeFromEntity creates an IncomeModel from a domain Income entity.
func IncomeFromEntity(income *entity.Income) *IncomeModel {
	return &IncomeModel{
		ID:              income.ID,
		UserID:          income.UserID,
		MonthID:         income.MonthID,
		GrossIncome:     income.GrossIncome,
		TaxDeduction:    income.TaxDeduction,
		NISDeduction:    income.NISDeduction,
		OtherDeductions: income.OtherDeductions,
		NetIncome:       income.NetIncome,
		CreatedAt:       income.CreatedAt,
	}
}

// AdditionalIncomeModel represents the additional_income table.
type AdditionalIncomeModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	MonthID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Label     string          `gorm:"type:varchar(255);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the AdditionalIncomeModel.
func (AdditionalIncomeModel) TableName() string {
	return "additional_income"
}

// ToEntity converts an AdditionalIncomeModel to a domain entity.
func (m *AdditionalIncomeModel) ToEntity() *entity.AdditionalIncome {
	return &entity.AdditionalIncome{
		ID:        m.ID,
		UserID:    m.UserID,
		MonthID:   m.MonthID,
		Label:     m.Label,
		Amount:    m.Amount,
		CreatedAt: m.CreatedAt,
	}
}

// AdditionalIncomeFromEntity creates an AdditionalIncomeModel from a domain
// entity.
func AdditionalIncomeFromEntity(income *entity.AdditionalIncome) *AdditionalIncomeModel {
	return &AdditionalIncomeModel{
		ID:        income.ID,
		UserID:    income.UserID,
		MonthID:   income.MonthID,
		Label:     income.Label,
		Amount:    income.Amount,
		CreatedAt: income.CreatedAt,
	}
}
