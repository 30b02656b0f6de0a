package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/domain/entity"
)

// SavingsAccountModel represents the savings_accounts table.
type SavingsAccountModel struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID        `gorm:"type:uuid;not null;index"`
	Name           string           `gorm:"type:varchar(255);not null"`
	Type           string           `gorm:"type:varchar(50);not null;default:'general'"`
	Currency       string           `gorm:"type:varchar(10);not null;default:'USD'"`
	InitialBalance decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	TargetAmount   *decimal.Decimal `gorm:"type:decimal(12,2)"`
	IsArchived     bool             `gorm:"not null;default:false"`
	CreatedAt      time.Time        `gorm:"not null"`
}

// TableName returns the table name for the SavingsAccountModel.
func (SavingsAccountModel) TableName() string {
	return "savings_accounts"
}

// ToEntity converts a SavingsAccountModel to a domain entity.
func (m *SavingsAccountModel) ToEntity() *entity.SavingsAccount {
	return &entity.SavingsAccount{
		ID:             m.ID,
		UserID:         m.UserID,
		Name:           m.Name,
		Type:           m.Type,
		Currency:       m.Currency,
		InitialBalance: m.InitialBalance,
		TargetAmount:   m.TargetAmount,
		IsArchived:     m.IsArchived,
		CreatedAt:      m.CreatedAt,
	}
}

// SavingsAccountFromEntity creates a SavingsAccountModel from a domain
// entity.
func SavingsAccountFromEntity(account *entity.SavingsAccount) *SavingsAccountModel {
	return &SavingsAccountModel{
		ID:             account.ID,
		UserID:         account.UserID,
		Name:           account.Name,
		Type:           account.Type,
		Currency:       account.Currency,
		InitialBalance: account.InitialBalance,
		TargetAmount:   account.TargetAmount,
		IsArchived:     account.IsArchived,
		CreatedAt:      account.CreatedAt,
	}
}

// SavingsTransactionModel represents the savings_transactions table.
// Amount is signed; negative rows are withdrawals.
type SavingsTransactionModel struct {
	ID        uuid.UUID            `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID            `gorm:"type:uuid;not null;index"`
	AccountID uuid.UUID            `gorm:"type:uuid;not null;index"`
	Account   *SavingsAccountModel `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	MonthID   uuid.UUID            `gorm:"type:uuid;not null;index"`
	Amount    decimal.Decimal      `gorm:"type:decimal(12,2);not null"`
	CreatedAt time.Time            `gorm:"not null"`
}

// TableName returns the table name for the SavingsTransactionModel.
func (SavingsTransactionModel) TableName() string {
	return "savings_transactions"
}

// ToEntity converts a SavingsTransactionModel to a domain entity.
func (m *SavingsTransactionModel) ToEntity() *entity.SavingsTransaction {
	return &entity.SavingsTransaction{
		ID:        m.ID,
		UserID:    m.UserID,
		AccountID: m.AccountID,
		MonthID:   m.MonthID,
		Amount:    m.Amount,
		CreatedAt: m.CreatedAt,
	}
}

// SavingsTransactionFromEntity creates a SavingsTransactionModel from a
// domain entity.
func SavingsTransactionFromEntity(transaction *entity.SavingsTransaction) *SavingsTransactionModel {
	return &SavingsTransactionModel{
		ID:        transaction.ID,
		UserID:    transaction.UserID,
		AccountID: transaction.AccountID,
		MonthID:   transaction.MonthID,
		Amount:    transaction.Amount,
		CreatedAt: transaction.CreatedAt,
	}
}
