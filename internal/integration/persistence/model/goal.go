package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name         string          `gorm:"type:varchar(255);not null"`
	TargetAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TargetDate   *time.Time      `gorm:"type:date"`
	CreatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:           m.ID,
		UserID:       m.UserID,
		Name:         m.Name,
		TargetAmount: m.TargetAmount,
		TargetDate:   m.TargetDate,
		CreatedAt:    m.CreatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:           goal.ID,
		UserID:       goal.UserID,
		Name:         goal.Name,
		TargetAmount: goal.TargetAmount,
		TargetDate:   goal.TargetDate,
		CreatedAt:    goal.CreatedAt,
	}
}

// GoalAccountModel represents the goal_accounts join table linking goals to
// savings accounts.
type GoalAccountModel struct {
	GoalID    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Goal      *GoalModel `gorm:"foreignKey:GoalID;constraint:OnDelete:CASCADE"`
	AccountID uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Account   *SavingsAccountModel `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the GoalAccountModel.
func (GoalAccountModel) TableName() string {
	return "goal_accounts"
}
