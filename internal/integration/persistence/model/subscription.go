package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/domain/entity"
)

// SubscriptionModel represents the subscriptions table in the database.
type SubscriptionModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name       string          `gorm:"type:varchar(255);not null"`
	Amount     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	BillingDay *int            `gorm:"check:billing_day >= 1 AND billing_day <= 31"`
	IsActive   bool            `gorm:"not null;default:true"`
	CreatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SubscriptionModel.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

// ToEntity converts a SubscriptionModel to a domain Subscription entity.
func (m *SubscriptionModel) ToEntity() *entity.Subscription {
	return &entity.Subscription{
		ID:         m.ID,
		UserID:     m.UserID,
		Name:       m.Name,
		Amount:     m.Amount,
		BillingDay: m.BillingDay,
		IsActive:   m.IsActive,
		CreatedAt:  m.CreatedAt,
	}
}

// SubscriptionFromEntity creates a SubscriptionModel from a domain entity.
func SubscriptionFromEntity(subscription *entity.Subscription) *SubscriptionModel {
	return &SubscriptionModel{
		ID:         subscription.ID,
		UserID:     subscription.UserID,
		Name:       subscription.Name,
		Amount:     subscription.Amount,
		BillingDay: subscription.BillingDay,
		IsActive:   subscription.IsActive,
		CreatedAt:  subscription.CreatedAt,
	}
}
