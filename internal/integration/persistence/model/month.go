// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/domain/entity"
)

// MonthModel represents the months table in the database. A user has at
// most one row per (month, year).
type MonthModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_months_user_period"`
	Month     int       `gorm:"not null;uniqueIndex:idx_months_user_period;check:month >= 1 AND month <= 12"`
	Year      int       `gorm:"not null;uniqueIndex:idx_months_user_period"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the MonthModel.
func (MonthModel) TableName() string {
	return "months"
}

// ToEntity converts a MonthModel to a domain Month entity.
func (m *MonthModel) ToEntity() *entity.Month {
	return &entity.Month{
		ID:        m.ID,
		UserID:    m.UserID,
		Month:     m.Month,
		Year:      m.Year,
		CreatedAt: m.CreatedAt,
	}
}

// MonthFromEntity creates a MonthModel from a domain Month entity.
func MonthFromEntity(month *entity.Month) *MonthModel {
	return &MonthModel{
		ID:        month.ID,
		UserID:    month.UserID,
		Month:     month.Month,
		Year:      month.Year,
		CreatedAt: month.CreatedAt,
	}
}
