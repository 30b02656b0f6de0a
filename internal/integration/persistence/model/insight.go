package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/domain/entity"
)

// InsightModel represents the insights table in the database.
type InsightModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	MonthID   *uuid.UUID `gorm:"type:uuid;index"`
	Prompt    string     `gorm:"type:text;not null"`
	Response  string     `gorm:"type:text;not null"`
	CreatedAt time.Time  `gorm:"not null"`
}

// TableName returns the table name for the InsightModel.
func (InsightModel) TableName() string {
	return "insights"
}

// ToEntity converts an InsightModel to a domain Insight entity.
func (m *InsightModel) ToEntity() *entity.Insight {
	return &entity.Insight{
		ID:        m.ID,
		UserID:    m.UserID,
		MonthID:   m.MonthID,
		Prompt:    m.Prompt,
		Response:  m.Response,
		CreatedAt: m.CreatedAt,
	}
}

// InsightFromEntity creates an InsightModel from a domain Insight entity.
func InsightFromEntity(insight *entity.Insight) *InsightModel {
	return &InsightModel{
		ID:        insight.ID,
		UserID:    insight.UserID,
		MonthID:   insight.MonthID,
		Prompt:    insight.Prompt,
		Response:  insight.Response,
		CreatedAt: insight.CreatedAt,
	}
}
