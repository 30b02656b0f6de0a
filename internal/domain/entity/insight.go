// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Insight is an AI-generated commentary on a user's finances, optionally
// scoped to a month.
type Insight struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	MonthID   *uuid.UUID
	Prompt    string
	Response  string
	CreatedAt time.Time
}

// NewInsight creates a new Insight entity.
func NewInsight(userID uuid.UUID, monthID *uuid.UUID, prompt, response string) *Insight {
	return &Insight{
		ID:        uuid.New(),
		UserID:    userID,
		MonthID:   monthID,
		Prompt:    prompt,
		Response:  response,
		CreatedAt: time.Now().UTC(),
	}
}
