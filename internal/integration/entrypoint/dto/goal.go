package dto

import (
	"time"

	"github.com/budgetbook/backend/internal/application/usecase/goal"
	"github.com/budgetbook/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request to create a goal.
type CreateGoalRequest struct {
	Name         string  `json:"name" binding:"required"`
	TargetAmount float64 `json:"targetAmount"`
	TargetDate   *string `json:"targetDate"`
}

// UpdateGoalRequest represents the request to update a goal.
type UpdateGoalRequest struct {
	Name            *string  `json:"name"`
	TargetAmount    *float64 `json:"targetAmount"`
	TargetDate      *string  `json:"targetDate"`
	ClearTargetDate bool     `json:"clearTargetDate"`
}

// LinkAccountRequest represents the request to link a savings account to a
// goal.
type LinkAccountRequest struct {
	AccountID string `json:"accountId" binding:"required"`
}

// GoalResponse represents a goal with its progress.
type GoalResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	TargetAmount     float64  `json:"targetAmount"`
	Current          float64  `json:"current"`
	TargetDate       *string  `json:"targetDate,omitempty"`
	LinkedAccountIDs []string `json:"linkedAccountIds"`
	CreatedAt        string   `json:"createdAt"`
}

// ToGoalResponse converts a goal entity to its response DTO.
func ToGoalResponse(g *entity.Goal, linkedAccountIDs []string, current float64) GoalResponse {
	var targetDate *string
	if g.TargetDate != nil {
		formatted := g.TargetDate.Format("2006-01-02")
		targetDate = &formatted
	}
	if linkedAccountIDs == nil {
		linkedAccountIDs = []string{}
	}
	return GoalResponse{
		ID:               g.ID.String(),
		Name:             g.Name,
		TargetAmount:     toFloat(g.TargetAmount),
		Current:          current,
		TargetDate:       targetDate,
		LinkedAccountIDs: linkedAccountIDs,
		CreatedAt:        g.CreatedAt.Format(time.RFC3339),
	}
}

// GoalListResponse represents the user's goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalListResponse converts the list goals output to a response.
func ToGoalListResponse(output *goal.ListGoalsOutput) GoalListResponse {
	out := make([]GoalResponse, len(output.Goals))
	for i, g := range output.Goals {
		ids := make([]string, len(g.LinkedAccountIDs))
		for j, id := range g.LinkedAccountIDs {
			ids[j] = id.String()
		}
		out[i] = ToGoalResponse(g.Goal, ids, toFloat(g.Current))
	}
	return GoalListResponse{Goals: out}
}
