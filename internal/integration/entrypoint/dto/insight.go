package dto

import (
	"time"

	"github.com/budgetbook/backend/internal/domain/entity"
)

// GenerateInsightRequest represents the request to generate a monthly
// insight.
type GenerateInsightRequest struct {
	Month int `json:"month" binding:"required"`
	Year  int `json:"year" binding:"required"`
}

// InsightResponse represents a stored insight.
type InsightResponse struct {
	ID        string  `json:"id"`
	MonthID   *string `json:"monthId,omitempty"`
	Response  string  `json:"response"`
	CreatedAt string  `json:"createdAt"`
}

// ToInsightResponse converts an insight entity to its response DTO.
func ToInsightResponse(insight *entity.Insight) InsightResponse {
	var monthID *string
	if insight.MonthID != nil {
		id := insight.MonthID.String()
		monthID = &id
	}
	return InsightResponse{
		ID:        insight.ID.String(),
		MonthID:   monthID,
		Response:  insight.Response,
		CreatedAt: insight.CreatedAt.Format(time.RFC3339),
	}
}

// InsightListResponse represents the user's stored insights.
type InsightListResponse struct {
	Insights []InsightResponse `json:"insights"`
}

// ToInsightListResponse converts insight entities to a list response.
func ToInsightListResponse(insights []*entity.Insight) InsightListResponse {
	out := make([]InsightResponse, len(insights))
	for i, ins := range insights {
		out[i] = ToInsightResponse(ins)
	}
	return InsightListResponse{Insights: out}
}
