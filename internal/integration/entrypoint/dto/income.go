package dto

import (
	"time"

	"github.com/budgetbook/backend/internal/domain/entity"
)

// UpsertIncomeRequest represents the request to set a month's income.
type UpsertIncomeRequest struct {
	Month           int     `json:"month" binding:"required"`
	Year            int     `json:"year" binding:"required"`
	GrossIncome     float64 `json:"grossIncome"`
	TaxDeduction    float64 `json:"taxDeduction"`
	NISDeduction    float64 `json:"nisDeduction"`
	OtherDeductions float64 `json:"otherDeductions"`
	NetIncome       float64 `json:"netIncome"`
}

// IncomeResponse represents a month's primary income.
type IncomeResponse struct {
	ID              string  `json:"id"`
	MonthID         string  `json:"monthId"`
	GrossIncome     float64 `json:"grossIncome"`
	TaxDeduction    float64 `json:"taxDeduction"`
	NISDeduction    float64 `json:"nisDeduction"`
	OtherDeductions float64 `json:"otherDeductions"`
	NetIncome       float64 `json:"netIncome"`
	CreatedAt       string  `json:"createdAt"`
}

// ToIncomeResponse converts an income entity to its response DTO.
func ToIncomeResponse(income *entity.Income) IncomeResponse {
	return IncomeResponse{
		ID:              income.ID.String(),
		MonthID:         income.MonthID.String(),
		GrossIncome:     toFloat(income.GrossIncome),
		TaxDeduction:    toFloat(income.TaxDeduction),
		NISDeduction:    toFloat(income.NISDeduction),
		OtherDeductions: toFloat(income.OtherDeductions),
		NetIncome:       toFloat(income.NetIncome),
		CreatedAt:       income.CreatedAt.Format(time.RFC3339),
	}
}

// GetIncomeResponse represents a month's income rows. Income is null when
// the month has no primary income yet.
type GetIncomeResponse struct {
	Income     *IncomeResponse            `json:"income"`
	Additional []AdditionalIncomeResponse `json:"additional"`
}

// AddAdditionalIncomeRequest represents the request to add an additional
// income entry.
type AddAdditionalIncomeRequest struct {
	Month  int     `json:"month" binding:"required"`
	Year   int     `json:"year" binding:"required"`
	Label  string  `json:"label" binding:"required"`
	Amount float64 `json:"amount"`
}

// UpdateAdditionalIncomeRequest represents the request to update an
// additional income entry.
type UpdateAdditionalIncomeRequest struct {
	Label  *string  `json:"label"`
	Amount *float64 `json:"amount"`
}

// AdditionalIncomeResponse represents an additional income entry.
type AdditionalIncomeResponse struct {
	ID        string  `json:"id"`
	MonthID   string  `json:"monthId"`
	Label     string  `json:"label"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"createdAt"`
}

// ToAdditionalIncomeResponse converts an additional income entity to its
// response DTO.
func ToAdditionalIncomeResponse(income *entity.AdditionalIncome) AdditionalIncomeResponse {
	return AdditionalIncomeResponse{
		ID:        income.ID.String(),
		MonthID:   income.MonthID.String(),
		Label:     income.Label,
		Amount:    toFloat(income.Amount),
		CreatedAt: income.CreatedAt.Format(time.RFC3339),
	}
}
