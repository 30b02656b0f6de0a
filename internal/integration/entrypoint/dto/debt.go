package dto

import (
	"time"

	"github.com/budgetbook/backend/internal/domain/entity"
)

// CreateDebtRequest represents the request to create a debt.
type CreateDebtRequest struct {
	Name           string   `json:"name" binding:"required"`
	Principal      float64  `json:"principal"`
	InterestRate   *float64 `json:"interestRate"`
	MonthlyPayment float64  `json:"monthlyPayment"`
}

// UpdateDebtRequest represents the request to update a debt.
type UpdateDebtRequest struct {
	Name              *string  `json:"name"`
	Principal         *float64 `json:"principal"`
	InterestRate      *float64 `json:"interestRate"`
	ClearInterestRate bool     `json:"clearInterestRate"`
	MonthlyPayment    *float64 `json:"monthlyPayment"`
}

// DebtResponse represents a debt.
type DebtResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Principal      float64  `json:"principal"`
	InterestRate   *float64 `json:"interestRate,omitempty"`
	MonthlyPayment float64  `json:"monthlyPayment"`
	CreatedAt      string   `json:"createdAt"`
}

// ToDebtResponse converts a debt entity to its response DTO.
func ToDebtResponse(debt *entity.Debt) DebtResponse {
	var rate *float64
	if debt.InterestRate != nil {
		v := toFloat(*debt.InterestRate)
		rate = &v
	}
	return DebtResponse{
		ID:             debt.ID.String(),
		Name:           debt.Name,
		Principal:      toFloat(debt.Principal),
		InterestRate:   rate,
		MonthlyPayment: toFloat(debt.MonthlyPayment),
		CreatedAt:      debt.CreatedAt.Format(time.RFC3339),
	}
}

// DebtListResponse represents the user's debts.
type DebtListResponse struct {
	Debts []DebtResponse `json:"debts"`
}

// ToDebtListResponse converts debt entities to a list response.
func ToDebtListResponse(debts []*entity.Debt) DebtListResponse {
	out := make([]DebtResponse, len(debts))
	for i, d := range debts {
		out[i] = ToDebtResponse(d)
	}
	return DebtListResponse{Debts: out}
}
