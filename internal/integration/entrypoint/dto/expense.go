package dto

import (
	"time"

	"github.com/budgetbook/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request to record an expense.
type CreateExpenseRequest struct {
	Month      int     `json:"month" binding:"required"`
	Year       int     `json:"year" binding:"required"`
	CategoryID string  `json:"categoryId" binding:"required"`
	Name       string  `json:"name" binding:"required"`
	Amount     float64 `json:"amount"`
}

// UpdateExpenseRequest represents the request to update an expense.
type UpdateExpenseRequest struct {
	CategoryID *string  `json:"categoryId"`
	Name       *string  `json:"name"`
	Amount     *float64 `json:"amount"`
}

// ExpenseResponse represents an expense.
type ExpenseResponse struct {
	ID         string  `json:"id"`
	MonthID    string  `json:"monthId"`
	CategoryID string  `json:"categoryId"`
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	CreatedAt  string  `json:"createdAt"`
}

// ToExpenseResponse converts an expense entity to its response DTO.
func ToExpenseResponse(expense *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:         expense.ID.String(),
		MonthID:    expense.MonthID.String(),
		CategoryID: expense.CategoryID.String(),
		Name:       expense.Name,
		Amount:     toFloat(expense.Amount),
		CreatedAt:  expense.CreatedAt.Format(time.RFC3339),
	}
}

// ExpenseListResponse represents a month's expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseListResponse converts expense entities to a list response.
func ToExpenseListResponse(expenses []*entity.Expense) ExpenseListResponse {
	out := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		out[i] = ToExpenseResponse(e)
	}
	return ExpenseListResponse{Expenses: out}
}

// CategoryResponse represents an expense category.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// CategoryListResponse represents the user's expense categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryListResponse converts category entities to a list response.
func ToCategoryListResponse(categories []*entity.ExpenseCategory) CategoryListResponse {
	out := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		out[i] = CategoryResponse{
			ID:   c.ID.String(),
			Name: c.Name,
			Type: string(c.Type),
		}
	}
	return CategoryListResponse{Categories: out}
}
