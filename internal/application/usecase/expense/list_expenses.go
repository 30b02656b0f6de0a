// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/application/usecase/period"
	"github.com/budgetbook/backend/internal/domain/entity"
)

// ListExpensesInput represents the input for listing a month's expenses.
type ListExpensesInput struct {
	UserID uuid.UUID
	Month  int
	Year   int
}

// ListExpensesOutput represents the output of listing a month's expenses.
type ListExpensesOutput struct {
	Expenses []*entity.Expense
}

// ListExpensesUseCase handles listing a month's expenses.
type ListExpensesUseCase struct {
	monthRepo   adapter.MonthRepository
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(monthRepo adapter.MonthRepository, expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		monthRepo:   monthRepo,
		expenseRepo: expenseRepo,
	}
}

// Execute lists the month's expenses.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	if err := period.ValidatePeriod(input.Month, input.Year); err != nil {
		return nil, err
	}

	month, err := uc.monthRepo.GetOrCreate(ctx, input.UserID, input.Month, input.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve month: %w", err)
	}

	expenses, err := uc.expenseRepo.ListByMonth(ctx, input.UserID, month.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	return &ListExpensesOutput{Expenses: expenses}, nil
}
