package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/entity"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// UpdateExpenseInput represents the input for updating an expense. Nil
// fields are left unchanged.
type UpdateExpenseInput struct {
	UserID     uuid.UUID
	ID         uuid.UUID
	CategoryID *uuid.UUID
	Name       *string
	Amount     *decimal.Decimal
}

// UpdateExpenseOutput represents the output of updating an expense.
type UpdateExpenseOutput struct {
	Expense *entity.Expense
}

// UpdateExpenseUseCase handles updating expenses.
type UpdateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.ExpenseRepository, categoryRepo adapter.CategoryRepository) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute applies the partial update to the expense.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, input.UserID, input.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}
	if expense == nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}

	if input.CategoryID != nil {
		category, err := uc.categoryRepo.FindByID(ctx, input.UserID, *input.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to find category: %w", err)
		}
		if category == nil {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeCategoryNotFound,
				"expense category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		expense.CategoryID = *input.CategoryID
	}
	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeMissingName,
				"expense name is required",
				domainerror.ErrMissingName,
			)
		}
		expense.Name = *input.Name
	}
	if input.Amount != nil {
		expense.Amount = *input.Amount
	}

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return &UpdateExpenseOutput{Expense: expense}, nil
}
