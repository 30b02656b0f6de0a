package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/application/usecase/period"
	"github.com/budgetbook/backend/internal/domain/entity"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	UserID     uuid.UUID
	Month      int
	Year       int
	CategoryID uuid.UUID
	Name       string
	Amount     decimal.Decimal
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles expense creation.
type CreateExpenseUseCase struct {
	monthRepo    adapter.MonthRepository
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(
	monthRepo adapter.MonthRepository,
	expenseRepo adapter.ExpenseRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		monthRepo:    monthRepo,
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute records an expense against the month and category.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if err := period.ValidatePeriod(input.Month, input.Year); err != nil {
		return nil, err
	}
	if input.Name == "" {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeMissingName,
			"expense name is required",
			domainerror.ErrMissingName,
		)
	}

	category, err := uc.categoryRepo.FindByID(ctx, input.UserID, input.CategoryID)
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

	month, err := uc.monthRepo.GetOrCreate(ctx, input.UserID, input.Month, input.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve month: %w", err)
	}

	expense := entity.NewExpense(input.UserID, month.ID, input.CategoryID, input.Name, input.Amount)
	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &CreateExpenseOutput{Expense: expense}, nil
}
