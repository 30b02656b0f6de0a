package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/entity"
)

// ListCategoriesInput represents the input for listing expense categories.
type ListCategoriesInput struct {
	UserID uuid.UUID
}

// ListCategoriesOutput represents the output of listing expense categories.
type ListCategoriesOutput struct {
	Categories []*entity.ExpenseCategory
}

// ListCategoriesUseCase handles listing a user's expense categories,
// seeding the default set on first use.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute lists the user's categories. A user with none gets the defaults
// seeded first.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	categories, err := uc.categoryRepo.List(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	if len(categories) == 0 {
		categories, err = uc.categoryRepo.SeedDefaults(ctx, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to seed default categories: %w", err)
		}
	}

	return &ListCategoriesOutput{Categories: categories}, nil
}
