// Package period contains period resolution use cases.
package period

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/entity"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// ResolveInput represents the input for resolving a month.
type ResolveInput struct {
	UserID uuid.UUID
	Month  int
	Year   int
}

// ResolveOutput represents the output of resolving a month.
type ResolveOutput struct {
	Month *entity.Month
}

// ResolverUseCase resolves a (month, year) pair to the user's month row,
// creating it when absent.
type ResolverUseCase struct {
	monthRepo adapter.MonthRepository
}

// NewResolverUseCase creates a new ResolverUseCase instance.
func NewResolverUseCase(monthRepo adapter.MonthRepository) *ResolverUseCase {
	return &ResolverUseCase{
		monthRepo: monthRepo,
	}
}

// Execute validates the period and returns its month row. Resolving the same
// period twice returns the same row.
func (uc *ResolverUseCase) Execute(ctx context.Context, input ResolveInput) (*ResolveOutput, error) {
	if err := ValidatePeriod(input.Month, input.Year); err != nil {
		return nil, err
	}

	month, err := uc.monthRepo.GetOrCreate(ctx, input.UserID, input.Month, input.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve month: %w", err)
	}

	return &ResolveOutput{Month: month}, nil
}

// ValidatePeriod checks that month and year form a usable period.
func ValidatePeriod(month, year int) error {
	if !entity.ValidMonth(month) {
		return domainerror.NewPeriodError(
			domainerror.ErrCodeInvalidMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidMonth,
		)
	}
	if year < 1970 || year > 9999 {
		return domainerror.NewPeriodError(
			domainerror.ErrCodeInvalidYear,
			"year must be a four-digit calendar year",
			domainerror.ErrInvalidYear,
		)
	}
	return nil
}
