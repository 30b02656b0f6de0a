package period

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/domain/entity"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// fakeMonthRepo keeps month rows in memory, keyed per user and period.
type fakeMonthRepo struct {
	months map[string]*entity.Month
}

func newFakeMonthRepo() *fakeMonthRepo {
	return &fakeMonthRepo{months: make(map[string]*entity.Month)}
}

func monthKey(userID uuid.UUID, month, year int) string {
	return fmt.Sprintf("%s/%d/%d", userID, year, month)
}

func (r *fakeMonthRepo) GetOrCreate(_ context.Context, userID uuid.UUID, month, year int) (*entity.Month, error) {
	key := monthKey(userID, month, year)
	if existing, ok := r.months[key]; ok {
		return existing, nil
	}
	created := entity.NewMonth(userID, month, year)
	r.months[key] = created
	return created, nil
}

func (r *fakeMonthRepo) Find(_ context.Context, userID uuid.UUID, month, year int) (*entity.Month, error) {
	return r.months[monthKey(userID, month, year)], nil
}

func (r *fakeMonthRepo) ListRecent(_ context.Context, _ uuid.UUID, _ int) ([]*entity.Month, error) {
	return nil, nil
}

func (r *fakeMonthRepo) ListThrough(_ context.Context, _ uuid.UUID, _, _ int) ([]*entity.Month, error) {
	return nil, nil
}

func TestResolverUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("creates the month row on first access", func(t *testing.T) {
		uc := NewResolverUseCase(newFakeMonthRepo())

		output, err := uc.Execute(ctx, ResolveInput{UserID: userID, Month: 3, Year: 2025})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Month.Month != 3 || output.Month.Year != 2025 {
			t.Errorf("resolved (%d, %d), want (3, 2025)", output.Month.Month, output.Month.Year)
		}
		if output.Month.UserID != userID {
			t.Errorf("resolved user %s, want %s", output.Month.UserID, userID)
		}
	})

	t.Run("resolving the same period twice returns the same row", func(t *testing.T) {
		uc := NewResolverUseCase(newFakeMonthRepo())

		first, err := uc.Execute(ctx, ResolveInput{UserID: userID, Month: 7, Year: 2024})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.Execute(ctx, ResolveInput{UserID: userID, Month: 7, Year: 2024})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.Month.ID != second.Month.ID {
			t.Errorf("expected identical rows, got %s and %s", first.Month.ID, second.Month.ID)
		}
	})

	t.Run("different users get different rows for the same period", func(t *testing.T) {
		uc := NewResolverUseCase(newFakeMonthRepo())

		mine, err := uc.Execute(ctx, ResolveInput{UserID: userID, Month: 5, Year: 2025})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		theirs, err := uc.Execute(ctx, ResolveInput{UserID: uuid.New(), Month: 5, Year: 2025})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if mine.Month.ID == theirs.Month.ID {
			t.Error("expected distinct rows per user")
		}
	})

	t.Run("rejects invalid month", func(t *testing.T) {
		uc := NewResolverUseCase(newFakeMonthRepo())

		for _, month := range []int{0, 13, -5} {
			_, err := uc.Execute(ctx, ResolveInput{UserID: userID, Month: month, Year: 2025})
			if !errors.Is(err, domainerror.ErrInvalidMonth) {
				t.Errorf("month %d: expected ErrInvalidMonth, got %v", month, err)
			}
		}
	})

	t.Run("rejects out-of-range year", func(t *testing.T) {
		uc := NewResolverUseCase(newFakeMonthRepo())

		for _, year := range []int{1969, 10000} {
			_, err := uc.Execute(ctx, ResolveInput{UserID: userID, Month: 6, Year: year})
			if !errors.Is(err, domainerror.ErrInvalidYear) {
				t.Errorf("year %d: expected ErrInvalidYear, got %v", year, err)
			}
		}
	})
}

func TestValidatePeriod(t *testing.T) {
	if err := ValidatePeriod(1, 1970); err != nil {
		t.Errorf("ValidatePeriod(1, 1970) = %v, want nil", err)
	}
	if err := ValidatePeriod(12, 9999); err != nil {
		t.Errorf("ValidatePeriod(12, 9999) = %v, want nil", err)
	}

	var periodErr *domainerror.PeriodError
	err := ValidatePeriod(0, 2025)
	if !errors.As(err, &periodErr) || periodErr.Code != domainerror.ErrCodeInvalidMonth {
		t.Errorf("ValidatePeriod(0, 2025) = %v, want invalid month error", err)
	}
	err = ValidatePeriod(6, 0)
	if !errors.As(err, &periodErr) || periodErr.Code != domainerror.ErrCodeInvalidYear {
		t.Errorf("ValidatePeriod(6, 0) = %v, want invalid year error", err)
	}
}
