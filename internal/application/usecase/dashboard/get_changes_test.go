package dashboard

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/domain/entity"
)

func TestParseLimit(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"all", MaxChangesLimit},
		{"6", 6},
		{"1", 1},
		{"12", 12},
		{"13", DefaultChangesLimit},
		{"0", DefaultChangesLimit},
		{"-3", DefaultChangesLimit},
		{"", DefaultChangesLimit},
		{"abc", DefaultChangesLimit},
	}

	for _, tt := range tests {
		if got := parseLimit(tt.raw); got != tt.want {
			t.Errorf("parseLimit(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestGetChangesUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	monthRepo := &fakeMonthRepo{}
	december, _ := monthRepo.GetOrCreate(ctx, userID, 12, 2024)
	january, _ := monthRepo.GetOrCreate(ctx, userID, 1, 2025)
	february, _ := monthRepo.GetOrCreate(ctx, userID, 2, 2025)

	account := entity.NewSavingsAccount(userID, "Fund", "", "", decimal.Zero, nil)
	repo := &fakeRepository{
		netIncome: map[uuid.UUID]decimal.Decimal{
			december.ID: decimal.NewFromInt(2000),
			january.ID:  decimal.NewFromInt(2000),
			february.ID: decimal.NewFromInt(2500),
		},
		additional: []AdditionalIncomeRow{
			{MonthID: january.ID, Amount: decimal.NewFromInt(100)},
		},
		expenses: []ExpenseRow{
			{MonthID: december.ID, Amount: decimal.NewFromInt(800), CategoryName: strPtr("Housing")},
			{MonthID: january.ID, Amount: decimal.NewFromInt(900), CategoryName: strPtr("Housing")},
			{MonthID: february.ID, Amount: decimal.NewFromInt(700), CategoryName: strPtr("Housing")},
		},
		transactions: []*entity.SavingsTransaction{
			entity.NewSavingsTransaction(userID, account.ID, january.ID, decimal.NewFromInt(150)),
		},
		subscriptions: []*entity.Subscription{
			entity.NewSubscription(userID, "Streaming", decimal.NewFromInt(25), nil),
		},
	}

	uc := NewGetChangesUseCase(monthRepo, repo)
	output, err := uc.Execute(ctx, GetChangesInput{UserID: userID, Limit: "12"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(output.Rows))
	}

	t.Run("rows are chronological with period labels", func(t *testing.T) {
		wantLabels := []string{"Dec 2024", "Jan 2025", "Feb 2025"}
		for i, want := range wantLabels {
			if output.Rows[i].Label != want {
				t.Errorf("row %d label = %q, want %q", i, output.Rows[i].Label, want)
			}
		}
	})

	t.Run("income includes additional entries", func(t *testing.T) {
		if !output.Rows[1].Income.Equal(decimal.NewFromInt(2100)) {
			t.Errorf("January income = %s, want 2100", output.Rows[1].Income)
		}
	})

	t.Run("earliest row has nil deltas", func(t *testing.T) {
		first := output.Rows[0]
		if first.DeltaIncome != nil || first.DeltaExpenses != nil || first.DeltaSavings != nil {
			t.Error("expected nil deltas on the earliest row")
		}
	})

	t.Run("deltas compare against the previous row", func(t *testing.T) {
		second := output.Rows[1]
		if second.DeltaIncome == nil || !second.DeltaIncome.Equal(decimal.NewFromInt(100)) {
			t.Errorf("January income delta = %v, want 100", second.DeltaIncome)
		}
		if second.DeltaExpenses == nil || !second.DeltaExpenses.Equal(decimal.NewFromInt(100)) {
			t.Errorf("January expenses delta = %v, want 100", second.DeltaExpenses)
		}
		if second.DeltaSavings == nil || !second.DeltaSavings.Equal(decimal.NewFromInt(150)) {
			t.Errorf("January savings delta = %v, want 150", second.DeltaSavings)
		}

		third := output.Rows[2]
		if third.DeltaIncome == nil || !third.DeltaIncome.Equal(decimal.NewFromInt(400)) {
			t.Errorf("February income delta = %v, want 400", third.DeltaIncome)
		}
		if third.DeltaExpenses == nil || !third.DeltaExpenses.Equal(decimal.NewFromInt(-200)) {
			t.Errorf("February expenses delta = %v, want -200", third.DeltaExpenses)
		}
	})

	t.Run("subscriptions column repeats the current active total", func(t *testing.T) {
		for i, row := range output.Rows {
			if !row.Subscriptions.Equal(decimal.NewFromInt(25)) {
				t.Errorf("row %d subscriptions = %s, want 25", i, row.Subscriptions)
			}
		}
	})
}

func TestGetChangesUseCase_LimitWindow(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	monthRepo := &fakeMonthRepo{}
	for month := 1; month <= 6; month++ {
		if _, err := monthRepo.GetOrCreate(ctx, userID, month, 2025); err != nil {
			t.Fatalf("seed month %d: %v", month, err)
		}
	}

	uc := NewGetChangesUseCase(monthRepo, &fakeRepository{})
	output, err := uc.Execute(ctx, GetChangesInput{UserID: userID, Limit: "2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(output.Rows))
	}
	if output.Rows[0].Month != 5 || output.Rows[1].Month != 6 {
		t.Errorf("window = (%d, %d), want the two most recent months (5, 6)",
			output.Rows[0].Month, output.Rows[1].Month)
	}
}

func TestGetChangesUseCase_NoRecordedMonths(t *testing.T) {
	ctx := context.Background()

	uc := NewGetChangesUseCase(&fakeMonthRepo{}, &fakeRepository{})
	output, err := uc.Execute(ctx, GetChangesInput{UserID: uuid.New(), Limit: "12"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Rows == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(output.Rows) != 0 {
		t.Errorf("expected 0 rows, got %d", len(output.Rows))
	}
}
