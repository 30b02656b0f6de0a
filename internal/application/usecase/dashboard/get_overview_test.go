package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/domain/entity"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

func TestGetOverviewUseCase_Monthly(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	monthRepo := &fakeMonthRepo{}
	current, _ := monthRepo.GetOrCreate(ctx, userID, 6, 2025)
	previous, _ := monthRepo.GetOrCreate(ctx, userID, 5, 2025)

	account := entity.NewSavingsAccount(userID, "Emergency Fund", "", "", decimal.NewFromInt(1000), nil)

	repo := &fakeRepository{
		netIncome: map[uuid.UUID]decimal.Decimal{
			current.ID: decimal.NewFromInt(3000),
		},
		additional: []AdditionalIncomeRow{
			{MonthID: current.ID, Amount: decimal.NewFromInt(500)},
			{MonthID: previous.ID, Amount: decimal.NewFromInt(9999)},
		},
		expenses: []ExpenseRow{
			{MonthID: current.ID, Amount: decimal.NewFromInt(1000), CategoryName: strPtr("Housing")},
			{MonthID: current.ID, Amount: decimal.NewFromInt(500), CategoryName: strPtr("Food")},
			{MonthID: previous.ID, Amount: decimal.NewFromInt(1000), CategoryName: strPtr("Housing")},
			{MonthID: previous.ID, Amount: decimal.NewFromInt(250), CategoryName: strPtr("Food")},
		},
		accounts: []*entity.SavingsAccount{account},
		transactions: []*entity.SavingsTransaction{
			entity.NewSavingsTransaction(userID, account.ID, previous.ID, decimal.NewFromInt(200)),
		},
		subscriptions: []*entity.Subscription{
			entity.NewSubscription(userID, "Streaming", decimal.NewFromInt(10), nil),
			entity.NewSubscription(userID, "Music", decimal.NewFromInt(5), nil),
		},
	}
	cancelled := entity.NewSubscription(userID, "Gym", decimal.NewFromInt(20), nil)
	cancelled.IsActive = false
	repo.subscriptions = append(repo.subscriptions, cancelled)

	uc := NewGetOverviewUseCase(monthRepo, repo)

	output, err := uc.Execute(ctx, GetOverviewInput{UserID: userID, Month: 6, Year: 2025})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.TotalIncome.Equal(decimal.NewFromInt(3500)) {
		t.Errorf("TotalIncome = %s, want 3500", output.TotalIncome)
	}
	if !output.TotalExpenses.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("TotalExpenses = %s, want 1500", output.TotalExpenses)
	}
	if !output.NetSavings.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("NetSavings = %s, want 2000", output.NetSavings)
	}
	if !output.SubscriptionsTotal.Equal(decimal.NewFromInt(15)) {
		t.Errorf("SubscriptionsTotal = %s, want 15", output.SubscriptionsTotal)
	}
	if !output.TotalSavings.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("TotalSavings = %s, want 1200", output.TotalSavings)
	}

	if len(output.Expenses) != 2 {
		t.Fatalf("expected 2 breakdown rows, got %d", len(output.Expenses))
	}
	housing := output.Expenses[0]
	if housing.Category != "Housing" || housing.ID != "housing" {
		t.Errorf("first row = %s (%s), want Housing sorted first", housing.Category, housing.ID)
	}
	if !housing.Change.Equal(decimal.Zero) {
		t.Errorf("Housing change = %s, want 0", housing.Change)
	}
	food := output.Expenses[1]
	if food.Category != "Food" {
		t.Errorf("second row = %s, want Food", food.Category)
	}
	if !food.Change.Equal(decimal.NewFromInt(100)) {
		t.Errorf("Food change = %s, want 100 (500 vs 250)", food.Change)
	}
}

func TestGetOverviewUseCase_ChangePercent(t *testing.T) {
	tests := []struct {
		name     string
		current  int64
		previous int64
		want     int64
	}{
		{"growth against baseline", 1500, 1000, 50},
		{"spend with zero baseline reads as 100", 400, 0, 100},
		{"no spend either period reads as 0", 0, 0, 0},
		{"halved spend", 500, 1000, -50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := changePercent(decimal.NewFromInt(tt.current), decimal.NewFromInt(tt.previous))
			if !got.Equal(decimal.NewFromInt(tt.want)) {
				t.Errorf("changePercent(%d, %d) = %s, want %d", tt.current, tt.previous, got, tt.want)
			}
		})
	}
}

func TestGetOverviewUseCase_DropsCategoriesWithNoCurrentSpend(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	monthRepo := &fakeMonthRepo{}
	current, _ := monthRepo.GetOrCreate(ctx, userID, 6, 2025)
	previous, _ := monthRepo.GetOrCreate(ctx, userID, 5, 2025)

	repo := &fakeRepository{
		expenses: []ExpenseRow{
			{MonthID: current.ID, Amount: decimal.NewFromInt(100), CategoryName: strPtr("Food")},
			{MonthID: previous.ID, Amount: decimal.NewFromInt(800), CategoryName: strPtr("Travel")},
		},
	}

	uc := NewGetOverviewUseCase(monthRepo, repo)
	output, err := uc.Execute(ctx, GetOverviewInput{UserID: userID, Month: 6, Year: 2025})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Expenses) != 1 {
		t.Fatalf("expected 1 breakdown row, got %d", len(output.Expenses))
	}
	if output.Expenses[0].Category != "Food" {
		t.Errorf("breakdown row = %s, want Food; Travel had no current spend", output.Expenses[0].Category)
	}
}

func TestGetOverviewUseCase_UncategorizedFallsBackToOther(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	monthRepo := &fakeMonthRepo{}
	current, _ := monthRepo.GetOrCreate(ctx, userID, 6, 2025)

	repo := &fakeRepository{
		expenses: []ExpenseRow{
			{MonthID: current.ID, Amount: decimal.NewFromInt(75), CategoryName: nil},
		},
	}

	uc := NewGetOverviewUseCase(monthRepo, repo)
	output, err := uc.Execute(ctx, GetOverviewInput{UserID: userID, Month: 6, Year: 2025})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Expenses) != 1 {
		t.Fatalf("expected 1 breakdown row, got %d", len(output.Expenses))
	}
	if output.Expenses[0].Category != entity.FallbackCategoryName {
		t.Errorf("category = %q, want %q", output.Expenses[0].Category, entity.FallbackCategoryName)
	}
}

func TestGetOverviewUseCase_BalancesIgnoreQueriedMonth(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	monthRepo := &fakeMonthRepo{}
	january, _ := monthRepo.GetOrCreate(ctx, userID, 1, 2025)

	account := entity.NewSavingsAccount(userID, "Vacation", "", "", decimal.Zero, nil)
	repo := &fakeRepository{
		accounts: []*entity.SavingsAccount{account},
		transactions: []*entity.SavingsTransaction{
			entity.NewSavingsTransaction(userID, account.ID, january.ID, decimal.NewFromInt(400)),
		},
	}

	uc := NewGetOverviewUseCase(monthRepo, repo)

	// Querying a month with no savings activity still reports the full
	// cumulative balance.
	output, err := uc.Execute(ctx, GetOverviewInput{UserID: userID, Month: 8, Year: 2025})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !output.TotalSavings.Equal(decimal.NewFromInt(400)) {
		t.Errorf("TotalSavings = %s, want 400", output.TotalSavings)
	}
}

func TestGetOverviewUseCase_ArchivedAccounts(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	monthRepo := &fakeMonthRepo{}
	month, _ := monthRepo.GetOrCreate(ctx, userID, 6, 2025)

	active := entity.NewSavingsAccount(userID, "Active", "", "", decimal.NewFromInt(100), nil)
	archived := entity.NewSavingsAccount(userID, "Closed", "", "", decimal.NewFromInt(900), nil)
	archived.IsArchived = true

	goal := entity.NewGoal(userID, "House", decimal.NewFromInt(5000), nil)

	repo := &fakeRepository{
		accounts: []*entity.SavingsAccount{active, archived},
		transactions: []*entity.SavingsTransaction{
			entity.NewSavingsTransaction(userID, archived.ID, month.ID, decimal.NewFromInt(100)),
		},
		goals: []*entity.Goal{goal},
		goalLinks: map[uuid.UUID][]uuid.UUID{
			goal.ID: {active.ID, archived.ID},
		},
	}

	uc := NewGetOverviewUseCase(monthRepo, repo)
	output, err := uc.Execute(ctx, GetOverviewInput{UserID: userID, Month: 6, Year: 2025})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.TotalSavings.Equal(decimal.NewFromInt(100)) {
		t.Errorf("TotalSavings = %s, want 100 (archived excluded)", output.TotalSavings)
	}
	if len(output.Savings) != 1 || output.Savings[0].Name != "Active" {
		t.Errorf("savings list = %+v, want only the active account", output.Savings)
	}

	if len(output.Goals) != 1 {
		t.Fatalf("expected 1 goal, got %d", len(output.Goals))
	}
	if !output.Goals[0].Current.Equal(decimal.NewFromInt(1100)) {
		t.Errorf("goal progress = %s, want 1100 (archived still counts)", output.Goals[0].Current)
	}
}

func TestGetOverviewUseCase_AllTime(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	monthRepo := &fakeMonthRepo{}
	january, _ := monthRepo.GetOrCreate(ctx, userID, 1, 2025)
	february, _ := monthRepo.GetOrCreate(ctx, userID, 2, 2025)
	future, _ := monthRepo.GetOrCreate(ctx, userID, 12, 2025)

	repo := &fakeRepository{
		netIncome: map[uuid.UUID]decimal.Decimal{
			january.ID:  decimal.NewFromInt(1000),
			february.ID: decimal.NewFromInt(1000),
			future.ID:   decimal.NewFromInt(5000),
		},
		expenses: []ExpenseRow{
			{MonthID: january.ID, Amount: decimal.NewFromInt(300), CategoryName: strPtr("Food")},
			{MonthID: february.ID, Amount: decimal.NewFromInt(200), CategoryName: strPtr("Food")},
			{MonthID: future.ID, Amount: decimal.NewFromInt(999), CategoryName: strPtr("Food")},
		},
	}

	uc := NewGetOverviewUseCase(monthRepo, repo)
	uc.now = func() time.Time {
		return time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	}

	output, err := uc.Execute(ctx, GetOverviewInput{UserID: userID, AllTime: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.TotalIncome.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("TotalIncome = %s, want 2000 (future month excluded)", output.TotalIncome)
	}
	if !output.TotalExpenses.Equal(decimal.NewFromInt(500)) {
		t.Errorf("TotalExpenses = %s, want 500", output.TotalExpenses)
	}
	if len(output.Expenses) != 1 {
		t.Fatalf("expected 1 breakdown row, got %d", len(output.Expenses))
	}
	if !output.Expenses[0].Change.Equal(decimal.Zero) {
		t.Errorf("all-time change = %s, want 0", output.Expenses[0].Change)
	}
}

func TestGetOverviewUseCase_EmptyMonth(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	uc := NewGetOverviewUseCase(&fakeMonthRepo{}, &fakeRepository{})
	output, err := uc.Execute(ctx, GetOverviewInput{UserID: userID, Month: 4, Year: 2025})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.TotalIncome.IsZero() || !output.TotalExpenses.IsZero() || !output.NetSavings.IsZero() {
		t.Errorf("expected zero totals, got income=%s expenses=%s net=%s",
			output.TotalIncome, output.TotalExpenses, output.NetSavings)
	}
	if len(output.Expenses) != 0 || len(output.Goals) != 0 || len(output.Savings) != 0 {
		t.Error("expected empty slices for a month with no data")
	}
}

func TestGetOverviewUseCase_InvalidPeriod(t *testing.T) {
	ctx := context.Background()

	uc := NewGetOverviewUseCase(&fakeMonthRepo{}, &fakeRepository{})
	_, err := uc.Execute(ctx, GetOverviewInput{UserID: uuid.New(), Month: 13, Year: 2025})

	var periodErr *domainerror.PeriodError
	if !errors.As(err, &periodErr) {
		t.Fatalf("expected a period error, got %v", err)
	}
	if periodErr.Code != domainerror.ErrCodeInvalidMonth {
		t.Errorf("code = %s, want %s", periodErr.Code, domainerror.ErrCodeInvalidMonth)
	}
}
