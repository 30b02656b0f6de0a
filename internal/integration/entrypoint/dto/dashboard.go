package dto

import (
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/application/usecase/dashboard"
)

// OverviewResponse represents the dashboard overview response.
type OverviewResponse struct {
	TotalIncome        float64                     `json:"totalIncome"`
	TotalExpenses      float64                     `json:"totalExpenses"`
	NetSavings         float64                     `json:"netSavings"`
	TotalSavings       float64                     `json:"totalSavings"`
	SubscriptionsTotal float64                     `json:"subscriptionsTotal"`
	Goals              []OverviewGoalResponse      `json:"goals"`
	Debts              []OverviewDebtResponse      `json:"debts"`
	Savings            []OverviewSavingsResponse   `json:"savings"`
	Expenses           []OverviewBreakdownResponse `json:"expenses"`
}

// OverviewGoalResponse represents one goal in the overview.
type OverviewGoalResponse struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Target  float64 `json:"target"`
	Current float64 `json:"current"`
	Due     *string `json:"due,omitempty"`
}

// OverviewDebtResponse represents one debt in the overview.
type OverviewDebtResponse struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Balance float64  `json:"balance"`
	Rate    *float64 `json:"rate,omitempty"`
}

// OverviewSavingsResponse represents one savings account in the overview.
// Target is omitted when the account has none or it is zero.
type OverviewSavingsResponse struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Saved  float64  `json:"saved"`
	Target *float64 `json:"target,omitempty"`
}

// OverviewBreakdownResponse represents one expense category slice.
type OverviewBreakdownResponse struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Change   float64 `json:"change"`
}

// ToOverviewResponse converts the overview output to its response DTO.
// Decimal amounts become floats here and nowhere earlier.
func ToOverviewResponse(output *dashboard.GetOverviewOutput) OverviewResponse {
	goals := make([]OverviewGoalResponse, len(output.Goals))
	for i, g := range output.Goals {
		var due *string
		if g.TargetDate != nil {
			formatted := g.TargetDate.Format("2006-01-02")
			due = &formatted
		}
		goals[i] = OverviewGoalResponse{
			ID:      g.ID.String(),
			Title:   g.Name,
			Target:  toFloat(g.Target),
			Current: toFloat(g.Current),
			Due:     due,
		}
	}

	debts := make([]OverviewDebtResponse, len(output.Debts))
	for i, d := range output.Debts {
		var rate *float64
		if d.InterestRate != nil {
			v := toFloat(*d.InterestRate)
			rate = &v
		}
		debts[i] = OverviewDebtResponse{
			ID:      d.ID.String(),
			Name:    d.Name,
			Balance: toFloat(d.Principal),
			Rate:    rate,
		}
	}

	savings := make([]OverviewSavingsResponse, len(output.Savings))
	for i, s := range output.Savings {
		var target *float64
		if s.Target != nil && !s.Target.IsZero() {
			v := toFloat(*s.Target)
			target = &v
		}
		savings[i] = OverviewSavingsResponse{
			ID:     s.ID.String(),
			Name:   s.Name,
			Saved:  toFloat(s.Saved),
			Target: target,
		}
	}

	expenses := make([]OverviewBreakdownResponse, len(output.Expenses))
	for i, e := range output.Expenses {
		expenses[i] = OverviewBreakdownResponse{
			ID:       e.ID,
			Category: e.Category,
			Amount:   toFloat(e.Amount),
			Change:   toFloat(e.Change),
		}
	}

	return OverviewResponse{
		TotalIncome:        toFloat(output.TotalIncome),
		TotalExpenses:      toFloat(output.TotalExpenses),
		NetSavings:         toFloat(output.NetSavings),
		TotalSavings:       toFloat(output.TotalSavings),
		SubscriptionsTotal: toFloat(output.SubscriptionsTotal),
		Goals:              goals,
		Debts:              debts,
		Savings:            savings,
		Expenses:           expenses,
	}
}

// ChangesResponse represents the month-over-month trend response.
type ChangesResponse struct {
	Data []ChangeRowResponse `json:"data"`
}

// ChangeRowResponse represents one month in the trend. Deltas are null on
// the earliest row.
type ChangeRowResponse struct {
	ID            string   `json:"id"`
	Label         string   `json:"label"`
	Month         int      `json:"month"`
	Year          int      `json:"year"`
	Income        float64  `json:"income"`
	Expenses      float64  `json:"expenses"`
	Savings       float64  `json:"savings"`
	Subscriptions float64  `json:"subscriptions"`
	DeltaIncome   *float64 `json:"deltaIncome"`
	DeltaExpenses *float64 `json:"deltaExpenses"`
	DeltaSavings  *float64 `json:"deltaSavings"`
}

// ToChangesResponse converts the changes output to its response DTO.
func ToChangesResponse(output *dashboard.GetChangesOutput) ChangesResponse {
	data := make([]ChangeRowResponse, len(output.Rows))
	for i, row := range output.Rows {
		data[i] = ChangeRowResponse{
			ID:            row.MonthID.String(),
			Label:         row.Label,
			Month:         row.Month,
			Year:          row.Year,
			Income:        toFloat(row.Income),
			Expenses:      toFloat(row.Expenses),
			Savings:       toFloat(row.Savings),
			Subscriptions: toFloat(row.Subscriptions),
			DeltaIncome:   toFloatPtr(row.DeltaIncome),
			DeltaExpenses: toFloatPtr(row.DeltaExpenses),
			DeltaSavings:  toFloatPtr(row.DeltaSavings),
		}
	}
	return ChangesResponse{Data: data}
}

func toFloat(d decimal.Decimal) float64 {
	v, _ := d.Float64()
	return v
}

func toFloatPtr(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	v := toFloat(*d)
	return &v
}
