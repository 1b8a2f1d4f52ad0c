package model

import "time"

// FinancialStatus classifies the sign of income minus total expense.
type FinancialStatus string

const (
	StatusSurplus FinancialStatus = "surplus"
	StatusDeficit FinancialStatus = "deficit"
	StatusNeutral FinancialStatus = "neutral"
)

// StatusOf returns the status for a balance value.
func StatusOf(balance float64) FinancialStatus {
	switch {
	case balance > 0:
		return StatusSurplus
	case balance < 0:
		return StatusDeficit
	default:
		return StatusNeutral
	}
}

// Label returns the Indonesian display label for the status.
func (s FinancialStatus) Label() string {
	switch s {
	case StatusSurplus:
		return "Surplus (Lebih)"
	case StatusDeficit:
		return "Defisit (Kurang)"
	default:
		return "Seimbang"
	}
}

// CalculationResult is a pure projection of (income, dependents,
// ProvinceData). All percentage fields are expressed as 0-100+ values.
type CalculationResult struct {
	TotalExpense         float64         `json:"total_expense"`
	Balance              float64         `json:"balance"`
	BalancePercentage    float64         `json:"balance_percentage"`
	UMPComparison        float64         `json:"ump_comparison"`
	IncomeVsExpenseRatio float64         `json:"income_vs_expense_ratio"`
	Status               FinancialStatus `json:"status"`
	MonthlyPerCapita     float64         `json:"monthly_per_capita"`
	ExpenditureFood      float64         `json:"expenditure_food"`
	ExpenditureNonFood   float64         `json:"expenditure_non_food"`
}

// ComparisonInsight is the differential between two calculation results.
// DiffSurplus and DiffExpenditure are target minus origin.
type ComparisonInsight struct {
	DiffSurplus      float64 `json:"diff_surplus"`
	IsBetter         bool    `json:"is_better"`
	PercentageChange float64 `json:"percentage_change"`
	DiffExpenditure  float64 `json:"diff_expenditure"`
}

// CalculationRecord is a persisted calculation, kept for history listings.
type CalculationRecord struct {
	ID         string            `json:"id"`
	ProvinceID string            `json:"province_id"`
	Income     float64           `json:"income"`
	Dependents int               `json:"dependents"`
	Result     CalculationResult `json:"result"`
	CreatedAt  time.Time         `json:"created_at"`
}
