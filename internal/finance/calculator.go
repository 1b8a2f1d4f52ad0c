// Package finance computes household financial position against
// provincial expenditure and UMP benchmarks. Everything here is a pure
// function over already-ingested province data.
package finance

import "github.com/bulgogipedas/isUMREnough/internal/model"

// Calculate derives the financial position for a household of
// `dependents` people with the given monthly income in the given
// province. Returns false when the province carries no expenditure
// benchmark; callers must treat that as "cannot compute", not as zero
// cost of living.
func Calculate(income float64, dependents int, province model.ProvinceData) (*model.CalculationResult, bool) {
	if province.ExpenditurePerCapita == 0 {
		return nil, false
	}

	totalExpense := province.ExpenditurePerCapita * float64(dependents)
	balance := income - totalExpense

	var balancePercentage, ratio float64
	if totalExpense > 0 {
		balancePercentage = (balance / totalExpense) * 100
		ratio = (income / totalExpense) * 100
	}

	var umpComparison float64
	if province.UMP > 0 {
		umpComparison = (income / province.UMP) * 100
	}

	return &model.CalculationResult{
		TotalExpense:         totalExpense,
		Balance:              balance,
		BalancePercentage:    balancePercentage,
		UMPComparison:        umpComparison,
		IncomeVsExpenseRatio: ratio,
		Status:               model.StatusOf(balance),
		MonthlyPerCapita:     province.ExpenditurePerCapita,
		ExpenditureFood:      province.ExpenditureFood,
		ExpenditureNonFood:   province.ExpenditureNonFood,
	}, true
}

// AnalysisText classifies an income-vs-expense ratio into one of five
// bands with inclusive lower bounds at 150, 120, 100 and 80.
func AnalysisText(ratio float64) string {
	switch {
	case ratio >= 150:
		return "Kondisi keuangan sangat sehat. Gaji kamu jauh melebihi kebutuhan hidup standar di provinsi ini."
	case ratio >= 120:
		return "Kondisi keuangan sehat. Masih ada ruang untuk menabung dan berinvestasi."
	case ratio >= 100:
		return "Kondisi keuangan cukup. Gaji pas dengan kebutuhan, perlu bijak dalam pengeluaran."
	case ratio >= 80:
		return "Kondisi keuangan perlu perhatian. Pengeluaran melebihi pendapatan, pertimbangkan untuk mengurangi biaya."
	default:
		return "Kondisi keuangan kritis. Segera evaluasi pengeluaran atau cari sumber pendapatan tambahan."
	}
}
