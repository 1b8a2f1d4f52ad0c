package finance

import "github.com/bulgogipedas/isUMREnough/internal/model"

// Compare derives the differential insight between an origin and a
// target calculation. Both results must come from Calculate; the
// caller guarantees neither is absent.
func Compare(origin, target model.CalculationResult) model.ComparisonInsight {
	diffSurplus := target.Balance - origin.Balance

	// Negative change means costs dropped in the target province.
	var percentageChange float64
	if origin.TotalExpense > 0 {
		percentageChange = ((target.TotalExpense - origin.TotalExpense) / origin.TotalExpense) * 100
	}

	return model.ComparisonInsight{
		DiffSurplus:      diffSurplus,
		IsBetter:         diffSurplus > 0,
		PercentageChange: percentageChange,
		DiffExpenditure:  target.MonthlyPerCapita - origin.MonthlyPerCapita,
	}
}
