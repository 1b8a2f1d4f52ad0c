package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bulgogipedas/isUMREnough/internal/model"
)

func TestCompare(t *testing.T) {
	t.Parallel()

	origin := model.CalculationResult{
		Balance:          1000000,
		TotalExpense:     4000000,
		MonthlyPerCapita: 2000000,
	}
	target := model.CalculationResult{
		Balance:          500000,
		TotalExpense:     4500000,
		MonthlyPerCapita: 2250000,
	}

	insight := Compare(origin, target)

	assert.Equal(t, float64(-500000), insight.DiffSurplus)
	assert.False(t, insight.IsBetter)
	assert.Equal(t, float64(12.5), insight.PercentageChange)
	assert.Equal(t, float64(250000), insight.DiffExpenditure)
}

func TestCompareTargetBetter(t *testing.T) {
	t.Parallel()

	origin := model.CalculationResult{Balance: 200000, TotalExpense: 3000000, MonthlyPerCapita: 1500000}
	target := model.CalculationResult{Balance: 900000, TotalExpense: 2400000, MonthlyPerCapita: 1200000}

	insight := Compare(origin, target)

	assert.Equal(t, float64(700000), insight.DiffSurplus)
	assert.True(t, insight.IsBetter)
	assert.Equal(t, float64(-20), insight.PercentageChange)
	assert.Equal(t, float64(-300000), insight.DiffExpenditure)
}

func TestCompareZeroOriginExpense(t *testing.T) {
	t.Parallel()

	insight := Compare(model.CalculationResult{}, model.CalculationResult{TotalExpense: 100})
	assert.Equal(t, float64(0), insight.PercentageChange)
}
