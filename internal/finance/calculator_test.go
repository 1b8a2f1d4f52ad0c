package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bulgogipedas/isUMREnough/internal/model"
)

func TestCalculate(t *testing.T) {
	t.Parallel()

	region := model.ProvinceData{
		Name:                 "Testland",
		ExpenditurePerCapita: 2000000,
		ExpenditureFood:      900000,
		ExpenditureNonFood:   1100000,
		UMP:                  2000000,
	}

	result, ok := Calculate(5000000, 2, region)
	require.True(t, ok)

	assert.Equal(t, float64(4000000), result.TotalExpense)
	assert.Equal(t, float64(1000000), result.Balance)
	assert.Equal(t, model.StatusSurplus, result.Status)
	assert.Equal(t, float64(125), result.IncomeVsExpenseRatio)
	assert.Equal(t, float64(25), result.BalancePercentage)
	assert.Equal(t, float64(250), result.UMPComparison)
	assert.Equal(t, float64(2000000), result.MonthlyPerCapita)

	// Food and non-food figures pass through per capita, unscaled.
	assert.Equal(t, float64(900000), result.ExpenditureFood)
	assert.Equal(t, float64(1100000), result.ExpenditureNonFood)
}

func TestCalculateNoBenchmarkData(t *testing.T) {
	t.Parallel()

	region := model.ProvinceData{Name: "Empty", UMP: 3000000}

	for _, income := range []float64{0, 1, 5000000} {
		for _, dependents := range []int{1, 3, 10} {
			result, ok := Calculate(income, dependents, region)
			assert.False(t, ok)
			assert.Nil(t, result)
		}
	}
}

func TestCalculateStatusMatchesBalanceSign(t *testing.T) {
	t.Parallel()

	region := model.ProvinceData{
		Name:                 "Testland",
		ExpenditurePerCapita: 1500000,
		UMP:                  2500000,
	}

	tests := []struct {
		name       string
		income     float64
		dependents int
		wantStatus model.FinancialStatus
	}{
		{name: "surplus", income: 4000000, dependents: 2, wantStatus: model.StatusSurplus},
		{name: "deficit", income: 2000000, dependents: 2, wantStatus: model.StatusDeficit},
		{name: "exactly neutral", income: 3000000, dependents: 2, wantStatus: model.StatusNeutral},
		{name: "zero income deficit", income: 0, dependents: 1, wantStatus: model.StatusDeficit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result, ok := Calculate(tt.income, tt.dependents, region)
			require.True(t, ok)
			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Equal(t, tt.income-result.TotalExpense, result.Balance)
		})
	}
}

func TestAnalysisTextBands(t *testing.T) {
	t.Parallel()

	// Band boundaries are inclusive lower bounds.
	assert.Equal(t, AnalysisText(150), AnalysisText(300))
	assert.Equal(t, AnalysisText(120), AnalysisText(149.99))
	assert.Equal(t, AnalysisText(100), AnalysisText(119.99))
	assert.Equal(t, AnalysisText(80), AnalysisText(99.99))
	assert.Equal(t, AnalysisText(-50), AnalysisText(79.99))

	bands := []string{
		AnalysisText(200),
		AnalysisText(130),
		AnalysisText(110),
		AnalysisText(90),
		AnalysisText(50),
	}
	for i := 0; i < len(bands); i++ {
		for j := i + 1; j < len(bands); j++ {
			assert.NotEqual(t, bands[i], bands[j], "bands %d and %d overlap", i, j)
		}
	}
}
