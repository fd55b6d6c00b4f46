package calculation

import (
	"testing"

	"github.com/camayank/jorss-gbo-taai-sub004/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestIncomeAggregation verifies the categorized non-passive subtotals.
func TestIncomeAggregation(t *testing.T) {
	agg := NewIncomeAggregator()

	income := domain.Income{
		W2s: []domain.W2{
			{Wages: decimal.NewFromInt(60000)},
			{Wages: decimal.NewFromInt(25000)},
		},
		InterestIncome:     decimal.NewFromInt(1200),
		OrdinaryDividends:  decimal.NewFromInt(3000),
		QualifiedDividends: decimal.NewFromInt(2000),
		SelfEmployment: []domain.SelfEmploymentBusiness{
			{NetProfit: decimal.NewFromInt(15000)},
		},
		GamblingWinnings:         decimal.NewFromInt(500),
		UnemploymentCompensation: decimal.NewFromInt(2400),
		RetirementDistributions: []domain.RetirementDistribution{
			{GrossAmount: decimal.NewFromInt(10000), TaxableAmount: decimal.NewFromInt(8000)},
		},
	}

	totals := agg.Aggregate(&income)

	assert.True(t, totals.Wages.Equal(decimal.NewFromInt(85000)))
	assert.True(t, totals.Interest.Equal(decimal.NewFromInt(1200)))
	assert.True(t, totals.OrdinaryDividends.Equal(decimal.NewFromInt(3000)))
	assert.True(t, totals.QualifiedDividends.Equal(decimal.NewFromInt(2000)))
	assert.True(t, totals.SelfEmploymentProfit.Equal(decimal.NewFromInt(15000)))
	assert.True(t, totals.RetirementIncome.Equal(decimal.NewFromInt(8000)),
		"only the taxable portion of a distribution counts")

	expected := decimal.NewFromInt(85000 + 1200 + 3000 + 15000 + 500 + 8000 + 2400)
	assert.True(t, totals.NonPassiveTotal.Equal(expected),
		"non-passive total expected %s, got %s", expected.StringFixed(2), totals.NonPassiveTotal.StringFixed(2))
}

// TestK1RoutingByPassivity verifies passive K-1 ordinary items are excluded
// from the non-passive subtotals while portfolio items always pass through.
func TestK1RoutingByPassivity(t *testing.T) {
	agg := NewIncomeAggregator()

	income := domain.Income{
		K1s: []domain.ScheduleK1{
			{
				OrdinaryIncome:     decimal.NewFromInt(30000),
				InterestIncome:     decimal.NewFromInt(400),
				QualifiedDividends: decimal.NewFromInt(600),
				IsPassiveActivity:  false,
			},
			{
				OrdinaryIncome:    decimal.NewFromInt(20000),
				OrdinaryDividends: decimal.NewFromInt(1000),
				IsPassiveActivity: true,
			},
		},
	}

	totals := agg.Aggregate(&income)

	assert.True(t, totals.K1NonPassiveIncome.Equal(decimal.NewFromInt(30000)),
		"passive ordinary income must not appear here, got %s", totals.K1NonPassiveIncome.StringFixed(2))
	assert.True(t, totals.K1PortfolioIncome.Equal(decimal.NewFromInt(1400)),
		"portfolio items pass through from both K-1s, got %s", totals.K1PortfolioIncome.StringFixed(2))
	assert.True(t, totals.QualifiedDividends.Equal(decimal.NewFromInt(600)),
		"K-1 qualified dividends join the qualified pool")
}

// TestScheduleCLossOffsetsOtherIncome verifies a net SE loss reduces the
// non-passive total.
func TestScheduleCLossOffsetsOtherIncome(t *testing.T) {
	agg := NewIncomeAggregator()

	income := domain.Income{
		W2s: []domain.W2{{Wages: decimal.NewFromInt(50000)}},
		SelfEmployment: []domain.SelfEmploymentBusiness{
			{NetProfit: decimal.NewFromInt(-12000)},
		},
	}

	totals := agg.Aggregate(&income)

	assert.True(t, totals.NonPassiveTotal.Equal(decimal.NewFromInt(38000)),
		"expected 38000 after the loss offset, got %s", totals.NonPassiveTotal.StringFixed(2))
}
