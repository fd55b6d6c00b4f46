package calculation

import (
	"github.com/camayank/jorss-gbo-taai-sub004/internal/domain"
	"github.com/shopspring/decimal"
)

// IncomeTotals are the categorized subtotals feeding AGI. Passive activity
// results and Social Security are excluded here; the orchestrator threads
// those in after the Form 8582 and Pub-915 stages.
type IncomeTotals struct {
	Wages                decimal.Decimal
	Interest             decimal.Decimal
	OrdinaryDividends    decimal.Decimal
	QualifiedDividends   decimal.Decimal
	SelfEmploymentProfit decimal.Decimal
	K1NonPassiveIncome   decimal.Decimal
	K1PortfolioIncome    decimal.Decimal
	GamblingWinnings     decimal.Decimal
	RetirementIncome     decimal.Decimal
	Unemployment         decimal.Decimal

	// NonPassiveTotal is the sum of everything above.
	NonPassiveTotal decimal.Decimal
}

// IncomeAggregator sums all income sources into categorized subtotals.
type IncomeAggregator struct{}

// NewIncomeAggregator creates an income aggregator.
func NewIncomeAggregator() *IncomeAggregator {
	return &IncomeAggregator{}
}

// Aggregate produces the non-passive subtotals. Schedule C losses offset
// other income; every other category is clamped at zero.
func (ia *IncomeAggregator) Aggregate(income *domain.Income) IncomeTotals {
	totals := IncomeTotals{
		Wages:                income.TotalWages(),
		Interest:             clampNonNegative(income.InterestIncome),
		OrdinaryDividends:    clampNonNegative(income.OrdinaryDividends),
		QualifiedDividends:   clampNonNegative(income.QualifiedDividends),
		SelfEmploymentProfit: income.TotalSelfEmploymentProfit(),
		GamblingWinnings:     clampNonNegative(income.GamblingWinnings),
		RetirementIncome:     TaxableRetirementIncome(income),
		Unemployment:         clampNonNegative(income.UnemploymentCompensation),
	}

	for _, k1 := range income.K1s {
		// Portfolio items pass through regardless of passivity.
		totals.K1PortfolioIncome = totals.K1PortfolioIncome.
			Add(clampNonNegative(k1.InterestIncome)).
			Add(clampNonNegative(k1.OrdinaryDividends))
		totals.QualifiedDividends = totals.QualifiedDividends.Add(clampNonNegative(k1.QualifiedDividends))

		// Non-passive ordinary and rental items flow straight to AGI; the
		// passive ones route through the Form 8582 limiter instead.
		if !k1.IsPassiveActivity {
			totals.K1NonPassiveIncome = totals.K1NonPassiveIncome.
				Add(k1.OrdinaryIncome).
				Add(k1.NetRentalIncome)
		}
	}

	totals.NonPassiveTotal = totals.Wages.
		Add(totals.Interest).
		Add(totals.OrdinaryDividends).
		Add(totals.SelfEmploymentProfit).
		Add(totals.K1NonPassiveIncome).
		Add(totals.K1PortfolioIncome).
		Add(totals.GamblingWinnings).
		Add(totals.RetirementIncome).
		Add(totals.Unemployment)

	return totals
}
