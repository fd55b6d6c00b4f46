package calculation

import (
	"github.com/camayank/jorss-gbo-taai-sub004/internal/domain"
	"github.com/shopspring/decimal"
)

// LiabilityCalculator applies the ordinary bracket schedule, the 0/15/20%
// preferential-rate stack for qualified dividends and net long-term gain,
// and the investment/earned-income surtaxes.
type LiabilityCalculator struct {
	Tables *TaxYearTables

	NIITRate               decimal.Decimal
	AdditionalMedicareRate decimal.Decimal
}

// NewLiabilityCalculator creates a liability calculator for one year's tables.
func NewLiabilityCalculator(tables *TaxYearTables) *LiabilityCalculator {
	return &LiabilityCalculator{
		Tables:                 tables,
		NIITRate:               decimal.NewFromFloat(0.038),
		AdditionalMedicareRate: decimal.NewFromFloat(0.009),
	}
}

// OrdinaryTax walks the bracket schedule over taxable income.
func (lc *LiabilityCalculator) OrdinaryTax(taxableIncome decimal.Decimal, fs domain.FilingStatus) decimal.Decimal {
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	var tax decimal.Decimal
	for _, bracket := range lc.Tables.BracketsFor(fs) {
		if taxableIncome.LessThanOrEqual(bracket.Min) {
			break
		}
		incomeInBracket := decimal.Min(taxableIncome, bracket.Max).Sub(bracket.Min)
		if incomeInBracket.GreaterThan(decimal.Zero) {
			tax = tax.Add(incomeInBracket.Mul(bracket.Rate))
		}
	}
	return tax
}

// TaxWithPreferentialStacking taxes ordinary income through the bracket
// schedule and stacks preferential income (qualified dividends plus net
// long-term gain) on top at the 0/15/20% capital-gain rates.
func (lc *LiabilityCalculator) TaxWithPreferentialStacking(taxableIncome, preferentialIncome decimal.Decimal, fs domain.FilingStatus) (total, ordinaryTax, preferentialTax decimal.Decimal) {
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, decimal.Zero, decimal.Zero
	}

	pref := decimal.Min(clampNonNegative(preferentialIncome), taxableIncome)
	ordinaryPortion := taxableIncome.Sub(pref)

	ordinaryTax = lc.OrdinaryTax(ordinaryPortion, fs)
	preferentialTax = lc.preferentialTax(ordinaryPortion, pref, fs)
	return ordinaryTax.Add(preferentialTax), ordinaryTax, preferentialTax
}

// preferentialTax taxes the preferential slice stacked from stackBase up.
func (lc *LiabilityCalculator) preferentialTax(stackBase, pref decimal.Decimal, fs domain.FilingStatus) decimal.Decimal {
	if !pref.IsPositive() {
		return decimal.Zero
	}

	zeroMax := lc.Tables.LTCGZeroRateMax[fs]
	fifteenMax := lc.Tables.LTCGFifteenRateMax[fs]
	top := stackBase.Add(pref)

	atZero := decimal.Min(top, zeroMax).Sub(stackBase)
	if atZero.IsNegative() {
		atZero = decimal.Zero
	}
	atFifteen := decimal.Min(top, fifteenMax).Sub(decimal.Max(stackBase, zeroMax))
	if atFifteen.IsNegative() {
		atFifteen = decimal.Zero
	}
	atTwenty := pref.Sub(atZero).Sub(atFifteen)
	if atTwenty.IsNegative() {
		atTwenty = decimal.Zero
	}

	return atFifteen.Mul(decimal.NewFromFloat(0.15)).Add(atTwenty.Mul(decimal.NewFromFloat(0.20)))
}

// MarginalRate returns the ordinary bracket rate of the last taxable dollar.
func (lc *LiabilityCalculator) MarginalRate(taxableIncome decimal.Decimal, fs domain.FilingStatus) decimal.Decimal {
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	rate := decimal.Zero
	for _, bracket := range lc.Tables.BracketsFor(fs) {
		if taxableIncome.GreaterThan(bracket.Min) {
			rate = bracket.Rate
		}
	}
	return rate
}

// NetInvestmentIncomeTax is 3.8% of the lesser of net investment income and
// the MAGI excess over the status threshold.
func (lc *LiabilityCalculator) NetInvestmentIncomeTax(netInvestmentIncome, magi decimal.Decimal, fs domain.FilingStatus) decimal.Decimal {
	excess := magi.Sub(lc.Tables.NIITThreshold[fs])
	if !excess.IsPositive() || !netInvestmentIncome.IsPositive() {
		return decimal.Zero
	}
	return decimal.Min(netInvestmentIncome, excess).Mul(lc.NIITRate)
}

// AdditionalMedicareTax is the 0.9% surtax on Medicare wages plus SE
// earnings above the status threshold.
func (lc *LiabilityCalculator) AdditionalMedicareTax(medicareWages, seEarnings decimal.Decimal, fs domain.FilingStatus) decimal.Decimal {
	earned := medicareWages.Add(clampNonNegative(seEarnings))
	excess := earned.Sub(lc.Tables.AdditionalMedicareThreshold[fs])
	if !excess.IsPositive() {
		return decimal.Zero
	}
	return excess.Mul(lc.AdditionalMedicareRate)
}
