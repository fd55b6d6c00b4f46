package calculation

import (
	"github.com/camayank/jorss-gbo-taai-sub004/internal/domain"
	"github.com/shopspring/decimal"
)

// QBICalculator applies the section 199A deduction: 20% of qualified
// business income, subject to the W-2-wage/UBIA limitation and the SSTB
// exclusion above the taxable-income threshold, and always capped at 20% of
// taxable income less net capital gain.
type QBICalculator struct {
	Tables *TaxYearTables

	DeductionRate decimal.Decimal
	WageRate      decimal.Decimal
	WageUBIARate  decimal.Decimal
	UBIARate      decimal.Decimal
}

// NewQBICalculator creates a section 199A calculator.
func NewQBICalculator(tables *TaxYearTables) *QBICalculator {
	return &QBICalculator{
		Tables:        tables,
		DeductionRate: decimal.NewFromFloat(0.20),
		WageRate:      decimal.NewFromFloat(0.50),
		WageUBIARate:  decimal.NewFromFloat(0.25),
		UBIARate:      decimal.NewFromFloat(0.025),
	}
}

// qbiComponent is one trade or business feeding the deduction.
type qbiComponent struct {
	income  decimal.Decimal
	w2Wages decimal.Decimal
	ubia    decimal.Decimal
	isSSTB  bool
}

// Calculate computes the QBI deduction. taxableIncomeBeforeQBI is taxable
// income computed without this deduction; netCapitalGain is qualified
// dividends plus net long-term gain taxed at preferential rates.
func (qc *QBICalculator) Calculate(income *domain.Income, taxableIncomeBeforeQBI, netCapitalGain decimal.Decimal, fs domain.FilingStatus) domain.QBIResult {
	components := qc.gatherComponents(income)
	if len(components) == 0 {
		return domain.QBIResult{}
	}

	threshold := qc.Tables.QBIThreshold[fs]
	phaseRange := qc.Tables.QBIPhaseInRange[fs]
	excess := taxableIncomeBeforeQBI.Sub(threshold)

	// phaseFraction is 0 below the threshold, 1 past the full phase-in range.
	phaseFraction := decimal.Zero
	if excess.IsPositive() {
		phaseFraction = decimal.Min(excess.Div(phaseRange), decimal.NewFromInt(1))
	}

	result := domain.QBIResult{}

	// Loss businesses net against the positive pool before the 20% applies,
	// apportioned pro rata across the businesses with positive QBI.
	positiveQBI := decimal.Zero
	lossQBI := decimal.Zero
	for _, comp := range components {
		result.QualifiedBusinessIncome = result.QualifiedBusinessIncome.Add(comp.income)
		if comp.income.IsPositive() {
			positiveQBI = positiveQBI.Add(comp.income)
		} else {
			lossQBI = lossQBI.Add(comp.income.Neg())
		}
	}
	if !result.QualifiedBusinessIncome.IsPositive() {
		// A net-negative QBI pool carries no current deduction.
		return result
	}
	retainedShare := decimal.NewFromInt(1)
	if lossQBI.IsPositive() {
		retainedShare = retainedShare.Sub(lossQBI.Div(positiveQBI))
	}

	var deduction decimal.Decimal
	for _, comp := range components {
		if !comp.income.IsPositive() {
			continue
		}

		if comp.isSSTB && phaseFraction.Equal(decimal.NewFromInt(1)) {
			// Fully phased-in SSTB: excluded entirely.
			result.SSTBExcluded = true
			continue
		}

		componentIncome := comp.income.Mul(retainedShare)
		if comp.isSSTB && phaseFraction.IsPositive() {
			// Inside the phase-in band only the applicable percentage of an
			// SSTB's items counts.
			applicable := decimal.NewFromInt(1).Sub(phaseFraction)
			componentIncome = componentIncome.Mul(applicable)
			comp.w2Wages = comp.w2Wages.Mul(applicable)
			comp.ubia = comp.ubia.Mul(applicable)
		}

		tentative := componentIncome.Mul(qc.DeductionRate)
		if !phaseFraction.IsPositive() {
			deduction = deduction.Add(tentative)
			continue
		}

		wageLimit := decimal.Max(
			comp.w2Wages.Mul(qc.WageRate),
			comp.w2Wages.Mul(qc.WageUBIARate).Add(comp.ubia.Mul(qc.UBIARate)),
		)
		result.WageUBIALimit = result.WageUBIALimit.Add(wageLimit)

		if tentative.LessThanOrEqual(wageLimit) {
			deduction = deduction.Add(tentative)
			continue
		}
		// Phase in the wage limitation across the band.
		reduction := tentative.Sub(wageLimit).Mul(phaseFraction)
		deduction = deduction.Add(tentative.Sub(reduction))
	}

	if !deduction.IsPositive() {
		result.Deduction = decimal.Zero
		return result
	}

	result.DeductionBeforeLimit = deduction
	result.IncomeLimit = clampNonNegative(taxableIncomeBeforeQBI.Sub(netCapitalGain)).Mul(qc.DeductionRate)
	result.Deduction = decimal.Min(deduction, result.IncomeLimit)
	return result
}

func (qc *QBICalculator) gatherComponents(income *domain.Income) []qbiComponent {
	var components []qbiComponent
	for _, b := range income.SelfEmployment {
		if b.NetProfit.IsZero() {
			continue
		}
		components = append(components, qbiComponent{
			income:  b.NetProfit,
			w2Wages: clampNonNegative(b.W2WagesPaid),
			ubia:    clampNonNegative(b.UBIA),
			isSSTB:  b.IsSSTB,
		})
	}
	for _, k1 := range income.K1s {
		if k1.Section199AIncome.IsZero() {
			continue
		}
		components = append(components, qbiComponent{
			income:  k1.Section199AIncome,
			w2Wages: clampNonNegative(k1.W2WagesPaid),
			ubia:    clampNonNegative(k1.UBIA),
			isSSTB:  k1.IsSSTB,
		})
	}
	return components
}
