package calculation

import (
	"github.com/camayank/jorss-gbo-taai-sub004/internal/domain"
	"github.com/shopspring/decimal"
)

// AMTCalculator runs the Form 6251 parallel computation: rebuild AMTI from
// taxable income plus preference add-backs, apply the exemption with its own
// phase-out, and compare tentative minimum tax against regular tax.
type AMTCalculator struct {
	Tables    *TaxYearTables
	Liability *LiabilityCalculator

	LowRate  decimal.Decimal
	HighRate decimal.Decimal
}

// NewAMTCalculator creates an AMT calculator sharing the year's tables.
func NewAMTCalculator(tables *TaxYearTables, liability *LiabilityCalculator) *AMTCalculator {
	return &AMTCalculator{
		Tables:    tables,
		Liability: liability,
		LowRate:   decimal.NewFromFloat(0.26),
		HighRate:  decimal.NewFromFloat(0.28),
	}
}

// AMTInputs are the pieces of the regular computation AMT starts from.
type AMTInputs struct {
	TaxableIncome decimal.Decimal
	// StandardDeductionUsed is added back in full when the filer did not
	// itemize; SALTDeducted is added back when they did.
	StandardDeductionUsed decimal.Decimal
	SALTDeducted          decimal.Decimal
	// PreferentialIncome keeps its capital-gain rates inside AMT.
	PreferentialIncome decimal.Decimal
	RegularTax         decimal.Decimal
	PriorYearAMTCredit decimal.Decimal
}

// Calculate returns the Form 6251 result, including the minimum tax credit
// roll-forward. The prior-year credit offsets regular tax only down to the
// tentative minimum tax; current-year AMT adds to the carryforward.
func (ac *AMTCalculator) Calculate(items *domain.AMTItems, in AMTInputs, fs domain.FilingStatus) domain.AMTResult {
	amti := in.TaxableIncome.
		Add(clampNonNegative(in.StandardDeductionUsed)).
		Add(clampNonNegative(in.SALTDeducted))

	if items != nil {
		amti = amti.
			Add(clampNonNegative(items.ISOExerciseSpread)).
			Add(clampNonNegative(items.PrivateActivityBondInterest)).
			Add(items.DepreciationAdjustment).
			Add(items.PassiveActivityAdjustment)
	}

	exemption := ac.Tables.AMTExemption[fs]
	phaseoutExcess := amti.Sub(ac.Tables.AMTPhaseoutThreshold[fs])
	if phaseoutExcess.IsPositive() {
		exemption = exemption.Sub(phaseoutExcess.Mul(ac.Tables.AMTPhaseoutRate))
		if exemption.IsNegative() {
			exemption = decimal.Zero
		}
	}

	base := amti.Sub(exemption)
	if base.IsNegative() {
		base = decimal.Zero
	}

	// Capital gains keep their preferential rates inside AMT; the 26/28%
	// schedule applies to the remainder.
	pref := decimal.Min(clampNonNegative(in.PreferentialIncome), base)
	ordinaryBase := base.Sub(pref)

	threshold28 := ac.Tables.AMT28RateThreshold[fs]
	var tmt decimal.Decimal
	if ordinaryBase.LessThanOrEqual(threshold28) {
		tmt = ordinaryBase.Mul(ac.LowRate)
	} else {
		tmt = threshold28.Mul(ac.LowRate).
			Add(ordinaryBase.Sub(threshold28).Mul(ac.HighRate))
	}
	tmt = tmt.Add(ac.Liability.preferentialTax(ordinaryBase, pref, fs))

	result := domain.AMTResult{
		AMTI:                amti,
		Exemption:           exemption,
		TentativeMinimumTax: tmt,
	}

	if tmt.GreaterThan(in.RegularTax) {
		result.AMTOwed = tmt.Sub(in.RegularTax)
	}

	// Minimum tax credit: usable only in years regular tax exceeds TMT,
	// limited to that excess.
	priorCredit := clampNonNegative(in.PriorYearAMTCredit)
	if result.AMTOwed.IsZero() && priorCredit.IsPositive() {
		headroom := in.RegularTax.Sub(tmt)
		result.AMTCreditUsed = decimal.Min(priorCredit, clampNonNegative(headroom))
	}
	result.NewCreditCarryfwd = priorCredit.Sub(result.AMTCreditUsed).Add(result.AMTOwed)

	return result
}
