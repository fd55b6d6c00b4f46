package calculation

import (
	"github.com/camayank/jorss-gbo-taai-sub004/internal/domain"
	"github.com/shopspring/decimal"
)

// CREDIT ASSUMPTIONS:
//
// 1. Child tax credit: $2,000 per qualifying child, $500 per other
//    dependent, reduced $50 per $1,000 (or fraction) of AGI over the
//    threshold. Up to $1,700 per child is refundable as the additional
//    child tax credit, limited to 15% of earned income over $2,500.
// 2. Child and dependent care: 20% of expenses capped at $3,000 for one
//    qualifying person / $6,000 for two or more; the engine caps at $6,000
//    when two or more children are claimed.
// 3. Education: simplified AOTC shape — 100% of the first $2,000 of
//    expenses plus 25% of the next $2,000.
// 4. Energy: 30% of qualified improvement costs, capped at $1,200.
// 5. Nonrefundable ordering: foreign tax credit first, then care,
//    education, energy, then the ODC, then the CTC; each limited by
//    remaining liability. The refundable portion draws only on unused CTC.

// CreditsCalculator resolves credit eligibility and phase-outs.
type CreditsCalculator struct {
	Tables *TaxYearTables

	CTCPerChild       decimal.Decimal
	ODCPerDependent   decimal.Decimal
	RefundableCTCMax  decimal.Decimal
	EarnedIncomeFloor decimal.Decimal
	RefundableCTCRate decimal.Decimal
	CareCreditRate    decimal.Decimal
	CareExpenseCapOne decimal.Decimal
	CareExpenseCapTwo decimal.Decimal
	EnergyCreditRate  decimal.Decimal
	EnergyCreditCap   decimal.Decimal
}

// NewCreditsCalculator creates a credits calculator for one year.
func NewCreditsCalculator(tables *TaxYearTables) *CreditsCalculator {
	return &CreditsCalculator{
		Tables:            tables,
		CTCPerChild:       decimal.NewFromInt(2000),
		ODCPerDependent:   decimal.NewFromInt(500),
		RefundableCTCMax:  decimal.NewFromInt(1700),
		EarnedIncomeFloor: decimal.NewFromInt(2500),
		RefundableCTCRate: decimal.NewFromFloat(0.15),
		CareCreditRate:    decimal.NewFromFloat(0.20),
		CareExpenseCapOne: decimal.NewFromInt(3000),
		CareExpenseCapTwo: decimal.NewFromInt(6000),
		EnergyCreditRate:  decimal.NewFromFloat(0.30),
		EnergyCreditCap:   decimal.NewFromInt(1200),
	}
}

// CreditInputs carries what the credits stage needs from earlier stages.
type CreditInputs struct {
	AGI              decimal.Decimal
	EarnedIncome     decimal.Decimal
	TaxBeforeCredits decimal.Decimal
	ForeignTaxCredit decimal.Decimal
}

// Calculate applies phase-outs and the nonrefundable ordering. The returned
// TotalNonrefundable never exceeds TaxBeforeCredits; the refundable child
// credit is reported separately for the payments line.
func (cc *CreditsCalculator) Calculate(credits *domain.Credits, in CreditInputs, fs domain.FilingStatus) domain.CreditsResult {
	result := domain.CreditsResult{}

	// CTC/ODC phase-out: $50 per $1,000 (or fraction) of AGI over threshold.
	children := decimal.NewFromInt(int64(credits.QualifyingChildren))
	others := decimal.NewFromInt(int64(credits.OtherDependents))
	grossCTC := children.Mul(cc.CTCPerChild)
	grossODC := others.Mul(cc.ODCPerDependent)

	phaseout := decimal.Zero
	excess := in.AGI.Sub(cc.Tables.CTCPhaseoutThreshold[fs])
	if excess.IsPositive() {
		steps := excess.Div(decimal.NewFromInt(1000)).Ceil()
		phaseout = steps.Mul(decimal.NewFromInt(50))
	}

	combined := grossCTC.Add(grossODC).Sub(phaseout)
	if combined.IsNegative() {
		combined = decimal.Zero
	}
	// Phase-out consumes the ODC portion first.
	result.ChildTaxCredit = decimal.Min(grossCTC, combined)
	result.CreditOtherDependents = combined.Sub(result.ChildTaxCredit)

	// Child and dependent care.
	if credits.ChildCareExpenses.IsPositive() && credits.QualifyingChildren > 0 {
		cap := cc.CareExpenseCapOne
		if credits.QualifyingChildren >= 2 {
			cap = cc.CareExpenseCapTwo
		}
		result.ChildCareCredit = decimal.Min(credits.ChildCareExpenses, cap).Mul(cc.CareCreditRate)
	}

	// Education (simplified AOTC).
	if credits.EducationExpenses.IsPositive() {
		first := decimal.Min(credits.EducationExpenses, decimal.NewFromInt(2000))
		rest := decimal.Min(clampNonNegative(credits.EducationExpenses.Sub(first)), decimal.NewFromInt(2000))
		result.EducationCredit = first.Add(rest.Mul(decimal.NewFromFloat(0.25)))
	}

	// Residential energy.
	if credits.EnergyImprovements.IsPositive() {
		result.EnergyCredit = decimal.Min(credits.EnergyImprovements.Mul(cc.EnergyCreditRate), cc.EnergyCreditCap)
	}

	result.ForeignTaxCredit = clampNonNegative(in.ForeignTaxCredit)

	// Nonrefundable ordering against remaining liability.
	remaining := clampNonNegative(in.TaxBeforeCredits)
	apply := func(credit decimal.Decimal) decimal.Decimal {
		used := decimal.Min(credit, remaining)
		remaining = remaining.Sub(used)
		return used
	}
	ftcUsed := apply(result.ForeignTaxCredit)
	careUsed := apply(result.ChildCareCredit)
	eduUsed := apply(result.EducationCredit)
	energyUsed := apply(result.EnergyCredit)
	odcUsed := apply(result.CreditOtherDependents)
	ctcUsed := apply(result.ChildTaxCredit)

	result.TotalNonrefundable = ftcUsed.Add(careUsed).Add(eduUsed).Add(energyUsed).Add(odcUsed).Add(ctcUsed)

	// Additional child tax credit: only the unused child portion is
	// refundable (the ODC never is), up to $1,700 per child and 15% of
	// earned income over $2,500.
	unusedCTC := result.ChildTaxCredit.Sub(ctcUsed)
	if unusedCTC.IsPositive() && credits.QualifyingChildren > 0 {
		refundCap := children.Mul(cc.RefundableCTCMax)
		earnedBase := clampNonNegative(in.EarnedIncome.Sub(cc.EarnedIncomeFloor)).Mul(cc.RefundableCTCRate)
		result.RefundableChildCredit = decimal.Min(decimal.Min(unusedCTC, refundCap), earnedBase)
	}

	return result
}
