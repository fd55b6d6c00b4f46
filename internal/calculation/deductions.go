package calculation

import (
	"github.com/camayank/jorss-gbo-taai-sub004/internal/domain"
	"github.com/shopspring/decimal"
)

// DeductionResult is the standard-vs-itemized resolution.
type DeductionResult struct {
	StandardDeduction decimal.Decimal
	ItemizedDeduction decimal.Decimal
	DeductionUsed     decimal.Decimal
	Itemized          bool
	// SALTDeducted is the state-and-local component actually deducted; AMT
	// adds it back.
	SALTDeducted decimal.Decimal
}

// DeductionCalculator resolves the standard-vs-itemized choice and computes
// the above-the-line adjustments.
type DeductionCalculator struct {
	Tables *TaxYearTables

	MedicalAGIFloor        decimal.Decimal
	CharitableAGICap       decimal.Decimal
	StudentLoanInterestCap decimal.Decimal
}

// NewDeductionCalculator creates a deduction calculator for one year.
func NewDeductionCalculator(tables *TaxYearTables) *DeductionCalculator {
	return &DeductionCalculator{
		Tables:                 tables,
		MedicalAGIFloor:        decimal.NewFromFloat(0.075),
		CharitableAGICap:       decimal.NewFromFloat(0.60),
		StudentLoanInterestCap: decimal.NewFromInt(2500),
	}
}

// Adjustments sums the above-the-line items (excluding the half-SE-tax
// deduction, which the orchestrator supplies from Schedule SE).
func (dc *DeductionCalculator) Adjustments(deductions *domain.Deductions) decimal.Decimal {
	return decimal.Min(clampNonNegative(deductions.StudentLoanInterest), dc.StudentLoanInterestCap).
		Add(clampNonNegative(deductions.EducatorExpenses)).
		Add(clampNonNegative(deductions.HSAContributions)).
		Add(clampNonNegative(deductions.IRAContributions))
}

// Resolve picks the larger of standard and itemized (unless itemizing is
// forced) and reports the components AMT needs.
func (dc *DeductionCalculator) Resolve(ret *domain.TaxReturn, agi decimal.Decimal) DeductionResult {
	fs := ret.Taxpayer.FilingStatus

	standard := dc.Tables.StandardDeduction[fs]
	additional := dc.Tables.AdditionalStdDeduction[fs]
	for i := 0; i < ret.Taxpayer.Seniors65Plus(); i++ {
		standard = standard.Add(additional)
	}

	itemized, salt := dc.itemize(ret, agi)

	result := DeductionResult{
		StandardDeduction: standard,
		ItemizedDeduction: itemized,
	}

	if ret.Deductions.ForceItemize || itemized.GreaterThan(standard) {
		result.DeductionUsed = itemized
		result.Itemized = true
		result.SALTDeducted = salt
	} else {
		result.DeductionUsed = standard
	}
	return result
}

// itemize totals the Schedule A components: medical above the 7.5% AGI
// floor, SALT under the cap, mortgage interest, charitable gifts under the
// 60% AGI ceiling, and gambling losses limited to winnings.
func (dc *DeductionCalculator) itemize(ret *domain.TaxReturn, agi decimal.Decimal) (total, salt decimal.Decimal) {
	d := &ret.Deductions

	medicalFloor := agi.Mul(dc.MedicalAGIFloor)
	medical := clampNonNegative(d.MedicalExpenses).Sub(medicalFloor)
	if medical.IsNegative() {
		medical = decimal.Zero
	}

	salt = decimal.Min(clampNonNegative(d.StateLocalTaxes), dc.Tables.SALTCap)

	charitable := decimal.Min(
		clampNonNegative(d.CharitableContributions),
		clampNonNegative(agi).Mul(dc.CharitableAGICap),
	)

	gamblingLosses := decimal.Min(
		clampNonNegative(ret.Income.GamblingLosses),
		clampNonNegative(ret.Income.GamblingWinnings),
	)

	total = medical.
		Add(salt).
		Add(clampNonNegative(d.MortgageInterest)).
		Add(charitable).
		Add(gamblingLosses)
	return total, salt
}
