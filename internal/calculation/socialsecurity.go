package calculation

import (
	"github.com/camayank/jorss-gbo-taai-sub004/internal/domain"
	"github.com/shopspring/decimal"
)

// SocialSecurityCalculator determines the federally taxable portion of
// Social Security benefits under the Pub. 915 three-tier worksheet.
//
// Provisional income = other AGI-contributing income + tax-exempt interest
// + half of gross benefits. Tier bases by filing status:
//   - Single / HOH / QW: (25000, 34000)
//   - MFJ:               (32000, 44000)
//   - MFS:               (0, 0) in all years
//
// The taxable amount never exceeds 85% of gross benefits.
type SocialSecurityCalculator struct {
	Tables *TaxYearTables
}

// NewSocialSecurityCalculator creates a calculator bound to a year's tier bases.
func NewSocialSecurityCalculator(tables *TaxYearTables) *SocialSecurityCalculator {
	return &SocialSecurityCalculator{Tables: tables}
}

// ProvisionalIncome computes otherIncome + taxExemptInterest + 0.5 * benefits.
func (ssc *SocialSecurityCalculator) ProvisionalIncome(otherIncome, taxExemptInterest, benefits decimal.Decimal) decimal.Decimal {
	half := benefits.Mul(decimal.NewFromFloat(0.5))
	return otherIncome.Add(taxExemptInterest).Add(half)
}

// Calculate returns the taxable portion of benefits. When the return already
// carries a pre-set taxable amount (corrected returns), that value is honored
// subject to the 85% cap and the calculator does not recompute.
func (ssc *SocialSecurityCalculator) Calculate(income *domain.Income, otherIncome decimal.Decimal, filingStatus domain.FilingStatus) domain.SocialSecurityResult {
	benefits := clampNonNegative(income.SocialSecurityBenefits)
	cap := benefits.Mul(decimal.NewFromFloat(0.85))

	result := domain.SocialSecurityResult{
		GrossBenefits:     benefits,
		ProvisionalIncome: ssc.ProvisionalIncome(otherIncome, clampNonNegative(income.TaxExemptInterest), benefits),
	}

	if income.TaxableSocialSecurity != nil {
		result.PreSet = true
		result.TaxableAmount = decimal.Min(clampNonNegative(*income.TaxableSocialSecurity), cap)
		return result
	}

	if benefits.IsZero() {
		return result
	}

	base1 := ssc.Tables.SSTierBase1[filingStatus]
	base2 := ssc.Tables.SSTierBase2[filingStatus]
	provisional := result.ProvisionalIncome

	var taxable decimal.Decimal
	switch {
	case provisional.LessThanOrEqual(base1):
		taxable = decimal.Zero
	case provisional.LessThanOrEqual(base2):
		taxable = provisional.Sub(base1).Mul(decimal.NewFromFloat(0.5))
	default:
		tier2Portion := decimal.Min(
			base2.Sub(base1).Mul(decimal.NewFromFloat(0.5)),
			benefits.Mul(decimal.NewFromFloat(0.5)),
		)
		taxable = provisional.Sub(base2).Mul(decimal.NewFromFloat(0.85)).Add(tier2Portion)
	}

	result.TaxableAmount = decimal.Min(taxable, cap)
	return result
}
