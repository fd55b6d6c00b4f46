package calculation

import (
	"github.com/camayank/jorss-gbo-taai-sub004/internal/domain"
	"github.com/shopspring/decimal"
)

// SelfEmploymentResult carries the Schedule SE outcome. HalfDeduction is the
// above-the-line adjustment that feeds AGI.
type SelfEmploymentResult struct {
	NetEarnings            decimal.Decimal
	SocialSecurityTax      decimal.Decimal
	MedicareTax            decimal.Decimal
	TotalSelfEmploymentTax decimal.Decimal
	HalfDeduction          decimal.Decimal
}

// SelfEmploymentTaxCalculator computes Schedule SE tax: 92.35% of net profit
// is subject to 12.4% Social Security (capped at the wage base, reduced by
// W-2 Social Security wages already taxed) and 2.9% Medicare (uncapped).
type SelfEmploymentTaxCalculator struct {
	Tables *TaxYearTables

	NetEarningsFactor decimal.Decimal
	SSRate            decimal.Decimal
	MedicareRate      decimal.Decimal
}

// NewSelfEmploymentTaxCalculator creates a Schedule SE calculator.
func NewSelfEmploymentTaxCalculator(tables *TaxYearTables) *SelfEmploymentTaxCalculator {
	return &SelfEmploymentTaxCalculator{
		Tables:            tables,
		NetEarningsFactor: decimal.NewFromFloat(0.9235),
		SSRate:            decimal.NewFromFloat(0.124),
		MedicareRate:      decimal.NewFromFloat(0.029),
	}
}

// Calculate computes SE tax on combined Schedule C profit. Net losses and
// net earnings under the $400 filing floor produce zero tax.
func (sec *SelfEmploymentTaxCalculator) Calculate(income *domain.Income) SelfEmploymentResult {
	profit := income.TotalSelfEmploymentProfit()
	if !profit.IsPositive() {
		return SelfEmploymentResult{}
	}

	netEarnings := profit.Mul(sec.NetEarningsFactor)
	if netEarnings.LessThan(decimal.NewFromInt(400)) {
		return SelfEmploymentResult{}
	}

	// W-2 Social Security wages consume wage-base capacity first.
	ssCapacity := sec.Tables.SSWageBase.Sub(income.TotalWages())
	if ssCapacity.IsNegative() {
		ssCapacity = decimal.Zero
	}
	ssTaxable := decimal.Min(netEarnings, ssCapacity)

	ssTax := ssTaxable.Mul(sec.SSRate)
	medicareTax := netEarnings.Mul(sec.MedicareRate)
	total := ssTax.Add(medicareTax)

	return SelfEmploymentResult{
		NetEarnings:            netEarnings,
		SocialSecurityTax:      ssTax,
		MedicareTax:            medicareTax,
		TotalSelfEmploymentTax: total,
		HalfDeduction:          total.Div(decimal.NewFromInt(2)),
	}
}
