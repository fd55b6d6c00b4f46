package calculation

import (
	"github.com/camayank/jorss-gbo-taai-sub004/internal/domain"
	"github.com/shopspring/decimal"
)

// ForeignTaxCreditCalculator applies the Form 1116 limitation per income
// category: the credit cannot exceed US tax times the ratio of
// foreign-source taxable income to total taxable income. Excess foreign tax
// carries forward.
type ForeignTaxCreditCalculator struct{}

// NewForeignTaxCreditCalculator creates a Form 1116 calculator.
func NewForeignTaxCreditCalculator() *ForeignTaxCreditCalculator {
	return &ForeignTaxCreditCalculator{}
}

// Calculate limits the credit per category. usTax is the regular tax before
// credits; taxableIncome is the total taxable income the ratio divides by.
// A nil ForeignIncome means no foreign activity: the prior carryover simply
// rolls forward.
func (ftc *ForeignTaxCreditCalculator) Calculate(foreign *domain.ForeignIncome, carryover, usTax, taxableIncome decimal.Decimal) domain.FTCResult {
	result := domain.FTCResult{NewCarryover: clampNonNegative(carryover)}
	if foreign == nil || len(foreign.Categories) == 0 {
		return result
	}

	// The prior carryover augments the first category's paid amount; the
	// per-category split of carryovers is not tracked across years.
	remainingCarryover := result.NewCarryover
	result.NewCarryover = decimal.Zero

	for i, cat := range foreign.Categories {
		paid := clampNonNegative(cat.ForeignTaxPaid)
		if i == 0 {
			paid = paid.Add(remainingCarryover)
		}

		var limit decimal.Decimal
		if taxableIncome.IsPositive() && usTax.IsPositive() {
			ratio := clampNonNegative(cat.ForeignSourceIncome).Div(taxableIncome)
			if ratio.GreaterThan(decimal.NewFromInt(1)) {
				ratio = decimal.NewFromInt(1)
			}
			limit = usTax.Mul(ratio)
		}

		allowed := decimal.Min(paid, limit)
		result.Categories = append(result.Categories, domain.FTCCategoryResult{
			Category:            cat.Category,
			ForeignSourceIncome: cat.ForeignSourceIncome,
			ForeignTaxPaid:      cat.ForeignTaxPaid,
			Limit:               limit,
			CreditAllowed:       allowed,
		})
		result.TotalCredit = result.TotalCredit.Add(allowed)
		result.NewCarryover = result.NewCarryover.Add(paid.Sub(allowed))
	}

	return result
}
