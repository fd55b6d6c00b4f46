package calculation

import (
	"testing"

	"github.com/camayank/jorss-gbo-taai-sub004/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestChildTaxCreditPhaseout tests the $50-per-$1,000 AGI phase-out
func TestChildTaxCreditPhaseout(t *testing.T) {
	calc := NewCreditsCalculator(NewTaxYearTables2025())

	tests := []struct {
		name        string
		agi         decimal.Decimal
		children    int
		others      int
		fs          domain.FilingStatus
		expectedCTC decimal.Decimal
		expectedODC decimal.Decimal
		description string
	}{
		{
			name:        "No phaseout below threshold",
			agi:         decimal.NewFromInt(150000),
			children:    2,
			fs:          domain.Single,
			expectedCTC: decimal.NewFromInt(4000),
			expectedODC: decimal.Zero,
			description: "Full $2,000 per child under $200k",
		},
		{
			name:        "Partial phaseout",
			agi:         decimal.NewFromInt(220000),
			children:    2,
			fs:          domain.Single,
			expectedCTC: decimal.NewFromInt(3000),
			expectedODC: decimal.Zero,
			description: "20 steps of $50 reduce the credit by $1,000",
		},
		{
			name:        "Fraction of a thousand rounds up",
			agi:         decimal.NewFromInt(200001),
			children:    1,
			fs:          domain.Single,
			expectedCTC: decimal.NewFromInt(1950),
			expectedODC: decimal.Zero,
			description: "One dollar over costs a full $50 step",
		},
		{
			name:        "Phaseout consumes the ODC first",
			agi:         decimal.NewFromInt(208000),
			children:    1,
			others:      1,
			fs:          domain.Single,
			expectedCTC: decimal.NewFromInt(2000),
			expectedODC: decimal.NewFromInt(100),
			description: "$400 phaseout comes out of the $500 ODC",
		},
		{
			name:        "Joint threshold is 400k",
			agi:         decimal.NewFromInt(350000),
			children:    1,
			fs:          domain.MarriedFilingJointly,
			expectedCTC: decimal.NewFromInt(2000),
			expectedODC: decimal.Zero,
			description: "No phaseout for MFJ under $400k",
		},
		{
			name:        "Fully phased out",
			agi:         decimal.NewFromInt(500000),
			children:    1,
			fs:          domain.Single,
			expectedCTC: decimal.Zero,
			expectedODC: decimal.Zero,
			description: "High AGI eliminates the credit entirely",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			credits := domain.Credits{
				QualifyingChildren: tt.children,
				OtherDependents:    tt.others,
			}
			in := CreditInputs{
				AGI:              tt.agi,
				EarnedIncome:     tt.agi,
				TaxBeforeCredits: decimal.NewFromInt(100000),
			}

			result := calc.Calculate(&credits, in, tt.fs)

			assert.True(t, result.ChildTaxCredit.Equal(tt.expectedCTC),
				"%s: CTC expected %s, got %s", tt.description,
				tt.expectedCTC.StringFixed(2), result.ChildTaxCredit.StringFixed(2))
			assert.True(t, result.CreditOtherDependents.Equal(tt.expectedODC),
				"%s: ODC expected %s, got %s", tt.description,
				tt.expectedODC.StringFixed(2), result.CreditOtherDependents.StringFixed(2))
		})
	}
}

// TestNonrefundableCreditsLimitedByLiability verifies credits never exceed
// tax before credits and apply in the documented order.
func TestNonrefundableCreditsLimitedByLiability(t *testing.T) {
	calc := NewCreditsCalculator(NewTaxYearTables2025())

	credits := domain.Credits{
		QualifyingChildren: 2,
		ChildCareExpenses:  decimal.NewFromInt(8000),
		EducationExpenses:  decimal.NewFromInt(4000),
		EnergyImprovements: decimal.NewFromInt(10000),
	}
	in := CreditInputs{
		AGI:              decimal.NewFromInt(80000),
		EarnedIncome:     decimal.NewFromInt(80000),
		TaxBeforeCredits: decimal.NewFromInt(3000),
		ForeignTaxCredit: decimal.NewFromInt(1000),
	}

	result := calc.Calculate(&credits, in, domain.MarriedFilingJointly)

	assert.True(t, result.TotalNonrefundable.Equal(decimal.NewFromInt(3000)),
		"nonrefundable total must equal the liability cap, got %s",
		result.TotalNonrefundable.StringFixed(2))
}

// TestRefundableChildCredit tests the additional child tax credit limits
func TestRefundableChildCredit(t *testing.T) {
	calc := NewCreditsCalculator(NewTaxYearTables2025())

	tests := []struct {
		name         string
		children     int
		earnedIncome decimal.Decimal
		taxBefore    decimal.Decimal
		expected     decimal.Decimal
		description  string
	}{
		{
			name:         "Low liability leaves a refundable remainder",
			children:     2,
			earnedIncome: decimal.NewFromInt(40000),
			taxBefore:    decimal.NewFromInt(1000),
			expected:     decimal.NewFromInt(3000),
			description:  "Unused $3,000 within both the per-child and earned-income caps",
		},
		{
			name:         "Per-child cap binds",
			children:     1,
			earnedIncome: decimal.NewFromInt(60000),
			taxBefore:    decimal.Zero,
			expected:     decimal.NewFromInt(1700),
			description:  "Only $1,700 of the $2,000 is refundable",
		},
		{
			name:         "Earned income formula binds",
			children:     2,
			earnedIncome: decimal.NewFromInt(12500),
			taxBefore:    decimal.Zero,
			expected:     decimal.NewFromInt(1500),
			description:  "15% of earnings over $2,500",
		},
		{
			name:         "No earnings means nothing refundable",
			children:     1,
			earnedIncome: decimal.Zero,
			taxBefore:    decimal.Zero,
			expected:     decimal.Zero,
			description:  "The refundable portion requires earned income",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			credits := domain.Credits{QualifyingChildren: tt.children}
			in := CreditInputs{
				AGI:              decimal.NewFromInt(50000),
				EarnedIncome:     tt.earnedIncome,
				TaxBeforeCredits: tt.taxBefore,
			}

			result := calc.Calculate(&credits, in, domain.Single)

			assert.True(t, result.RefundableChildCredit.Equal(tt.expected),
				"%s: expected %s, got %s", tt.description,
				tt.expected.StringFixed(2), result.RefundableChildCredit.StringFixed(2))
		})
	}
}

// TestRefundableExcludesOtherDependents verifies the ODC is consumed by
// liability ahead of the CTC and never leaks into the refundable portion.
func TestRefundableExcludesOtherDependents(t *testing.T) {
	calc := NewCreditsCalculator(NewTaxYearTables2025())

	tests := []struct {
		name               string
		taxBefore          decimal.Decimal
		expectedRefundable decimal.Decimal
		expectedTotal      decimal.Decimal
		description        string
	}{
		{
			name:               "Liability absorbs ODC then part of the CTC",
			taxBefore:          decimal.NewFromInt(2200),
			expectedRefundable: decimal.NewFromInt(800),
			expectedTotal:      decimal.NewFromInt(2200),
			description:        "$1,000 ODC and $1,200 CTC used; only the $800 unused CTC refunds",
		},
		{
			name:               "Liability smaller than the ODC",
			taxBefore:          decimal.NewFromInt(500),
			expectedRefundable: decimal.NewFromInt(1700),
			expectedTotal:      decimal.NewFromInt(500),
			description:        "Unused ODC dollars stay nonrefundable; the CTC refunds at its cap",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			credits := domain.Credits{
				QualifyingChildren: 1,
				OtherDependents:    2,
			}
			in := CreditInputs{
				AGI:              decimal.NewFromInt(100000),
				EarnedIncome:     decimal.NewFromInt(100000),
				TaxBeforeCredits: tt.taxBefore,
			}

			result := calc.Calculate(&credits, in, domain.Single)

			assert.True(t, result.RefundableChildCredit.Equal(tt.expectedRefundable),
				"%s: refundable expected %s, got %s", tt.description,
				tt.expectedRefundable.StringFixed(2), result.RefundableChildCredit.StringFixed(2))
			assert.True(t, result.TotalNonrefundable.Equal(tt.expectedTotal),
				"%s: nonrefundable expected %s, got %s", tt.description,
				tt.expectedTotal.StringFixed(2), result.TotalNonrefundable.StringFixed(2))
		})
	}
}

// TestEducationAndEnergyCredits verifies the per-credit formulas.
func TestEducationAndEnergyCredits(t *testing.T) {
	calc := NewCreditsCalculator(NewTaxYearTables2025())

	credits := domain.Credits{
		EducationExpenses:  decimal.NewFromInt(4000),
		EnergyImprovements: decimal.NewFromInt(3000),
	}
	in := CreditInputs{
		AGI:              decimal.NewFromInt(70000),
		EarnedIncome:     decimal.NewFromInt(70000),
		TaxBeforeCredits: decimal.NewFromInt(50000),
	}

	result := calc.Calculate(&credits, in, domain.Single)

	// 100% of the first 2,000 plus 25% of the next 2,000.
	assert.True(t, result.EducationCredit.Equal(decimal.NewFromInt(2500)),
		"education expected 2500, got %s", result.EducationCredit.StringFixed(2))
	// 30% of 3,000, under the 1,200 cap.
	assert.True(t, result.EnergyCredit.Equal(decimal.NewFromInt(900)),
		"energy expected 900, got %s", result.EnergyCredit.StringFixed(2))

	// Energy cap.
	credits.EnergyImprovements = decimal.NewFromInt(10000)
	result = calc.Calculate(&credits, in, domain.Single)
	assert.True(t, result.EnergyCredit.Equal(decimal.NewFromInt(1200)),
		"energy cap expected 1200, got %s", result.EnergyCredit.StringFixed(2))
}
