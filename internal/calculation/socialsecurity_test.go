package calculation

import (
	"testing"

	"github.com/camayank/jorss-gbo-taai-sub004/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestSocialSecurityTaxability tests the three-tier taxable-benefit worksheet
func TestSocialSecurityTaxability(t *testing.T) {
	calc := NewSocialSecurityCalculator(NewTaxYearTables2025())

	tests := []struct {
		name            string
		benefits        decimal.Decimal
		otherIncome     decimal.Decimal
		taxExempt       decimal.Decimal
		filingStatus    domain.FilingStatus
		expectedTaxable decimal.Decimal
		description     string
	}{
		{
			name:            "Below first threshold",
			benefits:        decimal.NewFromInt(20000),
			otherIncome:     decimal.NewFromInt(15000),
			filingStatus:    domain.Single,
			expectedTaxable: decimal.Zero,
			description:     "Provisional income of exactly $25,000 is tier one",
		},
		{
			name:            "Middle tier at fifty percent",
			benefits:        decimal.NewFromInt(10000),
			otherIncome:     decimal.NewFromInt(25000),
			filingStatus:    domain.Single,
			expectedTaxable: decimal.NewFromInt(2500),
			description:     "Half of the excess over $25,000",
		},
		{
			name:            "Just over the second threshold",
			benefits:        decimal.NewFromInt(20000),
			otherIncome:     decimal.NewFromInt(24001),
			filingStatus:    domain.Single,
			expectedTaxable: decimal.NewFromFloat(4500.85),
			description:     "85% of the excess over $34,000 plus the tier-two amount",
		},
		{
			name:            "Capped at 85 percent of benefits",
			benefits:        decimal.NewFromInt(20000),
			otherIncome:     decimal.NewFromInt(200000),
			filingStatus:    domain.Single,
			expectedTaxable: decimal.NewFromInt(17000),
			description:     "High income can never tax more than 85% of benefits",
		},
		{
			name:            "Joint thresholds are higher",
			benefits:        decimal.NewFromInt(20000),
			otherIncome:     decimal.NewFromInt(21000),
			filingStatus:    domain.MarriedFilingJointly,
			expectedTaxable: decimal.Zero,
			description:     "Provisional $31,000 is under the $32,000 joint base",
		},
		{
			name:            "Tax-exempt interest counts toward provisional income",
			benefits:        decimal.NewFromInt(10000),
			otherIncome:     decimal.NewFromInt(22000),
			taxExempt:       decimal.NewFromInt(3000),
			filingStatus:    domain.Single,
			expectedTaxable: decimal.NewFromInt(2500),
			description:     "Municipal bond interest pulls benefits into tier two",
		},
		{
			name:            "MFS taxes from the first dollar",
			benefits:        decimal.NewFromInt(10000),
			otherIncome:     decimal.NewFromInt(1000),
			filingStatus:    domain.MarriedFilingSeparately,
			expectedTaxable: decimal.NewFromInt(5100),
			description:     "Zero MFS thresholds: 85% of provisional plus tier two, capped later",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			income := domain.Income{
				SocialSecurityBenefits: tt.benefits,
				TaxExemptInterest:      tt.taxExempt,
			}

			result := calc.Calculate(&income, tt.otherIncome, tt.filingStatus)

			assert.True(t, result.TaxableAmount.Equal(tt.expectedTaxable),
				"%s: expected %s, got %s (provisional %s)", tt.description,
				tt.expectedTaxable.StringFixed(2), result.TaxableAmount.StringFixed(2),
				result.ProvisionalIncome.StringFixed(2))
		})
	}
}

// TestSocialSecurityPreSetAmount verifies a corrected-return override is
// honored subject to the 85% cap.
func TestSocialSecurityPreSetAmount(t *testing.T) {
	calc := NewSocialSecurityCalculator(NewTaxYearTables2025())

	preset := decimal.NewFromInt(12000)
	income := domain.Income{
		SocialSecurityBenefits: decimal.NewFromInt(20000),
		TaxableSocialSecurity:  &preset,
	}

	result := calc.Calculate(&income, decimal.NewFromInt(100000), domain.Single)
	assert.True(t, result.PreSet)
	assert.True(t, result.TaxableAmount.Equal(preset),
		"preset amount should pass through, got %s", result.TaxableAmount.StringFixed(2))

	// A preset above the cap is clamped, never honored as-is.
	tooHigh := decimal.NewFromInt(19000)
	income.TaxableSocialSecurity = &tooHigh
	result = calc.Calculate(&income, decimal.NewFromInt(100000), domain.Single)
	assert.True(t, result.TaxableAmount.Equal(decimal.NewFromInt(17000)),
		"preset should clamp to 85%% of benefits, got %s", result.TaxableAmount.StringFixed(2))
}

// TestSocialSecurityNeverExceedsCap sweeps other-income levels and asserts
// the 85% ceiling holds everywhere.
func TestSocialSecurityNeverExceedsCap(t *testing.T) {
	calc := NewSocialSecurityCalculator(NewTaxYearTables2025())
	benefits := decimal.NewFromInt(28000)
	cap := benefits.Mul(decimal.NewFromFloat(0.85))

	statuses := []domain.FilingStatus{
		domain.Single,
		domain.MarriedFilingJointly,
		domain.MarriedFilingSeparately,
		domain.HeadOfHousehold,
		domain.QualifyingWidow,
	}

	for _, fs := range statuses {
		for other := 0; other <= 300000; other += 7500 {
			income := domain.Income{SocialSecurityBenefits: benefits}
			result := calc.Calculate(&income, decimal.NewFromInt(int64(other)), fs)

			assert.True(t, result.TaxableAmount.LessThanOrEqual(cap),
				"%s other=%d: taxable %s exceeds cap %s", fs, other,
				result.TaxableAmount.StringFixed(2), cap.StringFixed(2))
			assert.False(t, result.TaxableAmount.IsNegative(),
				"%s other=%d: taxable amount went negative", fs, other)
		}
	}
}
