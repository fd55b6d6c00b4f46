package calculation

import (
	"testing"

	"github.com/camayank/jorss-gbo-taai-sub004/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestForeignTaxCreditLimitation tests the per-category Form 1116 ratio limit
func TestForeignTaxCreditLimitation(t *testing.T) {
	calc := NewForeignTaxCreditCalculator()

	tests := []struct {
		name              string
		foreign           *domain.ForeignIncome
		carryover         decimal.Decimal
		usTax             decimal.Decimal
		taxableIncome     decimal.Decimal
		expectedCredit    decimal.Decimal
		expectedCarryover decimal.Decimal
		description       string
	}{
		{
			name: "Limit binds",
			foreign: &domain.ForeignIncome{Categories: []domain.ForeignIncomeCategory{
				{Category: "passive", ForeignSourceIncome: decimal.NewFromInt(20000), ForeignTaxPaid: decimal.NewFromInt(5000)},
			}},
			usTax:             decimal.NewFromInt(20000),
			taxableIncome:     decimal.NewFromInt(100000),
			expectedCredit:    decimal.NewFromInt(4000),
			expectedCarryover: decimal.NewFromInt(1000),
			description:       "Credit capped at US tax times the income ratio",
		},
		{
			name: "Paid under the limit",
			foreign: &domain.ForeignIncome{Categories: []domain.ForeignIncomeCategory{
				{Category: "passive", ForeignSourceIncome: decimal.NewFromInt(20000), ForeignTaxPaid: decimal.NewFromInt(2000)},
			}},
			usTax:             decimal.NewFromInt(20000),
			taxableIncome:     decimal.NewFromInt(100000),
			expectedCredit:    decimal.NewFromInt(2000),
			expectedCarryover: decimal.Zero,
			description:       "Full credit when paid is within the limit",
		},
		{
			name: "Two categories limited independently",
			foreign: &domain.ForeignIncome{Categories: []domain.ForeignIncomeCategory{
				{Category: "passive", ForeignSourceIncome: decimal.NewFromInt(10000), ForeignTaxPaid: decimal.NewFromInt(3000)},
				{Category: "general", ForeignSourceIncome: decimal.NewFromInt(30000), ForeignTaxPaid: decimal.NewFromInt(4000)},
			}},
			usTax:             decimal.NewFromInt(20000),
			taxableIncome:     decimal.NewFromInt(100000),
			expectedCredit:    decimal.NewFromInt(6000),
			expectedCarryover: decimal.NewFromInt(1000),
			description:       "passive limited to 2000, general allowed 4000 under its 6000 limit",
		},
		{
			name: "Prior carryover augments the first category",
			foreign: &domain.ForeignIncome{Categories: []domain.ForeignIncomeCategory{
				{Category: "passive", ForeignSourceIncome: decimal.NewFromInt(20000), ForeignTaxPaid: decimal.NewFromInt(1000)},
			}},
			carryover:         decimal.NewFromInt(2000),
			usTax:             decimal.NewFromInt(20000),
			taxableIncome:     decimal.NewFromInt(100000),
			expectedCredit:    decimal.NewFromInt(3000),
			expectedCarryover: decimal.Zero,
			description:       "Carryover is usable up to the category limit",
		},
		{
			name:              "No foreign activity rolls the carryover",
			foreign:           nil,
			carryover:         decimal.NewFromInt(1500),
			usTax:             decimal.NewFromInt(20000),
			taxableIncome:     decimal.NewFromInt(100000),
			expectedCredit:    decimal.Zero,
			expectedCarryover: decimal.NewFromInt(1500),
			description:       "Nil foreign income preserves the carryover",
		},
		{
			name: "Zero taxable income allows nothing",
			foreign: &domain.ForeignIncome{Categories: []domain.ForeignIncomeCategory{
				{Category: "passive", ForeignSourceIncome: decimal.NewFromInt(5000), ForeignTaxPaid: decimal.NewFromInt(1000)},
			}},
			usTax:             decimal.Zero,
			taxableIncome:     decimal.Zero,
			expectedCredit:    decimal.Zero,
			expectedCarryover: decimal.NewFromInt(1000),
			description:       "No US tax means no limit capacity; paid tax carries over",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := calc.Calculate(tt.foreign, tt.carryover, tt.usTax, tt.taxableIncome)

			assert.True(t, result.TotalCredit.Equal(tt.expectedCredit),
				"%s: credit expected %s, got %s", tt.description,
				tt.expectedCredit.StringFixed(2), result.TotalCredit.StringFixed(2))
			assert.True(t, result.NewCarryover.Equal(tt.expectedCarryover),
				"%s: carryover expected %s, got %s", tt.description,
				tt.expectedCarryover.StringFixed(2), result.NewCarryover.StringFixed(2))
		})
	}
}
