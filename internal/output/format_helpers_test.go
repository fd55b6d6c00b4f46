package output

import (
	"strings"
	"testing"

	"github.com/camayank/jorss-gbo-taai-sub004/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$1234.50", FormatCurrency(decimal.NewFromFloat(1234.5)))
	assert.Equal(t, "$0.00", FormatCurrency(decimal.Zero))
	assert.Equal(t, "$-250.75", FormatCurrency(decimal.NewFromFloat(-250.75)))
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "22.00%", FormatPercentage(decimal.NewFromFloat(0.22)))
	assert.Equal(t, "7.35%", FormatPercentage(decimal.NewFromFloat(0.0735)))
	assert.Equal(t, "0.00%", FormatPercentage(decimal.Zero))
}

func TestNewFormatterSelection(t *testing.T) {
	assert.Equal(t, "json", NewFormatter("json").Name())
	assert.Equal(t, "console", NewFormatter("console").Name())
	assert.Equal(t, "console", NewFormatter("unknown").Name())
}

func TestConsoleFormatterRendersSections(t *testing.T) {
	bd := &domain.CalculationBreakdown{
		TaxYear:             2025,
		FilingStatus:        domain.Single,
		TotalIncome:         decimal.NewFromInt(90000),
		AdjustedGrossIncome: decimal.NewFromInt(88000),
		DeductionUsed:       decimal.NewFromInt(15000),
		TaxableIncome:       decimal.NewFromInt(73000),
		RegularTax:          decimal.NewFromInt(11000),
		TotalTax:            decimal.NewFromInt(11000),
		TotalPayments:       decimal.NewFromInt(12000),
		RefundOrOwed:        decimal.NewFromInt(1000),
	}

	out, err := ConsoleFormatter{}.Format(bd)
	require.NoError(t, err)
	text := string(out)

	assert.Contains(t, text, "FEDERAL TAX CALCULATION - 2025 (single)")
	assert.Contains(t, text, "Standard deduction")
	assert.Contains(t, text, "Refund")
	assert.Contains(t, text, "$1000.00")
	assert.NotContains(t, text, "Balance due")
}

func TestConsoleFormatterBalanceDue(t *testing.T) {
	bd := &domain.CalculationBreakdown{
		TaxYear:      2025,
		FilingStatus: domain.Single,
		RefundOrOwed: decimal.NewFromInt(-2500),
	}

	out, err := ConsoleFormatter{}.Format(bd)
	require.NoError(t, err)

	assert.Contains(t, string(out), "Balance due")
	assert.Contains(t, string(out), "$2500.00")
}

func TestJSONFormatterRoundTrips(t *testing.T) {
	bd := &domain.CalculationBreakdown{
		TaxYear:      2025,
		FilingStatus: domain.MarriedFilingJointly,
		TotalTax:     decimal.NewFromFloat(12345.67),
	}

	out, err := JSONFormatter{}.Format(bd)
	require.NoError(t, err)

	text := string(out)
	assert.True(t, strings.Contains(text, `"tax_year": 2025`))
	assert.True(t, strings.Contains(text, "12345.67"))
}
