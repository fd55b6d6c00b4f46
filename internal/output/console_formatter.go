package output

import (
	"bytes"
	"fmt"

	"github.com/camayank/jorss-gbo-taai-sub004/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsoleFormatter renders a human-readable computation summary.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(bd *domain.CalculationBreakdown) ([]byte, error) {
	var buf bytes.Buffer

	line := func(label string, amount decimal.Decimal) {
		fmt.Fprintf(&buf, "  %-34s %14s\n", label, FormatCurrency(amount))
	}

	fmt.Fprintf(&buf, "FEDERAL TAX CALCULATION - %d (%s)\n", bd.TaxYear, bd.FilingStatus)
	fmt.Fprintln(&buf, "=============================================")

	fmt.Fprintln(&buf, "INCOME")
	line("Total income", bd.TotalIncome)
	line("Adjustments", bd.Adjustments)
	line("Adjusted gross income", bd.AdjustedGrossIncome)
	line("Taxable Social Security", bd.TaxableSocialSecurity)
	line("Capital loss deduction", bd.CapitalLossDeduction)

	fmt.Fprintln(&buf, "DEDUCTIONS")
	if bd.Itemized {
		line("Itemized deduction", bd.DeductionUsed)
	} else {
		line("Standard deduction", bd.DeductionUsed)
	}
	line("QBI deduction", bd.QBIDeduction)
	line("Taxable income", bd.TaxableIncome)

	fmt.Fprintln(&buf, "TAX")
	line("Regular tax", bd.RegularTax)
	if bd.AlternativeMinimumTax.IsPositive() {
		line("Alternative minimum tax", bd.AlternativeMinimumTax)
	}
	if bd.SelfEmploymentTax.IsPositive() {
		line("Self-employment tax", bd.SelfEmploymentTax)
	}
	if bd.NetInvestmentIncomeTax.IsPositive() {
		line("Net investment income tax", bd.NetInvestmentIncomeTax)
	}
	if bd.AdditionalMedicareTax.IsPositive() {
		line("Additional Medicare tax", bd.AdditionalMedicareTax)
	}
	if bd.EarlyDistributionPenalty.IsPositive() {
		line("Early distribution penalty", bd.EarlyDistributionPenalty)
	}
	line("Total credits", bd.TotalCredits)
	line("Total tax", bd.TotalTax)

	fmt.Fprintln(&buf, "PAYMENTS")
	line("Total payments", bd.TotalPayments)
	if bd.RefundOrOwed.IsNegative() {
		line("Balance due", bd.RefundOrOwed.Abs())
	} else {
		line("Refund", bd.RefundOrOwed)
	}

	fmt.Fprintln(&buf, "CARRYFORWARDS")
	line("Short-term capital loss", bd.NewSTLossCarryforward)
	line("Long-term capital loss", bd.NewLTLossCarryforward)
	line("Suspended passive loss", bd.NewSuspendedPassiveLossCarryforward)
	line("AMT credit", bd.NewAMTCreditCarryforward)

	fmt.Fprintf(&buf, "  %-34s %14s\n", "Effective rate", FormatPercentage(bd.EffectiveRate))

	return buf.Bytes(), nil
}
