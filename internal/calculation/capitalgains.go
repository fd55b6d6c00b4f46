package calculation

import (
	"fmt"

	"github.com/camayank/jorss-gbo-taai-sub004/internal/domain"
	"github.com/shopspring/decimal"
)

// CapitalGainsCalculator performs the Schedule D netting and multi-year
// carryforward allocation under IRC sections 1211 and 1212.
type CapitalGainsCalculator struct {
	// AnnualLossLimit is the regular $3,000 cap; MFS uses half.
	AnnualLossLimit    decimal.Decimal
	AnnualLossLimitMFS decimal.Decimal
}

// NewCapitalGainsCalculator creates a calculator with the statutory limits.
func NewCapitalGainsCalculator() *CapitalGainsCalculator {
	return &CapitalGainsCalculator{
		AnnualLossLimit:    decimal.NewFromInt(3000),
		AnnualLossLimitMFS: decimal.NewFromInt(1500),
	}
}

// Calculate nets short- and long-term activity from every source on the
// return, applies the annual loss limit, and allocates the excess back into
// carryforward buckets by character. It never mutates the input Income.
func (cgc *CapitalGainsCalculator) Calculate(income *domain.Income, filingStatus domain.FilingStatus) (domain.CapitalGainsResult, error) {
	stCarryforward := clampNonNegative(income.ShortTermLossCarryforward)
	ltCarryforward := clampNonNegative(income.LongTermLossCarryforward)

	stGains := clampNonNegative(income.ShortTermGains)
	stLosses := clampNonNegative(income.ShortTermLosses).Add(stCarryforward)
	ltGains := clampNonNegative(income.LongTermGains)
	ltLosses := clampNonNegative(income.LongTermLosses).Add(ltCarryforward)

	// Brokerage and crypto dispositions carry signed gain/loss; split each
	// into the gain or loss column of its holding-period bucket.
	addSigned := func(amount decimal.Decimal, longTerm bool) {
		switch {
		case amount.IsPositive() && longTerm:
			ltGains = ltGains.Add(amount)
		case amount.IsPositive():
			stGains = stGains.Add(amount)
		case amount.IsNegative() && longTerm:
			ltLosses = ltLosses.Add(amount.Abs())
		case amount.IsNegative():
			stLosses = stLosses.Add(amount.Abs())
		}
	}
	for _, s := range income.Securities {
		addSigned(s.GainLoss(), s.LongTerm)
	}
	for _, c := range income.CryptoTransactions {
		addSigned(c.GainLoss(), c.LongTerm)
	}
	for _, k1 := range income.K1s {
		addSigned(k1.ShortTermCapitalGain, false)
		addSigned(k1.LongTermCapitalGain, true)
	}

	netST := stGains.Sub(stLosses)
	netLT := ltGains.Sub(ltLosses)
	overallNet := netST.Add(netLT)

	result := domain.CapitalGainsResult{
		NetShortTerm:             netST,
		NetLongTerm:              netLT,
		NetGainForTax:            decimal.Zero,
		LossDeduction:            decimal.Zero,
		NewShortTermCarryforward: decimal.Zero,
		NewLongTermCarryforward:  decimal.Zero,
	}

	if overallNet.GreaterThanOrEqual(decimal.Zero) {
		result.NetGainForTax = overallNet
		return result, nil
	}

	annualLimit := cgc.AnnualLossLimit
	if filingStatus.IsMarriedFilingSeparately() {
		annualLimit = cgc.AnnualLossLimitMFS
	}

	totalLoss := overallNet.Abs()
	allowable := decimal.Min(totalLoss, annualLimit)
	result.LossDeduction = allowable

	// Character allocation: the short-term loss absorbs the annual limit
	// first; remaining limit capacity draws from the long-term loss. Whatever
	// loss magnitude is left in a bucket becomes that bucket's carryforward.
	stLossMag := decimal.Zero
	if netST.IsNegative() {
		stLossMag = netST.Abs()
	}
	ltLossMag := decimal.Zero
	if netLT.IsNegative() {
		ltLossMag = netLT.Abs()
	}

	if stLossMag.IsPositive() && ltLossMag.IsPositive() {
		stUsed := decimal.Min(stLossMag, allowable)
		ltUsed := decimal.Min(ltLossMag, allowable.Sub(stUsed))
		result.NewShortTermCarryforward = stLossMag.Sub(stUsed)
		result.NewLongTermCarryforward = ltLossMag.Sub(ltUsed)
	} else if stLossMag.IsPositive() {
		// Only the short-term bucket is a loss; the positive long-term gain
		// already offset part of it, so the remaining excess keeps short-term
		// character.
		result.NewShortTermCarryforward = totalLoss.Sub(allowable)
	} else {
		result.NewLongTermCarryforward = totalLoss.Sub(allowable)
	}

	if result.NewShortTermCarryforward.IsNegative() || result.NewLongTermCarryforward.IsNegative() {
		return domain.CapitalGainsResult{}, fmt.Errorf("capital gains netting produced a negative carryforward (st=%s lt=%s)",
			result.NewShortTermCarryforward.StringFixed(2), result.NewLongTermCarryforward.StringFixed(2))
	}

	return result, nil
}

// clampNonNegative floors unexpected negative inputs at zero. Input
// validation rejects negatives upstream; the engine still guards so a bad
// field can never propagate into a negative tax.
func clampNonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
