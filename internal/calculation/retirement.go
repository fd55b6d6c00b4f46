package calculation

import (
	"github.com/camayank/jorss-gbo-taai-sub004/internal/domain"
	"github.com/shopspring/decimal"
)

// EarlyDistributionPenaltyCalculator computes the Form 5329 10% additional
// tax on early retirement distributions, net of exception amounts.
type EarlyDistributionPenaltyCalculator struct {
	PenaltyRate decimal.Decimal
}

// NewEarlyDistributionPenaltyCalculator creates a Form 5329 calculator.
func NewEarlyDistributionPenaltyCalculator() *EarlyDistributionPenaltyCalculator {
	return &EarlyDistributionPenaltyCalculator{
		PenaltyRate: decimal.NewFromFloat(0.10),
	}
}

// Calculate sums penalized amounts across distributions flagged early. The
// exception amount reduces the penalized base per distribution, never below
// zero.
func (ec *EarlyDistributionPenaltyCalculator) Calculate(income *domain.Income) decimal.Decimal {
	penalizedBase := decimal.Zero
	for _, rd := range income.RetirementDistributions {
		if !rd.EarlyDistribution {
			continue
		}
		base := clampNonNegative(rd.TaxableAmount).Sub(clampNonNegative(rd.ExceptionAmount))
		if base.IsPositive() {
			penalizedBase = penalizedBase.Add(base)
		}
	}
	return penalizedBase.Mul(ec.PenaltyRate)
}

// TaxableRetirementIncome sums the taxable portion of all distributions.
func TaxableRetirementIncome(income *domain.Income) decimal.Decimal {
	total := decimal.Zero
	for _, rd := range income.RetirementDistributions {
		total = total.Add(clampNonNegative(rd.TaxableAmount))
	}
	return total
}
