package calculation

import (
	"fmt"

	"github.com/camayank/jorss-gbo-taai-sub004/internal/domain"
	"github.com/shopspring/decimal"
)

// FederalTaxEngine orchestrates every form sub-calculator in a fixed
// dependency order and assembles the output breakdown. Calculate is a pure
// function of its inputs: no I/O, no shared mutable state, safe for
// concurrent callers.
type FederalTaxEngine struct {
	Tables *TaxYearTables

	IncomeAgg    *IncomeAggregator
	CapitalGains *CapitalGainsCalculator
	PassiveLoss  *PassiveLossCalculator
	SocialSec    *SocialSecurityCalculator
	SelfEmp      *SelfEmploymentTaxCalculator
	Deduction    *DeductionCalculator
	QBI          *QBICalculator
	Liability    *LiabilityCalculator
	AMT          *AMTCalculator
	ForeignTax   *ForeignTaxCreditCalculator
	EarlyDist    *EarlyDistributionPenaltyCalculator
	Credits      *CreditsCalculator

	Logger Logger
}

// NewFederalTaxEngine creates an engine with the 2025 tables.
func NewFederalTaxEngine() *FederalTaxEngine {
	return NewFederalTaxEngineWithTables(NewTaxYearTables2025())
}

// NewFederalTaxEngineWithTables creates an engine bound to specific tables.
func NewFederalTaxEngineWithTables(tables *TaxYearTables) *FederalTaxEngine {
	liability := NewLiabilityCalculator(tables)
	return &FederalTaxEngine{
		Tables:       tables,
		IncomeAgg:    NewIncomeAggregator(),
		CapitalGains: NewCapitalGainsCalculator(),
		PassiveLoss:  NewPassiveLossCalculator(),
		SocialSec:    NewSocialSecurityCalculator(tables),
		SelfEmp:      NewSelfEmploymentTaxCalculator(tables),
		Deduction:    NewDeductionCalculator(tables),
		QBI:          NewQBICalculator(tables),
		Liability:    liability,
		AMT:          NewAMTCalculator(tables, liability),
		ForeignTax:   NewForeignTaxCreditCalculator(),
		EarlyDist:    NewEarlyDistributionPenaltyCalculator(),
		Credits:      NewCreditsCalculator(tables),
		Logger:       NopLogger{},
	}
}

// SetLogger sets the engine logger. Nil restores the no-op default.
func (e *FederalTaxEngine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Calculate runs the full dependency chain:
//
//	income aggregation -> capital-gain netting -> SE tax -> AGI ->
//	PAL limiter -> Social Security tiers -> deductions -> QBI ->
//	taxable income -> regular tax with preferential stacking ->
//	AMT comparison -> other taxes -> credits -> payments -> refund/owed
//
// Sub-calculator errors are not caught: they abort the whole calculation
// rather than returning a partially-correct breakdown.
func (e *FederalTaxEngine) Calculate(ret *domain.TaxReturn) (*domain.CalculationBreakdown, error) {
	if !ret.Taxpayer.FilingStatus.Valid() {
		return nil, fmt.Errorf("invalid filing status %q", ret.Taxpayer.FilingStatus)
	}
	fs := ret.Taxpayer.FilingStatus
	income := &ret.Income

	// Stage 1: categorized non-passive income subtotals.
	totals := e.IncomeAgg.Aggregate(income)

	// Stage 2: Schedule D netting with carryforward.
	capital, err := e.CapitalGains.Calculate(income, fs)
	if err != nil {
		return nil, fmt.Errorf("capital gains netting: %w", err)
	}

	// Stage 3: Schedule SE (its half-deduction is an AGI adjustment).
	se := e.SelfEmp.Calculate(income)

	adjustments := e.Deduction.Adjustments(&ret.Deductions).Add(se.HalfDeduction)

	// Stage 4: AGI before passive results and Social Security. This is the
	// "AGI so far" the Form 8582 phase-out reads.
	agiBeforePassive := totals.NonPassiveTotal.
		Add(capital.NetGainForTax).
		Sub(capital.LossDeduction).
		Sub(adjustments)

	// Stage 5: passive activity loss limitation.
	pal, err := e.PassiveLoss.Calculate(income, agiBeforePassive)
	if err != nil {
		return nil, fmt.Errorf("passive loss limitation: %w", err)
	}

	// Stage 6: Social Security taxability over all other income.
	otherIncome := agiBeforePassive.Add(pal.NetPassiveResult)
	ss := e.SocialSec.Calculate(income, otherIncome, fs)

	agi := otherIncome.Add(ss.TaxableAmount)

	e.Logger.Debugf("AGI computed: %s (non-passive %s, capital %s, passive %s, taxable SS %s)",
		agi.StringFixed(2), totals.NonPassiveTotal.StringFixed(2),
		capital.NetGainForTax.Sub(capital.LossDeduction).StringFixed(2),
		pal.NetPassiveResult.StringFixed(2), ss.TaxableAmount.StringFixed(2))

	// Stage 7: standard-vs-itemized resolution.
	deduction := e.Deduction.Resolve(ret, agi)

	taxableBeforeQBI := agi.Sub(deduction.DeductionUsed)
	if taxableBeforeQBI.IsNegative() {
		taxableBeforeQBI = decimal.Zero
	}

	// Preferential income: qualified dividends plus the long-term portion
	// of the overall net gain.
	preferentialGain := decimal.Zero
	if capital.NetGainForTax.IsPositive() && capital.NetLongTerm.IsPositive() {
		preferentialGain = decimal.Min(capital.NetLongTerm, capital.NetGainForTax)
	}
	preferentialIncome := totals.QualifiedDividends.Add(preferentialGain)

	// Stage 8: QBI deduction (needs taxable income before QBI).
	qbi := e.QBI.Calculate(income, taxableBeforeQBI, preferentialIncome, fs)

	taxableIncome := taxableBeforeQBI.Sub(qbi.Deduction)
	if taxableIncome.IsNegative() {
		taxableIncome = decimal.Zero
	}

	// Stage 9: regular tax with preferential-rate stacking.
	regularTax, _, prefTax := e.Liability.TaxWithPreferentialStacking(taxableIncome, preferentialIncome, fs)

	// Stage 10: AMT comparison.
	amtIn := AMTInputs{
		TaxableIncome:      taxableIncome,
		PreferentialIncome: preferentialIncome,
		RegularTax:         regularTax,
		PriorYearAMTCredit: income.PriorYearAMTCredit,
	}
	if deduction.Itemized {
		amtIn.SALTDeducted = deduction.SALTDeducted
	} else {
		amtIn.StandardDeductionUsed = deduction.DeductionUsed
	}
	amt := e.AMT.Calculate(income.AMTItems, amtIn, fs)

	// Stage 11: Form 1116 foreign tax credit limitation.
	ftc := e.ForeignTax.Calculate(income.ForeignIncome, income.ForeignTaxCreditCarryover, regularTax, taxableIncome)

	// Stage 12: surtaxes and penalties.
	netInvestmentIncome := totals.Interest.
		Add(totals.OrdinaryDividends).
		Add(totals.K1PortfolioIncome).
		Add(capital.NetGainForTax).
		Sub(capital.LossDeduction).
		Add(decimal.Max(pal.NetPassiveResult, decimal.Zero))
	niit := e.Liability.NetInvestmentIncomeTax(netInvestmentIncome, agi, fs)
	addlMedicare := e.Liability.AdditionalMedicareTax(income.TotalMedicareWages(), se.NetEarnings, fs)
	penalty := e.EarlyDist.Calculate(income)

	// Stage 13: credits against income tax (regular + AMT, net of the
	// minimum tax credit). Other taxes are not offset by nonrefundable
	// credits.
	incomeTaxBeforeCredits := regularTax.Add(amt.AMTOwed).Sub(amt.AMTCreditUsed)
	if incomeTaxBeforeCredits.IsNegative() {
		incomeTaxBeforeCredits = decimal.Zero
	}
	creditInputs := CreditInputs{
		AGI:              agi,
		EarnedIncome:     totals.Wages.Add(se.NetEarnings),
		TaxBeforeCredits: incomeTaxBeforeCredits,
		ForeignTaxCredit: ftc.TotalCredit,
	}
	credits := e.Credits.Calculate(&ret.Credits, creditInputs, fs)

	incomeTax := incomeTaxBeforeCredits.Sub(credits.TotalNonrefundable)
	if incomeTax.IsNegative() {
		incomeTax = decimal.Zero
	}

	otherTaxes := se.TotalSelfEmploymentTax.Add(niit).Add(addlMedicare).Add(penalty)
	totalTax := incomeTax.Add(otherTaxes)

	// Stage 14: payments and the refundable child credit.
	payments := income.TotalWithholding().
		Add(clampNonNegative(ret.Payments.EstimatedPayments)).
		Add(clampNonNegative(ret.Payments.PriorYearOverpaymentApplied)).
		Add(clampNonNegative(ret.Payments.OtherWithholding)).
		Add(credits.RefundableChildCredit)

	totalIncome := totals.NonPassiveTotal.
		Add(capital.NetGainForTax).
		Sub(capital.LossDeduction).
		Add(pal.NetPassiveResult).
		Add(ss.TaxableAmount)

	bd := &domain.CalculationBreakdown{
		TaxYear:      ret.TaxYear,
		FilingStatus: fs,

		TotalIncome:         totalIncome,
		Adjustments:         adjustments,
		AdjustedGrossIncome: agi,

		StandardDeduction: deduction.StandardDeduction,
		ItemizedDeduction: deduction.ItemizedDeduction,
		DeductionUsed:     deduction.DeductionUsed,
		Itemized:          deduction.Itemized,
		QBIDeduction:      qbi.Deduction,
		TaxableIncome:     taxableIncome,

		RegularTax:               regularTax,
		PreferentialRateTax:      prefTax,
		SelfEmploymentTax:        se.TotalSelfEmploymentTax,
		NetInvestmentIncomeTax:   niit,
		AdditionalMedicareTax:    addlMedicare,
		AlternativeMinimumTax:    amt.AMTOwed,
		EarlyDistributionPenalty: penalty,

		TotalTaxBeforeCredits: incomeTaxBeforeCredits.Add(otherTaxes),
		TotalCredits:          credits.TotalNonrefundable,
		TotalTax:              totalTax,

		TotalPayments: payments,
		RefundOrOwed:  payments.Sub(totalTax),

		CapitalGains:          capital,
		CapitalLossDeduction:  capital.LossDeduction,
		NewSTLossCarryforward: capital.NewShortTermCarryforward,
		NewLTLossCarryforward: capital.NewLongTermCarryforward,
		PALBreakdown:          pal,
		SocialSecurity:        ss,
		TaxableSocialSecurity: ss.TaxableAmount,
		AMT:                   amt,
		QBI:                   qbi,
		ForeignTaxCredit:      ftc,
		Credits:               credits,

		NewSuspendedPassiveLossCarryforward: pal.NewSuspendedCarryforward,
		NewAMTCreditCarryforward:            amt.NewCreditCarryfwd,
		NewForeignTaxCreditCarryover:        ftc.NewCarryover,

		MarginalRate: e.Liability.MarginalRate(taxableIncome, fs),
	}

	if agi.IsPositive() {
		bd.EffectiveRate = totalTax.Div(agi).Round(4)
	}

	if err := checkInvariants(bd); err != nil {
		return nil, err
	}
	return bd, nil
}

// checkInvariants fails loudly on programming errors rather than letting a
// silently wrong dollar figure escape.
func checkInvariants(bd *domain.CalculationBreakdown) error {
	for name, v := range map[string]decimal.Decimal{
		"new_st_loss_carryforward":                bd.NewSTLossCarryforward,
		"new_lt_loss_carryforward":                bd.NewLTLossCarryforward,
		"new_suspended_passive_loss_carryforward": bd.NewSuspendedPassiveLossCarryforward,
		"new_amt_credit_carryforward":             bd.NewAMTCreditCarryforward,
		"new_foreign_tax_credit_carryover":        bd.NewForeignTaxCreditCarryover,
		"total_tax":                               bd.TotalTax,
	} {
		if v.IsNegative() {
			return fmt.Errorf("invariant violation: %s is negative (%s)", name, v.StringFixed(2))
		}
	}
	cap85 := bd.SocialSecurity.GrossBenefits.Mul(decimal.NewFromFloat(0.85))
	if bd.TaxableSocialSecurity.GreaterThan(cap85.Add(decimal.NewFromFloat(0.01))) {
		return fmt.Errorf("invariant violation: taxable social security %s exceeds 85%% of benefits %s",
			bd.TaxableSocialSecurity.StringFixed(2), cap85.StringFixed(2))
	}
	return nil
}
