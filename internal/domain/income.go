package domain

import (
	"github.com/shopspring/decimal"
)

// W2 represents wage income reported on a single Form W-2.
type W2 struct {
	Employer           string          `yaml:"employer" json:"employer"`
	Wages              decimal.Decimal `yaml:"wages" json:"wages"`
	FederalWithholding decimal.Decimal `yaml:"federal_withholding" json:"federal_withholding"`
	MedicareWages      decimal.Decimal `yaml:"medicare_wages,omitempty" json:"medicare_wages,omitempty"`
}

// SecuritySale is a single brokerage disposition (1099-B line).
type SecuritySale struct {
	Description string          `yaml:"description,omitempty" json:"description,omitempty"`
	Proceeds    decimal.Decimal `yaml:"proceeds" json:"proceeds"`
	CostBasis   decimal.Decimal `yaml:"cost_basis" json:"cost_basis"`
	LongTerm    bool            `yaml:"long_term" json:"long_term"`
}

// GainLoss returns proceeds minus basis; negative means a realized loss.
func (s SecuritySale) GainLoss() decimal.Decimal {
	return s.Proceeds.Sub(s.CostBasis)
}

// CryptoTransaction is a taxable digital-asset disposition. Crypto gains and
// losses net with the rest of the capital-gain buckets by holding period.
type CryptoTransaction struct {
	Asset     string          `yaml:"asset,omitempty" json:"asset,omitempty"`
	Proceeds  decimal.Decimal `yaml:"proceeds" json:"proceeds"`
	CostBasis decimal.Decimal `yaml:"cost_basis" json:"cost_basis"`
	LongTerm  bool            `yaml:"long_term" json:"long_term"`
}

// GainLoss returns proceeds minus basis; negative means a realized loss.
func (c CryptoTransaction) GainLoss() decimal.Decimal {
	return c.Proceeds.Sub(c.CostBasis)
}

// ScheduleK1 carries pass-through items from a partnership or S corporation.
type ScheduleK1 struct {
	EntityName           string          `yaml:"entity_name,omitempty" json:"entity_name,omitempty"`
	OrdinaryIncome       decimal.Decimal `yaml:"ordinary_income" json:"ordinary_income"`
	NetRentalIncome      decimal.Decimal `yaml:"net_rental_income,omitempty" json:"net_rental_income,omitempty"`
	InterestIncome       decimal.Decimal `yaml:"interest_income,omitempty" json:"interest_income,omitempty"`
	OrdinaryDividends    decimal.Decimal `yaml:"ordinary_dividends,omitempty" json:"ordinary_dividends,omitempty"`
	QualifiedDividends   decimal.Decimal `yaml:"qualified_dividends,omitempty" json:"qualified_dividends,omitempty"`
	ShortTermCapitalGain decimal.Decimal `yaml:"short_term_capital_gain,omitempty" json:"short_term_capital_gain,omitempty"`
	LongTermCapitalGain  decimal.Decimal `yaml:"long_term_capital_gain,omitempty" json:"long_term_capital_gain,omitempty"`
	IsPassiveActivity    bool            `yaml:"is_passive_activity,omitempty" json:"is_passive_activity,omitempty"`

	// Section 199A pass-through detail for the QBI deduction.
	Section199AIncome decimal.Decimal `yaml:"section_199a_income,omitempty" json:"section_199a_income,omitempty"`
	W2WagesPaid       decimal.Decimal `yaml:"w2_wages_paid,omitempty" json:"w2_wages_paid,omitempty"`
	UBIA              decimal.Decimal `yaml:"ubia,omitempty" json:"ubia,omitempty"`
	IsSSTB            bool            `yaml:"is_sstb,omitempty" json:"is_sstb,omitempty"`
}

// RentalActivity is a single rental real-estate activity for the Form 8582
// passive-loss computation.
type RentalActivity struct {
	Property            string          `yaml:"property,omitempty" json:"property,omitempty"`
	RentalIncome        decimal.Decimal `yaml:"rental_income" json:"rental_income"`
	RentalExpenses      decimal.Decimal `yaml:"rental_expenses" json:"rental_expenses"`
	ActiveParticipation bool            `yaml:"active_participation,omitempty" json:"active_participation,omitempty"`
}

// NetResult returns income minus expenses for the activity.
func (r RentalActivity) NetResult() decimal.Decimal {
	return r.RentalIncome.Sub(r.RentalExpenses)
}

// SelfEmploymentBusiness is a Schedule C business. NetProfit may be negative.
type SelfEmploymentBusiness struct {
	BusinessName string          `yaml:"business_name,omitempty" json:"business_name,omitempty"`
	NetProfit    decimal.Decimal `yaml:"net_profit" json:"net_profit"`
	W2WagesPaid  decimal.Decimal `yaml:"w2_wages_paid,omitempty" json:"w2_wages_paid,omitempty"`
	UBIA         decimal.Decimal `yaml:"ubia,omitempty" json:"ubia,omitempty"`
	IsSSTB       bool            `yaml:"is_sstb,omitempty" json:"is_sstb,omitempty"`
}

// RetirementDistribution is a 1099-R distribution from an IRA or employer plan.
type RetirementDistribution struct {
	Payer              string          `yaml:"payer,omitempty" json:"payer,omitempty"`
	GrossAmount        decimal.Decimal `yaml:"gross_amount" json:"gross_amount"`
	TaxableAmount      decimal.Decimal `yaml:"taxable_amount" json:"taxable_amount"`
	FederalWithholding decimal.Decimal `yaml:"federal_withholding,omitempty" json:"federal_withholding,omitempty"`
	EarlyDistribution  bool            `yaml:"early_distribution,omitempty" json:"early_distribution,omitempty"`
	// ExceptionAmount is the portion of an early distribution that qualifies
	// for a Form 5329 penalty exception.
	ExceptionAmount decimal.Decimal `yaml:"exception_amount,omitempty" json:"exception_amount,omitempty"`
}

// AMTItems holds the Form 6251 preference and adjustment items. The pointer
// is nil when the taxpayer has no AMT preference items.
type AMTItems struct {
	ISOExerciseSpread           decimal.Decimal `yaml:"iso_exercise_spread,omitempty" json:"iso_exercise_spread,omitempty"`
	PrivateActivityBondInterest decimal.Decimal `yaml:"private_activity_bond_interest,omitempty" json:"private_activity_bond_interest,omitempty"`
	DepreciationAdjustment      decimal.Decimal `yaml:"depreciation_adjustment,omitempty" json:"depreciation_adjustment,omitempty"`
	PassiveActivityAdjustment   decimal.Decimal `yaml:"passive_activity_adjustment,omitempty" json:"passive_activity_adjustment,omitempty"`
}

// ForeignIncomeCategory is a single Form 1116 income category with the
// foreign-source taxable income and foreign tax paid for that category.
type ForeignIncomeCategory struct {
	Category            string          `yaml:"category" json:"category"`
	ForeignSourceIncome decimal.Decimal `yaml:"foreign_source_income" json:"foreign_source_income"`
	ForeignTaxPaid      decimal.Decimal `yaml:"foreign_tax_paid" json:"foreign_tax_paid"`
}

// ForeignIncome is the optional Form 1116 input. Nil means no foreign
// activity and no credit.
type ForeignIncome struct {
	Categories []ForeignIncomeCategory `yaml:"categories" json:"categories"`
}

// Income holds every income-source collection on the return plus the
// prior-year carryforward state. Carryforward amounts are loss magnitudes
// and are always non-negative; the engine emits replacement values in the
// CalculationBreakdown for the caller to persist.
type Income struct {
	W2s []W2 `yaml:"w2s,omitempty" json:"w2s,omitempty"`

	InterestIncome    decimal.Decimal `yaml:"interest_income,omitempty" json:"interest_income,omitempty"`
	TaxExemptInterest decimal.Decimal `yaml:"tax_exempt_interest,omitempty" json:"tax_exempt_interest,omitempty"`

	OrdinaryDividends  decimal.Decimal `yaml:"ordinary_dividends,omitempty" json:"ordinary_dividends,omitempty"`
	QualifiedDividends decimal.Decimal `yaml:"qualified_dividends,omitempty" json:"qualified_dividends,omitempty"`

	// Direct Schedule D entries. Loss fields are magnitudes (>= 0).
	ShortTermGains  decimal.Decimal `yaml:"short_term_gains,omitempty" json:"short_term_gains,omitempty"`
	ShortTermLosses decimal.Decimal `yaml:"short_term_losses,omitempty" json:"short_term_losses,omitempty"`
	LongTermGains   decimal.Decimal `yaml:"long_term_gains,omitempty" json:"long_term_gains,omitempty"`
	LongTermLosses  decimal.Decimal `yaml:"long_term_losses,omitempty" json:"long_term_losses,omitempty"`

	Securities         []SecuritySale      `yaml:"securities,omitempty" json:"securities,omitempty"`
	CryptoTransactions []CryptoTransaction `yaml:"crypto_transactions,omitempty" json:"crypto_transactions,omitempty"`
	K1s                []ScheduleK1        `yaml:"k1s,omitempty" json:"k1s,omitempty"`

	GamblingWinnings decimal.Decimal `yaml:"gambling_winnings,omitempty" json:"gambling_winnings,omitempty"`
	GamblingLosses   decimal.Decimal `yaml:"gambling_losses,omitempty" json:"gambling_losses,omitempty"`

	RentalActivities            []RentalActivity `yaml:"rental_activities,omitempty" json:"rental_activities,omitempty"`
	RealEstateProfessional      bool             `yaml:"real_estate_professional,omitempty" json:"real_estate_professional,omitempty"`
	RealEstateProfessionalHours int              `yaml:"real_estate_professional_hours,omitempty" json:"real_estate_professional_hours,omitempty"`

	// Non-rental passive business activity (loss is a magnitude >= 0).
	PassiveBusinessIncome decimal.Decimal `yaml:"passive_business_income,omitempty" json:"passive_business_income,omitempty"`
	PassiveBusinessLoss   decimal.Decimal `yaml:"passive_business_loss,omitempty" json:"passive_business_loss,omitempty"`

	// PassiveActivityDispositions is the net gain or loss recognized on the
	// full disposition of passive activities this year. Nonzero triggers the
	// release of the suspended-loss carryforward.
	PassiveActivityDispositions decimal.Decimal `yaml:"passive_activity_dispositions,omitempty" json:"passive_activity_dispositions,omitempty"`

	SelfEmployment []SelfEmploymentBusiness `yaml:"self_employment,omitempty" json:"self_employment,omitempty"`

	RetirementDistributions []RetirementDistribution `yaml:"retirement_distributions,omitempty" json:"retirement_distributions,omitempty"`

	SocialSecurityBenefits decimal.Decimal `yaml:"social_security_benefits,omitempty" json:"social_security_benefits,omitempty"`
	// TaxableSocialSecurity, when set, overrides the Pub-915 computation.
	// Used for corrected returns where the taxable amount is already known.
	TaxableSocialSecurity *decimal.Decimal `yaml:"taxable_social_security,omitempty" json:"taxable_social_security,omitempty"`

	UnemploymentCompensation decimal.Decimal `yaml:"unemployment_compensation,omitempty" json:"unemployment_compensation,omitempty"`

	// Prior-year carryforward state. These are the only cross-year inputs.
	ShortTermLossCarryforward        decimal.Decimal `yaml:"short_term_loss_carryforward,omitempty" json:"short_term_loss_carryforward,omitempty"`
	LongTermLossCarryforward         decimal.Decimal `yaml:"long_term_loss_carryforward,omitempty" json:"long_term_loss_carryforward,omitempty"`
	SuspendedPassiveLossCarryforward decimal.Decimal `yaml:"suspended_passive_loss_carryforward,omitempty" json:"suspended_passive_loss_carryforward,omitempty"`
	PriorYearAMTCredit               decimal.Decimal `yaml:"prior_year_amt_credit,omitempty" json:"prior_year_amt_credit,omitempty"`
	ForeignTaxCreditCarryover        decimal.Decimal `yaml:"foreign_tax_credit_carryover,omitempty" json:"foreign_tax_credit_carryover,omitempty"`

	// Optional form payloads. Nil means no activity, never an error.
	AMTItems      *AMTItems      `yaml:"amt_items,omitempty" json:"amt_items,omitempty"`
	ForeignIncome *ForeignIncome `yaml:"foreign_income,omitempty" json:"foreign_income,omitempty"`
}

// TotalWages sums Box 1 wages across all W-2s.
func (inc *Income) TotalWages() decimal.Decimal {
	total := decimal.Zero
	for _, w := range inc.W2s {
		total = total.Add(w.Wages)
	}
	return total
}

// TotalMedicareWages sums Medicare wages, falling back to Box 1 wages when
// the Medicare box was not populated.
func (inc *Income) TotalMedicareWages() decimal.Decimal {
	total := decimal.Zero
	for _, w := range inc.W2s {
		if w.MedicareWages.IsPositive() {
			total = total.Add(w.MedicareWages)
		} else {
			total = total.Add(w.Wages)
		}
	}
	return total
}

// TotalWithholding sums federal withholding across W-2s and 1099-Rs.
func (inc *Income) TotalWithholding() decimal.Decimal {
	total := decimal.Zero
	for _, w := range inc.W2s {
		total = total.Add(w.FederalWithholding)
	}
	for _, rd := range inc.RetirementDistributions {
		total = total.Add(rd.FederalWithholding)
	}
	return total
}

// TotalSelfEmploymentProfit sums net profit across Schedule C businesses.
// Losses offset profits; the floor is applied by the SE-tax calculator.
func (inc *Income) TotalSelfEmploymentProfit() decimal.Decimal {
	total := decimal.Zero
	for _, b := range inc.SelfEmployment {
		total = total.Add(b.NetProfit)
	}
	return total
}
