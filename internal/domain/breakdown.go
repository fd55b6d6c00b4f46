package domain

import (
	"github.com/shopspring/decimal"
)

// CapitalGainsResult is the Schedule D netting outcome. Carryforward fields
// are loss magnitudes and never negative.
type CapitalGainsResult struct {
	NetShortTerm decimal.Decimal `json:"net_short_term"`
	NetLongTerm  decimal.Decimal `json:"net_long_term"`

	// NetGainForTax is the overall net gain included in AGI; zero when the
	// year nets to a loss.
	NetGainForTax decimal.Decimal `json:"net_gain_for_tax"`

	// LossDeduction is the above-the-line capital loss actually deducted,
	// capped at $3,000 ($1,500 MFS).
	LossDeduction decimal.Decimal `json:"loss_deduction"`

	NewShortTermCarryforward decimal.Decimal `json:"new_short_term_carryforward"`
	NewLongTermCarryforward  decimal.Decimal `json:"new_long_term_carryforward"`
}

// PassiveLossBreakdown surfaces every Form 8582 intermediate so collaborators
// can audit the limitation without re-deriving it.
type PassiveLossBreakdown struct {
	RentalIncome    decimal.Decimal `json:"rental_income"`
	RentalLoss      decimal.Decimal `json:"rental_loss"`
	NetRentalResult decimal.Decimal `json:"net_rental_result"`

	K1PassiveIncome decimal.Decimal `json:"k1_passive_income"`
	K1PassiveLoss   decimal.Decimal `json:"k1_passive_loss"`

	PassiveBusinessIncome decimal.Decimal `json:"passive_business_income"`
	PassiveBusinessLoss   decimal.Decimal `json:"passive_business_loss"`

	TotalPassiveIncome decimal.Decimal `json:"total_passive_income"`
	TotalPassiveLoss   decimal.Decimal `json:"total_passive_loss"`

	ActiveParticipation    bool            `json:"active_participation"`
	RealEstateProfessional bool            `json:"real_estate_professional"`
	AGIForPhaseout         decimal.Decimal `json:"agi_for_phaseout"`

	RentalLossAllowanceBase          decimal.Decimal `json:"rental_loss_allowance_base"`
	RentalLossAllowanceAfterPhaseout decimal.Decimal `json:"rental_loss_allowance_after_phaseout"`

	DispositionGainLoss   decimal.Decimal `json:"disposition_gain_loss"`
	SuspendedLossReleased decimal.Decimal `json:"suspended_loss_released"`

	AllowablePassiveLoss decimal.Decimal `json:"allowable_passive_loss"`
	SuspendedCurrentYear decimal.Decimal `json:"suspended_current_year"`

	NewSuspendedCarryforward decimal.Decimal `json:"new_suspended_carryforward"`

	// NetPassiveResult is the amount the limiter contributes to AGI:
	// passive income minus the allowable loss, plus the disposition result.
	NetPassiveResult decimal.Decimal `json:"net_passive_result"`
}

// SocialSecurityResult is the Pub-915 tier computation outcome.
type SocialSecurityResult struct {
	GrossBenefits     decimal.Decimal `json:"gross_benefits"`
	ProvisionalIncome decimal.Decimal `json:"provisional_income"`
	TaxableAmount     decimal.Decimal `json:"taxable_amount"`
	// PreSet is true when the return carried a pre-computed taxable amount
	// that the calculator honored instead of recomputing.
	PreSet bool `json:"pre_set"`
}

// AMTResult is the Form 6251 outcome.
type AMTResult struct {
	AMTI                decimal.Decimal `json:"amti"`
	Exemption           decimal.Decimal `json:"exemption"`
	TentativeMinimumTax decimal.Decimal `json:"tentative_minimum_tax"`
	// AMTOwed is the excess of tentative minimum tax over regular tax.
	AMTOwed             decimal.Decimal `json:"amt_owed"`
	AMTCreditUsed       decimal.Decimal `json:"amt_credit_used"`
	NewCreditCarryfwd   decimal.Decimal `json:"new_credit_carryforward"`
}

// QBIResult is the Form 8995 / 8995-A outcome.
type QBIResult struct {
	QualifiedBusinessIncome decimal.Decimal `json:"qualified_business_income"`
	DeductionBeforeLimit    decimal.Decimal `json:"deduction_before_limit"`
	WageUBIALimit           decimal.Decimal `json:"wage_ubia_limit"`
	IncomeLimit             decimal.Decimal `json:"income_limit"`
	Deduction               decimal.Decimal `json:"deduction"`
	SSTBExcluded            bool            `json:"sstb_excluded"`
}

// FTCCategoryResult is the Form 1116 limitation outcome for one category.
type FTCCategoryResult struct {
	Category            string          `json:"category"`
	ForeignSourceIncome decimal.Decimal `json:"foreign_source_income"`
	ForeignTaxPaid      decimal.Decimal `json:"foreign_tax_paid"`
	Limit               decimal.Decimal `json:"limit"`
	CreditAllowed       decimal.Decimal `json:"credit_allowed"`
}

// FTCResult aggregates the per-category Form 1116 results.
type FTCResult struct {
	Categories   []FTCCategoryResult `json:"categories,omitempty"`
	TotalCredit  decimal.Decimal     `json:"total_credit"`
	NewCarryover decimal.Decimal     `json:"new_carryover"`
}

// CreditsResult itemizes each credit after its phase-out.
type CreditsResult struct {
	ChildTaxCredit        decimal.Decimal `json:"child_tax_credit"`
	CreditOtherDependents decimal.Decimal `json:"credit_other_dependents"`
	ChildCareCredit       decimal.Decimal `json:"child_care_credit"`
	EducationCredit       decimal.Decimal `json:"education_credit"`
	EnergyCredit          decimal.Decimal `json:"energy_credit"`
	ForeignTaxCredit      decimal.Decimal `json:"foreign_tax_credit"`
	TotalNonrefundable    decimal.Decimal `json:"total_nonrefundable"`
	// RefundableChildCredit is the additional child tax credit paid out even
	// when it exceeds the remaining liability.
	RefundableChildCredit decimal.Decimal `json:"refundable_child_credit"`
}

// CalculationBreakdown is the engine's single output contract. It is the only
// artifact intended for persistence; collaborators never read engine-internal
// state.
type CalculationBreakdown struct {
	TaxYear      int          `json:"tax_year"`
	FilingStatus FilingStatus `json:"filing_status"`

	TotalIncome         decimal.Decimal `json:"total_income"`
	Adjustments         decimal.Decimal `json:"adjustments"`
	AdjustedGrossIncome decimal.Decimal `json:"adjusted_gross_income"`

	StandardDeduction decimal.Decimal `json:"standard_deduction"`
	ItemizedDeduction decimal.Decimal `json:"itemized_deduction"`
	DeductionUsed     decimal.Decimal `json:"deduction_used"`
	Itemized          bool            `json:"itemized"`
	QBIDeduction      decimal.Decimal `json:"qbi_deduction"`
	TaxableIncome     decimal.Decimal `json:"taxable_income"`

	RegularTax               decimal.Decimal `json:"regular_tax"`
	PreferentialRateTax      decimal.Decimal `json:"preferential_rate_tax"`
	SelfEmploymentTax        decimal.Decimal `json:"self_employment_tax"`
	NetInvestmentIncomeTax   decimal.Decimal `json:"net_investment_income_tax"`
	AdditionalMedicareTax    decimal.Decimal `json:"additional_medicare_tax"`
	AlternativeMinimumTax    decimal.Decimal `json:"alternative_minimum_tax"`
	EarlyDistributionPenalty decimal.Decimal `json:"early_distribution_penalty"`

	TotalTaxBeforeCredits decimal.Decimal `json:"total_tax_before_credits"`
	TotalCredits          decimal.Decimal `json:"total_credits"`
	TotalTax              decimal.Decimal `json:"total_tax"`

	TotalPayments decimal.Decimal `json:"total_payments"`
	// RefundOrOwed is positive for a refund, negative for a balance due.
	RefundOrOwed decimal.Decimal `json:"refund_or_owed"`

	CapitalGains          CapitalGainsResult   `json:"capital_gains"`
	CapitalLossDeduction  decimal.Decimal      `json:"capital_loss_deduction"`
	NewSTLossCarryforward decimal.Decimal      `json:"new_st_loss_carryforward"`
	NewLTLossCarryforward decimal.Decimal      `json:"new_lt_loss_carryforward"`
	PALBreakdown          PassiveLossBreakdown `json:"pal_breakdown"`
	SocialSecurity        SocialSecurityResult `json:"social_security"`
	TaxableSocialSecurity decimal.Decimal      `json:"taxable_social_security"`
	AMT                   AMTResult            `json:"amt"`
	QBI                   QBIResult            `json:"qbi"`
	ForeignTaxCredit      FTCResult            `json:"foreign_tax_credit"`
	Credits               CreditsResult        `json:"credits"`

	NewSuspendedPassiveLossCarryforward decimal.Decimal `json:"new_suspended_passive_loss_carryforward"`
	NewAMTCreditCarryforward            decimal.Decimal `json:"new_amt_credit_carryforward"`
	NewForeignTaxCreditCarryover        decimal.Decimal `json:"new_foreign_tax_credit_carryover"`

	EffectiveRate decimal.Decimal `json:"effective_rate"`
	MarginalRate  decimal.Decimal `json:"marginal_rate"`
}
