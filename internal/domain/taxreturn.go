package domain

import (
	"github.com/shopspring/decimal"
)

// Taxpayer identifies the filer. Ages drive the additional standard
// deduction (65+) and the Form 5329 early-distribution check.
type Taxpayer struct {
	FirstName    string       `yaml:"first_name,omitempty" json:"first_name,omitempty"`
	LastName     string       `yaml:"last_name,omitempty" json:"last_name,omitempty"`
	SSNLast4     string       `yaml:"ssn_last4,omitempty" json:"ssn_last4,omitempty"`
	FilingStatus FilingStatus `yaml:"filing_status" json:"filing_status"`
	Age          int          `yaml:"age" json:"age"`
	SpouseAge    int          `yaml:"spouse_age,omitempty" json:"spouse_age,omitempty"`
}

// Seniors65Plus counts filers aged 65 or older for the additional standard
// deduction. The spouse counts only on a joint return.
func (tp *Taxpayer) Seniors65Plus() int {
	seniors := 0
	if tp.Age >= 65 {
		seniors++
	}
	if tp.FilingStatus == MarriedFilingJointly && tp.SpouseAge >= 65 {
		seniors++
	}
	return seniors
}

// Deductions holds itemized deduction components and the above-the-line
// adjustments. The engine chooses standard vs itemized automatically.
type Deductions struct {
	MedicalExpenses         decimal.Decimal `yaml:"medical_expenses,omitempty" json:"medical_expenses,omitempty"`
	StateLocalTaxes         decimal.Decimal `yaml:"state_local_taxes,omitempty" json:"state_local_taxes,omitempty"`
	MortgageInterest        decimal.Decimal `yaml:"mortgage_interest,omitempty" json:"mortgage_interest,omitempty"`
	CharitableContributions decimal.Decimal `yaml:"charitable_contributions,omitempty" json:"charitable_contributions,omitempty"`

	// ForceItemize itemizes even when the standard deduction is larger
	// (used by MFS filers whose spouse itemizes).
	ForceItemize bool `yaml:"force_itemize,omitempty" json:"force_itemize,omitempty"`

	// Above-the-line adjustments.
	StudentLoanInterest decimal.Decimal `yaml:"student_loan_interest,omitempty" json:"student_loan_interest,omitempty"`
	EducatorExpenses    decimal.Decimal `yaml:"educator_expenses,omitempty" json:"educator_expenses,omitempty"`
	HSAContributions    decimal.Decimal `yaml:"hsa_contributions,omitempty" json:"hsa_contributions,omitempty"`
	IRAContributions    decimal.Decimal `yaml:"ira_contributions,omitempty" json:"ira_contributions,omitempty"`
}

// Credits holds credit eligibility inputs. Phase-outs are computed by the
// engine from AGI.
type Credits struct {
	QualifyingChildren int             `yaml:"qualifying_children,omitempty" json:"qualifying_children,omitempty"`
	OtherDependents    int             `yaml:"other_dependents,omitempty" json:"other_dependents,omitempty"`
	ChildCareExpenses  decimal.Decimal `yaml:"child_care_expenses,omitempty" json:"child_care_expenses,omitempty"`
	EducationExpenses  decimal.Decimal `yaml:"education_expenses,omitempty" json:"education_expenses,omitempty"`
	EnergyImprovements decimal.Decimal `yaml:"energy_improvements,omitempty" json:"energy_improvements,omitempty"`
}

// Payments holds tax already paid outside of withholding.
type Payments struct {
	EstimatedPayments           decimal.Decimal `yaml:"estimated_payments,omitempty" json:"estimated_payments,omitempty"`
	PriorYearOverpaymentApplied decimal.Decimal `yaml:"prior_year_overpayment_applied,omitempty" json:"prior_year_overpayment_applied,omitempty"`
	OtherWithholding            decimal.Decimal `yaml:"other_withholding,omitempty" json:"other_withholding,omitempty"`
}

// TaxReturn is the aggregate root handed to the engine. It is immutable for
// the duration of one calculation: the engine never writes to it, and the
// caller owns its lifecycle.
type TaxReturn struct {
	TaxYear    int        `yaml:"tax_year" json:"tax_year"`
	Taxpayer   Taxpayer   `yaml:"taxpayer" json:"taxpayer"`
	Income     Income     `yaml:"income" json:"income"`
	Deductions Deductions `yaml:"deductions,omitempty" json:"deductions,omitempty"`
	Credits    Credits    `yaml:"credits,omitempty" json:"credits,omitempty"`
	Payments   Payments   `yaml:"payments,omitempty" json:"payments,omitempty"`
}
