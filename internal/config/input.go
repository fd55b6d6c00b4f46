package config

import (
	"fmt"
	"os"

	"github.com/camayank/jorss-gbo-taai-sub004/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing and validation of tax return input files.
// Validation runs here, in the data-model layer: the engine downstream may
// assume validated input.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a tax return from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.TaxReturn, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse unmarshals and validates a tax return document.
func (ip *InputParser) Parse(data []byte) (*domain.TaxReturn, error) {
	var ret domain.TaxReturn
	if err := yaml.Unmarshal(data, &ret); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := ip.ValidateTaxReturn(&ret); err != nil {
		return nil, fmt.Errorf("tax return validation failed: %w", err)
	}
	return &ret, nil
}

// ValidateTaxReturn checks field ranges and enum membership. Optional
// sub-forms may be absent; absence is never an error.
func (ip *InputParser) ValidateTaxReturn(ret *domain.TaxReturn) error {
	if !ret.Taxpayer.FilingStatus.Valid() {
		return fmt.Errorf("invalid filing status %q", ret.Taxpayer.FilingStatus)
	}
	if ret.TaxYear < 2020 || ret.TaxYear > 2100 {
		return fmt.Errorf("tax year %d out of range", ret.TaxYear)
	}
	if ret.Taxpayer.Age < 0 || ret.Taxpayer.Age > 130 {
		return fmt.Errorf("taxpayer age %d out of range", ret.Taxpayer.Age)
	}

	if err := ip.validateIncome(&ret.Income); err != nil {
		return err
	}

	if ret.Credits.QualifyingChildren < 0 {
		return fmt.Errorf("qualifying children cannot be negative")
	}
	if ret.Credits.OtherDependents < 0 {
		return fmt.Errorf("other dependents cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateIncome(income *domain.Income) error {
	for i, w2 := range income.W2s {
		if w2.Wages.LessThan(decimal.Zero) {
			return fmt.Errorf("w2 %d: wages cannot be negative", i)
		}
		if w2.FederalWithholding.LessThan(decimal.Zero) {
			return fmt.Errorf("w2 %d: federal withholding cannot be negative", i)
		}
	}

	nonNegative := map[string]decimal.Decimal{
		"interest_income":                     income.InterestIncome,
		"tax_exempt_interest":                 income.TaxExemptInterest,
		"ordinary_dividends":                  income.OrdinaryDividends,
		"qualified_dividends":                 income.QualifiedDividends,
		"short_term_losses":                   income.ShortTermLosses,
		"long_term_losses":                    income.LongTermLosses,
		"gambling_winnings":                   income.GamblingWinnings,
		"gambling_losses":                     income.GamblingLosses,
		"social_security_benefits":            income.SocialSecurityBenefits,
		"unemployment_compensation":           income.UnemploymentCompensation,
		"passive_business_income":             income.PassiveBusinessIncome,
		"passive_business_loss":               income.PassiveBusinessLoss,
		"short_term_loss_carryforward":        income.ShortTermLossCarryforward,
		"long_term_loss_carryforward":         income.LongTermLossCarryforward,
		"suspended_passive_loss_carryforward": income.SuspendedPassiveLossCarryforward,
		"prior_year_amt_credit":               income.PriorYearAMTCredit,
		"foreign_tax_credit_carryover":        income.ForeignTaxCreditCarryover,
	}
	for name, v := range nonNegative {
		if v.LessThan(decimal.Zero) {
			return fmt.Errorf("%s cannot be negative", name)
		}
	}

	if income.QualifiedDividends.GreaterThan(income.OrdinaryDividends) {
		return fmt.Errorf("qualified dividends cannot exceed ordinary dividends")
	}

	for i, rd := range income.RetirementDistributions {
		if rd.GrossAmount.LessThan(decimal.Zero) || rd.TaxableAmount.LessThan(decimal.Zero) {
			return fmt.Errorf("retirement distribution %d: amounts cannot be negative", i)
		}
		if rd.TaxableAmount.GreaterThan(rd.GrossAmount) {
			return fmt.Errorf("retirement distribution %d: taxable amount cannot exceed gross", i)
		}
	}

	for i, act := range income.RentalActivities {
		if act.RentalIncome.LessThan(decimal.Zero) || act.RentalExpenses.LessThan(decimal.Zero) {
			return fmt.Errorf("rental activity %d: income and expenses cannot be negative", i)
		}
	}

	if income.RealEstateProfessionalHours < 0 {
		return fmt.Errorf("real estate professional hours cannot be negative")
	}

	if income.ForeignIncome != nil {
		for i, cat := range income.ForeignIncome.Categories {
			if cat.ForeignTaxPaid.LessThan(decimal.Zero) {
				return fmt.Errorf("foreign income category %d: tax paid cannot be negative", i)
			}
		}
	}
	return nil
}
