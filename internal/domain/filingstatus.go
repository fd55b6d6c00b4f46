package domain

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// FilingStatus is the federal filing status claimed on the return.
type FilingStatus string

const (
	Single                  FilingStatus = "single"
	MarriedFilingJointly    FilingStatus = "married_filing_jointly"
	MarriedFilingSeparately FilingStatus = "married_filing_separately"
	HeadOfHousehold         FilingStatus = "head_of_household"
	QualifyingWidow         FilingStatus = "qualifying_widow"
)

// Valid reports whether the filing status is one of the five recognized statuses.
func (fs FilingStatus) Valid() bool {
	switch fs {
	case Single, MarriedFilingJointly, MarriedFilingSeparately, HeadOfHousehold, QualifyingWidow:
		return true
	}
	return false
}

// IsMarriedFilingSeparately reports whether the MFS-specific limits apply
// (the $1,500 capital-loss cap and the zero Social Security thresholds).
func (fs FilingStatus) IsMarriedFilingSeparately() bool {
	return fs == MarriedFilingSeparately
}

// UnmarshalYAML validates filing status membership at parse time.
func (fs *FilingStatus) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	status := FilingStatus(s)
	if !status.Valid() {
		return fmt.Errorf("unknown filing status %q", s)
	}
	*fs = status
	return nil
}

func (fs FilingStatus) String() string {
	return string(fs)
}
