package calculation

import (
	"github.com/camayank/jorss-gbo-taai-sub004/internal/domain"
	"github.com/shopspring/decimal"
)

// TAX TABLE ASSUMPTIONS:
//
// 1. All tables are the official 2025 figures. Future tax years reuse the
//    2025 tables until indexed tables are supplied via NewTaxYearTables.
// 2. Qualifying widow(er) uses the MFJ ordinary and preferential brackets
//    and the MFJ standard deduction, per Form 1040 instructions.
// 3. The top bracket upper bound uses a sentinel large value rather than
//    +infinity so the bracket walk stays a simple interval scan.

// TaxBracket is one rate interval of a progressive schedule.
type TaxBracket struct {
	Min  decimal.Decimal
	Max  decimal.Decimal
	Rate decimal.Decimal
}

// TaxYearTables carries every threshold the engine needs for one tax year,
// keyed by filing status. Constructed once and shared; never mutated.
type TaxYearTables struct {
	Year int

	OrdinaryBrackets map[domain.FilingStatus][]TaxBracket

	// LTCGBreakpoints are the tops of the 0% and 15% preferential-rate
	// brackets; gain above the second breakpoint is taxed at 20%.
	LTCGZeroRateMax    map[domain.FilingStatus]decimal.Decimal
	LTCGFifteenRateMax map[domain.FilingStatus]decimal.Decimal

	StandardDeduction map[domain.FilingStatus]decimal.Decimal
	// AdditionalStdDeduction is the per-person 65+ addition.
	AdditionalStdDeduction map[domain.FilingStatus]decimal.Decimal

	SALTCap decimal.Decimal

	AMTExemption         map[domain.FilingStatus]decimal.Decimal
	AMTPhaseoutThreshold map[domain.FilingStatus]decimal.Decimal
	AMTPhaseoutRate      decimal.Decimal
	AMT28RateThreshold   map[domain.FilingStatus]decimal.Decimal

	QBIThreshold    map[domain.FilingStatus]decimal.Decimal
	QBIPhaseInRange map[domain.FilingStatus]decimal.Decimal

	NIITThreshold               map[domain.FilingStatus]decimal.Decimal
	AdditionalMedicareThreshold map[domain.FilingStatus]decimal.Decimal

	SSWageBase decimal.Decimal

	CTCPhaseoutThreshold map[domain.FilingStatus]decimal.Decimal

	// Pub-915 provisional-income bases. MFS is (0, 0) in all years.
	SSTierBase1 map[domain.FilingStatus]decimal.Decimal
	SSTierBase2 map[domain.FilingStatus]decimal.Decimal
}

func brackets(pairs ...[3]int64) []TaxBracket {
	out := make([]TaxBracket, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, TaxBracket{
			Min:  decimal.NewFromInt(p[0]),
			Max:  decimal.NewFromInt(p[1]),
			Rate: decimal.NewFromInt(p[2]).Div(decimal.NewFromInt(100)),
		})
	}
	return out
}

// NewTaxYearTables2025 returns the 2025 federal tables.
func NewTaxYearTables2025() *TaxYearTables {
	const top = 999999999

	single := brackets(
		[3]int64{0, 11925, 10},
		[3]int64{11925, 48475, 12},
		[3]int64{48475, 103350, 22},
		[3]int64{103350, 197300, 24},
		[3]int64{197300, 250525, 32},
		[3]int64{250525, 626350, 35},
		[3]int64{626350, top, 37},
	)
	mfj := brackets(
		[3]int64{0, 23850, 10},
		[3]int64{23850, 96950, 12},
		[3]int64{96950, 206700, 22},
		[3]int64{206700, 394600, 24},
		[3]int64{394600, 501050, 32},
		[3]int64{501050, 751600, 35},
		[3]int64{751600, top, 37},
	)
	mfs := brackets(
		[3]int64{0, 11925, 10},
		[3]int64{11925, 48475, 12},
		[3]int64{48475, 103350, 22},
		[3]int64{103350, 197300, 24},
		[3]int64{197300, 250525, 32},
		[3]int64{250525, 375800, 35},
		[3]int64{375800, top, 37},
	)
	hoh := brackets(
		[3]int64{0, 17000, 10},
		[3]int64{17000, 64850, 12},
		[3]int64{64850, 103350, 22},
		[3]int64{103350, 197300, 24},
		[3]int64{197300, 250500, 32},
		[3]int64{250500, 626350, 35},
		[3]int64{626350, top, 37},
	)

	perStatus := func(s, j, m, h int64) map[domain.FilingStatus]decimal.Decimal {
		return map[domain.FilingStatus]decimal.Decimal{
			domain.Single:                  decimal.NewFromInt(s),
			domain.MarriedFilingJointly:    decimal.NewFromInt(j),
			domain.MarriedFilingSeparately: decimal.NewFromInt(m),
			domain.HeadOfHousehold:         decimal.NewFromInt(h),
			domain.QualifyingWidow:         decimal.NewFromInt(j),
		}
	}

	return &TaxYearTables{
		Year: 2025,

		OrdinaryBrackets: map[domain.FilingStatus][]TaxBracket{
			domain.Single:                  single,
			domain.MarriedFilingJointly:    mfj,
			domain.MarriedFilingSeparately: mfs,
			domain.HeadOfHousehold:         hoh,
			domain.QualifyingWidow:         mfj,
		},

		LTCGZeroRateMax:    perStatus(48350, 96700, 48350, 64750),
		LTCGFifteenRateMax: perStatus(533400, 600050, 300000, 566700),

		StandardDeduction:      perStatus(15000, 30000, 15000, 22500),
		AdditionalStdDeduction: perStatus(2000, 1600, 1600, 2000),

		SALTCap: decimal.NewFromInt(10000),

		AMTExemption:         perStatus(88100, 137000, 68500, 88100),
		AMTPhaseoutThreshold: perStatus(626350, 1252700, 626350, 626350),
		AMTPhaseoutRate:      decimal.NewFromFloat(0.25),
		AMT28RateThreshold:   perStatus(239100, 239100, 119550, 239100),

		QBIThreshold:    perStatus(197300, 394600, 197300, 197300),
		QBIPhaseInRange: perStatus(50000, 100000, 50000, 50000),

		NIITThreshold:               perStatus(200000, 250000, 125000, 200000),
		AdditionalMedicareThreshold: perStatus(200000, 250000, 125000, 200000),

		SSWageBase: decimal.NewFromInt(176100),

		CTCPhaseoutThreshold: perStatus(200000, 400000, 200000, 200000),

		SSTierBase1: perStatus(25000, 32000, 0, 25000),
		SSTierBase2: perStatus(34000, 44000, 0, 34000),
	}
}

// BracketsFor returns the ordinary-rate schedule for a filing status.
func (t *TaxYearTables) BracketsFor(fs domain.FilingStatus) []TaxBracket {
	if b, ok := t.OrdinaryBrackets[fs]; ok {
		return b
	}
	return t.OrdinaryBrackets[domain.Single]
}
