package calculation

import (
	"fmt"

	"github.com/camayank/jorss-gbo-taai-sub004/internal/domain"
	"github.com/shopspring/decimal"
)

// PASSIVE LOSS ASSUMPTIONS (Form 8582 / IRC section 469):
//
// 1. Real-estate-professional status (explicit flag or >= 750 documented
//    hours) takes the rental activity out of the passive regime entirely:
//    current-year losses deduct in full and nothing new is suspended.
// 2. The $25,000 active-participation allowance phases out linearly between
//    $100,000 and $150,000 of AGI.
// 3. Non-rental passive losses with no offsetting passive income are fully
//    suspended.
// 4. The prior-year suspended carryforward is held, not re-run through the
//    current-year limitation; it releases only on full disposition.

const realEstateProfessionalHours = 750

// PassiveLossCalculator applies the section 469 limitation across rental,
// non-rental passive business, and passive K-1 activities.
type PassiveLossCalculator struct {
	AllowanceCap     decimal.Decimal
	PhaseoutStart    decimal.Decimal
	PhaseoutComplete decimal.Decimal
}

// NewPassiveLossCalculator creates a calculator with the statutory
// allowance and phase-out band.
func NewPassiveLossCalculator() *PassiveLossCalculator {
	return &PassiveLossCalculator{
		AllowanceCap:     decimal.NewFromInt(25000),
		PhaseoutStart:    decimal.NewFromInt(100000),
		PhaseoutComplete: decimal.NewFromInt(150000),
	}
}

// Calculate limits current-year passive losses against passive income plus
// the active-participation rental allowance. agiSoFar is AGI computed before
// passive results; it drives the allowance phase-out only.
func (plc *PassiveLossCalculator) Calculate(income *domain.Income, agiSoFar decimal.Decimal) (domain.PassiveLossBreakdown, error) {
	bd := domain.PassiveLossBreakdown{
		AGIForPhaseout:      agiSoFar,
		DispositionGainLoss: income.PassiveActivityDispositions,
	}

	suspendedCF := clampNonNegative(income.SuspendedPassiveLossCarryforward)

	// Rental bucket: per-activity nets, split into income vs loss columns.
	activeParticipation := false
	for _, act := range income.RentalActivities {
		bd.RentalIncome = bd.RentalIncome.Add(clampNonNegative(act.RentalIncome))
		bd.RentalLoss = bd.RentalLoss.Add(clampNonNegative(act.RentalExpenses))
		if act.ActiveParticipation {
			activeParticipation = true
		}
		net := act.NetResult()
		if net.IsPositive() {
			bd.TotalPassiveIncome = bd.TotalPassiveIncome.Add(net)
		} else {
			bd.TotalPassiveLoss = bd.TotalPassiveLoss.Add(net.Abs())
		}
	}
	bd.NetRentalResult = bd.RentalIncome.Sub(bd.RentalLoss)
	bd.ActiveParticipation = activeParticipation

	// Passive K-1 bucket.
	for _, k1 := range income.K1s {
		if !k1.IsPassiveActivity {
			continue
		}
		net := k1.OrdinaryIncome.Add(k1.NetRentalIncome)
		if net.IsPositive() {
			bd.K1PassiveIncome = bd.K1PassiveIncome.Add(net)
			bd.TotalPassiveIncome = bd.TotalPassiveIncome.Add(net)
		} else if net.IsNegative() {
			bd.K1PassiveLoss = bd.K1PassiveLoss.Add(net.Abs())
			bd.TotalPassiveLoss = bd.TotalPassiveLoss.Add(net.Abs())
		}
	}

	// Non-rental passive business bucket.
	bd.PassiveBusinessIncome = clampNonNegative(income.PassiveBusinessIncome)
	bd.PassiveBusinessLoss = clampNonNegative(income.PassiveBusinessLoss)
	bd.TotalPassiveIncome = bd.TotalPassiveIncome.Add(bd.PassiveBusinessIncome)
	bd.TotalPassiveLoss = bd.TotalPassiveLoss.Add(bd.PassiveBusinessLoss)

	bd.RealEstateProfessional = income.RealEstateProfessional ||
		income.RealEstateProfessionalHours >= realEstateProfessionalHours

	// Full disposition releases the suspended carryforward into this year,
	// real-estate professional or not.
	if !income.PassiveActivityDispositions.IsZero() {
		bd.SuspendedLossReleased = suspendedCF
		suspendedCF = decimal.Zero
	}

	if bd.RealEstateProfessional {
		// Material participation in real property trades: the limitation
		// does not apply. Everything deducts this year.
		bd.AllowablePassiveLoss = bd.TotalPassiveLoss.Add(bd.SuspendedLossReleased)
		bd.SuspendedCurrentYear = decimal.Zero
		bd.NewSuspendedCarryforward = suspendedCF
		bd.NetPassiveResult = bd.TotalPassiveIncome.
			Sub(bd.AllowablePassiveLoss).
			Add(bd.DispositionGainLoss)
		return bd, nil
	}

	// Active-participation rental allowance with linear AGI phase-out.
	if activeParticipation && bd.NetRentalResult.IsNegative() {
		bd.RentalLossAllowanceBase = decimal.Min(bd.NetRentalResult.Abs(), plc.AllowanceCap)
		bd.RentalLossAllowanceAfterPhaseout = bd.RentalLossAllowanceBase.Mul(plc.phaseoutFactor(agiSoFar))
	}

	limit := bd.TotalPassiveIncome.Add(bd.RentalLossAllowanceAfterPhaseout)
	allowed := decimal.Min(bd.TotalPassiveLoss, limit)
	bd.SuspendedCurrentYear = bd.TotalPassiveLoss.Sub(allowed)
	bd.AllowablePassiveLoss = allowed.Add(bd.SuspendedLossReleased)

	bd.NewSuspendedCarryforward = suspendedCF.Add(bd.SuspendedCurrentYear)
	if bd.NewSuspendedCarryforward.IsNegative() {
		return domain.PassiveLossBreakdown{}, fmt.Errorf("passive loss limiter produced a negative suspended carryforward: %s",
			bd.NewSuspendedCarryforward.StringFixed(2))
	}

	bd.NetPassiveResult = bd.TotalPassiveIncome.
		Sub(bd.AllowablePassiveLoss).
		Add(bd.DispositionGainLoss)

	return bd, nil
}

// phaseoutFactor returns max(0, min(1, (150000 - AGI) / 50000)).
func (plc *PassiveLossCalculator) phaseoutFactor(agi decimal.Decimal) decimal.Decimal {
	band := plc.PhaseoutComplete.Sub(plc.PhaseoutStart)
	factor := plc.PhaseoutComplete.Sub(agi).Div(band)
	if factor.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.NewFromInt(1)
	}
	if factor.IsNegative() {
		return decimal.Zero
	}
	return factor
}
