package domain

import "github.com/shopspring/decimal"

// Project-wide surcharges applied on top of labor cost.
// On-time projects carry the higher one; this is business policy.
var (
	DelayedSurcharge = decimal.RequireFromString("1.25")
	OnTimeSurcharge  = decimal.RequireFromString("1.35")
)

// LaborCost sums the pay of every assigned task over its effective duration.
// Unassigned tasks contribute nothing. Tasks whose employee cannot be resolved are skipped.
func (p *Project) LaborCost() decimal.Decimal {
	total := decimal.Zero
	for _, t := range p.tasks {
		pay, err := t.Pay()
		if err != nil {
			continue
		}
		total = total.Add(pay)
	}
	return total
}

// Surcharge returns the multiplier the project currently qualifies for.
func (p *Project) Surcharge() decimal.Decimal {
	if p.HasDelays() {
		return DelayedSurcharge
	}
	return OnTimeSurcharge
}

// CalculateCost computes the project cost from current task and employee state.
// It does not touch the cached value returned by Cost.
func (p *Project) CalculateCost() decimal.Decimal {
	return p.LaborCost().Mul(p.Surcharge())
}

// CurrentCost returns the locked cost of a finalized project. Open projects are
// recomputed, since an employee's delay in another project can change their pay.
func (p *Project) CurrentCost() decimal.Decimal {
	if p.IsFinalized() {
		return p.cost
	}
	return p.CalculateCost()
}
