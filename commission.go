package brokerage

import (
	"errors"
	"fmt"
)

// CommissionInputs are the five operator-editable fields of a sale that drive
// the commission split.
type CommissionInputs struct {
	// UnitValue is the sale price of the unit.
	UnitValue Money
	// CommissionPct is the total commission charged on the unit value.
	CommissionPct Percent
	// TaxPct is deducted from the gross commission before the split.
	TaxPct Percent
	// MiscValue is a flat deduction (not a percentage) taken from the gross
	// commission before the split.
	MiscValue Money
	// AgentSplitPct is the share of the net base owed to the agent.
	AgentSplitPct Percent
}

// CommissionBreakdown are the four derived fields of a sale. They are
// persisted with the sale as a stable snapshot of what was actually charged,
// never recomputed lazily on read.
type CommissionBreakdown struct {
	Gross  Money // commission before any deduction
	Tax    Money // tax deducted from the gross
	Agent  Money // agent share of the net base
	Agency Money // agency share, always NetBase − Agent
}

// NetBase is the amount actually split between agency and agent:
// gross minus tax minus the flat deduction. By construction it is the sum of
// the two shares.
func (b CommissionBreakdown) NetBase() Money {
	return b.Agent.Add(b.Agency)
}

// Compute derives the commission breakdown from a sale's inputs.
//
// The computation is pure and idempotent. Inputs are taken as-is: Compute
// never clamps or rejects. A flat deduction larger than gross−tax produces a
// negative net base and negative shares; flooring them at zero here would
// break the split identity, so any clamping is the caller's decision.
//
// Each derived field is rounded to the currency minor unit, and the agency
// share is obtained by subtraction, so that
//
//	Agent + Agency == Gross − Tax − MiscValue
//
// holds exactly on the persisted values.
func Compute(in CommissionInputs) CommissionBreakdown {
	gross := in.CommissionPct.Of(in.UnitValue).Round()
	tax := in.TaxPct.Of(gross).Round()
	netBase := gross.Sub(tax).Sub(in.MiscValue.Round())
	agent := in.AgentSplitPct.Of(netBase).Round()
	agency := netBase.Sub(agent)
	return CommissionBreakdown{Gross: gross, Tax: tax, Agent: agent, Agency: agency}
}

// ValidateCommissionInputs checks the documented input ranges: non-negative
// value fields and percentages within [0,100].
//
// Compute deliberately accepts anything; callers that want the operator-facing
// contract enforced wrap it with this check.
func ValidateCommissionInputs(in CommissionInputs) error {
	var errs error
	if in.UnitValue.IsNegative() {
		errs = errors.Join(errs, fmt.Errorf("unit value must not be negative, got %s", in.UnitValue))
	}
	if in.MiscValue.IsNegative() {
		errs = errors.Join(errs, fmt.Errorf("deduction value must not be negative, got %s", in.MiscValue))
	}
	for _, p := range []struct {
		name string
		pct  Percent
	}{
		{"commission", in.CommissionPct},
		{"tax", in.TaxPct},
		{"agent split", in.AgentSplitPct},
	} {
		if p.pct.Decimal().IsNegative() || p.pct.Decimal().GreaterThan(hundred) {
			errs = errors.Join(errs, fmt.Errorf("%s percentage must be within [0,100], got %s", p.name, p.pct))
		}
	}
	return errs
}
