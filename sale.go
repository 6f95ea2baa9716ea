package brokerage

import (
	"errors"
	"fmt"
)

// SaleStatus is the lifecycle status of a sale.
type SaleStatus string

const (
	SalePending   SaleStatus = "pending"
	SaleApproved  SaleStatus = "approved"  // counts toward VGV and commission totals
	SaleCancelled SaleStatus = "cancelled" // excluded from all aggregates
)

// ParseSaleStatus parses a sale status string.
func ParseSaleStatus(s string) (SaleStatus, error) {
	switch SaleStatus(s) {
	case SalePending, SaleApproved, SaleCancelled:
		return SaleStatus(s), nil
	default:
		return "", fmt.Errorf("unknown sale status %q", s)
	}
}

// Sale is a single property transaction.
//
// Five fields are operator-editable (the CommissionInputs); the four derived
// fields are maintained by SetInputs and persisted with the sale so that the
// record is a stable snapshot of what was actually charged.
type Sale struct {
	ID       string     `json:"id"`
	Date     Date       `json:"date"` // economic date of the emitted ledger entries
	Unit     string     `json:"unit"` // unit/property label
	Agent    string     `json:"agent"`
	MiscNote string     `json:"miscNote,omitempty"` // rationale of the flat deduction
	Status   SaleStatus `json:"status"`

	// Operator inputs.
	UnitValue     Money   `json:"unitValue"`
	CommissionPct Percent `json:"commissionPct"`
	TaxPct        Percent `json:"taxPct"`
	MiscValue     Money   `json:"miscValue"`
	AgentSplitPct Percent `json:"agentSplitPct"`

	// Derived, never edited directly.
	GrossCommission  Money `json:"grossCommission"`
	TaxValue         Money `json:"taxValue"`
	AgentCommission  Money `json:"agentCommission"`
	AgencyCommission Money `json:"agencyCommission"`
}

// NewSale creates a pending sale with its derived fields computed.
func NewSale(id string, day Date, unit, agent string, in CommissionInputs) Sale {
	s := Sale{
		ID:     id,
		Date:   day,
		Unit:   unit,
		Agent:  agent,
		Status: SalePending,
	}
	s.SetInputs(in)
	return s
}

// Inputs returns the operator-editable fields as calculator inputs.
func (s *Sale) Inputs() CommissionInputs {
	return CommissionInputs{
		UnitValue:     s.UnitValue,
		CommissionPct: s.CommissionPct,
		TaxPct:        s.TaxPct,
		MiscValue:     s.MiscValue,
		AgentSplitPct: s.AgentSplitPct,
	}
}

// SetInputs replaces the operator inputs and recomputes the four derived
// fields. This is the only way derived fields change.
func (s *Sale) SetInputs(in CommissionInputs) {
	s.UnitValue = in.UnitValue
	s.CommissionPct = in.CommissionPct
	s.TaxPct = in.TaxPct
	s.MiscValue = in.MiscValue
	s.AgentSplitPct = in.AgentSplitPct

	b := Compute(in)
	s.GrossCommission = b.Gross
	s.TaxValue = b.Tax
	s.AgentCommission = b.Agent
	s.AgencyCommission = b.Agency
}

// Breakdown returns the persisted derived fields.
func (s *Sale) Breakdown() CommissionBreakdown {
	return CommissionBreakdown{
		Gross:  s.GrossCommission,
		Tax:    s.TaxValue,
		Agent:  s.AgentCommission,
		Agency: s.AgencyCommission,
	}
}

// NetBase is the amount split between agency and agent for this sale.
func (s *Sale) NetBase() Money { return s.Breakdown().NetBase() }

// Validate checks a sale for correctness before it enters a book.
func (s *Sale) Validate() error {
	var errs error
	if s.ID == "" {
		errs = errors.Join(errs, errors.New("sale id is missing"))
	}
	if s.Date.IsZero() {
		errs = errors.Join(errs, errors.New("sale date is missing"))
	}
	if s.Agent == "" {
		errs = errors.Join(errs, errors.New("sale agent is missing"))
	}
	if _, err := ParseSaleStatus(string(s.Status)); err != nil {
		errs = errors.Join(errs, err)
	}
	if err := ValidateCommissionInputs(s.Inputs()); err != nil {
		errs = errors.Join(errs, err)
	}
	return errs
}
