package brokerage

import (
	"fmt"
	"log"
)

// Category names used by approval emission. They are declared in every new
// book but remain advisory free-text labels like any other category.
const (
	CategorySaleCommission = "sale commission"
	CategoryAgentPayout    = "agent payout"
)

// EmitOnApproval returns the ledger entries a sale status transition
// produces: exactly two entries when the transition enters the approved
// status, none otherwise.
//
// The gate is the state CHANGE, not the call: re-saving an already-approved
// sale emits nothing, so emission is idempotent per approval transition.
func EmitOnApproval(prev, next SaleStatus, sale *Sale) []Entry {
	if next != SaleApproved || prev == SaleApproved {
		return nil
	}
	income, expense := emissionEntries(sale)
	return []Entry{income, expense}
}

// emissionEntries builds the two correlated entries of an approved sale:
// the agency's retained commission (gross minus tax, already received) and
// the agent's payable share (not yet paid out).
func emissionEntries(sale *Sale) (income, expense Entry) {
	income = Entry{
		Description: fmt.Sprintf("Commission on sale %s (%s)", sale.ID, sale.Unit),
		Type:        Income,
		Amount:      sale.GrossCommission.Sub(sale.TaxValue),
		Date:        sale.Date,
		Due:         sale.Date,
		Status:      Paid,
		Category:    CategorySaleCommission,
		Sale:        sale.ID,
	}
	expense = Entry{
		Description: fmt.Sprintf("Agent payout on sale %s (%s)", sale.ID, sale.Agent),
		Type:        Expense,
		Amount:      sale.AgentCommission,
		Date:        sale.Date,
		Due:         sale.Date,
		Status:      Pending,
		Category:    CategoryAgentPayout,
		Party:       sale.Agent,
		Sale:        sale.ID,
	}
	return income, expense
}

// SetSaleStatus transitions a sale and appends any emitted entries to the
// book's ledger. It returns the emitted entries (nil when the transition
// emits nothing).
//
// Persisting the book after the sale flip but before the entries land cannot
// happen here (both live in the same book), but a book synced from a remote
// store can arrive with approved sales missing their entries; Reconcile
// repairs those.
func (b *Book) SetSaleStatus(id string, next SaleStatus) ([]Entry, error) {
	sale, err := b.Sale(id)
	if err != nil {
		return nil, err
	}
	if _, err := ParseSaleStatus(string(next)); err != nil {
		return nil, err
	}

	prev := sale.Status
	sale.Status = next
	emitted := EmitOnApproval(prev, next, sale)
	if len(emitted) > 0 {
		b.ledger.Append(emitted...)
	}
	return emitted, nil
}

// MissingEmissions returns the approved sales that have no ledger entry
// linked to them. Such a sale is a data-integrity anomaly, not a crash: it
// happens when the sale was persisted but the entry write was lost.
func (b *Book) MissingEmissions() []*Sale {
	linked := make(map[string]bool)
	for _, e := range b.ledger.Entries(AcceptAll) {
		if e.Sale != "" {
			linked[e.Sale] = true
		}
	}

	var missing []*Sale
	for i := range b.sales {
		s := &b.sales[i]
		if s.Status == SaleApproved && !linked[s.ID] {
			missing = append(missing, s)
		}
	}
	return missing
}

// Reconcile re-emits the ledger entries of approved sales that lack them and
// appends them to the ledger. It returns the re-emitted entries.
func (b *Book) Reconcile() []Entry {
	var emitted []Entry
	for _, sale := range b.MissingEmissions() {
		log.Printf("%s: re-emitting ledger entries for approved sale %s", sale.Date, sale.ID)
		income, expense := emissionEntries(sale)
		emitted = append(emitted, income, expense)
	}
	if len(emitted) > 0 {
		b.ledger.Append(emitted...)
	}
	return emitted
}
