package brokerage

import (
	"errors"
	"fmt"
	"strings"
)

// EntryType tells whether a ledger entry adds to or subtracts from the
// running balance. The sign lives here, never in the amount.
type EntryType string

const (
	Income  EntryType = "income"
	Expense EntryType = "expense"
)

// ParseEntryType parses an entry type string.
func ParseEntryType(s string) (EntryType, error) {
	switch EntryType(s) {
	case Income, Expense:
		return EntryType(s), nil
	default:
		return "", fmt.Errorf("unknown entry type %q", s)
	}
}

// EntryStatus is the settlement status of a ledger entry.
//
// It is a pure tracking attribute: toggling it never changes the entry's
// contribution to the running balance. It is reversible indefinitely.
type EntryStatus string

const (
	Paid    EntryStatus = "paid"
	Pending EntryStatus = "pending"
)

// Toggle returns the other status.
func (s EntryStatus) Toggle() EntryStatus {
	if s == Paid {
		return Pending
	}
	return Paid
}

// Entry is a single income or expense record in the financial ledger.
type Entry struct {
	Description string      `json:"description"`
	Type        EntryType   `json:"type"`
	Amount      Money       `json:"amount"` // always positive, sign carried by Type
	Date        Date        `json:"date"`   // economic date, orders the ledger
	Due         Date        `json:"due,omitempty"`
	Status      EntryStatus `json:"status"`
	Category    string      `json:"category,omitempty"` // free-text category name, not a foreign key
	Party       string      `json:"party,omitempty"`    // related party, e.g. the agent of a commission payout
	Account     string      `json:"account,omitempty"`  // bank account reference
	Method      string      `json:"method,omitempty"`   // payment method reference
	Sale        string      `json:"sale,omitempty"`     // id of the originating sale, set by approval emission
}

// Signed returns the entry amount with the sign implied by its type.
func (e Entry) Signed() Money {
	if e.Type == Expense {
		return e.Amount.Neg()
	}
	return e.Amount
}

// Validate checks an entry for correctness before it enters a ledger.
func (e Entry) Validate() error {
	var errs error
	if strings.TrimSpace(e.Description) == "" {
		errs = errors.Join(errs, errors.New("entry description is missing"))
	}
	if _, err := ParseEntryType(string(e.Type)); err != nil {
		errs = errors.Join(errs, err)
	}
	if !e.Amount.IsPositive() {
		errs = errors.Join(errs, fmt.Errorf("entry amount must be positive, got %s", e.Amount))
	}
	if e.Date.IsZero() {
		errs = errors.Join(errs, errors.New("entry economic date is missing"))
	}
	if e.Status != Paid && e.Status != Pending {
		errs = errors.Join(errs, fmt.Errorf("unknown entry status %q", e.Status))
	}
	return errs
}

// Category is a named, typed label used to classify ledger entries.
//
// Categories form a forest through parent names. They are advisory: an
// entry's category is matched by name, nothing is referentially enforced.
type Category struct {
	Name   string    `json:"name"`
	Type   EntryType `json:"type"`
	Parent string    `json:"parent,omitempty"`
}

// Validate checks a category declaration.
func (c Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("category name is missing")
	}
	if _, err := ParseEntryType(string(c.Type)); err != nil {
		return err
	}
	return nil
}
