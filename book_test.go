package brokerage

import (
	"testing"
	"time"
)

func TestBook_AddSale(t *testing.T) {
	book := NewBook()
	if err := book.AddSale(testSale("S0001")); err != nil {
		t.Fatal(err)
	}
	if err := book.AddSale(testSale("S0001")); err == nil {
		t.Error("duplicate sale id should fail")
	}

	invalid := testSale("S0002")
	invalid.Agent = ""
	if err := book.AddSale(invalid); err == nil {
		t.Error("sale without an agent should fail")
	}
}

func TestBook_NextSaleID(t *testing.T) {
	book := NewBook()
	if got := book.NextSaleID(); got != "S0001" {
		t.Errorf("NextSaleID() = %q, want S0001", got)
	}

	if err := book.AddSale(testSale("S0007")); err != nil {
		t.Fatal(err)
	}
	// Foreign id schemes don't disturb the counter.
	foreign := testSale("LEGACY-3")
	if err := book.AddSale(foreign); err != nil {
		t.Fatal(err)
	}
	if got := book.NextSaleID(); got != "S0008" {
		t.Errorf("NextSaleID() = %q, want S0008", got)
	}
}

func TestBook_UpdateSaleInputs(t *testing.T) {
	book := NewBook()
	if err := book.AddSale(testSale("S0001")); err != nil {
		t.Fatal(err)
	}

	in := CommissionInputs{
		UnitValue:     BRL(600_000),
		CommissionPct: P(5),
		TaxPct:        P(6),
		MiscValue:     BRL(150),
		AgentSplitPct: P(40),
	}
	sale, err := book.UpdateSaleInputs("S0001", in)
	if err != nil {
		t.Fatal(err)
	}
	if !sale.GrossCommission.Equal(BRL(30_000)) {
		t.Errorf("GrossCommission = %v, want %v (derived fields must follow inputs)", sale.GrossCommission, BRL(30_000))
	}

	if _, err := book.UpdateSaleInputs("S0404", in); err == nil {
		t.Error("updating an unknown sale should fail")
	}
}

func TestBook_RemoveSaleKeepsEntries(t *testing.T) {
	book := NewBook()
	if err := book.AddSale(testSale("S0001")); err != nil {
		t.Fatal(err)
	}
	if _, err := book.SetSaleStatus("S0001", SaleApproved); err != nil {
		t.Fatal(err)
	}

	if err := book.RemoveSale("S0001"); err != nil {
		t.Fatal(err)
	}
	if _, err := book.Sale("S0001"); err == nil {
		t.Error("sale should be gone")
	}
	if book.Ledger().Len() != 2 {
		t.Errorf("removing the sale changed the ledger: %d entries, want 2", book.Ledger().Len())
	}
	if err := book.RemoveSale("S0001"); err == nil {
		t.Error("removing twice should fail")
	}
}

func TestBook_DeclareCategory(t *testing.T) {
	book := NewBook()

	if err := book.DeclareCategory(Category{Name: "operations", Type: Expense}); err != nil {
		t.Fatal(err)
	}
	if err := book.DeclareCategory(Category{Name: "rent", Type: Expense, Parent: "operations"}); err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name string
		cat  Category
	}{
		{"duplicate", Category{Name: "rent", Type: Expense}},
		{"missing parent", Category{Name: "utilities", Type: Expense, Parent: "nope"}},
		{"empty name", Category{Type: Expense}},
		{"bad type", Category{Name: "stuff", Type: EntryType("transfer")}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := book.DeclareCategory(tc.cat); err == nil {
				t.Error("DeclareCategory should fail")
			}
		})
	}
}

func TestNewBook_DeclaresEmissionCategories(t *testing.T) {
	book := NewBook()
	if _, err := book.Category(CategorySaleCommission); err != nil {
		t.Error(err)
	}
	if _, err := book.Category(CategoryAgentPayout); err != nil {
		t.Error(err)
	}
}

func TestBook_Sales(t *testing.T) {
	book := NewBook()
	days := []Date{
		NewDate(2025, time.July, 3),
		NewDate(2025, time.July, 1),
	}
	for _, d := range days {
		s := testSale(book.NextSaleID())
		s.Date = d
		if err := book.AddSale(s); err != nil {
			t.Fatal(err)
		}
	}

	// Sales iterate in insertion order, not date order.
	var ids []string
	for s := range book.Sales() {
		ids = append(ids, s.ID)
	}
	if len(ids) != 2 || ids[0] != "S0001" || ids[1] != "S0002" {
		t.Errorf("Sales() order = %v, want [S0001 S0002]", ids)
	}
}
