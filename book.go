package brokerage

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// Book is the complete record set of a brokerage: its sales, its financial
// ledger, and its category declarations. It is the unit of persistence and
// the input of every report.
type Book struct {
	name       string
	sales      []Sale
	ledger     *Ledger
	categories []Category
}

// NewBook creates an empty book with the emission categories declared.
func NewBook() *Book {
	return &Book{
		ledger: NewLedger(),
		categories: []Category{
			{Name: CategorySaleCommission, Type: Income},
			{Name: CategoryAgentPayout, Type: Expense},
		},
	}
}

// Name returns the book name, set by the loader from its file path.
func (b *Book) Name() string { return b.name }

// Rename sets the book name, and thereby the file it saves to.
func (b *Book) Rename(name string) { b.name = name }

// Ledger returns the book's financial ledger.
func (b *Book) Ledger() *Ledger { return b.ledger }

// Sale returns the sale with the given id.
func (b *Book) Sale(id string) (*Sale, error) {
	for i := range b.sales {
		if b.sales[i].ID == id {
			return &b.sales[i], nil
		}
	}
	return nil, fmt.Errorf("no sale %q in book", id)
}

// AddSale validates and records a new sale.
func (b *Book) AddSale(s Sale) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("invalid sale: %w", err)
	}
	if _, err := b.Sale(s.ID); err == nil {
		return fmt.Errorf("sale %q already exists in book", s.ID)
	}
	b.sales = append(b.sales, s)
	return nil
}

// RemoveSale deletes a sale. Ledger entries emitted by it are kept: deleting
// is independent in both directions.
func (b *Book) RemoveSale(id string) error {
	for i := range b.sales {
		if b.sales[i].ID == id {
			b.sales = append(b.sales[:i], b.sales[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("no sale %q in book", id)
}

// UpdateSaleInputs replaces a sale's operator inputs, recomputing the derived
// fields.
func (b *Book) UpdateSaleInputs(id string, in CommissionInputs) (*Sale, error) {
	sale, err := b.Sale(id)
	if err != nil {
		return nil, err
	}
	sale.SetInputs(in)
	return sale, nil
}

// Sales yields every sale in insertion order.
func (b *Book) Sales() iter.Seq[*Sale] {
	return func(yield func(*Sale) bool) {
		for i := range b.sales {
			if !yield(&b.sales[i]) {
				return
			}
		}
	}
}

// NextSaleID generates the next free id of the form "S0001".
func (b *Book) NextSaleID() string {
	max := 0
	for i := range b.sales {
		n, err := strconv.Atoi(strings.TrimPrefix(b.sales[i].ID, "S"))
		if err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("S%04d", max+1)
}

// DeclareCategory adds a category declaration to the book.
func (b *Book) DeclareCategory(c Category) error {
	if err := c.Validate(); err != nil {
		return err
	}
	for _, existing := range b.categories {
		if existing.Name == c.Name {
			return fmt.Errorf("category %q already declared", c.Name)
		}
	}
	if c.Parent != "" {
		if _, err := b.Category(c.Parent); err != nil {
			return fmt.Errorf("parent of %q: %w", c.Name, err)
		}
	}
	b.categories = append(b.categories, c)
	return nil
}

// Category returns the declared category with the given name.
func (b *Book) Category(name string) (Category, error) {
	for _, c := range b.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return Category{}, fmt.Errorf("no category %q declared", name)
}

// Categories yields the declared categories in declaration order, parents
// before their children.
func (b *Book) Categories() iter.Seq[Category] {
	return func(yield func(Category) bool) {
		for _, c := range b.categories {
			if !yield(c) {
				return
			}
		}
	}
}
