package brokerage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// RecordKind is the discriminator carried by every line of a book file.
type RecordKind string

const (
	RecordSale     RecordKind = "sale"
	RecordEntry    RecordKind = "entry"
	RecordCategory RecordKind = "category"
)

// DecodeBook decodes a book from a stream of JSONL data: one record per
// line, identified by its "record" field.
func DecodeBook(r io.Reader) (*Book, error) {
	book := &Book{ledger: NewLedger()}
	scanner := bufio.NewScanner(r)

	var entries []Entry
	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Record RecordKind `json:"record"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record in line %q: %w", string(lineBytes), err)
		}

		switch identifier.Record {
		case RecordSale:
			var s Sale
			if err := json.Unmarshal(lineBytes, &s); err != nil {
				return nil, fmt.Errorf("invalid sale record: %w", err)
			}
			if err := book.AddSale(s); err != nil {
				return nil, err
			}
		case RecordEntry:
			var e Entry
			if err := json.Unmarshal(lineBytes, &e); err != nil {
				return nil, fmt.Errorf("invalid entry record: %w", err)
			}
			if err := e.Validate(); err != nil {
				return nil, fmt.Errorf("invalid entry record: %w", err)
			}
			entries = append(entries, e)
		case RecordCategory:
			var c Category
			if err := json.Unmarshal(lineBytes, &c); err != nil {
				return nil, fmt.Errorf("invalid category record: %w", err)
			}
			if err := book.DeclareCategory(c); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("unknown record kind: %q", identifier.Record)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	// A single append keeps the file order as the insertion order, which is
	// the tie-break for same-day entries.
	book.ledger.Append(entries...)
	book.declareEmissionCategories()
	return book, nil
}

// declareEmissionCategories makes sure the categories used by approval
// emission exist, without disturbing books that already declare them.
func (b *Book) declareEmissionCategories() {
	if _, err := b.Category(CategorySaleCommission); err != nil {
		b.categories = append(b.categories, Category{Name: CategorySaleCommission, Type: Income})
	}
	if _, err := b.Category(CategoryAgentPayout); err != nil {
		b.categories = append(b.categories, Category{Name: CategoryAgentPayout, Type: Expense})
	}
}

// EncodeBook persists a book to an io.Writer in canonical JSONL form:
// categories first, then sales in insertion order, then entries in
// chronological order.
func EncodeBook(w io.Writer, book *Book) error {
	for c := range book.Categories() {
		if err := EncodeRecord(w, RecordCategory, c); err != nil {
			return err
		}
	}
	for s := range book.Sales() {
		if err := EncodeRecord(w, RecordSale, s); err != nil {
			return err
		}
	}
	for _, e := range book.Ledger().Entries(AcceptAll) {
		if err := EncodeRecord(w, RecordEntry, e); err != nil {
			return err
		}
	}
	return nil
}

// EncodeRecord marshals a single record to JSON with its kind discriminator
// injected as the first field, and writes it followed by a newline.
func EncodeRecord(w io.Writer, kind RecordKind, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s record: %w", kind, err)
	}

	sep := ","
	if len(data) == 2 { // empty object
		sep = ""
	}
	line := []byte(fmt.Sprintf(`{"record":%q%s`, kind, sep))
	line = append(line, data[1:]...)
	line = append(line, '\n')
	if _, err := w.Write(line); err != nil {
		return fmt.Errorf("failed to write %s record: %w", kind, err)
	}
	return nil
}
