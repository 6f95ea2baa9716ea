package brokerage

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

/*
	A hosted record store exports a book as a single JSON document:

	{
	    "data": {
	        "categories": [ {"name": "...", "type": "income"}, ... ],
	        "sales":      [ {"id": "S0001", ...}, ... ],
	        "entries":    [ {"description": "...", ...}, ... ]
	    }
	}
*/

// Pull fetches a book export from a hosted record store and decodes it into
// a fresh book. The caller names and saves it.
func Pull(addr string) (*Book, error) {
	var jobj any
	if err := jwget(daily(), addr, &jobj); err != nil {
		return nil, fmt.Errorf("error in wget %q: %w", addr, err)
	}

	book := &Book{ledger: NewLedger()}

	categories, err := extract(jobj, "$.data.categories")
	if err != nil {
		return nil, err
	}
	for _, jc := range categories {
		var c Category
		if err := reparse(jc, &c); err != nil {
			return nil, fmt.Errorf("invalid remote category: %w", err)
		}
		if err := book.DeclareCategory(c); err != nil {
			return nil, err
		}
	}

	sales, err := extract(jobj, "$.data.sales")
	if err != nil {
		return nil, err
	}
	for _, js := range sales {
		var s Sale
		if err := reparse(js, &s); err != nil {
			return nil, fmt.Errorf("invalid remote sale: %w", err)
		}
		if err := book.AddSale(s); err != nil {
			return nil, err
		}
	}

	jentries, err := extract(jobj, "$.data.entries")
	if err != nil {
		return nil, err
	}
	var entries []Entry
	for _, je := range jentries {
		var e Entry
		if err := reparse(je, &e); err != nil {
			return nil, fmt.Errorf("invalid remote entry: %w", err)
		}
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("invalid remote entry: %w", err)
		}
		entries = append(entries, e)
	}
	// A single append keeps the export order as the insertion order.
	book.ledger.Append(entries...)
	book.declareEmissionCategories()
	return book, nil
}

// extract evaluates a jsonpath expression expected to yield a list. A missing
// path yields an empty list: exports may omit a section entirely.
func extract(jobj any, path string) ([]any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		// jsonpath reports absent keys as errors, treat them as empty.
		return nil, nil
	}
	// because jsonpath is never clear about whether it returns a list of
	// answers or a single answer: wrap the single one.
	jlist, ok := jval.([]any)
	if !ok {
		return []any{jval}, nil
	}
	return jlist, nil
}

// reparse round-trips a decoded JSON value into a typed record.
func reparse(jval any, v any) error {
	data, err := json.Marshal(jval)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
