package brokerage

import (
	"fmt"
	"iter"
	"sort"
	"strings"
)

// Ledger holds the complete set of financial entries of a book.
//
// Entries are always kept in chronological order by economic date; entries on
// the same day keep their insertion order (the stable tie-break used
// everywhere running balances are computed).
type Ledger struct {
	entries []Entry

	// version increments on every mutation; statement annotation is cached
	// against it so filter-only changes never re-walk the full set.
	version uint64

	// cached balance-annotated view of the full entry set, see annotate().
	annotated        []StatementRow
	annotatedVersion uint64
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{entries: make([]Entry, 0)}
}

// Len returns the number of entries in the ledger.
func (l *Ledger) Len() int { return len(l.entries) }

// Entry returns the i-th entry in chronological order.
func (l *Ledger) Entry(i int) (Entry, error) {
	if i < 0 || i >= len(l.entries) {
		return Entry{}, fmt.Errorf("no entry at index %d, ledger has %d entries", i, len(l.entries))
	}
	return l.entries[i], nil
}

// Append adds entries to the ledger and maintains the chronological order.
func (l *Ledger) Append(entries ...Entry) {
	l.entries = append(l.entries, entries...)
	l.stableSort()
	l.version++
}

// Remove deletes the i-th entry. Deleting never cascades back to the
// originating sale.
func (l *Ledger) Remove(i int) (Entry, error) {
	e, err := l.Entry(i)
	if err != nil {
		return Entry{}, err
	}
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
	l.version++
	return e, nil
}

// ToggleStatus flips the i-th entry between paid and pending and returns the
// updated entry. The flip is reversible and never affects balances.
func (l *Ledger) ToggleStatus(i int) (Entry, error) {
	e, err := l.Entry(i)
	if err != nil {
		return Entry{}, err
	}
	e.Status = e.Status.Toggle()
	l.entries[i] = e
	l.version++
	return e, nil
}

// stableSort sorts the ledger by economic date. The sort is stable: entries
// on the same day maintain their original relative order. This is the single
// tie-break rule of the whole engine.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.entries, func(i, j int) bool {
		return l.entries[i].Date.Before(l.entries[j].Date)
	})
}

// Entries returns an iterator yielding each entry, in chronological order,
// that is accepted by at least one of the predicates.
func (l *Ledger) Entries(filters ...func(Entry) bool) iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		for i, e := range l.entries {
			accept := false
			for _, filter := range filters {
				if filter(e) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, e) {
				return
			}
		}
	}
}

// OldestDate returns the economic date of the earliest entry, or the zero
// date for an empty ledger.
func (l *Ledger) OldestDate() Date {
	if len(l.entries) == 0 {
		return Date{}
	}
	return l.entries[0].Date
}

// NewestDate returns the economic date of the latest entry, or the zero date
// for an empty ledger.
func (l *Ledger) NewestDate() Date {
	if len(l.entries) == 0 {
		return Date{}
	}
	return l.entries[len(l.entries)-1].Date
}

// AllCategories yields the distinct category names present in the ledger, in
// first-use order.
func (l *Ledger) AllCategories() iter.Seq[string] {
	return func(yield func(string) bool) {
		visited := make(map[string]struct{})
		for _, e := range l.entries {
			if e.Category == "" {
				continue
			}
			if _, ok := visited[e.Category]; ok {
				continue
			}
			visited[e.Category] = struct{}{}
			if !yield(e.Category) {
				return
			}
		}
	}
}

// AcceptAll is a predicate that accepts every entry.
func AcceptAll(Entry) bool { return true }

// ByType returns a predicate that filters entries by type.
func ByType(t EntryType) func(Entry) bool {
	return func(e Entry) bool { return e.Type == t }
}

// ByCategory returns a predicate that filters entries by exact category name.
func ByCategory(name string) func(Entry) bool {
	return func(e Entry) bool { return e.Category == name }
}

// ByRange returns a predicate that filters entries whose economic date falls
// within the inclusive range.
func ByRange(r Range) func(Entry) bool {
	return func(e Entry) bool { return r.Contains(e.Date) }
}

// BySale returns a predicate that filters entries emitted by a given sale.
func BySale(id string) func(Entry) bool {
	return func(e Entry) bool { return e.Sale == id }
}

// ByQuery returns a predicate that matches the description,
// case-insensitively, against a free-text query.
func ByQuery(query string) func(Entry) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	return func(e Entry) bool {
		return strings.Contains(strings.ToLower(e.Description), q)
	}
}
