package brokerage

import (
	"path/filepath"
	"testing"
	"time"
)

func TestSaveAndFindBook(t *testing.T) {
	dir := t.TempDir()

	book := NewBook()
	book.Rename("main")
	if err := book.AddSale(testSale("S0001")); err != nil {
		t.Fatal(err)
	}
	book.Ledger().Append(entry("rent", Expense, 100, NewDate(2025, time.July, 5)))
	if err := SaveBook(dir, book); err != nil {
		t.Fatal(err)
	}

	loaded, err := FindBook(dir, "main")
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Name() != "main" {
		t.Errorf("Name() = %q, want main", loaded.Name())
	}
	if loaded.Ledger().Len() != 1 {
		t.Errorf("loaded ledger has %d entries, want 1", loaded.Ledger().Len())
	}
	if _, err := loaded.Sale("S0001"); err != nil {
		t.Error(err)
	}
}

func TestFindBook_Defaults(t *testing.T) {
	dir := t.TempDir()

	// An empty folder and no selection yields a fresh book.
	book, err := FindBook(dir, "")
	if err != nil {
		t.Fatal(err)
	}
	if book.Name() != "book" {
		t.Errorf("fresh book Name() = %q, want book", book.Name())
	}

	// A named query on an empty folder fails.
	if _, err := FindBook(dir, "ghost"); err == nil {
		t.Error("FindBook with an unknown name should fail")
	}

	// A folder that does not exist behaves like an empty one.
	if _, err := FindBook(filepath.Join(dir, "nope"), ""); err != nil {
		t.Errorf("missing folder should yield a fresh book, got %v", err)
	}
}

func TestFindBook_SingleAndAmbiguous(t *testing.T) {
	dir := t.TempDir()

	a := NewBook()
	a.Rename("alpha")
	if err := SaveBook(dir, a); err != nil {
		t.Fatal(err)
	}

	// With exactly one book on disk, the empty query finds it.
	got, err := FindBook(dir, "")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name() != "alpha" {
		t.Errorf("Name() = %q, want alpha", got.Name())
	}

	b := NewBook()
	b.Rename("beta")
	if err := SaveBook(dir, b); err != nil {
		t.Fatal(err)
	}

	// Two books make the empty query ambiguous.
	if _, err := FindBook(dir, ""); err == nil {
		t.Error("ambiguous FindBook should fail")
	}
	if _, err := FindBook(dir, "beta"); err != nil {
		t.Errorf("named FindBook should succeed, got %v", err)
	}
}

func TestFindBooks_Subfolders(t *testing.T) {
	dir := t.TempDir()

	book := NewBook()
	book.Rename(filepath.Join("2025", "main"))
	if err := SaveBook(dir, book); err != nil {
		t.Fatal(err)
	}

	books, err := FindBooks(dir, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(books) != 1 {
		t.Fatalf("FindBooks found %d books, want 1", len(books))
	}
	if got := books[0].Name(); got != filepath.Join("2025", "main") {
		t.Errorf("Name() = %q, want 2025/main", got)
	}
}
