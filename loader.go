package brokerage

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FindBook returns the unique book matching the name under path.
// An empty query with no book on disk yields a fresh default book.
func FindBook(path, query string) (*Book, error) {
	bookPaths, err := findBookPaths(path, query)
	if err != nil {
		return nil, err
	}
	switch len(bookPaths) {
	case 0:
		if query == "" {
			b := NewBook()
			b.name = "book"
			return b, nil
		}
		return nil, fmt.Errorf("could not find book %q", query)
	case 1:
		return loadBookFile(path, bookPaths[0])
	default:
		return nil, fmt.Errorf("multiple books found for %q", query)
	}
}

// FindBooks discovers and loads book files under a directory. A book's name
// is its relative path without the .jsonl extension; an empty query loads
// them all.
func FindBooks(path, query string) ([]*Book, error) {
	bookPaths, err := findBookPaths(path, query)
	if err != nil {
		return nil, err
	}

	var books []*Book
	for _, fullPath := range bookPaths {
		book, err := loadBookFile(path, fullPath)
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	return books, nil
}

// loadBookFile opens, decodes, and names a book from a given file path.
func loadBookFile(rootPath, fullPath string) (*Book, error) {
	relPath, err := filepath.Rel(rootPath, fullPath)
	if err != nil {
		return nil, fmt.Errorf("could not determine relative path for %q: %w", fullPath, err)
	}

	f, err := os.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("could not open book file %q: %w", fullPath, err)
	}
	defer f.Close()

	book, err := DecodeBook(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode book file %q: %w", fullPath, err)
	}
	book.name = strings.TrimSuffix(relPath, ".jsonl")
	return book, nil
}

// SaveBook writes a book to its file under path, derived from the book name.
func SaveBook(path string, book *Book) error {
	if book.Name() == "" {
		return fmt.Errorf("cannot save book with an empty name")
	}

	filePath := filepath.Join(path, book.Name()+".jsonl")
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("could not create directory for book %q: %w", filePath, err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("error opening book file %q for writing: %w", filePath, err)
	}
	defer file.Close()

	return EncodeBook(file, book)
}

// findBookPaths scans a directory for .jsonl book files matching the query.
func findBookPaths(path, query string) ([]string, error) {
	var books []string

	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && p == path {
				return filepath.SkipAll
			}
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".jsonl") {
			return nil
		}

		relPath, err := filepath.Rel(path, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(relPath, ".jsonl")
		if query == "" || name == query {
			books = append(books, p)
		}
		return nil
	})
	return books, err
}
