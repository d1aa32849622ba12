package stockbook

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// Canonical file names inside the store directory.
const (
	InventoryFilename = "inventory.csv"
	SalesFilename     = "sales.csv"
)

// Store persists the books as two CSV files inside a directory.
//
// Load and Save always address both tables together: the books are mirrored
// to disk as a whole after every successful mutation.
type Store struct {
	Dir      string // storage root, created on Load if missing
	Currency string // currency for monetary columns, e.g. "USD"
}

// NewStore creates a store rooted at dir.
func NewStore(dir, currency string) *Store {
	return &Store{Dir: dir, Currency: currency}
}

func (s *Store) inventoryPath() string { return filepath.Join(s.Dir, InventoryFilename) }
func (s *Store) salesPath() string     { return filepath.Join(s.Dir, SalesFilename) }

// Load reads both tables from the store directory, creating the directory if
// needed. A missing file is not an error: the corresponding ledger starts
// empty with the canonical schema.
func (s *Store) Load() (*Books, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory %q: %w", s.Dir, err)
	}

	books := NewBooks()

	f, err := os.Open(s.inventoryPath())
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("warning, inventory file %q does not exist, starting with an empty inventory", s.inventoryPath())
	case err != nil:
		return nil, err
	default:
		books.Inventory, err = DecodeInventory(f, s.Currency)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", s.inventoryPath(), err)
		}
	}

	f, err = os.Open(s.salesPath())
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("warning, sales file %q does not exist, starting with an empty sales ledger", s.salesPath())
	case err != nil:
		return nil, err
	default:
		books.Sales, err = DecodeSales(f, s.Currency)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", s.salesPath(), err)
		}
	}

	return books, nil
}

// Save writes both tables to the store directory, fully overwriting the
// previous contents. There is no partial-save path: any error means the
// caller cannot assume either file is current.
func (s *Store) Save(b *Books) error {
	if err := writeFile(s.inventoryPath(), func(f *os.File) error {
		return EncodeInventory(f, b.Inventory)
	}); err != nil {
		return fmt.Errorf("saving inventory: %w", err)
	}
	if err := writeFile(s.salesPath(), func(f *os.File) error {
		return EncodeSales(f, b.Sales)
	}); err != nil {
		return fmt.Errorf("saving sales: %w", err)
	}
	return nil
}

func writeFile(path string, encode func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
