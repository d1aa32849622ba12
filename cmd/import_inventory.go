package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/stockbook/stockbook"
)

type importInventoryCmd struct {
	input string
}

func (*importInventoryCmd) Name() string { return "import-inventory" }
func (*importInventoryCmd) Synopsis() string {
	return "replace the whole inventory from a CSV file"
}
func (*importInventoryCmd) Usage() string {
	return `sbk import-inventory -i <file.csv>

  Replaces the entire inventory table with the rows of the given CSV file,
  which must carry the canonical inventory columns. This is the bulk-edit
  operation: export or hand-edit the file, then import it back. Every row is
  validated and the import is all-or-nothing.
`
}

func (c *importInventoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "CSV file to import (required)")
}

func (c *importInventoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		fmt.Fprintln(os.Stderr, "Error: the -i flag is required.")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(c.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", c.input, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	inventory, err := stockbook.DecodeInventory(in, *currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", c.input, err)
		return subcommands.ExitFailure
	}

	books, err := LoadBooks()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading books: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := books.Inventory.Replace(inventory.Products()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid inventory rows:\n%v\n", err)
		return subcommands.ExitFailure
	}

	if err := SaveBooks(books); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving books: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Inventory updated successfully: %d rows.\n", books.Inventory.Len())
	return subcommands.ExitSuccess
}
