package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/stockbook/stockbook/renderer"
)

type inventoryCmd struct{}

func (*inventoryCmd) Name() string     { return "inventory" }
func (*inventoryCmd) Synopsis() string { return "display the current inventory" }
func (*inventoryCmd) Usage() string {
	return `sbk inventory

  Displays the full inventory table, followed by a low-stock alert listing
  every product at or below its restock threshold.
`
}

func (c *inventoryCmd) SetFlags(f *flag.FlagSet) {}

func (c *inventoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	books, err := LoadBooks()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading books: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Inventory(books.Inventory))
	return subcommands.ExitSuccess
}
