package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/stockbook/stockbook/renderer"
)

type lowStockCmd struct{}

func (*lowStockCmd) Name() string     { return "low-stock" }
func (*lowStockCmd) Synopsis() string { return "list products at or below their restock threshold" }
func (*lowStockCmd) Usage() string {
	return `sbk low-stock

  Lists every product whose quantity is at or below its restock threshold.
  A product exactly at its threshold is included.
`
}

func (c *lowStockCmd) SetFlags(f *flag.FlagSet) {}

func (c *lowStockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	books, err := LoadBooks()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading books: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.LowStock(books.Inventory))
	return subcommands.ExitSuccess
}
