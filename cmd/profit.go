package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/stockbook/stockbook"
	"github.com/stockbook/stockbook/renderer"
)

type profitCmd struct{}

func (*profitCmd) Name() string     { return "profit" }
func (*profitCmd) Synopsis() string { return "display accumulated profit per product" }
func (*profitCmd) Usage() string {
	return `sbk profit

  Groups the sales ledger by product name and displays units sold and
  accumulated profit per product, highest profit first.
`
}

func (c *profitCmd) SetFlags(f *flag.FlagSet) {}

func (c *profitCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	books, err := LoadBooks()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading books: %v\n", err)
		return subcommands.ExitFailure
	}

	products, err := stockbook.ProfitByProduct(books.Sales)
	if errors.Is(err, stockbook.ErrNoData) {
		fmt.Println(noDataMessage)
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ProfitByProduct(products))
	return subcommands.ExitSuccess
}
