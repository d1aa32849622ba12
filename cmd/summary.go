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

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display total units sold, revenue and profit" }
func (*summaryCmd) Usage() string {
	return `sbk summary

  Displays the headline sales metrics: total products sold, total revenue
  and total profit over the whole sales ledger.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	books, err := LoadBooks()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading books: %v\n", err)
		return subcommands.ExitFailure
	}

	summary, err := stockbook.NewSummary(books.Sales)
	if errors.Is(err, stockbook.ErrNoData) {
		fmt.Println(noDataMessage)
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Summary(summary))
	return subcommands.ExitSuccess
}

// noDataMessage is printed by every report when its ledger is still empty.
const noDataMessage = "Not enough data to display analytics. Add some products and sales first."
