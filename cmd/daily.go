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

type dailyCmd struct{}

func (*dailyCmd) Name() string     { return "daily" }
func (*dailyCmd) Synopsis() string { return "display units sold and profit per day" }
func (*dailyCmd) Usage() string {
	return `sbk daily

  Groups the sales ledger by calendar date and displays units sold and
  profit per day, oldest first.
`
}

func (c *dailyCmd) SetFlags(f *flag.FlagSet) {}

func (c *dailyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	books, err := LoadBooks()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading books: %v\n", err)
		return subcommands.ExitFailure
	}

	days, err := stockbook.SalesOverTime(books.Sales)
	if errors.Is(err, stockbook.ErrNoData) {
		fmt.Println(noDataMessage)
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SalesOverTime(days))
	return subcommands.ExitSuccess
}
