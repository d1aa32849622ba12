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

type paymentsCmd struct{}

func (*paymentsCmd) Name() string     { return "payments" }
func (*paymentsCmd) Synopsis() string { return "display the payment status breakdown" }
func (*paymentsCmd) Usage() string {
	return `sbk payments

  Counts the sale records per payment status (Paid, Pending, Cancelled).
`
}

func (c *paymentsCmd) SetFlags(f *flag.FlagSet) {}

func (c *paymentsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	books, err := LoadBooks()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading books: %v\n", err)
		return subcommands.ExitFailure
	}

	breakdown, err := stockbook.PaymentStatusBreakdown(books.Sales)
	if errors.Is(err, stockbook.ErrNoData) {
		fmt.Println(noDataMessage)
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PaymentStatus(breakdown))
	return subcommands.ExitSuccess
}
