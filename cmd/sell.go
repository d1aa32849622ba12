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

type sellCmd struct {
	date     string
	product  string
	quantity int
	size     string
	gender   string
	customer string
	status   string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale against the inventory" }
func (*sellCmd) Usage() string {
	return `sbk sell -p <product> -q <quantity> -size <size> -gender <gender> [-d <date>] [-customer <name>] [-status <status>]

  Records a sale. The product is matched in the inventory by exact
  (name, size, gender); its current cost and selling prices are copied into
  the sale record, and its stock is decremented by the quantity sold.
  The sale is rejected, and nothing is changed, when the product is not in
  the inventory or its stock is lower than the quantity sold.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", stockbook.Today().String(), "Date of sale. Supports relative dates like -1d.")
	f.StringVar(&c.product, "p", "", "Product name (required)")
	f.IntVar(&c.quantity, "q", 1, "Quantity sold")
	f.StringVar(&c.size, "size", "", "Size (required)")
	f.StringVar(&c.gender, "gender", "", "Gender (required)")
	f.StringVar(&c.customer, "customer", "", "Customer name")
	f.StringVar(&c.status, "status", string(stockbook.Paid), "Payment status (Paid, Pending, Cancelled)")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := stockbook.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	books, err := LoadBooks()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading books: %v\n", err)
		return subcommands.ExitFailure
	}

	record, err := books.RecordSale(on, c.product, c.quantity,
		stockbook.Size(c.size), stockbook.Gender(c.gender),
		c.customer, stockbook.PaymentStatus(c.status))
	if err != nil {
		var verr *stockbook.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", verr)
			return subcommands.ExitUsageError
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := SaveBooks(books); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving books: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Sale(record))
	return subcommands.ExitSuccess
}
