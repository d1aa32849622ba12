package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/stockbook/stockbook"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the sales table to a CSV file" }
func (*exportCmd) Usage() string {
	return `sbk export [-o <file.csv>]

  Writes the full sales table, unfiltered, to a CSV file. Without -o the
  file is named sales_data_<today>.csv in the current directory. Use "-o -"
  to write to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Destination file. Defaults to sales_data_<today>.csv")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	books, err := LoadBooks()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading books: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.output == "-" {
		if err := stockbook.EncodeSales(os.Stdout, books.Sales); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting sales: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	filename := c.output
	if filename == "" {
		filename = ExportFilename(stockbook.Today())
	}

	out, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	if err := stockbook.EncodeSales(out, books.Sales); err != nil {
		out.Close()
		fmt.Fprintf(os.Stderr, "Error exporting sales: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Sales data exported to %s\n", filename)
	return subcommands.ExitSuccess
}

// ExportFilename returns the conventional export file name for a given day.
func ExportFilename(on stockbook.Date) string {
	return fmt.Sprintf("sales_data_%s.csv", on)
}
