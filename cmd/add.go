package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/stockbook/stockbook"
)

type addCmd struct {
	name      string
	ptype     string
	gender    string
	size      string
	color     string
	sku       string
	quantity  int
	threshold int
	cost      string
	selling   string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new product to the inventory" }
func (*addCmd) Usage() string {
	return `sbk add -name <name> -type <type> -gender <gender> -size <size> -color <color> [-sku <code>] -quantity <n> -threshold <n> -cost <price> -selling <price>

  Adds a new product row to the inventory:
  - name: The product name (e.g., "Plain Tee"). Required.
  - type: One of T-shirt, Hoodie, Tracksuit, Pants, Hat, Other. Required.
  - gender: One of Male, Female, Unisex. Required.
  - size: One of XS, S, M, L, XL, XXL. Required.
  - color: The product color. Required.
  - sku: An optional SKU or internal code.
  - quantity: Units currently in stock.
  - threshold: Stock level at which the product is flagged for restock.
  - cost, selling: Per-unit prices, e.g. 12.50.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Product name (required)")
	f.StringVar(&c.ptype, "type", "", "Product type (required)")
	f.StringVar(&c.gender, "gender", "", "Gender (required)")
	f.StringVar(&c.size, "size", "", "Size (required)")
	f.StringVar(&c.color, "color", "", "Color (required)")
	f.StringVar(&c.sku, "sku", "", "SKU or internal code")
	f.IntVar(&c.quantity, "quantity", 0, "Quantity in stock")
	f.IntVar(&c.threshold, "threshold", 0, "Restock threshold")
	f.StringVar(&c.cost, "cost", "0", "Cost price per unit")
	f.StringVar(&c.selling, "selling", "0", "Selling price per unit")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cost, err := stockbook.ParseMoney(c.cost, *currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing cost price: %v\n", err)
		return subcommands.ExitUsageError
	}
	selling, err := stockbook.ParseMoney(c.selling, *currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing selling price: %v\n", err)
		return subcommands.ExitUsageError
	}

	product := stockbook.Product{
		Name:             c.name,
		Type:             stockbook.ProductType(c.ptype),
		Gender:           stockbook.Gender(c.gender),
		Size:             stockbook.Size(c.size),
		Color:            c.color,
		SKU:              c.sku,
		Quantity:         c.quantity,
		RestockThreshold: c.threshold,
		CostPrice:        cost,
		SellingPrice:     selling,
	}

	books, err := LoadBooks()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading books: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := books.Inventory.Add(product); err != nil {
		var verr *stockbook.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", verr)
			return subcommands.ExitUsageError
		}
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := SaveBooks(books); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving books: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Product %q added successfully.\n", product.Name)
	return subcommands.ExitSuccess
}
