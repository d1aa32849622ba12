// Package cmd implements the CLI application to manage the inventory and
// sales ledgers.
package cmd

import (
	"flag"
	"log"

	"github.com/google/subcommands"
	"github.com/kelseyhightower/envconfig"
	"github.com/stockbook/stockbook"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "inventory")
	c.Register(&inventoryCmd{}, "inventory")
	c.Register(&importInventoryCmd{}, "inventory")
	c.Register(&lowStockCmd{}, "inventory")

	c.Register(&sellCmd{}, "sales")
	c.Register(&salesCmd{}, "sales")
	c.Register(&exportCmd{}, "sales")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&dailyCmd{}, "reports")
	c.Register(&profitCmd{}, "reports")
	c.Register(&valueCmd{}, "reports")
	c.Register(&paymentsCmd{}, "reports")

	c.Register(&topicCmd{}, "")
}

// envDefaults holds the environment-provided defaults for the global flags.
type envDefaults struct {
	DataDir  string `envconfig:"DATA_DIR" default:"."`
	Currency string `envconfig:"CURRENCY" default:"USD"`
}

func loadEnvDefaults() envDefaults {
	var d envDefaults
	if err := envconfig.Process("sbk", &d); err != nil {
		log.Printf("warning, ignoring invalid SBK_* environment: %v", err)
		return envDefaults{DataDir: ".", Currency: "USD"}
	}
	return d
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var defaults = loadEnvDefaults()

var dataDir = flag.String("data-dir", defaults.DataDir, "Directory holding inventory.csv and sales.csv (env SBK_DATA_DIR)")
var currency = flag.String("currency", defaults.Currency, "Currency for all monetary values, 3-letter code (env SBK_CURRENCY)")
var verbose = flag.Bool("v", false, "Print verbose information about the books being read and written")

// verbosef logs only when the -v flag is set.
func verbosef(format string, args ...interface{}) {
	if *verbose {
		log.Printf(format, args...)
	}
}

// Store returns the store configured by the global flags.
func Store() *stockbook.Store {
	return stockbook.NewStore(*dataDir, *currency)
}

// LoadBooks loads both ledgers from the configured store, substituting empty
// ledgers for missing files.
func LoadBooks() (*stockbook.Books, error) {
	b, err := Store().Load()
	if err != nil {
		return nil, err
	}
	verbosef("loaded %d products and %d sales from %q", b.Inventory.Len(), b.Sales.Len(), *dataDir)
	return b, nil
}

// SaveBooks persists both ledgers to the configured store. It is called after
// every successful mutation, never on failed ones.
func SaveBooks(b *stockbook.Books) error {
	if err := Store().Save(b); err != nil {
		return err
	}
	verbosef("saved %d products and %d sales to %q", b.Inventory.Len(), b.Sales.Len(), *dataDir)
	return nil
}
