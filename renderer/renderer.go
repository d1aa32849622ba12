// Package renderer turns stockbook ledgers and reports into markdown, ready
// to be printed to a terminal or written to a file.
package renderer

import (
	"strconv"

	"github.com/stockbook/stockbook"
)

// itoa is a short alias, the tables below format a lot of integers.
func itoa(n int) string { return strconv.Itoa(n) }

// money renders a monetary value for display.
func money(m stockbook.Money) string { return m.String() }
