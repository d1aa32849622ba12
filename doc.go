// Package stockbook provides the types and operations for tracking a small
// apparel business: a product inventory, a sales ledger, and the analytics
// derived from them. It is designed to be local-first and auditable, with all
// data held in two plain CSV files the user can inspect and version.
//
// The core functionalities include:
//   - Inventory Ledger: Recording products with stock levels, restock
//     thresholds and prices, with validated adds, bulk replacement, and
//     low-stock detection.
//   - Sales Ledger: Recording sales validated against the inventory, with
//     prices frozen at sale time and stock decremented accordingly.
//   - Reports: Stateless aggregations over the two ledgers, such as totals,
//     sales over time, profit per product, stock value per product type, and
//     payment status counts.
//   - Data Persistence: Encoding and decoding both ledgers to and from the
//     canonical CSV schema, always saved together after each mutation.
//
// This package serves as the foundational logic for the `sbk` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package stockbook
