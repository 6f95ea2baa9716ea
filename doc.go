// Package brokerage provides the core types and functions for running the
// finances of a small real-estate brokerage. It is designed to be
// local-first and auditable: every number in a report can be traced back to
// a line in a plain-text book file.
//
// The core functionalities include:
//   - Commission Calculation: A pure, exact derivation of the commission
//     breakdown of a sale (gross, tax, agent and agency shares) from its
//     recorded inputs.
//   - Sale Lifecycle: Tracking each sale from pending through approved or
//     cancelled, with ledger entries emitted automatically when a sale is
//     approved.
//   - Ledger Management: A chronological record of income and expense
//     entries with running balances, filters, cashflow summaries, and
//     payable/receivable aging.
//   - Data Persistence: Encoding and decoding of book data to and from a
//     human-readable, version-controllable JSONL format.
//
// This package serves as the foundational logic for the `brk` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package brokerage
