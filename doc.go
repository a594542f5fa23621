// Package finance derives the figures of a personal finance dashboard from
// four flat CSV ledgers kept in a data directory:
//   - mortgage.csv: the amortization schedule of a mortgage, payments and
//     extra prepayments, split into principal and interest.
//   - stocks.csv: stock buys and dividends, valued at the latest close of
//     each ticker.
//   - csa.csv: a secondary share account tracked by adjusted cost base (ACB),
//     where every sell realizes all the lots bought since the previous one.
//   - salary.csv: the salary history.
//
// Derivations are pure functions of the loaded rows (and of a Quote when a
// market price is involved). Ratios over a zero amount are not an error: they
// yield a NaN or infinite Percent that Check methods report as
// DerivationError.
//
// This package serves as the foundational logic for the `m4` command-line
// tool and its dashboard.
package finance
