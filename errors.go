package finance

import (
	"errors"
	"fmt"

	"github.com/MarcovChain/FlaskFinance/date"
)

var (
	// ErrDivisionByZero is the cause of every DerivationError.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNoQuote is returned when a source knows the ticker but has no close for it.
	ErrNoQuote = errors.New("no quote available")
	// ErrNoLoan is returned when the mortgage is asked for without its original principal.
	ErrNoLoan = errors.New("no loan amount, set M4_LOAN_AMOUNT or -loan")
)

// DataLoadError reports a ledger file that could not be read or parsed.
//
// Line and Column are only set when the failure is located in a cell.
type DataLoadError struct {
	File   string
	Line   int
	Column string
	Err    error
}

func (e *DataLoadError) Error() string {
	switch {
	case e.Column != "":
		return fmt.Sprintf("%s:%d: column %q: %v", e.File, e.Line, e.Column, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.File, e.Err)
}

func (e *DataLoadError) Unwrap() error { return e.Err }

// DerivationError locates a derived value that could not be computed, it is
// reported next to the result which still carries NaN or infinity.
type DerivationError struct {
	Ledger string
	Row    int // 1-based position in the derived table
	Date   date.Date
	Field  string
}

func (e *DerivationError) Error() string {
	return fmt.Sprintf("%s row %d (%s): %s: %v", e.Ledger, e.Row, e.Date, e.Field, ErrDivisionByZero)
}

func (e *DerivationError) Unwrap() error { return ErrDivisionByZero }

// QuoteUnavailableError reports that no current price could be obtained for a ticker.
type QuoteUnavailableError struct {
	Ticker string
	Err    error
}

func (e *QuoteUnavailableError) Error() string {
	return fmt.Sprintf("quote unavailable for %q: %v", e.Ticker, e.Err)
}

func (e *QuoteUnavailableError) Unwrap() error { return e.Err }

// checkPercent appends a DerivationError to errs when p is not a finite value.
func checkPercent(errs []error, ledger string, row int, on date.Date, field string, p Percent) []error {
	if p.Valid() {
		return errs
	}
	return append(errs, &DerivationError{Ledger: ledger, Row: row, Date: on, Field: field})
}
