package finance

import (
	"errors"

	"github.com/MarcovChain/FlaskFinance/date"
	"gonum.org/v1/gonum/floats"
)

// MortgageType classifies mortgage ledger rows.
type MortgageType string

const (
	Payment MortgageType = "payment" // scheduled payment, principal and interest.
	Extra   MortgageType = "extra"   // prepayment of principal.
)

// MortgageRow is one line of the amortization schedule.
type MortgageRow struct {
	Date      date.Date
	Type      MortgageType
	Principal Money
	Interest  Money
}

// MortgageLine is a MortgageRow with its derived columns.
type MortgageLine struct {
	MortgageRow
	PrincipalPct   Percent // NaN for non payment rows
	InterestPct    Percent // NaN for non payment rows
	PrincipalTotal Money
	InterestTotal  Money
	Balance        Money
}

// MortgageSummary sums up the schedule.
type MortgageSummary struct {
	TotalPayments    Money
	TotalExtra       Money
	TotalPrincipal   Money
	PrincipalPct     Percent
	TotalInterest    Money
	InterestPct      Percent
	RemainingBalance Money
}

// Mortgage is the derived amortization schedule of a loan.
type Mortgage struct {
	Loan    Money
	Lines   []MortgageLine
	Summary MortgageSummary
}

// DeriveMortgage computes the mortgage table and its summary from the ledger
// rows, in file order, for a loan of the given original principal.
func DeriveMortgage(rows []MortgageRow, loan Money) *Mortgage {
	lines := make([]MortgageLine, len(rows))
	for i, r := range rows {
		lines[i] = MortgageLine{MortgageRow: r}
	}
	lines = run(lines,
		// in: type, principal, interest. out: prin%, int%.
		step[MortgageLine]{"split", func(lines []MortgageLine) []MortgageLine {
			for i := range lines {
				l := &lines[i]
				l.PrincipalPct, l.InterestPct = NA, NA
				if l.Type == Payment {
					paid := l.Principal.Add(l.Interest).Decimal()
					l.PrincipalPct = ratio(l.Principal.Decimal(), paid)
					l.InterestPct = ratio(l.Interest.Decimal(), paid)
				}
			}
			return lines
		}},
		// in: principal, interest. out: prin_total, int_total.
		step[MortgageLine]{"accumulate", func(lines []MortgageLine) []MortgageLine {
			var prin, inter Money
			for i := range lines {
				l := &lines[i]
				prin, inter = prin.Add(l.Principal), inter.Add(l.Interest)
				l.PrincipalTotal, l.InterestTotal = prin.Round(), inter.Round()
			}
			return lines
		}},
		// in: prin_total. out: balance.
		step[MortgageLine]{"balance", func(lines []MortgageLine) []MortgageLine {
			for i := range lines {
				lines[i].Balance = loan.Sub(lines[i].PrincipalTotal).Round()
			}
			return lines
		}},
	)
	return &Mortgage{Loan: loan, Lines: lines, Summary: summarizeMortgage(lines, loan.Currency())}
}

func summarizeMortgage(lines []MortgageLine, currency string) MortgageSummary {
	s := MortgageSummary{
		TotalPayments: Money{}.WithCurrency(currency),
		TotalExtra:    Money{}.WithCurrency(currency),
	}
	var prinTotals, intTotals, balances []Money
	var prinPcts, intPcts []float64
	for _, l := range lines {
		switch l.Type {
		case Payment:
			s.TotalPayments = s.TotalPayments.Add(l.Principal)
		case Extra:
			s.TotalExtra = s.TotalExtra.Add(l.Principal)
		}
		prinTotals = append(prinTotals, l.PrincipalTotal)
		intTotals = append(intTotals, l.InterestTotal)
		balances = append(balances, l.Balance)
		// NaN are skipped.
		if !l.PrincipalPct.IsNA() {
			prinPcts = append(prinPcts, float64(l.PrincipalPct))
		}
		if !l.InterestPct.IsNA() {
			intPcts = append(intPcts, float64(l.InterestPct))
		}
	}
	s.TotalPrincipal = Max(prinTotals...)
	s.TotalInterest = Max(intTotals...)
	s.RemainingBalance = Min(balances...)
	s.PrincipalPct, s.InterestPct = NA, NA
	if len(prinPcts) > 0 {
		s.PrincipalPct = Percent(floats.Max(prinPcts))
	}
	if len(intPcts) > 0 {
		s.InterestPct = Percent(floats.Min(intPcts))
	}
	return s
}

// Check reports payment rows whose split could not be computed.
func (m *Mortgage) Check() error {
	var errs []error
	for i, l := range m.Lines {
		if l.Type != Payment {
			continue
		}
		errs = checkPercent(errs, "mortgage", i+1, l.Date, "prin%", l.PrincipalPct)
		errs = checkPercent(errs, "mortgage", i+1, l.Date, "int%", l.InterestPct)
	}
	return errors.Join(errs...)
}

// Paid returns the share of the loan already repaid.
func (m *Mortgage) Paid() Percent {
	return ratio(m.Summary.TotalPrincipal.Decimal(), m.Loan.Decimal())
}
