package finance

import "github.com/MarcovChain/FlaskFinance/date"

// SalaryRow is one entry of the salary history.
type SalaryRow struct {
	Date   date.Date
	Type   string
	Amount Money
}

// Salary is the salary history in file order.
type Salary struct {
	Rows []SalaryRow
}

// Range returns the dates covered by the history.
func (s Salary) Range() (date.Range, bool) {
	if len(s.Rows) == 0 {
		return date.Range{}, false
	}
	from, to := s.Rows[0].Date, s.Rows[0].Date
	for _, r := range s.Rows[1:] {
		if r.Date.Before(from) {
			from = r.Date
		}
		if r.Date.After(to) {
			to = r.Date
		}
	}
	return date.NewRange(from, to), true
}

// Latest returns the most recent entry, the last one in file order on ties.
func (s Salary) Latest() (SalaryRow, bool) {
	if len(s.Rows) == 0 {
		return SalaryRow{}, false
	}
	latest := s.Rows[0]
	for _, r := range s.Rows[1:] {
		if !r.Date.Before(latest.Date) {
			latest = r
		}
	}
	return latest, true
}

// Growth returns the change from the first entry in file order to the latest amount.
func (s Salary) Growth() Percent {
	latest, ok := s.Latest()
	if !ok {
		return NA
	}
	first := s.Rows[0]
	return ratio(latest.Amount.Sub(first.Amount).Decimal(), first.Amount.Decimal())
}
