package finance

import (
	"errors"

	"github.com/MarcovChain/FlaskFinance/date"
)

// LotType classifies share account rows.
type LotType string

const (
	LotBuy  LotType = "buy"
	LotSell LotType = "sell" // realizes every lot bought since the previous sell.
)

// LotRow is one line of the share account.
type LotRow struct {
	Date     date.Date
	Type     LotType
	Shares   Quantity
	ACB      Money // adjusted cost base of the lot
	Proceeds Money
	Price    Money
}

// LotLine is a LotRow with its derived columns.
//
// On sell lines Shares and ACB hold the totals realized by the sell.
type LotLine struct {
	LotRow
	Profit    Money
	Return    Percent
	Synthetic bool // trailing sell valued at the current quote

	period      int
	totalACB    Money
	totalShares Quantity
}

// SellLine is one realized (or hypothetical) sell of the share account.
type SellLine struct {
	Date        date.Date
	Days        int // since the previous sell
	Type        LotType
	ACBPerShare *Money // nil when no share was realized
	Shares      Quantity
	ACB         Money
	Proceeds    Money
	Profit      Money
	Return      Percent
	DailyReturn Percent
	Synthetic   bool
}

// Lots is the derived share account.
type Lots struct {
	Quote Quote
	Lines []LotLine
	Sells []SellLine
}

// DeriveLots computes the returns of each sell period of the share account,
// plus a trailing sell of everything still held at the quote q.
func DeriveLots(rows []LotRow, q Quote) *Lots {
	lots := &Lots{Quote: q}
	if len(rows) == 0 {
		return lots
	}
	lines := make([]LotLine, len(rows))
	for i, r := range rows {
		lines[i] = LotLine{LotRow: r}
	}
	lots.Lines = run(lines,
		// out: one more line, a sell copy of the last one.
		step[LotLine]{"liquidation", appendLiquidation},
		// in: type, acb, shares. out: period, running totals.
		step[LotLine]{"periods", accumulatePeriods},
		// in: running totals. out: acb, shares of sell lines.
		step[LotLine]{"realize", realize},
		// in: acb, proceeds. out: profit, return.
		step[LotLine]{"profit", profit},
		// in: the quote. out: date, price, proceeds, profit of the trailing sell, return.
		step[LotLine]{"quote", func(lines []LotLine) []LotLine { return quoteLiquidation(lines, q) }},
	)
	lots.Sells = sells(lots.Lines)
	return lots
}

func appendLiquidation(lines []LotLine) []LotLine {
	last := lines[len(lines)-1]
	last.Type = LotSell
	last.Synthetic = true
	return append(lines, last)
}

// accumulatePeriods sums acb and shares since the beginning of each period.
//
// A sell line starts a new period, and its own acb and shares are part of it.
func accumulatePeriods(lines []LotLine) []LotLine {
	period := 0
	var acb Money
	var shares Quantity
	for i := range lines {
		l := &lines[i]
		if l.Type == LotSell {
			period++
			acb, shares = Money{}, Quantity{}
		}
		acb, shares = acb.Add(l.ACB), shares.Add(l.Shares)
		l.period, l.totalACB, l.totalShares = period, acb, shares
	}
	return lines
}

// realize attributes to each sell the totals of the period it closes.
func realize(lines []LotLine) []LotLine {
	for i := range lines {
		l := &lines[i]
		if l.Type == LotSell {
			l.ACB, l.Shares = Money{}.WithCurrency(l.ACB.Currency()), Quantity{}
			if i > 0 {
				l.ACB, l.Shares = lines[i-1].totalACB, lines[i-1].totalShares
			}
		}
		l.ACB, l.Shares = l.ACB.Round(), l.Shares.Round()
	}
	return lines
}

func profit(lines []LotLine) []LotLine {
	for i := range lines {
		l := &lines[i]
		l.Profit = l.Proceeds.Sub(l.ACB).Round()
		l.Return = ratio(l.Profit.Decimal(), l.ACB.Decimal())
	}
	return lines
}

func quoteLiquidation(lines []LotLine, q Quote) []LotLine {
	l := &lines[len(lines)-1]
	l.Date = q.Date
	l.Price = q.Price.Round()
	l.Proceeds = l.Price.Mul(l.Shares).Round()
	l.Profit = l.Proceeds.Sub(l.ACB)
	l.Return = ratio(l.Profit.Decimal(), l.ACB.Decimal())
	return lines
}

func sells(lines []LotLine) []SellLine {
	var res []SellLine
	prev := lines[0].Date
	for _, l := range lines {
		if l.Type != LotSell {
			continue
		}
		s := SellLine{
			Date:      l.Date,
			Days:      l.Date.Sub(prev),
			Type:      l.Type,
			Shares:    l.Shares,
			ACB:       l.ACB,
			Proceeds:  l.Proceeds,
			Profit:    l.Profit,
			Return:    l.Return,
			Synthetic: l.Synthetic,
		}
		if perShare, ok := l.ACB.DivQ(l.Shares); ok {
			perShare = perShare.Round()
			s.ACBPerShare = &perShare
		}
		s.DailyReturn = perDay(s.Return, s.Days)
		res = append(res, s)
		prev = l.Date
	}
	return res
}

// Check reports sells whose returns could not be computed.
func (l *Lots) Check() error {
	var errs []error
	for i, s := range l.Sells {
		if s.Shares.IsZero() {
			errs = append(errs, &DerivationError{Ledger: "csa", Row: i + 1, Date: s.Date, Field: "acb/share"})
		}
		errs = checkPercent(errs, "csa", i+1, s.Date, "return", s.Return)
		errs = checkPercent(errs, "csa", i+1, s.Date, "daily return", s.DailyReturn)
	}
	return errors.Join(errs...)
}

// Realized returns the sum of the profits of the actual sells.
func (l *Lots) Realized() Money {
	var sum Money
	for _, s := range l.Sells {
		if !s.Synthetic {
			sum = sum.Add(s.Profit)
		}
	}
	return sum
}

// Open returns the trailing hypothetical sell, if any.
func (l *Lots) Open() (SellLine, bool) {
	if n := len(l.Sells); n > 0 && l.Sells[n-1].Synthetic {
		return l.Sells[n-1], true
	}
	return SellLine{}, false
}
