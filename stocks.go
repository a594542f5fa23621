package finance

import (
	"errors"
	"math"
	"slices"
	"sort"

	"github.com/MarcovChain/FlaskFinance/date"
)

// TradeType classifies stock ledger rows.
type TradeType string

const (
	Buy      TradeType = "buy"
	Dividend TradeType = "dividend" // dividend, possibly reinvested in shares.
)

// TradeRow is one stock transaction.
//
// For a dividend, Number is the count of reinvested shares and Total the
// cash part, both signed.
type TradeRow struct {
	Ticker string
	Date   date.Date
	Type   TradeType
	Number Quantity
	Price  Money
	Total  Money
}

// StockSummary is the performance of one ticker as of its quote.
type StockSummary struct {
	Ticker       string
	BuyDate      date.Date
	BuyPrice     Money
	QuoteDate    date.Date
	CurrentPrice Money
	DaysHeld     int
	YearsHeld    float64
	Shares       Quantity

	BookValue    Money
	CurrentValue Money
	TotalValue   Money
	TotalGain    Money
	CapitalGain  Money
	DividendGain Money

	CapitalReturn Percent
	TotalReturn   Percent
	DailyReturn   Percent
}

// Tickers returns the tickers of rows in order of first appearance.
func Tickers(rows []TradeRow) []string {
	var tickers []string
	for _, r := range rows {
		if !slices.Contains(tickers, r.Ticker) {
			tickers = append(tickers, r.Ticker)
		}
	}
	return tickers
}

// daysPerYear is the mean Gregorian year.
const daysPerYear = 365.2425

// DeriveStocks computes the summary of every ticker in rows, sorted by daily
// return, best first.
//
// Every ticker needs a quote, a missing one is a *QuoteUnavailableError.
func DeriveStocks(rows []TradeRow, quotes map[string]Quote) ([]StockSummary, error) {
	var summaries []StockSummary
	for _, ticker := range Tickers(rows) {
		q, ok := quotes[ticker]
		if !ok {
			return nil, &QuoteUnavailableError{Ticker: ticker, Err: ErrNoQuote}
		}
		summaries = append(summaries, summarizeStock(ticker, rows, q))
	}
	SortByDailyReturn(summaries)
	return summaries, nil
}

func summarizeStock(ticker string, rows []TradeRow, q Quote) StockSummary {
	s := StockSummary{Ticker: ticker, QuoteDate: q.Date, CurrentPrice: q.Price}
	var bought, reinvested Quantity
	var book, current, dividends Money
	var earliest date.Date
	first := true
	for _, r := range rows {
		if r.Ticker != ticker {
			continue
		}
		switch r.Type {
		case Buy:
			if first || r.Price.LessThan(s.BuyPrice) {
				s.BuyPrice = r.Price
			}
			if first {
				s.BuyDate, earliest = r.Date, r.Date
				first = false
			}
			if r.Date.Before(earliest) {
				earliest = r.Date
			}
			bought = bought.Add(r.Number)
			book = book.Add(r.Total)
			current = current.Add(q.Price.Mul(r.Number))
		case Dividend:
			reinvested = reinvested.Add(r.Number)
			dividends = dividends.Add(q.Price.Mul(r.Number)).Add(r.Total)
		}
	}
	s.Shares = bought.Add(reinvested)
	if !first {
		// held since the oldest buy, even when the file is not sorted.
		s.DaysHeld = q.Date.Sub(earliest)
		s.YearsHeld = round2(float64(s.DaysHeld) / daysPerYear)
	}

	s.BookValue = book.Round()
	s.CurrentValue = current.Round()
	s.DividendGain = dividends.Round()
	s.TotalValue = s.CurrentValue.Add(s.DividendGain).Round()
	s.TotalGain = s.TotalValue.Sub(s.BookValue).Round()
	s.CapitalGain = s.CurrentValue.Sub(s.BookValue).Round()

	s.CapitalReturn = ratio(s.CapitalGain.Decimal(), s.BookValue.Decimal())
	s.TotalReturn = ratio(s.TotalGain.Decimal(), s.BookValue.Decimal())
	s.DailyReturn = perDay(s.TotalReturn, s.DaysHeld)
	return s
}

// SortByDailyReturn sorts summaries by decreasing daily return.
//
// The sort is stable and not applicable returns come last.
func SortByDailyReturn(summaries []StockSummary) {
	sort.SliceStable(summaries, func(i, j int) bool {
		a, b := float64(summaries[i].DailyReturn), float64(summaries[j].DailyReturn)
		if math.IsNaN(b) {
			return !math.IsNaN(a)
		}
		return a > b
	})
}

// CheckStocks reports summaries whose returns could not be computed.
func CheckStocks(summaries []StockSummary) error {
	var errs []error
	for i, s := range summaries {
		errs = checkPercent(errs, "stocks", i+1, s.QuoteDate, s.Ticker+" capital_return", s.CapitalReturn)
		errs = checkPercent(errs, "stocks", i+1, s.QuoteDate, s.Ticker+" total_return", s.TotalReturn)
		errs = checkPercent(errs, "stocks", i+1, s.QuoteDate, s.Ticker+" daily_return", s.DailyReturn)
	}
	return errors.Join(errs...)
}

// Trades returns the rows of ticker.
func Trades(rows []TradeRow, ticker string) []TradeRow {
	var res []TradeRow
	for _, r := range rows {
		if r.Ticker == ticker {
			res = append(res, r)
		}
	}
	return res
}
