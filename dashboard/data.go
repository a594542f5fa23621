package dashboard

import (
	"context"
	"errors"
	"fmt"
	"slices"

	finance "github.com/MarcovChain/FlaskFinance"
	"github.com/MarcovChain/FlaskFinance/date"
)

// errUnknownTicker is returned for a ticker absent from the stock ledger.
var errUnknownTicker = errors.New("unknown ticker")

// Ledgers are read on every request, so edits to the CSV files show up on
// the next page load.

func (s *Server) mortgage() (*finance.Mortgage, error) {
	if s.cfg.Loan.IsZero() {
		return nil, finance.ErrNoLoan
	}
	rows, err := s.cfg.Loader.Mortgage()
	if err != nil {
		return nil, err
	}
	return finance.DeriveMortgage(rows, s.cfg.Loan), nil
}

type stockData struct {
	Rows      []finance.TradeRow
	Summaries []finance.StockSummary
}

func (s *Server) stocks(ctx context.Context) (*stockData, error) {
	rows, err := s.cfg.Loader.Trades()
	if err != nil {
		return nil, err
	}
	quotes, err := finance.LatestQuotes(ctx, s.cfg.Quotes, s.cfg.Loader.Currency, finance.Tickers(rows)...)
	if err != nil {
		return nil, err
	}
	summaries, err := finance.DeriveStocks(rows, quotes)
	if err != nil {
		return nil, err
	}
	return &stockData{Rows: rows, Summaries: summaries}, nil
}

// stockHistory returns the summary and the quotes of a single ticker.
func (s *Server) stockHistory(ctx context.Context, ticker string) (finance.StockSummary, *date.History[float64], error) {
	rows, err := s.cfg.Loader.Trades()
	if err != nil {
		return finance.StockSummary{}, nil, err
	}
	if !slices.Contains(finance.Tickers(rows), ticker) {
		return finance.StockSummary{}, nil, fmt.Errorf("%q: %w", ticker, errUnknownTicker)
	}
	h, err := s.cfg.Quotes.History(ctx, ticker)
	if err != nil {
		return finance.StockSummary{}, nil, &finance.QuoteUnavailableError{Ticker: ticker, Err: err}
	}
	q, err := finance.LatestQuote(ctx, staticHistory{h}, ticker, s.cfg.Loader.Currency)
	if err != nil {
		return finance.StockSummary{}, nil, err
	}
	summaries, err := finance.DeriveStocks(finance.Trades(rows, ticker), map[string]finance.Quote{ticker: q})
	if err != nil {
		return finance.StockSummary{}, nil, err
	}
	return summaries[0], h, nil
}

// staticHistory serves a history already fetched.
type staticHistory struct{ h *date.History[float64] }

func (s staticHistory) History(context.Context, string) (*date.History[float64], error) {
	return s.h, nil
}

func (s *Server) lots(ctx context.Context) (*finance.Lots, error) {
	rows, err := s.cfg.Loader.Lots()
	if err != nil {
		return nil, err
	}
	q := finance.Quote{Ticker: s.cfg.CSATicker}
	if len(rows) > 0 {
		// an empty account needs no quote.
		if q, err = finance.LatestQuote(ctx, s.cfg.Quotes, s.cfg.CSATicker, s.cfg.Loader.Currency); err != nil {
			return nil, err
		}
	}
	return finance.DeriveLots(rows, q), nil
}

func (s *Server) salary() (finance.Salary, error) {
	rows, err := s.cfg.Loader.Salary()
	return finance.Salary{Rows: rows}, err
}
