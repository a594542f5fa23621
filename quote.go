package finance

import (
	"context"

	"github.com/MarcovChain/FlaskFinance/date"
)

// QuoteSource provides daily closing prices.
type QuoteSource interface {
	// History returns all the known daily closes of ticker.
	History(ctx context.Context, ticker string) (*date.History[float64], error)
}

// Quote is the last known close of a ticker.
type Quote struct {
	Ticker string
	Date   date.Date
	Price  Money
}

// LatestQuote returns the last close of ticker.
//
// Every failure is a *QuoteUnavailableError.
func LatestQuote(ctx context.Context, src QuoteSource, ticker, currency string) (Quote, error) {
	h, err := src.History(ctx, ticker)
	if err != nil {
		return Quote{}, &QuoteUnavailableError{Ticker: ticker, Err: err}
	}
	if h == nil || h.Len() == 0 {
		return Quote{}, &QuoteUnavailableError{Ticker: ticker, Err: ErrNoQuote}
	}
	on, close := h.Latest()
	return Quote{Ticker: ticker, Date: on, Price: M(close, currency)}, nil
}

// LatestQuotes returns the last close of every ticker.
//
// It stops at the first ticker without a quote.
func LatestQuotes(ctx context.Context, src QuoteSource, currency string, tickers ...string) (map[string]Quote, error) {
	quotes := make(map[string]Quote, len(tickers))
	for _, t := range tickers {
		q, err := LatestQuote(ctx, src, t, currency)
		if err != nil {
			return nil, err
		}
		quotes[t] = q
	}
	return quotes, nil
}
