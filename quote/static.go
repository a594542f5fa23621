package quote

import (
	"context"
	"fmt"

	"github.com/MarcovChain/FlaskFinance/date"
)

// Static is a source on in memory histories, for tests and offline use.
type Static map[string]*date.History[float64]

// Add appends a close to the history of ticker.
func (s Static) Add(ticker string, on date.Date, close float64) Static {
	h, ok := s[ticker]
	if !ok {
		h = new(date.History[float64])
		s[ticker] = h
	}
	h.Append(on, close)
	return s
}

// History implements Source.
func (s Static) History(ctx context.Context, ticker string) (*date.History[float64], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	h, ok := s[ticker]
	if !ok {
		return nil, fmt.Errorf("unknown ticker %q", ticker)
	}
	return h, nil
}
