// Package quote provides the daily closing prices of stocks.
//
// Prices come from a remote API (Yahoo Finance or EODHD) through a disk cache
// refreshed once a day, or from memory.
package quote

import (
	"context"
	"fmt"
	"strings"

	"github.com/MarcovChain/FlaskFinance/date"
	"github.com/rs/zerolog"
)

// Source provides daily closing prices.
type Source interface {
	// History returns all the known daily closes of ticker.
	History(ctx context.Context, ticker string) (*date.History[float64], error)
}

// Providers lists the names accepted by New.
var Providers = []string{"yahoo", "eodhd"}

// New returns the remote source named provider, cached in cacheDir.
func New(provider, apiKey, cacheDir string, log zerolog.Logger) (Source, error) {
	client := Daily(cacheDir, log.With().Str("provider", provider).Logger())
	switch strings.ToLower(provider) {
	case "", "yahoo":
		return NewYahoo(client), nil
	case "eodhd":
		if apiKey == "" {
			return nil, ErrNoAPIKey
		}
		return NewEODHD(client, apiKey), nil
	}
	return nil, fmt.Errorf("unknown quote provider %q, want one of %v", provider, Providers)
}
