package quote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MarcovChain/FlaskFinance/date"
)

// EODHDURL is the public EODHD API.
const EODHDURL = "https://eodhd.com"

// ErrNoAPIKey is returned by EODHD sources without a key.
var ErrNoAPIKey = errors.New("missing EODHD api key")

// EODHD reads daily closes from the eodhd.com end of day API.
//
// Tickers use EODHD's "SYMBOL.EXCHANGE" format, e.g. "CVE.TO".
type EODHD struct {
	Client  *http.Client
	BaseURL string
	APIKey  string
}

// NewEODHD returns an EODHD source using client.
func NewEODHD(client *http.Client, apiKey string) *EODHD {
	return &EODHD{Client: client, BaseURL: EODHDURL, APIKey: apiKey}
}

// History implements Source.
func (e *EODHD) History(ctx context.Context, ticker string) (*date.History[float64], error) {
	// https://eodhd.com/api/eod/CVE.TO?api_token=demo&fmt=json
	// [
	//	{
	//		"date": "2024-02-13",
	//		"open": 22.31,
	//		"high": 22.4,
	//		"low": 21.86,
	//		"close": 21.98,
	//		"adjusted_close": 21.41,
	//		"volume": 9412170
	//	},
	if e.APIKey == "" {
		return nil, ErrNoAPIKey
	}
	addr := fmt.Sprintf("%s/api/eod/%s?fmt=json&api_token=%s", e.BaseURL, url.PathEscape(ticker), url.QueryEscape(e.APIKey))
	type Info struct {
		Date  date.Date `json:"date"`
		Close *float64  `json:"close"`
	}

	// that's the payload
	content := make([]Info, 0)
	if err := jwget(ctx, e.Client, addr, &content); err != nil {
		return nil, fmt.Errorf("error retrieving %q: %w", ticker, err)
	}
	h := new(date.History[float64])
	for _, info := range content {
		if info.Close == nil {
			continue
		}
		h.Append(info.Date, *info.Close)
	}
	return h, nil
}
