package quote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/MarcovChain/FlaskFinance/date"
	"github.com/PaesslerAG/jsonpath"
)

// YahooURL is the public Yahoo Finance API.
const YahooURL = "https://query1.finance.yahoo.com"

// Yahoo reads daily closes from the Yahoo Finance chart API.
type Yahoo struct {
	Client  *http.Client
	BaseURL string
}

// NewYahoo returns a Yahoo source using client.
func NewYahoo(client *http.Client) *Yahoo {
	return &Yahoo{Client: client, BaseURL: YahooURL}
}

/*
	{
	    "chart": {
	        "result": [{
	            "meta": {"currency": "CAD", "symbol": "CVE.TO", "gmtoffset": -14400, ...},
	            "timestamp": [1609770600, 1609857000],
	            "indicators": {"quote": [{"close": [5.55, null], ...}]}
	        }],
	        "error": null
	    }
	}
*/

// History implements Source.
func (y *Yahoo) History(ctx context.Context, ticker string) (*date.History[float64], error) {
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?range=max&interval=1d", y.BaseURL, url.PathEscape(ticker))
	var jobj any
	if err := jwget(ctx, y.Client, addr, &jobj); err != nil {
		return nil, fmt.Errorf("error retrieving %q: %w", ticker, err)
	}
	if desc, err := jsonpath.Get("$.chart.error.description", jobj); err == nil {
		if s, ok := desc.(string); ok && s != "" {
			return nil, fmt.Errorf("yahoo error for %q: %s", ticker, s)
		}
	}

	timestamps, err := floatList(jobj, "$.chart.result[0].timestamp")
	if err != nil {
		return nil, fmt.Errorf("error parsing %q: %w", ticker, err)
	}
	closes, err := floatList(jobj, "$.chart.result[0].indicators.quote[0].close")
	if err != nil {
		return nil, fmt.Errorf("error parsing %q: %w", ticker, err)
	}
	if len(timestamps) != len(closes) {
		return nil, fmt.Errorf("error parsing %q: %d timestamps for %d closes", ticker, len(timestamps), len(closes))
	}
	// dates are in the exchange timezone.
	var offset int64
	if v, err := jsonpath.Get("$.chart.result[0].meta.gmtoffset", jobj); err == nil {
		if f, ok := v.(float64); ok {
			offset = int64(f)
		}
	}

	h := new(date.History[float64])
	for i, ts := range timestamps {
		if ts == nil || closes[i] == nil {
			// no trade that day
			continue
		}
		on := date.Of(time.Unix(int64(*ts)+offset, 0).UTC())
		h.Append(on, *closes[i])
	}
	return h, nil
}

// floatList reads a list of nullable numbers at path.
func floatList(jobj any, path string) ([]*float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("%q: not a list: %v", path, jval)
	}
	res := make([]*float64, len(jlist))
	for i, v := range jlist {
		switch v := v.(type) {
		case nil:
		case float64:
			res[i] = &v
		default:
			return nil, fmt.Errorf("%q[%d]: not a number: %v", path, i, v)
		}
	}
	return res, nil
}
