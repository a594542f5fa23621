package dashboard

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	finance "github.com/MarcovChain/FlaskFinance"
	"github.com/MarcovChain/FlaskFinance/date"
	"github.com/MarcovChain/FlaskFinance/quote"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ledgers() fstest.MapFS {
	return fstest.MapFS{
		finance.MortgageFile: {Data: []byte("date,type,principal,interest\n" +
			"2021-01-01,payment,1000,500\n" +
			"2021-01-15,extra,5000,0\n" +
			"2021-02-01,payment,1010.10,489.90\n")},
		finance.StocksFile: {Data: []byte("ticker,date,type,number,price,total\n" +
			"AAA,2021-01-01,buy,10,10,100\n" +
			"AAA,2021-07-01,dividend,1,0,5\n")},
		finance.CSAFile: {Data: []byte("date,type,shares,acb,proceeds,price\n" +
			"2020-01-01,buy,10,100,0,10\n" +
			"2020-03-01,sell,0,0,120,12\n")},
		finance.SalaryFile: {Data: []byte("date,type,amount\n2019-01-01,base,80000\n2020-01-01,base,88000\n")},
	}
}

func quotes() quote.Static {
	return quote.Static{}.
		Add("AAA", date.New(2021, 12, 31), 14).
		Add("AAA", date.New(2022, 1, 3), 15).
		Add("CVE.TO", date.New(2022, 1, 3), 11)
}

func testServer(t *testing.T, fsys fstest.MapFS, src finance.QuoteSource, opts ...func(*Config)) *httptest.Server {
	t.Helper()
	cfg := Config{
		Log:       zerolog.Nop(),
		Loader:    &finance.Loader{FS: fsys, Currency: "CAD"},
		Quotes:    src,
		Loan:      finance.M(decimal.NewFromInt(300000), "CAD"),
		CSATicker: "CVE.TO",
		Morning:   7,
		Night:     19,
		DevMode:   true,
		Now:       func() time.Time { return time.Date(2022, 1, 3, 12, 0, 0, 0, time.UTC) },
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	ts := httptest.NewServer(New(cfg).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}}
	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestServer_Redirect(t *testing.T) {
	ts := testServer(t, ledgers(), quotes())
	resp, _ := get(t, ts.URL+"/")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/tab/mortgage-charts", resp.Header.Get("Location"))
}

func TestServer_Tabs(t *testing.T) {
	testCases := []struct {
		tab  string
		want string
	}{
		{"mortgage-charts", "mortgage-balance"},
		{"mortgage-table", "292,989.90"},
		{"stock-table", "AAA"},
		{"stock-charts", "stock-ticker-select"},
		{"csa", "CVE.TO"},
		{"salary", "88,000.00"},
	}
	ts := testServer(t, ledgers(), quotes())
	for _, tc := range testCases {
		t.Run(tc.tab, func(t *testing.T) {
			resp, body := get(t, ts.URL+"/tab/"+tc.tab)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Contains(t, body, tc.want)
			assert.NotContains(t, body, `<div class="error">`)
		})
	}

	resp, _ := get(t, ts.URL+"/tab/nowhere")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_FailingTabs(t *testing.T) {
	// no quotes at all and no salary file: every tab still renders.
	fsys := ledgers()
	delete(fsys, finance.SalaryFile)
	ts := testServer(t, fsys, quote.Static{})

	for _, tc := range tabs {
		t.Run(tc.Name, func(t *testing.T) {
			resp, body := get(t, ts.URL+"/tab/"+tc.Name)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			if strings.HasPrefix(tc.Name, "mortgage") {
				assert.NotContains(t, body, `<div class="error">`)
			} else {
				assert.Contains(t, body, `<div class="error">`)
			}
		})
	}
}

func TestServer_NoLoan(t *testing.T) {
	ts := testServer(t, ledgers(), quotes(), func(c *Config) { c.Loan = finance.Money{} })

	for _, tab := range []string{"mortgage-charts", "mortgage-table"} {
		resp, body := get(t, ts.URL+"/tab/"+tab)
		assert.Equal(t, http.StatusOK, resp.StatusCode, tab)
		assert.Contains(t, body, `<div class="error">`, tab)
		assert.Contains(t, body, "M4_LOAN_AMOUNT", tab)
	}

	resp, body := get(t, ts.URL+"/api/mortgage")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	var e apiError
	require.NoError(t, json.Unmarshal([]byte(body), &e))
	assert.Equal(t, "config", e.Kind)
}

func TestServer_API(t *testing.T) {
	ts := testServer(t, ledgers(), quotes())

	resp, body := get(t, ts.URL+"/api/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, body)

	resp, body = get(t, ts.URL+"/api/mortgage")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var m struct {
		Data struct {
			Summary struct {
				RemainingBalance float64
				TotalExtra       float64
			}
		}
		Warnings []string
	}
	require.NoError(t, json.Unmarshal([]byte(body), &m))
	assert.Equal(t, 292989.90, m.Data.Summary.RemainingBalance)
	assert.Equal(t, 5000.0, m.Data.Summary.TotalExtra)
	assert.Empty(t, m.Warnings)

	resp, body = get(t, ts.URL+"/api/stocks/AAA/chart")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var chart struct {
		Data     Figure
		Warnings []string
	}
	require.NoError(t, json.Unmarshal([]byte(body), &chart))
	assert.Empty(t, chart.Warnings)
	fig := chart.Data
	require.Len(t, fig.Data, 3)
	assert.Equal(t, []string{"2021-12-31", "2022-01-03"}, fig.Data[0].X)
	assert.Equal(t, "AAA", fig.Layout.Title)
	require.Len(t, fig.Layout.Shapes, 1)
	assert.Equal(t, 10.0, fig.Layout.Shapes[0].Y0)

	for _, path := range []string{"/api/stocks", "/api/csa", "/api/salary"} {
		resp, _ := get(t, ts.URL+path)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}

func TestServer_APIErrors(t *testing.T) {
	fsys := ledgers()
	delete(fsys, finance.SalaryFile)
	ts := testServer(t, fsys, quote.Static{})

	testCases := []struct {
		path   string
		status int
		kind   string
	}{
		{"/api/stocks", http.StatusServiceUnavailable, "quote_unavailable"},
		{"/api/csa", http.StatusServiceUnavailable, "quote_unavailable"},
		{"/api/stocks/AAA/chart", http.StatusServiceUnavailable, "quote_unavailable"},
		{"/api/stocks/ZZZ/chart", http.StatusNotFound, "not_found"},
		{"/api/salary", http.StatusInternalServerError, "data_load"},
	}
	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			resp, body := get(t, ts.URL+tc.path)
			assert.Equal(t, tc.status, resp.StatusCode)
			var e apiError
			require.NoError(t, json.Unmarshal([]byte(body), &e))
			assert.Equal(t, tc.kind, e.Kind)
			assert.NotEmpty(t, e.Error)
		})
	}
}
