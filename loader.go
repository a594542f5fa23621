package finance

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/MarcovChain/FlaskFinance/date"
	"github.com/shopspring/decimal"
)

// Ledger file names inside the data directory.
const (
	MortgageFile = "mortgage.csv"
	StocksFile   = "stocks.csv"
	CSAFile      = "csa.csv"
	SalaryFile   = "salary.csv"
)

// Loader reads the ledgers from a data directory.
//
// Amounts are tagged with Currency.
type Loader struct {
	FS       fs.FS
	Currency string
}

// NewLoader returns a Loader on the directory dir.
func NewLoader(dir, currency string) *Loader {
	return &Loader{FS: os.DirFS(dir), Currency: currency}
}

// Mortgage loads the mortgage amortization schedule.
func (l *Loader) Mortgage() ([]MortgageRow, error) {
	var rows []MortgageRow
	err := l.load(MortgageFile, []string{"date", "type", "principal", "interest"}, func(r *record) {
		rows = append(rows, MortgageRow{
			Date:      r.date("date"),
			Type:      MortgageType(r.lower("type")),
			Principal: r.money("principal"),
			Interest:  r.money("interest"),
		})
	})
	return rows, err
}

// Trades loads the stock transactions.
func (l *Loader) Trades() ([]TradeRow, error) {
	var rows []TradeRow
	err := l.load(StocksFile, []string{"ticker", "date", "type", "number", "price", "total"}, func(r *record) {
		rows = append(rows, TradeRow{
			Ticker: r.str("ticker"),
			Date:   r.date("date"),
			Type:   TradeType(r.lower("type")),
			Number: r.quantity("number"),
			Price:  r.money("price"),
			Total:  r.money("total"),
		})
	})
	return rows, err
}

// Lots loads the secondary share account.
func (l *Loader) Lots() ([]LotRow, error) {
	var rows []LotRow
	err := l.load(CSAFile, []string{"date", "type", "shares", "acb", "proceeds", "price"}, func(r *record) {
		rows = append(rows, LotRow{
			Date:     r.date("date"),
			Type:     LotType(r.lower("type")),
			Shares:   r.quantity("shares"),
			ACB:      r.money("acb"),
			Proceeds: r.money("proceeds"),
			Price:    r.money("price"),
		})
	})
	return rows, err
}

// Salary loads the salary history.
func (l *Loader) Salary() ([]SalaryRow, error) {
	var rows []SalaryRow
	err := l.load(SalaryFile, []string{"date", "type", "amount"}, func(r *record) {
		rows = append(rows, SalaryRow{
			Date:   r.date("date"),
			Type:   r.str("type"),
			Amount: r.money("amount"),
		})
	})
	return rows, err
}

func (l *Loader) load(name string, columns []string, each func(*record)) error {
	f, err := l.FS.Open(name)
	if err != nil {
		return &DataLoadError{File: name, Err: err}
	}
	defer f.Close()
	return readCSV(f, name, l.Currency, columns, each)
}

// readCSV decodes a ledger in CSV format.
//
// The first line is a header, columns are located by name, case insensitive,
// so their order does not matter and extra columns are ignored. each is
// called once per data line, in file order.
func readCSV(r io.Reader, name, currency string, columns []string, each func(*record)) error {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return &DataLoadError{File: name, Line: 1, Err: errors.New("missing header")}
	}
	if err != nil {
		return csvError(name, err)
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, c := range columns {
		if _, ok := index[c]; !ok {
			return &DataLoadError{File: name, Line: 1, Column: c, Err: errors.New("missing column")}
		}
	}

	rec := &record{file: name, currency: currency, index: index}
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return csvError(name, err)
		}
		line, _ := cr.FieldPos(0)
		if blank(fields) {
			continue
		}
		rec.line, rec.fields, rec.err = line, fields, nil
		each(rec)
		if rec.err != nil {
			return rec.err
		}
	}
}

func csvError(name string, err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return &DataLoadError{File: name, Line: perr.Line, Err: perr.Err}
	}
	return &DataLoadError{File: name, Err: err}
}

func blank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// record is the current CSV line being decoded.
//
// Accessors never fail: the first error is kept and returned by readCSV once
// the line callback is done.
type record struct {
	file     string
	currency string
	index    map[string]int
	line     int
	fields   []string
	err      error
}

func (r *record) str(column string) string {
	i := r.index[column]
	if i >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[i])
}

func (r *record) lower(column string) string { return strings.ToLower(r.str(column)) }

func (r *record) fail(column string, err error) {
	if r.err == nil {
		r.err = &DataLoadError{File: r.file, Line: r.line, Column: column, Err: err}
	}
}

func (r *record) date(column string) date.Date {
	d, err := date.Parse(r.str(column))
	if err != nil {
		r.fail(column, err)
	}
	return d
}

func (r *record) decimal(column string) decimal.Decimal {
	s := r.str(column)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		r.fail(column, fmt.Errorf("invalid number %q", s))
	}
	return d
}

func (r *record) money(column string) Money { return M(r.decimal(column), r.currency) }

func (r *record) quantity(column string) Quantity { return Q(r.decimal(column)) }
