package finance

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLoader(files map[string]string) *Loader {
	fsys := fstest.MapFS{}
	for name, content := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return &Loader{FS: fsys, Currency: "CAD"}
}

func TestLoader_Mortgage(t *testing.T) {
	l := testLoader(map[string]string{
		MortgageFile: "date,type,principal,interest\n" +
			"2021-01-01,payment,1000,500\n" +
			"\n" +
			"2021-01-15, Extra ,5000,\n",
	})
	rows, err := l.Mortgage()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, day("2021-01-01"), rows[0].Date)
	assert.Equal(t, Payment, rows[0].Type)
	assert.True(t, rows[0].Principal.Equal(CAD(1000)))
	assert.Equal(t, "CAD", rows[0].Principal.Currency())
	assert.Equal(t, Extra, rows[1].Type)
	assert.True(t, rows[1].Interest.IsZero(), "empty cells read as zero")
}

func TestLoader_ColumnsByName(t *testing.T) {
	l := testLoader(map[string]string{
		StocksFile: "Date,Ticker,Type,Price,Number,Total,Note\n" +
			"2021-01-01,AAA,buy,10,10,\"1,000.50\",first\n",
	})
	rows, err := l.Trades()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "AAA", rows[0].Ticker)
	assert.True(t, rows[0].Number.Equal(Q(10)))
	assert.True(t, rows[0].Total.Equal(CAD(1000.50)))
}

func TestLoader_Errors(t *testing.T) {
	testCases := []struct {
		name       string
		content    string
		wantLine   int
		wantColumn string
	}{
		{"missing header", "", 1, ""},
		{"missing column", "date,type,acb,proceeds,price\n", 1, "shares"},
		{"bad number", "date,type,shares,acb,proceeds,price\n2020-01-01,buy,ten,1,0,1\n", 2, "shares"},
		{"bad date", "date,type,shares,acb,proceeds,price\n2020-01-01,buy,1,1,0,1\n01/02/2020,buy,1,1,0,1\n", 3, "date"},
		{"bad quote", "date,type,shares,acb,proceeds,price\n2020-01-01,b\"uy,1,1,0,1\n", 2, ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := testLoader(map[string]string{CSAFile: tc.content}).Lots()
			var lerr *DataLoadError
			require.True(t, errors.As(err, &lerr), "got %v", err)
			assert.Equal(t, CSAFile, lerr.File)
			assert.Equal(t, tc.wantLine, lerr.Line)
			assert.Equal(t, tc.wantColumn, lerr.Column)
		})
	}
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := testLoader(nil).Salary()
	var lerr *DataLoadError
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, SalaryFile, lerr.File)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoader_Salary(t *testing.T) {
	l := testLoader(map[string]string{
		SalaryFile: "date,type,amount\n2019-01-01,base,80000\n2020-01-01,base,88000\n",
	})
	rows, err := l.Salary()
	require.NoError(t, err)
	s := Salary{Rows: rows}

	latest, ok := s.Latest()
	require.True(t, ok)
	assert.True(t, latest.Amount.Equal(CAD(88000)))
	assert.True(t, s.Growth().Equal(10))
	r, ok := s.Range()
	require.True(t, ok)
	assert.Equal(t, 365, r.Days())
}
