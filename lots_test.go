package finance

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lotRows() []LotRow {
	return []LotRow{
		{Date: day("2020-01-01"), Type: LotBuy, Shares: Q(10), ACB: CAD(100), Price: CAD(10)},
		{Date: day("2020-02-01"), Type: LotBuy, Shares: Q(5), ACB: CAD(60), Price: CAD(12)},
		{Date: day("2020-03-01"), Type: LotSell, Proceeds: CAD(200), Price: CAD(13.33)},
		{Date: day("2020-04-01"), Type: LotBuy, Shares: Q(10), ACB: CAD(80), Price: CAD(8)},
	}
}

var lotQuote = Quote{Ticker: "CVE.TO", Date: day("2020-06-01"), Price: CAD(9.999)}

func TestDeriveLots(t *testing.T) {
	rows := lotRows()
	lots := DeriveLots(rows, lotQuote)
	require.Len(t, lots.Lines, 5)
	require.Len(t, rows, 4, "input rows must not change")

	sell := lots.Lines[2]
	assert.True(t, sell.ACB.Equal(CAD(160)), "realized acb %v", sell.ACB)
	assert.True(t, sell.Shares.Equal(Q(15)), "realized shares %v", sell.Shares)
	assert.True(t, sell.Profit.Equal(CAD(40)), "profit %v", sell.Profit)
	assert.True(t, sell.Return.Equal(25))

	buy := lots.Lines[0]
	assert.True(t, buy.Profit.Equal(CAD(-100)))
	assert.True(t, buy.Return.Equal(-100))

	last := lots.Lines[4]
	assert.True(t, last.Synthetic)
	assert.Equal(t, LotSell, last.Type)
	assert.Equal(t, lotQuote.Date, last.Date)
	assert.True(t, last.Price.Equal(CAD(10)), "price %v", last.Price)
	assert.True(t, last.ACB.Equal(CAD(80)))
	assert.True(t, last.Shares.Equal(Q(10)))
	assert.True(t, last.Proceeds.Equal(CAD(100)))
	assert.True(t, last.Profit.Equal(CAD(20)))
	assert.True(t, last.Return.Equal(25))
}

func TestDeriveLots_Sells(t *testing.T) {
	lots := DeriveLots(lotRows(), lotQuote)
	require.Len(t, lots.Sells, 2)

	testCases := []struct {
		name        string
		days        int
		perShare    Money
		dailyReturn Percent
		synthetic   bool
	}{
		{"realized", 60, CAD(10.67), 41.67, false},
		{"open", 92, CAD(8), 27.17, true},
	}
	for i, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := lots.Sells[i]
			if s.Days != tc.days {
				t.Errorf("days = %d want %d", s.Days, tc.days)
			}
			if s.ACBPerShare == nil || !s.ACBPerShare.Equal(tc.perShare) {
				t.Errorf("acb/share = %v want %v", s.ACBPerShare, tc.perShare)
			}
			if !s.DailyReturn.Equal(tc.dailyReturn) {
				t.Errorf("daily return = %v want %v", s.DailyReturn, tc.dailyReturn)
			}
			if s.Synthetic != tc.synthetic {
				t.Errorf("synthetic = %v want %v", s.Synthetic, tc.synthetic)
			}
		})
	}

	assert.True(t, lots.Realized().Equal(CAD(40)))
	open, ok := lots.Open()
	require.True(t, ok)
	assert.True(t, open.Profit.Equal(CAD(20)))
	assert.NoError(t, lots.Check())
}

func TestDeriveLots_RealizedShares(t *testing.T) {
	rows := append(lotRows(),
		LotRow{Date: day("2020-05-01"), Type: LotBuy, Shares: Q(2.5), ACB: CAD(25)},
		LotRow{Date: day("2020-05-15"), Type: LotSell, Proceeds: CAD(150)},
	)
	lots := DeriveLots(rows, lotQuote)

	// every sell realizes what was bought since the previous one.
	bought, sold := Q(0), Q(0)
	for _, l := range lots.Lines {
		if l.Synthetic {
			break
		}
		switch l.Type {
		case LotBuy:
			bought = bought.Add(l.Shares)
		case LotSell:
			assert.True(t, l.Shares.Equal(bought.Sub(sold)), "%v realized %v want %v", l.Date, l.Shares, bought.Sub(sold))
			sold = sold.Add(l.Shares)
		}
	}
	assert.True(t, sold.Equal(Q(27.5)))
}

func TestDeriveLots_FirstSell(t *testing.T) {
	rows := []LotRow{
		{Date: day("2020-01-01"), Type: LotSell, Proceeds: CAD(10)},
	}
	lots := DeriveLots(rows, lotQuote)
	require.Len(t, lots.Sells, 2)
	assert.True(t, lots.Lines[0].ACB.IsZero())
	assert.True(t, lots.Sells[0].Return.IsInf())
	assert.Equal(t, 0, lots.Sells[0].Days)
	assert.Nil(t, lots.Sells[0].ACBPerShare, "nothing realized, no acb per share")

	b, err := json.Marshal(lots.Sells[0])
	require.NoError(t, err)
	assert.Contains(t, string(b), `"ACBPerShare":null`)
	assert.Contains(t, string(b), `"Return":null`)

	err = lots.Check()
	var derr *DerivationError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, "csa", derr.Ledger)
}

func TestDeriveLots_Empty(t *testing.T) {
	lots := DeriveLots(nil, lotQuote)
	assert.Empty(t, lots.Lines)
	assert.Empty(t, lots.Sells)
	_, ok := lots.Open()
	assert.False(t, ok)
	assert.NoError(t, lots.Check())
}
