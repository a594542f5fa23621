package quote

import (
	"github.com/MarcovChain/FlaskFinance/date"
	"github.com/markcheno/go-talib"
)

// SMA returns the simple moving average of the closes in h over window days.
//
// The result is aligned on h, the first window-1 points have no average and
// are nil.
func SMA(h *date.History[float64], window int) []*float64 {
	closes := h.Series()
	res := make([]*float64, len(closes))
	if window < 1 || len(closes) < window {
		return res
	}
	sma := talib.Sma(closes, window)
	for i := window - 1; i < len(sma); i++ {
		v := sma[i]
		res[i] = &v
	}
	return res
}
