package finance

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Percent is a percentage rounded to two decimals.
//
// NaN stands for "not applicable" (0/0), and infinities are kept when a ratio
// has a non-zero numerator over a zero denominator.
type Percent float64

// NA is the not applicable percentage.
var NA = Percent(math.NaN())

func (p Percent) Equal(q Percent) bool {
	if p.IsNA() || q.IsNA() {
		return p.IsNA() && q.IsNA()
	}
	if math.IsInf(float64(p), 0) || math.IsInf(float64(q), 0) {
		return p == q
	}
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// IsNA reports whether p is not applicable.
func (p Percent) IsNA() bool { return math.IsNaN(float64(p)) }

func (p Percent) IsInf() bool { return math.IsInf(float64(p), 0) }

// Valid reports whether p is a finite number.
func (p Percent) Valid() bool { return !p.IsNA() && !p.IsInf() }

func (p Percent) String() string {
	switch {
	case p.IsNA():
		return "-"
	case math.IsInf(float64(p), 1):
		return "inf"
	case math.IsInf(float64(p), -1):
		return "-inf"
	}
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	if !p.Valid() {
		return p.String()
	}
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// MarshalJSON writes NaN and infinities as null, JSON has no literal for them.
func (p Percent) MarshalJSON() ([]byte, error) {
	if !p.Valid() {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf("%.2f", p)), nil
}

// round2 rounds half to even.
func round2(x float64) float64 { return math.RoundToEven(x*100) / 100 }

// ratio returns num/den*100 rounded to two decimals.
//
// A zero denominator yields NaN (0/0) or a signed infinity.
func ratio(num, den decimal.Decimal) Percent {
	if den.IsZero() {
		switch num.Sign() {
		case 0:
			return NA
		case 1:
			return Percent(math.Inf(1))
		default:
			return Percent(math.Inf(-1))
		}
	}
	r := num.Mul(decimal.NewFromInt(100)).DivRound(den, 8)
	return Percent(r.RoundBank(2).InexactFloat64())
}

// perDay spreads a percentage over a number of days, rounded to two decimals.
func perDay(p Percent, days int) Percent {
	return Percent(round2(float64(p) / float64(days) * 100))
}
