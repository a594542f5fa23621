package finance

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M is a convenient factory for Money.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the amount formatted with its currency symbol and thousands separators.
func (m Money) String() string {
	if m.cur == "" {
		return m.value.StringFixed(2)
	}
	cur := m.currency()
	dec := m.value.RoundBank(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Simple wrapper around decimal.Decimal

func (m Money) Currency() string           { return m.cur }
func (m Money) Decimal() decimal.Decimal   { return m.value }
func (m Money) Equal(n Money) bool         { return m.value.Equal(n.value) }
func (m Money) IsZero() bool               { return m.value.IsZero() }
func (m Money) LessThan(amount Money) bool { return m.value.LessThan(amount.value) }
func (m Money) GreaterThan(n Money) bool   { return m.value.GreaterThan(n.value) }
func (m Money) Mul(n Quantity) Money       { return Money{value: m.value.Mul(n.value), cur: m.cur} }
func (m Money) Round() Money               { return Money{value: m.value.RoundBank(2), cur: m.cur} }

// WithCurrency returns the same amount in another currency.
func (m Money) WithCurrency(currency string) Money { return Money{value: m.value, cur: currency} }

// DivQ divides m by a quantity. It returns false when q is zero.
func (m Money) DivQ(q Quantity) (Money, bool) {
	if q.IsZero() {
		return Money{cur: m.cur}, false
	}
	return Money{value: m.value.Div(q.value), cur: m.cur}, true
}

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// Max returns the largest amount, or zero for no amount at all.
func Max(amounts ...Money) Money {
	if len(amounts) == 0 {
		return Money{}
	}
	max := amounts[0]
	for _, a := range amounts[1:] {
		if a.GreaterThan(max) {
			max = a
		}
	}
	return max
}

// Min returns the smallest amount, or zero for no amount at all.
func Min(amounts ...Money) Money {
	if len(amounts) == 0 {
		return Money{}
	}
	min := amounts[0]
	for _, a := range amounts[1:] {
		if a.LessThan(min) {
			min = a
		}
	}
	return min
}

// AsFloat is only meant for charts, computations stay exact.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-"
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// MarshalJSON writes the amount as a plain JSON number rounded to cents.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.RoundBank(2).String()), nil
}
