package thirteenf

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value. Filings are always reported in USD.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// USD returns a Money in US dollars.
func USD[T int | int64 | decimal.Decimal](value T) Money {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return Money{value: v, cur: money.USD}
	case int:
		return Money{value: decimal.NewFromInt(int64(v)), cur: money.USD}
	case int64:
		return Money{value: decimal.NewFromInt(v), cur: money.USD}
	default:
		panic("unsupported type")
	}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value, rounded to
// the currency fraction.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	if !dec.BigInt().IsInt64() {
		// cents overflow an int64, only above MaxMarketValue.
		return m.value.StringFixed(int32(cur.Fraction)) + " " + cur.Code
	}
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }
