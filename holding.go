package thirteenf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ValueMultiplier converts the information table "value" column, reported in
// thousands of dollars, into whole dollars.
const ValueMultiplier = 1000

// MaxMarketValue bounds the market value of a holding and the total market
// value of a firm, in dollars. Any amount up to it stays exact in cents
// within an int64.
const MaxMarketValue int64 = 1_000_000_000_000_000

// InstrumentType classifies a holding as a plain equity or an option.
type InstrumentType string

const (
	Equity InstrumentType = "Equity"
	Put    InstrumentType = "Put"
	Call   InstrumentType = "Call"
)

// Holding is one disclosed security position of an information table.
//
// A Holding is built by NormalizeHolding and never changes afterwards: all
// fields are read through accessors.
type Holding struct {
	issuer     string
	class      string
	cusip      string
	value      int64 // whole dollars
	shares     int64 // sole shares or principal amount
	amountType string
	discretion string
	votingSole int64
	instrument InstrumentType
}

func (h Holding) IssuerName() string         { return h.issuer }
func (h Holding) ShareClass() string         { return h.class }
func (h Holding) CUSIP() string              { return h.cusip }
func (h Holding) MarketValue() int64         { return h.value }
func (h Holding) Shares() int64              { return h.shares }
func (h Holding) AmountType() string         { return h.amountType }
func (h Holding) Discretion() string         { return h.discretion }
func (h Holding) VotingSole() int64          { return h.votingSole }
func (h Holding) Instrument() InstrumentType { return h.instrument }

// Value returns the market value as Money.
func (h Holding) Value() Money { return USD(h.value) }

// PricePerShare returns the market value divided by the number of shares,
// rounded to the cent.
func (h Holding) PricePerShare() (Money, error) {
	if h.shares == 0 {
		return Money{}, fmt.Errorf("price per share of %s: %w", h.cusip, ErrDivisionByZero)
	}
	price := decimal.NewFromInt(h.value).Div(decimal.NewFromInt(h.shares))
	return USD(price.Round(2)), nil
}

// Detail is a labeled field of a holding description.
type Detail struct {
	Label string
	Value string
}

// Details returns the fields describing the holding, in display order. The
// per-share price is "n/a" when the holding has no shares.
func (h Holding) Details() []Detail {
	perShare := "n/a"
	if p, err := h.PricePerShare(); err == nil {
		perShare = p.String()
	}
	return []Detail{
		{"Company Name", h.issuer},
		{"Share Class", h.class},
		{"CUSIP", h.cusip},
		{"Market Value", h.Value().String()},
		{"Shares", fmt.Sprintf("%d %s", h.shares, h.amountType)},
		{"Per Share", perShare},
		{"Discretion", h.discretion},
		{"Sole Voting", strconv.FormatInt(h.votingSole, 10)},
		{"Instrument", string(h.instrument)},
	}
}

// String returns a multi-line description of the holding.
func (h Holding) String() string {
	var b strings.Builder
	for _, d := range h.Details() {
		fmt.Fprintf(&b, "%-15s%s\n", d.Label+":", d.Value)
	}
	return b.String()
}

// MarshalJSON writes the holding fields in a stable order.
func (h Holding) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("nameOfIssuer", h.issuer)
	w.Append("titleOfClass", h.class)
	w.Append("cusip", h.cusip)
	w.Append("value", h.value)
	w.Append("shares", h.shares)
	w.Optional("sharesType", h.amountType)
	w.Append("investmentDiscretion", h.discretion)
	w.Append("votingSole", h.votingSole)
	w.Append("instrument", h.instrument)
	return w.MarshalJSON()
}
