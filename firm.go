package thirteenf

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// DefaultFirmName is used when a Firm is created without a name.
const DefaultFirmName = "Default Capital LLC"

// Firm is an institutional investment manager and the holdings of its filing.
//
// Its statistics are read-only queries: the holdings are compiled once and
// never modified.
type Firm struct {
	name     string
	holdings []Holding // sorted by market value, largest first
	total    int64     // at most MaxMarketValue
}

// NewFirm creates a Firm owning a copy of holdings. holdings is expected in
// the order returned by Compile.
//
// It fails with ErrValueOutOfRange when the total market value exceeds
// MaxMarketValue.
func NewFirm(name string, holdings []Holding) (*Firm, error) {
	if name == "" {
		name = DefaultFirmName
	}
	total := lo.Reduce(holdings, func(sum decimal.Decimal, h Holding, _ int) decimal.Decimal {
		return sum.Add(decimal.NewFromInt(h.value))
	}, decimal.Zero)
	if total.GreaterThan(decimal.NewFromInt(MaxMarketValue)) {
		return nil, fmt.Errorf("total market value of %s is $%s: %w", name, total, ErrValueOutOfRange)
	}
	return &Firm{
		name:     name,
		holdings: append([]Holding(nil), holdings...),
		total:    total.IntPart(),
	}, nil
}

func (f *Firm) Name() string { return f.name }

// Holdings returns a copy of the firm holdings, largest first.
func (f *Firm) Holdings() []Holding { return append([]Holding(nil), f.holdings...) }

// TotalMarketValue returns the sum of all market values in dollars (AUM).
func (f *Firm) TotalMarketValue() int64 { return f.total }

// UniquePositionCount returns the number of distinct CUSIPs.
// CUSIPs are compared exactly as reported.
func (f *Firm) UniquePositionCount() int {
	return len(lo.UniqBy(f.holdings, func(h Holding) string { return h.cusip }))
}

// TotalPositionCount returns the number of holdings, a CUSIP held under
// several classes or instruments being counted once per holding.
func (f *Firm) TotalPositionCount() int { return len(f.holdings) }

// TopHolding returns the holding with the largest market value.
func (f *Firm) TopHolding() (Holding, error) {
	if len(f.holdings) == 0 {
		return Holding{}, fmt.Errorf("top holding of %s: %w", f.name, ErrEmptyPortfolio)
	}
	return f.holdings[0], nil
}

// PercentOfPortfolio returns the share of h in the firm total market value,
// rounded to 2 decimals.
func (f *Firm) PercentOfPortfolio(h Holding) (Percent, error) {
	total := f.TotalMarketValue()
	if total == 0 {
		return 0, fmt.Errorf("percent of portfolio of %s: %w", h.cusip, ErrDivisionByZero)
	}
	pct := decimal.NewFromInt(h.value).Mul(decimal.NewFromInt(100)).Div(decimal.NewFromInt(total)).Round(2)
	return Percent(pct.InexactFloat64()), nil
}

// Lookup returns the holdings reported under cusip, largest first.
func (f *Firm) Lookup(cusip string) []Holding {
	return lo.Filter(f.holdings, func(h Holding, _ int) bool { return h.cusip == cusip })
}

// Stats summarizes the firm portfolio.
type Stats struct {
	Name           string
	TotalValue     Money
	UniquePosition int
	TotalPosition  int
}

// Stats computes the firm summary statistics.
func (f *Firm) Stats() Stats {
	return Stats{
		Name:           f.name,
		TotalValue:     USD(f.TotalMarketValue()),
		UniquePosition: f.UniquePositionCount(),
		TotalPosition:  f.TotalPositionCount(),
	}
}

func (s Stats) String() string {
	return fmt.Sprintf("Total Firm AUM:   %s\nUnique Positions: %d\nTotal Positions:  %d\n",
		s.TotalValue, s.UniquePosition, s.TotalPosition)
}
