package thirteenf

import (
	"errors"
	"math"
	"testing"
)

func mustCompile(t *testing.T, records ...any) []Holding {
	t.Helper()
	holdings, err := Compile(table(records...))
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	return holdings
}

func mustFirm(t *testing.T, name string, holdings []Holding) *Firm {
	t.Helper()
	firm, err := NewFirm(name, holdings)
	if err != nil {
		t.Fatalf("NewFirm() error = %v", err)
	}
	return firm
}

func TestFirm_Statistics(t *testing.T) {
	holdings := mustCompile(t,
		record(set("cusip", "037833100"), set("value", "300")),
		record(set("cusip", "037833100"), set("value", "100"), set("putCall", "Put")),
		record(set("cusip", "594918104"), set("value", "600")),
		record(set("cusip", "594918104"), set("value", "0")),
	)
	firm := mustFirm(t, "Greenlight", holdings)

	if got, want := firm.Name(), "Greenlight"; got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}
	if got, want := firm.TotalMarketValue(), int64(1_000_000); got != want {
		t.Errorf("TotalMarketValue() = %d, want %d", got, want)
	}
	if got, want := firm.UniquePositionCount(), 2; got != want {
		t.Errorf("UniquePositionCount() = %d, want %d", got, want)
	}
	if got, want := firm.TotalPositionCount(), 4; got != want {
		t.Errorf("TotalPositionCount() = %d, want %d", got, want)
	}

	top, err := firm.TopHolding()
	if err != nil {
		t.Fatalf("TopHolding() error = %v", err)
	}
	if got, want := top.MarketValue(), int64(600_000); got != want {
		t.Errorf("TopHolding().MarketValue() = %d, want %d", got, want)
	}

	stats := firm.Stats()
	want := "Total Firm AUM:   $1,000,000.00\nUnique Positions: 2\nTotal Positions:  4\n"
	if got := stats.String(); got != want {
		t.Errorf("Stats().String() = %q, want %q", got, want)
	}

	if got := firm.Lookup("037833100"); len(got) != 2 || got[0].Instrument() != Equity || got[1].Instrument() != Put {
		t.Errorf("Lookup() = %v, want the equity then the put", got)
	}
	if got := firm.Lookup("unknown"); len(got) != 0 {
		t.Errorf("Lookup(unknown) = %v, want nothing", got)
	}
}

// CUSIPs are compared as given: neither case nor white space is normalized.
func TestFirm_CUSIPAsGiven(t *testing.T) {
	firm := mustFirm(t, "", mustCompile(t,
		record(set("cusip", "g0403h108")),
		record(set("cusip", "G0403H108")),
		record(set("cusip", "G0403H108 ")),
	))
	if got, want := firm.UniquePositionCount(), 3; got != want {
		t.Errorf("UniquePositionCount() = %d, want %d", got, want)
	}
	if got, want := firm.Name(), DefaultFirmName; got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}
}

func TestFirm_TotalOutOfRange(t *testing.T) {
	// each holding is at the maximum, their sum is not.
	holdings := mustCompile(t,
		record(set("cusip", "A"), set("value", "1000000000000")),
		record(set("cusip", "B"), set("value", "1000000000000")),
	)
	firm, err := NewFirm("Overflow", holdings)
	if !errors.Is(err, ErrValueOutOfRange) {
		t.Fatalf("NewFirm() = %v, %v, want ErrValueOutOfRange", firm, err)
	}

	firm = mustFirm(t, "Largest", holdings[:1])
	if got := firm.TotalMarketValue(); got != MaxMarketValue {
		t.Errorf("TotalMarketValue() = %d, want %d", got, MaxMarketValue)
	}
	if got, want := firm.Stats().TotalValue.String(), "$1,000,000,000,000,000.00"; got != want {
		t.Errorf("Stats().TotalValue = %q, want %q", got, want)
	}
	pct, err := firm.PercentOfPortfolio(holdings[0])
	if err != nil || !pct.Equal(100) {
		t.Errorf("PercentOfPortfolio() = %v, %v, want 100%%", pct, err)
	}
}

func TestFirm_Empty(t *testing.T) {
	firm := mustFirm(t, "Empty", nil)
	if got := firm.TotalMarketValue(); got != 0 {
		t.Errorf("TotalMarketValue() = %d, want 0", got)
	}
	if got := firm.UniquePositionCount(); got != 0 {
		t.Errorf("UniquePositionCount() = %d, want 0", got)
	}
	if _, err := firm.TopHolding(); !errors.Is(err, ErrEmptyPortfolio) {
		t.Errorf("TopHolding() error = %v, want %v", err, ErrEmptyPortfolio)
	}
}

func TestFirm_PercentOfPortfolio(t *testing.T) {
	holdings := mustCompile(t,
		record(set("value", "1")),
		record(set("value", "1")),
		record(set("value", "1")),
		record(set("value", "7")),
		record(set("value", "13")),
	)
	firm := mustFirm(t, "Thirds", holdings)

	var sum float64
	for _, h := range firm.Holdings() {
		pct, err := firm.PercentOfPortfolio(h)
		if err != nil {
			t.Fatalf("PercentOfPortfolio() error = %v", err)
		}
		sum += float64(pct)
	}
	if tolerance := 0.05 * float64(len(holdings)); math.Abs(sum-100) > tolerance {
		t.Errorf("sum of percents = %.4f, want 100 ± %.2f", sum, tolerance)
	}

	// 1/23 = 4.3478...%
	pct, _ := firm.PercentOfPortfolio(firm.Holdings()[4])
	if want := Percent(4.35); !pct.Equal(want) {
		t.Errorf("PercentOfPortfolio() = %v, want %v", pct, want)
	}
}

func TestFirm_PercentOfZeroPortfolio(t *testing.T) {
	firm := mustFirm(t, "Zero", mustCompile(t, record(set("value", "0"))))
	top, err := firm.TopHolding()
	if err != nil {
		t.Fatalf("TopHolding() error = %v", err)
	}
	if _, err := firm.PercentOfPortfolio(top); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("PercentOfPortfolio() error = %v, want %v", err, ErrDivisionByZero)
	}
}

func TestFirm_HoldingsAreCopied(t *testing.T) {
	holdings := mustCompile(t, record(set("cusip", "A"), set("value", "2")), record(set("cusip", "B")))
	firm := mustFirm(t, "Copy", holdings)
	holdings[0] = holdings[1]
	got := firm.Holdings()
	got[1] = got[0]
	if want := []string{"B", "A"}; !equalStrings(cusips(firm.Holdings()), want) {
		t.Errorf("Holdings() = %v, want %v", cusips(firm.Holdings()), want)
	}
}
