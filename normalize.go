package thirteenf

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// field describes how one information table column is read into a Holding.
//
// Required fields must be present with a non empty scalar value. Optional
// fields use fallback when absent or empty.
type field struct {
	path     string // dotted path inside the record
	required bool
	fallback string
	set      func(h *Holding, raw string) error
}

// infoTableFields is the complete extraction table of an infoTable record.
// Only the share amount type and putCall are optional.
var infoTableFields = []field{
	{path: "nameOfIssuer", required: true, set: func(h *Holding, raw string) error {
		h.issuer = raw
		return nil
	}},
	{path: "titleOfClass", required: true, set: func(h *Holding, raw string) error {
		h.class = raw
		return nil
	}},
	{path: "cusip", required: true, set: func(h *Holding, raw string) error {
		h.cusip = raw
		return nil
	}},
	{path: "value", required: true, set: func(h *Holding, raw string) (err error) {
		h.value, err = parseWhole("value", raw, ValueMultiplier, MaxMarketValue)
		return
	}},
	{path: "shrsOrPrnAmt.sshPrnamt", required: true, set: func(h *Holding, raw string) (err error) {
		h.shares, err = parseWhole("shrsOrPrnAmt.sshPrnamt", raw, 1, math.MaxInt64)
		return
	}},
	{path: "shrsOrPrnAmt.sshPrnamtType", fallback: "SH", set: func(h *Holding, raw string) error {
		h.amountType = raw
		return nil
	}},
	{path: "investmentDiscretion", required: true, set: func(h *Holding, raw string) error {
		h.discretion = raw
		return nil
	}},
	{path: "votingAuthority.Sole", required: true, set: func(h *Holding, raw string) (err error) {
		h.votingSole, err = parseWhole("votingAuthority.Sole", raw, 1, math.MaxInt64)
		return
	}},
	{path: "putCall", fallback: string(Equity), set: func(h *Holding, raw string) error {
		switch strings.ToLower(raw) {
		case "equity":
			h.instrument = Equity
		case "put":
			h.instrument = Put
		case "call":
			h.instrument = Call
		default:
			return &MalformedValueError{Field: "putCall", Value: raw, Err: errors.New("expected Put or Call")}
		}
		return nil
	}},
}

// NormalizeHolding reads one decoded infoTable record into a Holding.
//
// It fails with a *MissingFieldError when a required field is absent and a
// *MalformedValueError when a field cannot be read.
func NormalizeHolding(record any) (Holding, error) {
	var h Holding
	if _, ok := record.(map[string]any); !ok {
		return h, &MalformedValueError{Field: "infoTable", Value: record, Err: errors.New("record is not a mapping")}
	}
	for _, f := range infoTableFields {
		raw, present, err := f.lookup(record)
		if err != nil {
			return Holding{}, err
		}
		if !present {
			if f.required {
				return Holding{}, &MissingFieldError{Field: f.path, Index: -1}
			}
			raw = f.fallback
		}
		if err := f.set(&h, raw); err != nil {
			return Holding{}, err
		}
	}
	return h, nil
}

// lookup returns the scalar value of f in record, as given.
// present is false when the path does not exist or the value is blank.
func (f field) lookup(record any) (raw string, present bool, err error) {
	// jsonpath fails on unknown keys and on keys of non mapping values: both
	// mean the field is absent.
	jval, err := jsonpath.Get("$."+f.path, record)
	if err != nil {
		return "", false, nil
	}
	switch v := jval.(type) {
	case nil:
		return "", false, nil
	case string:
		raw = v
	case float64, int, int64, bool, json.Number:
		raw = fmt.Sprint(v)
	case map[string]any:
		// an element with attributes keeps its content under "#text"
		text, ok := v["#text"].(string)
		if !ok {
			return "", false, &MalformedValueError{Field: f.path, Value: v, Err: errors.New("not a scalar")}
		}
		raw = text
	default:
		return "", false, &MalformedValueError{Field: f.path, Value: v, Err: errors.New("not a scalar")}
	}
	return raw, strings.TrimSpace(raw) != "", nil
}

// parseWhole parses raw as a decimal, multiplies it by scale, and requires a
// whole number between 0 and max.
func parseWhole(name, raw string, scale, max int64) (int64, error) {
	d, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
	if err != nil {
		return 0, &MalformedValueError{Field: name, Value: raw, Err: err}
	}
	d = d.Mul(decimal.NewFromInt(scale))
	switch {
	case d.IsNegative():
		return 0, &MalformedValueError{Field: name, Value: raw, Err: errors.New("negative value")}
	case !d.IsInteger():
		return 0, &MalformedValueError{Field: name, Value: raw, Err: errors.New("not a whole number")}
	case d.GreaterThan(decimal.NewFromInt(max)):
		return 0, &MalformedValueError{Field: name, Value: raw, Err: ErrValueOutOfRange}
	}
	return d.IntPart(), nil
}
