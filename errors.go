package thirteenf

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyPortfolio is returned by statistics that need at least one holding.
var ErrEmptyPortfolio = errors.New("portfolio has no holdings")

// ErrDivisionByZero is returned when a per-share price or a percent of
// portfolio is requested with a zero denominator.
var ErrDivisionByZero = errors.New("division by zero")

// ErrValueOutOfRange is returned for a market value, or a firm total, above
// MaxMarketValue, and for counts that do not fit an int64.
var ErrValueOutOfRange = errors.New("value out of range")

// MissingFieldError reports a required field absent from a source record.
type MissingFieldError struct {
	Field string
	Index int // record index in the information table, -1 when not applicable
}

func (e *MissingFieldError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("missing field %q", e.Field)
	}
	return fmt.Sprintf("record %d: missing field %q", e.Index, e.Field)
}

// MalformedValueError reports a field that is present but cannot be read as
// the expected type.
type MalformedValueError struct {
	Field string
	Value any
	Err   error
}

func (e *MalformedValueError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("malformed value %v for field %q", e.Value, e.Field)
	}
	return fmt.Sprintf("malformed value %v for field %q: %v", e.Value, e.Field, e.Err)
}

func (e *MalformedValueError) Unwrap() error { return e.Err }

// DocumentFormatError reports a filing that could not be decoded at all.
type DocumentFormatError struct {
	Source string
	Err    error
}

func (e *DocumentFormatError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("invalid filing document: %v", e.Err)
	}
	return fmt.Sprintf("invalid filing document %q: %v", e.Source, e.Err)
}

func (e *DocumentFormatError) Unwrap() error { return e.Err }

// RecordError attaches the information table index to a normalization failure.
type RecordError struct {
	Index int
	Err   error
}

func (e RecordError) Error() string { return fmt.Sprintf("infoTable[%d]: %v", e.Index, e.Err) }

func (e RecordError) Unwrap() error { return e.Err }

// CompileError collects every record that failed to normalize.
type CompileError struct {
	Records []RecordError
}

func (e *CompileError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d invalid record(s) in information table", len(e.Records))
	for _, r := range e.Records {
		b.WriteString("\n\t")
		b.WriteString(r.Error())
	}
	return b.String()
}

// Unwrap exposes each record failure to errors.Is and errors.As.
func (e *CompileError) Unwrap() []error {
	errs := make([]error, len(e.Records))
	for i, r := range e.Records {
		errs[i] = r
	}
	return errs
}
