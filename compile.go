package thirteenf

import (
	"errors"
	"sort"

	"github.com/PaesslerAG/jsonpath"
)

// infoTablePath locates the holding records in a decoded information table.
const infoTablePath = "$.informationTable.infoTable"

// Compile normalizes every record of a decoded information table and returns
// the holdings sorted by market value, largest first. Holdings with the same
// value keep their order in the filing.
//
// Compile does not stop at the first invalid record: it returns a
// *CompileError listing each of them.
func Compile(doc any) ([]Holding, error) {
	records, err := infoTableRecords(doc)
	if err != nil {
		return nil, err
	}

	holdings := make([]Holding, 0, len(records))
	var failed []RecordError
	for i, record := range records {
		h, err := NormalizeHolding(record)
		if err != nil {
			var missing *MissingFieldError
			if errors.As(err, &missing) {
				missing.Index = i
			}
			failed = append(failed, RecordError{Index: i, Err: err})
			continue
		}
		holdings = append(holdings, h)
	}
	if len(failed) > 0 {
		return nil, &CompileError{Records: failed}
	}

	sort.SliceStable(holdings, func(i, j int) bool {
		return holdings[i].value > holdings[j].value
	})
	return holdings, nil
}

// infoTableRecords returns the infoTable records as a list, whatever the
// number of records.
func infoTableRecords(doc any) ([]any, error) {
	jval, err := jsonpath.Get(infoTablePath, doc)
	if err != nil || jval == nil {
		return nil, &MissingFieldError{Field: "informationTable.infoTable", Index: -1}
	}
	// a table with a single record decodes as the record itself.
	switch v := jval.(type) {
	case []any:
		return v, nil
	case map[string]any:
		return []any{v}, nil
	default:
		return nil, &MalformedValueError{Field: "informationTable.infoTable", Value: v, Err: errors.New("no records")}
	}
}
