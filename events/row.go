package events

import (
	"fmt"
)

// Columns is the fixed order of the fields in an uploaded row.
var Columns = []string{
	"file",
	"ptime",
	"bed_actual",
	"tool0_actual",
	"tool0_length",
	"event_time",
}

// Row is the ordered list of values appended to the worksheet for one print event.
type Row []any

// MakeRow projects a print event payload onto Columns. Values are passed through
// as decoded i.e. a field that is present but null yields a nil cell.
func MakeRow(data Payload) (Row, error) {
	row := make(Row, 0, len(Columns))

	for _, field := range Columns {
		v, ok := data[field]
		if !ok {
			return nil, fmt.Errorf("%w '%s'", ErrMissingField, field)
		}

		row = append(row, v)
	}

	return row, nil
}
