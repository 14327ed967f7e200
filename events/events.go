package events

import (
	"errors"
	"strconv"
)

// PrintDone is the event type tag for a completed print.
const PrintDone = "PRINT_DONE"

var (
	ErrParse        = errors.New("invalid JSON")
	ErrStructure    = errors.New("invalid event file")
	ErrMissingField = errors.New("missing field")
)

// Payload is the 'data' object of a print event, decoded as generic JSON values
// (strings, bools, nil, nested maps and slices). Top level numbers are kept as a
// Number so that the digits reach the worksheet exactly as written.
type Payload map[string]any

// PrintEvent is a PRINT_DONE record extracted from an event file. ID is the record
// key in the 'events' object.
type PrintEvent struct {
	ID   string
	Data Payload
}

// Number is a JSON number literal from an event payload.
type Number string

func (n Number) String() string {
	return string(n)
}

func (n Number) Float64() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}

// MarshalJSON emits the literal unchanged.
func (n Number) MarshalJSON() ([]byte, error) {
	if n == "" {
		return []byte("0"), nil
	}

	return []byte(n), nil
}
