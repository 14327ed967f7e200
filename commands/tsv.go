package commands

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/printlog/printlog-sheets/events"
)

func rowsToTSV(f io.Writer, rows []events.Row) error {
	w := csv.NewWriter(f)
	w.Comma = '\t'

	if err := w.Write(events.Columns); err != nil {
		return err
	}

	for _, row := range rows {
		if err := w.Write(format(row)); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}

// format renders row values as they would appear in a RAW worksheet cell, i.e.
// integral numbers without an exponent and null as an empty cell.
func format(row events.Row) []string {
	record := make([]string, len(row))

	for i, v := range row {
		switch value := v.(type) {
		case nil:
			record[i] = ""

		case events.Number:
			record[i] = value.String()

		case float64:
			record[i] = strconv.FormatFloat(value, 'f', -1, 64)

		case string:
			record[i] = value

		default:
			record[i] = fmt.Sprintf("%v", value)
		}
	}

	return record
}
