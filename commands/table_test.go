package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/printlog/printlog-sheets/events"
)

func TestRowsToTable(t *testing.T) {
	rows := []events.Row{
		{"a.gcode", float64(120), 60.0, 210.5, float64(3500), float64(1700000000)},
		{"benchy.gcode", float64(3600), 55.0, 200.0, float64(9000), float64(1700003600)},
	}

	var b bytes.Buffer
	if err := rowsToTable(&b, rows); err != nil {
		t.Fatalf("Unexpected error returned from rowsToTable (%v)", err)
	}

	table := b.String()
	for _, v := range []string{"a.gcode", "benchy.gcode", "210.5", "1700000000", "1700003600"} {
		if !strings.Contains(table, v) {
			t.Errorf("Table missing %q\n%v", v, table)
		}
	}

	if strings.Contains(table, "e+09") {
		t.Errorf("Table has exponent formatted values\n%v", table)
	}
}
