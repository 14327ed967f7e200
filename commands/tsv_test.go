package commands

import (
	"bytes"
	"testing"

	"github.com/printlog/printlog-sheets/events"
)

func TestRowsToTSV(t *testing.T) {
	expected := "file\tptime\tbed_actual\ttool0_actual\ttool0_length\tevent_time\n" +
		"a.gcode\t120\t60\t210.5\t3500\t1700000000\n" +
		"b c.gcode\t\t55\t200\t1234.25\t2023-11-14T22:13:20Z\n" +
		"big.gcode\t9007199254740993\t60.0\t215\t1e3\t1700000000\n"

	rows := []events.Row{
		{"a.gcode", float64(120), 60.0, 210.5, float64(3500), float64(1700000000)},
		{"b c.gcode", nil, 55.0, 200.0, 1234.25, "2023-11-14T22:13:20Z"},
		{"big.gcode", events.Number("9007199254740993"), events.Number("60.0"), events.Number("215"), events.Number("1e3"), events.Number("1700000000")},
	}

	var b bytes.Buffer
	if err := rowsToTSV(&b, rows); err != nil {
		t.Fatalf("Unexpected error returned from rowsToTSV (%v)", err)
	}

	if b.String() != expected {
		t.Errorf("Incorrect TSV\n   expected: %q\n   got:      %q\n", expected, b.String())
	}
}

func TestRowsToTSVWithoutRows(t *testing.T) {
	expected := "file\tptime\tbed_actual\ttool0_actual\ttool0_length\tevent_time\n"

	var b bytes.Buffer
	if err := rowsToTSV(&b, []events.Row{}); err != nil {
		t.Fatalf("Unexpected error returned from rowsToTSV (%v)", err)
	}

	if b.String() != expected {
		t.Errorf("Incorrect TSV\n   expected: %q\n   got:      %q\n", expected, b.String())
	}
}
