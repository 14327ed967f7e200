package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeRow(t *testing.T) {
	data := Payload{
		"event_time":   float64(1700000000),
		"tool0_length": float64(3500),
		"file":         "a.gcode",
		"bed_actual":   60.0,
		"ptime":        float64(120),
		"tool0_actual": 210.0,
		"origin":       "local",
	}

	row, err := MakeRow(data)
	require.NoError(t, err)

	assert.Equal(t, Row{"a.gcode", float64(120), 60.0, 210.0, float64(3500), float64(1700000000)}, row)
}

func TestMakeRowWithMissingField(t *testing.T) {
	for _, field := range Columns {
		data := Payload{
			"file":         "a.gcode",
			"ptime":        float64(120),
			"bed_actual":   60.0,
			"tool0_actual": 210.0,
			"tool0_length": float64(3500),
			"event_time":   float64(1700000000),
		}

		delete(data, field)

		_, err := MakeRow(data)
		require.Error(t, err, field)
		assert.ErrorIs(t, err, ErrMissingField)
		assert.Contains(t, err.Error(), field)
	}
}

func TestMakeRowWithNullField(t *testing.T) {
	data := Payload{
		"file":         "a.gcode",
		"ptime":        nil,
		"bed_actual":   60.0,
		"tool0_actual": 210.0,
		"tool0_length": float64(3500),
		"event_time":   "2023-11-14T22:13:20Z",
	}

	row, err := MakeRow(data)
	require.NoError(t, err)
	assert.Equal(t, Row{"a.gcode", nil, 60.0, 210.0, float64(3500), "2023-11-14T22:13:20Z"}, row)
}
