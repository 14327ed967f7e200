package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printlog/printlog-sheets/upload"
)

func TestWrite(t *testing.T) {
	file := filepath.Join(t.TempDir(), "printlog.prom")
	result := upload.Result{Extracted: 3, Appended: 3, Cleared: true}
	now := time.Date(2026, time.October, 19, 8, 15, 0, 0, time.UTC)

	require.NoError(t, Write(file, result, nil, now))

	b, err := os.ReadFile(file)
	require.NoError(t, err)

	text := string(b)
	assert.Contains(t, text, "# TYPE printlog_rows_appended gauge")
	assert.Contains(t, text, "printlog_events_extracted 3\n")
	assert.Contains(t, text, "printlog_rows_appended 3\n")
	assert.Contains(t, text, "printlog_source_cleared 1\n")
	assert.Contains(t, text, "printlog_run_success 1\n")
	assert.Contains(t, text, "printlog_last_run_timestamp_seconds 1.7923977e+09\n")
}

func TestWriteWithClearError(t *testing.T) {
	file := filepath.Join(t.TempDir(), "printlog.prom")
	result := upload.Result{Extracted: 2, Appended: 2, ClearError: errors.New("disk full")}

	require.NoError(t, Write(file, result, nil, time.Now()))

	b, err := os.ReadFile(file)
	require.NoError(t, err)

	assert.Contains(t, string(b), "printlog_source_cleared 0\n")
	assert.Contains(t, string(b), "printlog_run_success 1\n")
}

func TestWriteWithFailedRun(t *testing.T) {
	file := filepath.Join(t.TempDir(), "printlog.prom")
	result := upload.Result{Extracted: 2, Appended: 1}

	require.NoError(t, Write(file, result, errors.New("503"), time.Now()))

	b, err := os.ReadFile(file)
	require.NoError(t, err)

	assert.Contains(t, string(b), "printlog_rows_appended 1\n")
	assert.Contains(t, string(b), "printlog_run_success 0\n")
}
