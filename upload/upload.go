package upload

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/printlog/printlog-sheets/events"
	"github.com/printlog/printlog-sheets/lockfile"
)

// Appender is the destination worksheet for uploaded rows.
type Appender interface {
	AppendRow(ctx context.Context, row events.Row) error
}

// Job describes a single upload run.
type Job struct {
	Source     string
	KeepSource bool
	Log        *zap.SugaredLogger
}

// Result is the outcome of a run. A run that uploaded every event but could not
// clear the source file is reported with Cleared false and ClearError set.
type Result struct {
	Extracted  int
	Appended   int
	Cleared    bool
	ClearError error
}

func (r Result) String() string {
	switch {
	case r.ClearError != nil:
		return fmt.Sprintf("extracted:%v  appended:%v  cleared:false (%v)", r.Extracted, r.Appended, r.ClearError)

	default:
		return fmt.Sprintf("extracted:%v  appended:%v  cleared:%v", r.Extracted, r.Appended, r.Cleared)
	}
}

var clearFile = lockfile.Clear

// Run extracts the PRINT_DONE events from the source file, appends one row per event
// to the worksheet and then clears the source file. Any extract, map or append error
// aborts the run without clearing the file; rows already appended stay appended.
func Run(ctx context.Context, job Job, sheet Appender) (Result, error) {
	log := job.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	result := Result{}

	list, err := events.ExtractFile(job.Source)
	if err != nil {
		return result, fmt.Errorf("error extracting events from %s (%w)", job.Source, err)
	}

	result.Extracted = len(list)
	log.Debugf("extracted %v PRINT_DONE events from %s", len(list), job.Source)

	for _, e := range list {
		row, err := events.MakeRow(e.Data)
		if err != nil {
			return result, fmt.Errorf("event %s (%w)", e.ID, err)
		}

		if err := sheet.AppendRow(ctx, row); err != nil {
			return result, fmt.Errorf("event %s (%w)", e.ID, err)
		}

		result.Appended++
		log.Debugf("appended event %s (%v)", e.ID, row[0])
	}

	if job.KeepSource {
		return result, nil
	}

	if err := clearFile(job.Source); err != nil {
		result.ClearError = err
	} else {
		result.Cleared = true
	}

	return result, nil
}
