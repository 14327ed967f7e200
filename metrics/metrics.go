package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/printlog/printlog-sheets/upload"
)

const namespace = "printlog"

// Write stores the outcome of an upload run as a Prometheus textfile e.g. for the
// node_exporter textfile collector. The file is replaced atomically.
func Write(file string, result upload.Result, err error, now time.Time) error {
	registry := prometheus.NewRegistry()

	gauge := func(name, help string, v float64) {
		g := prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		})

		g.Set(v)
		registry.MustRegister(g)
	}

	gauge("events_extracted", "Number of PRINT_DONE events read from the source file in the last run.", float64(result.Extracted))
	gauge("rows_appended", "Number of rows appended to the worksheet in the last run.", float64(result.Appended))
	gauge("source_cleared", "1 if the last run cleared the source file.", bool2float(result.Cleared))
	gauge("run_success", "1 if the last run uploaded every event.", bool2float(err == nil))
	gauge("last_run_timestamp_seconds", "Unix time of the last run.", float64(now.Unix()))

	return prometheus.WriteToTextfile(file, registry)
}

func bool2float(b bool) float64 {
	if b {
		return 1
	}

	return 0
}
