package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lj "gopkg.in/natefinch/lumberjack.v2"
)

const (
	DefaultMaxSizeMB  = 10 // MB
	DefaultMaxBackups = 3  // number of rotated files kept
	DefaultMaxAgeDays = 28 // days
)

// Config selects the log level and destination. An empty File logs to stderr,
// otherwise the log is written to File and rotated with lumberjack.
type Config struct {
	Debug bool
	File  string
}

// New builds a console-encoded logger e.g.
//
//	2026/10/19 08:15:02  INFO   uploaded 3 rows to 'Prints'  {"run": "…"}
func New(c Config) *zap.Logger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05")
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.ConsoleSeparator = "  "

	level := zapcore.InfoLevel
	if c.Debug {
		level = zapcore.DebugLevel
	}

	var ws zapcore.WriteSyncer = zapcore.Lock(os.Stderr)
	if c.File != "" {
		ws = zapcore.AddSync(&lj.Logger{
			Filename:   c.File,
			MaxSize:    DefaultMaxSizeMB,
			MaxBackups: DefaultMaxBackups,
			MaxAge:     DefaultMaxAgeDays,
		})
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), ws, zap.NewAtomicLevelAt(level))

	return zap.New(core)
}
