package logger

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/lumen-hq/lumen-cli/pkg/config"
)

var logger *log.Logger

// Init configures the package logger. Verbose switches to debug level,
// and LUMEN_DEBUG=1 forces it regardless of flags.
func Init(verbose bool) {
	level := log.InfoLevel
	if verbose || os.Getenv("LUMEN_DEBUG") == "1" {
		level = log.DebugLevel
	}

	out := os.Stderr
	if path := config.GetString("log.file"); path != "" {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600); err == nil {
			out = f
		}
		// Unwritable log file falls back to stderr
	}

	logger = log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "lumen",
	})
}

func Debug(msg string, args ...interface{}) {
	if logger != nil {
		logger.Debug(msg, args...)
	}
}

func Info(msg string, args ...interface{}) {
	if logger != nil {
		logger.Info(msg, args...)
	}
}

func Warn(msg string, args ...interface{}) {
	if logger != nil {
		logger.Warn(msg, args...)
	}
}

func Error(msg string, args ...interface{}) {
	if logger != nil {
		logger.Error(msg, args...)
	}
}

func Fatal(msg string, args ...interface{}) {
	if logger != nil {
		logger.Fatal(msg, args...)
	} else {
		os.Exit(1)
	}
}

// GetLogger exposes the underlying logger for callers that need
// structured sub-loggers.
func GetLogger() *log.Logger {
	return logger
}
