// Package logging provides structured logging on zerolog with an
// optional rotating file sink.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// logger is the package-level logger. Defaults to a console writer on
// stderr until Init is called.
var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	With().Timestamp().Logger().Level(zerolog.InfoLevel)

// FileConfig configures the optional rotating log file.
type FileConfig struct {
	Path       string // "" disables the file sink
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Init configures the package logger: console output on stderr plus a
// rotating JSON file when a path is given.
func Init(level string, file FileConfig) {
	writers := []io.Writer{zerolog.ConsoleWriter{Out: os.Stderr}}

	if file.Path != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   file.Path,
			MaxSize:    file.MaxSizeMB,
			MaxBackups: file.MaxBackups,
			MaxAge:     file.MaxAgeDays,
			Compress:   file.Compress,
		})
	}

	logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().Timestamp().Logger().Level(parseLevel(level))
}

// SetLevel adjusts the log level at runtime.
func SetLevel(level string) {
	logger = logger.Level(parseLevel(level))
}

func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// SetLoggerForTest replaces the package logger. Test hook only.
func SetLoggerForTest(l zerolog.Logger) {
	logger = l
}

// Debug logs a debug message with alternating key-value fields.
func Debug(msg string, kv ...any) {
	emit(logger.Debug(), msg, kv)
}

// Info logs an info message with alternating key-value fields.
func Info(msg string, kv ...any) {
	emit(logger.Info(), msg, kv)
}

// Warn logs a warning with alternating key-value fields.
func Warn(msg string, kv ...any) {
	emit(logger.Warn(), msg, kv)
}

// Error logs an error with alternating key-value fields.
func Error(msg string, kv ...any) {
	emit(logger.Error(), msg, kv)
}

// emit attaches key-value pairs to the event. A trailing key without a
// value is logged as-is with a nil value rather than dropped.
func emit(ev *zerolog.Event, msg string, kv []any) {
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		if i+1 < len(kv) {
			ev = ev.Interface(key, kv[i+1])
		} else {
			ev = ev.Interface(key, nil)
		}
	}
	ev.Msg(msg)
}
