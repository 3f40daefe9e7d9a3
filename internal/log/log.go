// Package log is a thin wrapper around zerolog with key-value helpers.
// The elligator core never logs; only the command line tools and
// examples do.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const logTestWriterName = "test"

var (
	mu     sync.RWMutex
	logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	// logTestWriter receives output when Init is called with output "test".
	logTestWriter io.Writer = io.Discard
)

// Init sets the level ("debug", "info", "warn", "error", "disabled") and
// output ("stdout", "stderr", "test" or a file path) of the global logger.
// Terminal outputs get the human readable console format.
func Init(level, output string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return errors.Wrapf(err, "log: level %q", level)
	}

	var out io.Writer
	switch output {
	case "stdout":
		out = consoleIfTerminal(os.Stdout)
	case "stderr", "":
		out = consoleIfTerminal(os.Stderr)
	case logTestWriterName:
		out = logTestWriter
	default:
		f, err := os.OpenFile(output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return errors.Wrap(err, "log: open output")
		}
		out = f
	}

	mu.Lock()
	logger = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	mu.Unlock()
	return nil
}

func consoleIfTerminal(f *os.File) io.Writer {
	if isatty.IsTerminal(f.Fd()) {
		return zerolog.ConsoleWriter{Out: f, TimeFormat: "15:04:05"}
	}
	return f
}

// Logger returns a copy of the global logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func withKeyValues(ev *zerolog.Event, keyvalues []any) *zerolog.Event {
	for i := 0; i < len(keyvalues); i += 2 {
		key, ok := keyvalues[i].(string)
		if !ok {
			key = fmt.Sprint(keyvalues[i])
		}
		if i+1 == len(keyvalues) {
			ev = ev.Str(key, "MISSING")
			break
		}
		ev = ev.Interface(key, keyvalues[i+1])
	}
	return ev
}

// Debugw logs msg at debug level with key-value pairs.
func Debugw(msg string, keyvalues ...any) {
	l := Logger()
	withKeyValues(l.Debug(), keyvalues).Msg(msg)
}

// Infow logs msg at info level with key-value pairs.
func Infow(msg string, keyvalues ...any) {
	l := Logger()
	withKeyValues(l.Info(), keyvalues).Msg(msg)
}

// Warnw logs msg at warn level with key-value pairs.
func Warnw(msg string, keyvalues ...any) {
	l := Logger()
	withKeyValues(l.Warn(), keyvalues).Msg(msg)
}

// Errorw logs err at error level with key-value pairs.
func Errorw(err error, msg string, keyvalues ...any) {
	l := Logger()
	withKeyValues(l.Error().Err(err), keyvalues).Msg(msg)
}

func Infof(format string, args ...any) {
	l := Logger()
	l.Info().Msgf(format, args...)
}

func Debugf(format string, args ...any) {
	l := Logger()
	l.Debug().Msgf(format, args...)
}

// Error logs err at error level.
func Error(err error) {
	l := Logger()
	l.Error().Err(err).Send()
}
