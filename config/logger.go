package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

type Logger struct {
	ZeroLogger *zerolog.Logger
}

// Log is exposed on the config as a drop-in replacement for our old logger
var Log Logger

func init() {
	// usable before DoConfigureLogger runs, e.g. in tests
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	Log.ZeroLogger = &logger
}

// These functions are provided to reduce refactoring.
func (l *Logger) Debug(msg string, err ...error) {
	if len(err) == 1 {
		l.ZeroLogger.Debug().Err(err[0]).Msg(msg)
		return
	}
	l.ZeroLogger.Debug().Msg(msg)
}

func (l *Logger) Debugf(msg string, args ...interface{}) {
	l.ZeroLogger.Debug().Msgf(msg, args...)
}

func (l *Logger) Info(msg string, err ...error) {
	if len(err) == 1 {
		l.ZeroLogger.Info().Err(err[0]).Msg(msg)
		return
	}
	l.ZeroLogger.Info().Msg(msg)
}

func (l *Logger) Infof(msg string, args ...interface{}) {
	l.ZeroLogger.Info().Msgf(msg, args...)
}

func (l *Logger) Warn(msg string, err ...error) {
	if len(err) == 1 {
		l.ZeroLogger.Warn().Err(err[0]).Msg(msg)
		return
	}
	l.ZeroLogger.Warn().Msg(msg)
}

func (l *Logger) Warnf(msg string, args ...interface{}) {
	l.ZeroLogger.Warn().Msgf(msg, args...)
}

func (l *Logger) Error(msg string, err ...error) {
	if len(err) == 1 {
		l.ZeroLogger.Error().Err(err[0]).Msg(msg)
		return
	}
	l.ZeroLogger.Error().Msg(msg)
}

func (l *Logger) Fatal(msg string, err ...error) {
	if len(err) == 1 {
		l.ZeroLogger.Fatal().Err(err[0]).Msg(msg)
		return
	}
	l.ZeroLogger.Fatal().Msg(msg)
}

func (l *Logger) Panic(msg string, err ...error) {
	if len(err) == 1 {
		l.ZeroLogger.Panic().Err(err[0]).Msg(msg)
		return
	}
	l.ZeroLogger.Panic().Msg(msg)
}

// DoConfigureLogger sets the global level and the output of Log. Pretty
// logs go to stderr through a console writer; a log path also receives
// JSON lines.
func DoConfigureLogger(logPath string, logLevel string, prettyLogging bool) {
	var out io.Writer = os.Stderr
	if prettyLogging {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	if logPath != "" {
		file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not open log file %s: %v\n", logPath, err)
		} else {
			out = zerolog.MultiLevelWriter(out, file)
		}
	}

	logger := zerolog.New(out).With().Timestamp().Logger()
	Log.ZeroLogger = &logger

	zerolog.SetGlobalLevel(ParseLevel(logLevel))
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(logLevel string) zerolog.Level {
	switch strings.ToLower(logLevel) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	default:
		return zerolog.InfoLevel
	}
}
