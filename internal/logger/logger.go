package logger

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

var defaultLogger = &logrus.Logger{
	Out:       os.Stdout,
	Formatter: new(logrus.JSONFormatter),
	Hooks:     make(logrus.LevelHooks),
	Level:     logrus.InfoLevel,
}

// SetLevel changes the minimum logged level, e.g. "debug" or "warn".
func SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	defaultLogger.SetLevel(lvl)
	return nil
}

// WithFields returns an entry carrying the given fields.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return defaultLogger.WithFields(fields)
}

// Info logs message at Info level.
func Info(msg string) {
	defaultLogger.Infoln(msg)
}

// Warn logs message at Warn level.
func Warn(msg string) {
	defaultLogger.Warnln(msg)
}

// Error logs errors at Error level.
func Error(err error) {
	defaultLogger.Errorln(err)
}

// Fatal logs errors at Fatal level.
func Fatal(err error) {
	defaultLogger.Fatalln(err)
}
