// Package logging builds the logrus logger shared by the commands and the
// storage layer.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"
)

// New returns a logger writing to w. Unknown levels fall back to warn so a
// normal run prints nothing but command output.
func New(level, format string, w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(parseLevel(level))

	if strings.EqualFold(format, "json") {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	}

	return log
}

// Discard returns a logger that drops everything. Tests use it.
func Discard() *logrus.Logger {
	return New("panic", "text", io.Discard)
}

func parseLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return logrus.WarnLevel
	}
	return lvl
}

// Gorm adapts log for gorm. SQL traces only show up at trace level and
// record-not-found is never logged; callers turn it into their own error.
func Gorm(log *logrus.Logger) gormlogger.Interface {
	level := gormlogger.Warn
	switch {
	case log.IsLevelEnabled(logrus.TraceLevel):
		level = gormlogger.Info
	case !log.IsLevelEnabled(logrus.ErrorLevel):
		level = gormlogger.Silent
	case !log.IsLevelEnabled(logrus.WarnLevel):
		level = gormlogger.Error
	}

	return gormlogger.New(
		log.WithField("component", "gorm"),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
