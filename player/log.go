package player

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Log formats accepted by NewLogger.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// NewLogger returns a logger writing to w. The level is Info, or Debug when
// debug is set.
func NewLogger(w io.Writer, debug bool, format string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	if format == LogFormatJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
	return logger
}

// discardLogger is used when no logger is configured.
func discardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
