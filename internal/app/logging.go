package app

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/dshills/sabre/internal/config"
)

// NewLogger creates a logger writing text records at level or above to out.
// A nil out discards output.
func NewLogger(level string, out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	if out == nil {
		out = io.Discard
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05.000",
	})
	return l, nil
}

// OpenLogger creates a logger from the logging options. The returned close
// function releases the log file, if any.
func OpenLogger(opts config.LoggingOptions) (*logrus.Logger, func() error, error) {
	if opts.File == "" {
		l, err := NewLogger(opts.Level, nil)
		return l, func() error { return nil }, err
	}

	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	l, err := NewLogger(opts.Level, f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return l, f.Close, nil
}
