// Package logging configures the global logrus logger.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	rotateMaxSizeMB  = 50
	rotateMaxBackups = 10
)

type Options struct {
	Level string
	JSON  bool
	// File enables rotation into File (".log" is appended when missing).
	File       string
	AlsoStdout bool

	Environment string
	SentryDSN   string
	ServerName  string
}

// Setup points logrus at stdout or a rotating file and, when a DSN is
// given, forwards error entries to Sentry.
func Setup(opts Options) {
	logrus.SetLevel(ParseLevel(opts.Level))
	logrus.SetFormatter(newFormatter(opts.JSON))
	logrus.SetOutput(newOutput(opts.File, opts.AlsoStdout))

	if opts.SentryDSN == "" {
		return
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         opts.SentryDSN,
		Environment: opts.Environment,
		ServerName:  opts.ServerName,
	})
	if err != nil {
		logrus.Errorf("sentry.Init: %s", err)
		return
	}
	logrus.AddHook(NewSentryHook([]logrus.Level{logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel}))
}

// ParseLevel falls back to info for unknown names.
func ParseLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

func newFormatter(json bool) logrus.Formatter {
	if json {
		return &logrus.JSONFormatter{TimestampFormat: time.RFC3339}
	}
	return &logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339}
}

func newOutput(file string, alsoStdout bool) io.Writer {
	if file == "" {
		return os.Stdout
	}
	if filepath.Ext(file) != ".log" {
		file += ".log"
	}

	rotating := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    rotateMaxSizeMB,
		MaxBackups: rotateMaxBackups,
		Compress:   true,
	}
	if alsoStdout {
		return io.MultiWriter(os.Stdout, rotating)
	}
	return rotating
}
