// Package logger holds the process-wide logrus logger shared by the API
// server and the rostergen CLI.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/arnavshah/roster-api-go/pkg/config"
	"github.com/sirupsen/logrus"
)

// Log is the global logger instance
var Log = logrus.New()

// Init configures Log for the API server: entries go to stdout, as JSON in
// production and staging.
func Init(cfg *config.AppConfig) {
	configure(Log, cfg, os.Stdout)
	Log.Debugf("Log level set to: %s", Log.GetLevel())
}

// InitCLI configures Log for rostergen. The roster table owns stdout, so
// entries go to w; unless verbose, only warnings and errors get through.
func InitCLI(cfg *config.AppConfig, w io.Writer, verbose bool) {
	configure(Log, cfg, w)
	if !verbose {
		Log.SetLevel(logrus.WarnLevel)
	}
}

func configure(l *logrus.Logger, cfg *config.AppConfig, w io.Writer) {
	l.SetOutput(w)
	l.SetFormatter(formatter(cfg.Environment))

	level, err := logrus.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		l.SetLevel(logrus.InfoLevel)
		l.WithField("log_level", cfg.LogLevel).Warn("Unknown log level, using info")
		return
	}
	l.SetLevel(level)
}

func formatter(env string) logrus.Formatter {
	switch env {
	case "production", "staging":
		return &logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"}
	default:
		return &logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05"}
	}
}
