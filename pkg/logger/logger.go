package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logging options
type Config struct {
	Level  string // trace, debug, info, warn, error
	Format string // text or json
	File   string // optional log file, rotated; empty means stdout only
}

// Init configures the standard logrus logger and returns it
func Init(cfg Config) *logrus.Logger {
	log := logrus.StandardLogger()

	level, err := logrus.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if strings.EqualFold(cfg.Format, "json") {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05"})
	}

	var out io.Writer = os.Stdout
	if cfg.File != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    50, // MB
			MaxBackups: 7,
			MaxAge:     14, // days
			Compress:   true,
		})
	}
	log.SetOutput(out)

	return log
}

// WithComponent returns an entry tagged with the component name
func WithComponent(name string) *logrus.Entry {
	return logrus.WithField("component", name)
}
