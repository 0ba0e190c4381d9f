package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New creates a logrus logger. Development gets human readable text output,
// every other environment gets JSON.
func New(appName, env, level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	if env == "development" {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		if lvl < logrus.DebugLevel {
			lvl = logrus.DebugLevel
		}
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	log.SetLevel(lvl)

	log.WithFields(logrus.Fields{"app": appName, "env": env, "level": lvl.String()}).Info("logger initialized")
	return log
}

// Discard returns a logger that writes nowhere. Tests use it to keep output clean.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
