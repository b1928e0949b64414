package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

type Logging struct {
	Development bool
	Level       logrus.Level

	// File, when set, receives a JSON copy of every entry and is rotated by size.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

func NewLogging() (*Logging, error) {
	development := Development()

	level := logrus.InfoLevel
	if development {
		level = logrus.DebugLevel
	}
	if s, ok := os.LookupEnv("LOG_LEVEL"); ok && s != "" {
		var err error
		if level, err = logrus.ParseLevel(s); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
		}
	}

	maxSize, err := lookupInt("LOG_FILE_MAX_SIZE_MB", 10)
	if err != nil {
		return nil, err
	}
	maxBackups, err := lookupInt("LOG_FILE_MAX_BACKUPS", 3)
	if err != nil {
		return nil, err
	}
	maxAge, err := lookupInt("LOG_FILE_MAX_AGE_DAYS", 28)
	if err != nil {
		return nil, err
	}

	cfg := &Logging{
		Development: development,
		Level:       level,
		File:        os.Getenv("LOG_FILE"),
		MaxSizeMB:   maxSize,
		MaxBackups:  maxBackups,
		MaxAgeDays:  maxAge,
	}

	return cfg, nil
}

func (c Logging) NewLogger(out io.Writer) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(c.Level)

	if c.Development {
		log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	if c.File != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   c.File,
			MaxSize:    c.MaxSizeMB,
			MaxBackups: c.MaxBackups,
			MaxAge:     c.MaxAgeDays,
			Level:      c.Level,
			Formatter: &logrus.JSONFormatter{
				TimestampFormat: time.RFC3339,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("unable to create log file hook: %w", err)
		}
		log.AddHook(hook)
	}

	return log, nil
}

func (c Logging) Fields() logrus.Fields {
	return logrus.Fields{
		"development": c.Development,
		"level":       c.Level.String(),
		"file":        c.File,
	}
}
