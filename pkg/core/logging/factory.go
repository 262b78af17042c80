// ============================================================================
// gauss - Datums- und Zeit-Toolkit
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers from configuration
// Author:      msto63
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/msto63/gauss/foundation/core/config"
	mdwerror "github.com/msto63/gauss/foundation/core/error"
	mdwlog "github.com/msto63/gauss/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name
	ServiceName string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format (json, text, console, logfmt; default: text)
	Format string

	// Output writer (default: stderr)
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "info",
		Format:      "text",
	}
}

// LoggerConfigFromConfig reads log.level and log.format from cfg
func LoggerConfigFromConfig(cfg *config.Config, serviceName string) LoggerConfig {
	lc := DefaultLoggerConfig(serviceName)
	lc.Level = cfg.GetString("log.level", lc.Level)
	lc.Format = cfg.GetString("log.format", lc.Format)
	return lc
}

// Validate checks level and format
func (c LoggerConfig) Validate() error {
	if c.Level != "" {
		if _, err := mdwlog.ParseLevel(c.Level); err != nil {
			return mdwerror.Wrap(err, "invalid log level").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("logging.Validate").
				WithDetail("level", c.Level)
		}
	}
	if c.Format != "" {
		if _, err := mdwlog.ParseFormat(c.Format); err != nil {
			return mdwerror.Wrap(err, "invalid log format").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("logging.Validate").
				WithDetail("format", c.Format)
		}
	}
	return nil
}

// NewLogger creates a new Foundation logger. Unknown levels fall back to
// info, unknown formats to text.
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	// Determine log level
	level, err := mdwlog.ParseLevel(cfg.Level)
	if err != nil {
		level = mdwlog.LevelInfo
	}

	// Determine format
	format, err := mdwlog.ParseFormat(cfg.Format)
	if err != nil {
		format = mdwlog.FormatText
	}

	// Build output writer
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.ServiceName,
	})
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(serviceName string) *mdwlog.Logger {
	return NewLogger(DefaultLoggerConfig(serviceName))
}
