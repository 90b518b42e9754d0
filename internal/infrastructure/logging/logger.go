// Package logging builds the service-wide structured logger.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
)

// NewLogger creates a zap logger configured from env:
//   - LOG_LEVEL (debug|info|warn|error, default info)
//   - LOG_FORMAT ("console" for development output, default json)
func NewLogger() (*zap.Logger, error) {
	var cfg zap.Config
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "console") {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	level, err := zap.ParseAtomicLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	cfg.Level = level

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.With(zap.String("service", "cnc-quote")), nil
}
