// Package logging builds the zap logger shared by all components.
package logging

import (
	"fmt"

	"github.com/rs/xid"
	"go.uber.org/zap"
)

// NewLogger returns a sugared logger tagged with a fresh session id. debug
// selects the human-readable development encoder and debug level. outputs
// replaces the default stderr sink when given.
func NewLogger(debug bool, outputs ...string) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	if len(outputs) > 0 {
		cfg.OutputPaths = outputs
		cfg.ErrorOutputPaths = outputs
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return logger.Sugar().With("session", xid.New().String()), nil
}
