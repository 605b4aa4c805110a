// Package logger builds the zap logger shared by the bot and its services.
package logger

import (
	"go.uber.org/zap"
)

// New returns a development logger when debug is set and a production
// logger otherwise
func New(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// OrNop returns l, or a no-op logger when l is nil
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
