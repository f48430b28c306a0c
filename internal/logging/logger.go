// Package logging собирает zap-логгер приложения.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New возвращает консольный логгер разработки. Уровень Debug только при включённом DEBUG_MODE,
// иначе Info.
func New(debug bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		cfg.Development = false
	}
	return cfg.Build()
}
