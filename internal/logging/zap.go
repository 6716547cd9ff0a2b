// Package logging provides the zap-backed logger wired into the CLI and
// server. The calculation package only sees its own Logger interface.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger adapts a zap SugaredLogger to the calculation Logger interface.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// New builds a production zap logger, at debug level when requested.
func New(debug bool) (*ZapLogger, error) {
	config := zap.NewProductionConfig()
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, err
	}
	return &ZapLogger{sugar: logger.Sugar()}, nil
}

func (z *ZapLogger) Debugf(format string, args ...any) { z.sugar.Debugf(format, args...) }
func (z *ZapLogger) Infof(format string, args ...any)  { z.sugar.Infof(format, args...) }
func (z *ZapLogger) Warnf(format string, args ...any)  { z.sugar.Warnf(format, args...) }
func (z *ZapLogger) Errorf(format string, args ...any) { z.sugar.Errorf(format, args...) }

// Sync flushes buffered log entries; call before process exit.
func (z *ZapLogger) Sync() {
	_ = z.sugar.Sync()
}
