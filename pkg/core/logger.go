package core

import "go.uber.org/zap"

// Logger is the narrow logging surface the render core depends on: leveled
// Printf-style calls that a zap SugaredLogger satisfies directly.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

// zapLogger adapts a zap.SugaredLogger to Logger.
type zapLogger struct{ s *zap.SugaredLogger }

// NewZapLogger builds a Logger backed by a production zap logger.
func NewZapLogger() (Logger, error) {
	l, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return &zapLogger{s: l.Sugar()}, nil
}

// WrapZap adapts an already-constructed *zap.Logger.
func WrapZap(l *zap.Logger) Logger { return &zapLogger{s: l.Sugar()} }

func (z *zapLogger) Infof(format string, args ...interface{}) { z.s.Infof(format, args...) }
func (z *zapLogger) Warnf(format string, args ...interface{}) { z.s.Warnf(format, args...) }

// NopLogger discards everything; the default for library embedding and tests.
type NopLogger struct{}

func (NopLogger) Infof(string, ...interface{}) {}
func (NopLogger) Warnf(string, ...interface{}) {}
