package certgen

import "go.uber.org/zap"

// Logger is the minimal logging capability the pipeline needs.
// Fields are alternating key-value pairs. Implementations must be safe
// for concurrent use.
type Logger interface {
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Error(msg string, fields ...interface{})
}

// NewNopLogger returns a Logger that discards everything.
func NewNopLogger() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// ZapLogger adapts a zap.SugaredLogger to the Logger interface, so the
// library stays logger-agnostic while hosts keep their zap setup.
type ZapLogger struct {
	logger *zap.SugaredLogger
}

// NewZapLogger creates a logger adapter from a zap SugaredLogger.
// A nil argument yields a no-op logger.
func NewZapLogger(l *zap.SugaredLogger) Logger {
	if l == nil {
		return NewNopLogger()
	}
	return &ZapLogger{logger: l}
}

func (z *ZapLogger) Info(msg string, fields ...interface{}) {
	z.logger.Infow(msg, fields...)
}

func (z *ZapLogger) Warn(msg string, fields ...interface{}) {
	z.logger.Warnw(msg, fields...)
}

func (z *ZapLogger) Error(msg string, fields ...interface{}) {
	z.logger.Errorw(msg, fields...)
}
