package internal

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	With(args ...interface{}) Logger
	Sync() error
}

type ZapLogger struct {
	s *zap.SugaredLogger
}

func NewZapLogger(s *zap.SugaredLogger) *ZapLogger {
	return &ZapLogger{s: s}
}

// NewLogger builds a JSON logger for production and a console logger otherwise.
// An unparseable level falls back to info.
func NewLogger(env, level string) (*ZapLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	if env == "production" {
		cfg = zap.NewProductionConfig()
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	z, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return NewZapLogger(z.Sugar()), nil
}

func (l *ZapLogger) Info(args ...interface{})                  { l.s.Info(args...) }
func (l *ZapLogger) Infof(format string, args ...interface{})  { l.s.Infof(format, args...) }
func (l *ZapLogger) Warnf(format string, args ...interface{})  { l.s.Warnf(format, args...) }
func (l *ZapLogger) Errorf(format string, args ...interface{}) { l.s.Errorf(format, args...) }
func (l *ZapLogger) Debugf(format string, args ...interface{}) { l.s.Debugf(format, args...) }
func (l *ZapLogger) Sync() error                               { return l.s.Sync() }

func (l *ZapLogger) With(args ...interface{}) Logger {
	return &ZapLogger{s: l.s.With(args...)}
}
