// Package logger wraps zap with key/value helpers and secret redaction.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log modes.
const (
	ModeDevelopment = "dev"
	ModeProduction  = "prod"
)

// Logger is a sugared zap logger whose key/value pairs are sanitized.
type Logger struct {
	SugaredLogger *zap.SugaredLogger
}

type options struct {
	out   io.Writer
	level zapcore.Level
}

// Option configures New.
type Option func(*options)

// WithOutput sends log lines to w instead of stderr.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.out = w
		}
	}
}

// WithLevel sets the minimum level written.
func WithLevel(l zapcore.Level) Option {
	return func(o *options) {
		o.level = l
	}
}

// New builds a logger. "prod"/"production" selects JSON output; anything
// else selects the human-readable console encoder.
func New(mode string, opts ...Option) (*Logger, error) {
	o := options{out: os.Stderr, level: zapcore.InfoLevel}
	for _, opt := range opts {
		opt(&o)
	}

	var enc zapcore.Encoder
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "prod", "production":
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	case "", "dev", "development":
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(cfg)
	default:
		return nil, fmt.Errorf("unknown log mode %q (must be %s or %s)", mode, ModeDevelopment, ModeProduction)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(o.out), zap.NewAtomicLevelAt(o.level))
	return &Logger{SugaredLogger: zap.New(core).Sugar()}, nil
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func (l *Logger) Sync() {
	_ = l.SugaredLogger.Sync()
}

func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Debugw(msg, sanitizeKVs(keysAndValues)...)
}
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Infow(msg, sanitizeKVs(keysAndValues)...)
}
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Warnw(msg, sanitizeKVs(keysAndValues)...)
}
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Errorw(msg, sanitizeKVs(keysAndValues)...)
}
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.With(sanitizeKVs(keysAndValues)...)}
}

func sanitizeKVs(kv []interface{}) []interface{} {
	if len(kv) == 0 {
		return kv
	}
	out := make([]interface{}, 0, len(kv))
	for i := 0; i < len(kv); i += 2 {
		if i == len(kv)-1 {
			out = append(out, kv[i])
			break
		}
		key := strings.ToLower(strings.TrimSpace(fmt.Sprint(kv[i])))
		val := kv[i+1]
		if isRedactKey(key) {
			val = "[REDACTED]"
		}
		out = append(out, kv[i], val)
	}
	return out
}

func isRedactKey(key string) bool {
	switch {
	case strings.Contains(key, "password"),
		strings.Contains(key, "secret"),
		strings.Contains(key, "token"),
		strings.Contains(key, "dsn"),
		strings.Contains(key, "database_url"):
		return true
	default:
		return false
	}
}
