// ABOUTME: Structured logging for lifeos using Zap.
// ABOUTME: One sugared global logger that always writes to stderr.
package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu    sync.RWMutex
	sugar *zap.SugaredLogger
)

// Init initializes the global logger for the given environment.
// "production" uses a JSON encoder at info level, "quiet" and "test" discard
// output, and anything else uses a human-readable console encoder.
// Output goes to stderr so stdout stays free for the stdio MCP transport.
func Init(env string) {
	var base *zap.Logger
	var err error

	switch env {
	case "production":
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{"stderr"}
		base, err = cfg.Build()
	case "quiet", "test":
		base = zap.NewNop()
	default:
		cfg := zap.NewDevelopmentConfig()
		cfg.OutputPaths = []string{"stderr"}
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		base, err = cfg.Build()
	}

	if err != nil {
		// Fallback to nop logger if initialization fails.
		base = zap.NewNop()
	}

	Set(base.Sugar())
}

// Set replaces the global logger. Tests use it to capture log output.
func Set(l *zap.SugaredLogger) {
	mu.Lock()
	defer mu.Unlock()
	sugar = l
}

// Get returns the global sugared logger.
// If Init has not been called, it initializes a development logger.
func Get() *zap.SugaredLogger {
	mu.RLock()
	l := sugar
	mu.RUnlock()
	if l != nil {
		return l
	}

	Init("development")
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

// Sync flushes any buffered log entries. Call this before application exit.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	if sugar != nil {
		_ = sugar.Sync()
	}
}
