// Package logger provides the process-wide structured logger. Output goes
// to a file by default; console logging is opt-in so log lines never end
// up inside the TUI's alternate screen.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logger configuration.
type Config struct {
	Level    string // DEBUG, INFO, WARN, ERROR
	FilePath string // path to log file, empty disables file output
	Console  bool   // also log to stderr
}

// DefaultConfig returns the default logger configuration.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	logPath := ""
	if home != "" {
		logPath = filepath.Join(home, ".timeline", "logs", "timeline.log")
	}
	return Config{
		Level:    "INFO",
		FilePath: logPath,
		Console:  false,
	}
}

var (
	global *zap.SugaredLogger = zap.NewNop().Sugar()
	once   sync.Once
)

// Init initializes the global logger.
func Init(cfg Config) error {
	var err error
	once.Do(func() {
		global, err = build(cfg)
	})
	return err
}

func build(cfg Config) (*zap.SugaredLogger, error) {
	level, parseErr := zapcore.ParseLevel(cfg.Level)
	if parseErr != nil {
		level = zapcore.InfoLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000")
	zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	zc.OutputPaths = nil
	if cfg.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		zc.OutputPaths = append(zc.OutputPaths, cfg.FilePath)
	}
	if cfg.Console {
		zc.OutputPaths = append(zc.OutputPaths, "stderr")
	}
	if len(zc.OutputPaths) == 0 {
		return zap.NewNop().Sugar(), nil
	}
	zc.ErrorOutputPaths = zc.OutputPaths

	zl, err := zc.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return zl.Sugar(), nil
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, keysAndValues ...interface{}) {
	global.Debugw(msg, keysAndValues...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg string, keysAndValues ...interface{}) {
	global.Infow(msg, keysAndValues...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, keysAndValues ...interface{}) {
	global.Warnw(msg, keysAndValues...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg string, keysAndValues ...interface{}) {
	global.Errorw(msg, keysAndValues...)
}

// Close flushes any buffered log entries.
func Close() error {
	return global.Sync()
}
