// Package logger provides the service-wide leveled logger.
//
// Consumer packages do not import this package directly; they declare their
// own narrow Logger interface (Info/Warn/Error) and receive *Logger through
// constructor injection.
package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a leveled printf-style logger backed by zap.
type Logger struct {
	sugar *zap.SugaredLogger
}

// New creates a logger writing to the given file path.
// An empty path or "stdout" logs to standard output.
// Level is one of: debug, info, warn, error.
func New(file, level string) (*Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true

	if file == "" || file == "stdout" {
		cfg.OutputPaths = []string{"stdout"}
	} else {
		cfg.OutputPaths = []string{file}
	}
	cfg.ErrorOutputPaths = []string{"stderr"}

	zl, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("logger: failed to build zap logger: %w", err)
	}

	return &Logger{sugar: zl.Sugar()}, nil
}

func parseLevel(level string) (zapcore.Level, error) {
	switch level {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return 0, fmt.Errorf("logger: unknown log level %q", level)
	}
}

// Debug logs at debug level.
func (l *Logger) Debug(format string, v ...interface{}) {
	l.sugar.Debugf(format, v...)
}

// Info logs at info level.
func (l *Logger) Info(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

// Warn logs at warn level.
func (l *Logger) Warn(format string, v ...interface{}) {
	l.sugar.Warnf(format, v...)
}

// Error logs at error level.
func (l *Logger) Error(format string, v ...interface{}) {
	l.sugar.Errorf(format, v...)
}

// Fatal logs at error level and exits the process.
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.sugar.Errorf(format, v...)
	_ = l.sugar.Sync()
	os.Exit(1)
}

// Close flushes buffered log entries.
func (l *Logger) Close() {
	_ = l.sugar.Sync()
}
