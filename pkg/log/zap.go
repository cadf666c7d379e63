package log

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

func init() {
	// Until Configure is called only warnings and above reach stderr.
	Use(newLogger(zap.WarnLevel, os.Stderr))
}

// Configure rebuilds the global logger with the given level name ("debug", "info", "warn", ...)
// writing JSON lines to w.
func Configure(level string, w io.Writer) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	Use(newLogger(lvl, w))
	return nil
}

// Use replaces the global logger. Tests pass an observer-backed logger here.
func Use(l *zap.Logger) {
	logger = l
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = logger.Sync()
}

func newLogger(level zapcore.Level, w io.Writer) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.MessageKey = "msg"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.TimeKey = "@timestamp"
	encoderConfig.CallerKey = "logger_name"

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(w),
		level,
	)

	return zap.New(core,
		zap.Fields(zap.String("logName", "weather")),
		zap.AddCaller(),
		zap.AddCallerSkip(1))
}

// Info logs a message at InfoLevel. The message includes any fields passed at the log site, as well as any fields accumulated on the logger.
func Info(message string, fields ...zap.Field) {
	logger.Info(message, fields...)
}

// Debug logs a message at DebugLevel. The message includes any fields passed at the log site, as well as any fields accumulated on the logger.
func Debug(message string, fields ...zap.Field) {
	logger.Debug(message, fields...)
}

// Warn logs a message at WarnLevel.
func Warn(message string, fields ...zap.Field) {
	logger.Warn(message, fields...)
}
