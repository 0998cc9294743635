// api/logging/logger.go

package logging

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Log *zap.Logger

// InitLogger builds the process-wide logger. Level and sink names come from
// the log.* configuration keys; logDirPath roots the file sinks so tests can
// point them at a scratch directory.
func InitLogger(logDirPath string) {
	config := zap.NewProductionConfig()

	if level, err := zapcore.ParseLevel(viper.GetString("log.level")); err == nil {
		config.Level.SetLevel(level)
	}

	fileName := viper.GetString("log.fileName")
	if fileName == "" {
		fileName = "api.log"
	}
	errorFileName := viper.GetString("log.errorFileName")
	if errorFileName == "" {
		errorFileName = "api_error.log"
	}

	if err := os.MkdirAll(logDirPath, 0o755); err != nil {
		panic(err)
	}
	logFilePath := filepath.Join(logDirPath, fileName)
	errorFilePath := filepath.Join(logDirPath, errorFileName)
	for _, path := range []string{logFilePath, errorFilePath} {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			file, err := os.Create(path)
			if err != nil {
				panic(err)
			}
			file.Close()
		}
	}

	config.OutputPaths = []string{"stdout", logFilePath}
	config.ErrorOutputPaths = []string{"stderr", errorFilePath}

	config.EncoderConfig.CallerKey = "caller"
	config.EncoderConfig.StacktraceKey = "stacktrace"
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	Log, err = config.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}

	zap.ReplaceGlobals(Log)
}

// Log methods for different levels
func Info(msg string, fields ...zap.Field) {
	Log.Info(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Log.Error(msg, fields...)
}

func Debug(msg string, fields ...zap.Field) {
	Log.Debug(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Log.Warn(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	Log.Fatal(msg, fields...)
}

// WithContext adds context fields to the logger
func WithContext(fields ...zap.Field) *zap.Logger {
	return Log.With(fields...)
}

func Sync() error {
	return Log.Sync()
}
