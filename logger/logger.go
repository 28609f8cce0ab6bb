package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide logger. It starts as a no-op so packages can
// log before Init runs (tests never call Init).
var Logger = zap.NewNop()

// Init builds the real logger: JSON output when ENV=production, console
// output otherwise.
func Init() {
	var (
		l   *zap.Logger
		err error
	)
	if os.Getenv("ENV") == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	Logger = l
}

// Sync flushes buffered entries. Call on shutdown.
func Sync() {
	_ = Logger.Sync()
}

func Debug(msg string, fields ...zapcore.Field) { Logger.Debug(msg, fields...) }

func Info(msg string, fields ...zapcore.Field) { Logger.Info(msg, fields...) }

func Warn(msg string, fields ...zapcore.Field) { Logger.Warn(msg, fields...) }

func Error(msg string, fields ...zapcore.Field) { Logger.Error(msg, fields...) }

func Fatal(msg string, fields ...zapcore.Field) { Logger.Fatal(msg, fields...) }
