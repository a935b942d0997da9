// Package logger provides the shared zap logger for server and CLI output.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	Log   *zap.Logger
	Sugar *zap.SugaredLogger
)

func init() {
	// Tests and library callers that never call Init get a no-op logger.
	Log = zap.NewNop()
	Sugar = Log.Sugar()
}

// Init configures the global logger for real process output.
func Init() {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	encoder := zapcore.NewJSONEncoder(encoderConfig)
	// Stdout carries CLI JSON output and the MCP stdio protocol, so logs
	// must go to stderr.
	writer := zapcore.AddSync(os.Stderr)

	core := zapcore.NewCore(encoder, writer, zapcore.InfoLevel)

	Log = zap.New(core, zap.AddCaller())
	Sugar = Log.Sugar()
}

// Sync flushes any buffered log entries. Safe to call on exit.
func Sync() {
	_ = Log.Sync()
}
