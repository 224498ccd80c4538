package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a *zap.Logger writing JSON to stderr and optionally to logFile.
// It also replaces the zap globals so zap.L() and zap.S() work.
// The returned cleanup func flushes the logger and closes the log file if one
// was opened; callers must defer it.
func New(level, logFile string) (*zap.Logger, func(), error) {
	sinks := []zapcore.WriteSyncer{zapcore.Lock(os.Stderr)}
	closeFile := func() {}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
		if err != nil {
			return nil, nil, err
		}
		sinks = append(sinks, zapcore.AddSync(f))
		closeFile = func() { _ = f.Close() }
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.NewMultiWriteSyncer(sinks...),
		parseLevel(level),
	)
	logger := zap.New(core, zap.AddCaller())
	zap.ReplaceGlobals(logger)

	cleanup := func() {
		_ = logger.Sync()
		closeFile()
	}
	return logger, cleanup, nil
}

func parseLevel(s string) zapcore.Level {
	switch s {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
