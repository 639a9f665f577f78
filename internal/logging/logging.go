// Package logging builds the logr.Logger used as the function's log sink.
//
// The console encoding writes only the message of each record so the sink
// receives plain text lines. The json encoding uses zap's production encoder.
package logging

import (
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"s3-upload-logger/internal/config"
)

// New creates a logger writing to w with the level and encoding from cfg.
func New(w io.Writer, cfg *config.Config) (logr.Logger, error) {
	level, err := zapLevel(cfg.LogLevel)
	if err != nil {
		return logr.Discard(), err
	}

	encoder, err := zapEncoder(cfg.LogEncoding)
	if err != nil {
		return logr.Discard(), err
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(w)), zap.NewAtomicLevelAt(level))

	return zapr.NewLoggerWithOptions(zap.New(core), zapr.LogInfoLevel("")), nil
}

func zapLevel(level string) (zapcore.Level, error) {
	switch level {
	case config.LogLevelInfo:
		return zapcore.InfoLevel, nil
	case config.LogLevelDebug:
		// logr V(1) maps to zap level -1
		return zapcore.DebugLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unsupported log level %q", level)
	}
}

func zapEncoder(encoding string) (zapcore.Encoder, error) {
	switch encoding {
	case config.LogEncodingConsole:
		return zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			MessageKey: "msg",
			LineEnding: zapcore.DefaultLineEnding,
		}), nil
	case config.LogEncodingJSON:
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), nil
	default:
		return nil, fmt.Errorf("unsupported log encoding %q", encoding)
	}
}
