// Package logging builds the zap loggers used by the respec CLI.
package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Levels accepted by New.
const (
	LevelNone   = "none"
	LevelNormal = "normal"
	LevelDebug  = "debug"
)

// New returns a console logger writing to w.
//
// "none" discards everything, "normal" logs info and above, "debug" logs
// everything. An empty level means "normal".
func New(level string, w io.Writer) (*zap.Logger, error) {
	var enabler zapcore.Level
	switch level {
	case LevelNone:
		return zap.New(zapcore.NewNopCore()), nil
	case LevelNormal, "":
		enabler = zapcore.InfoLevel
	case LevelDebug:
		enabler = zapcore.DebugLevel
	default:
		return nil, fmt.Errorf("unknown log level %q (want %s, %s or %s)", level, LevelNone, LevelNormal, LevelDebug)
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	ec.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(zapcore.AddSync(w)), enabler)
	return zap.New(core), nil
}
