// Package logging builds zap loggers that write colored, human readable
// lines for command line use.
package logging

import (
	"io"
	"sync"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	EncoderName = "cli"
	timeFormat  = "2006-01-02 15:04:05 MST"
)

var (
	registerOnce sync.Once
	registerErr  error
	levelColor   = map[zapcore.Level]color.Attribute{
		zapcore.DebugLevel:  color.FgBlue,
		zapcore.InfoLevel:   color.FgGreen,
		zapcore.WarnLevel:   color.FgYellow,
		zapcore.ErrorLevel:  color.FgRed,
		zapcore.DPanicLevel: color.FgRed,
		zapcore.PanicLevel:  color.FgRed,
		zapcore.FatalLevel:  color.FgRed,
	}
)

// Register makes the CLI encoder available to zap.Config under EncoderName.
// It is safe to call more than once.
func Register() error {
	registerOnce.Do(func() {
		registerErr = zap.RegisterEncoder(EncoderName, func(cfg zapcore.EncoderConfig) (zapcore.Encoder, error) {
			return NewCLIEncoder(cfg), nil
		})
	})

	return registerErr
}

// EncoderConfig returns the encoder configuration used by New.
func EncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeLevel = encodeLevel
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout(timeFormat)

	return cfg
}

// NewCLIEncoder returns a console encoder. Level names are colored unless
// color output is disabled.
func NewCLIEncoder(cfg zapcore.EncoderConfig) zapcore.Encoder {
	if cfg.EncodeLevel == nil {
		cfg.EncodeLevel = encodeLevel
	}

	return zapcore.NewConsoleEncoder(cfg)
}

// New returns a logger writing entries at or above level to w.
func New(w io.Writer, level zapcore.Level) *zap.Logger {
	core := zapcore.NewCore(NewCLIEncoder(EncoderConfig()), zapcore.AddSync(w), zap.NewAtomicLevelAt(level))

	return zap.New(core)
}

func encodeLevel(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	attr, ok := levelColor[level]
	if !ok {
		enc.AppendString(level.CapitalString())
		return
	}

	enc.AppendString(color.New(attr).Sprint(level.CapitalString()))
}
