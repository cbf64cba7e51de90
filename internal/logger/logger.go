// Package logger builds the zap logger shared by the HTTP layer.
package logger

import (
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where and how verbosely the service logs.
type Options struct {
	Level string
	// Path enables a rotating JSON log file in addition to stdout.
	Path        string
	Development bool
}

// New returns a JSON zap logger writing to stdout and, when Path is set,
// to a lumberjack-rotated file.
func New(opts Options) *zap.Logger {
	level := ParseLevel(opts.Level)

	encCfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     timeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(os.Stdout), level),
	}

	if opts.Path != "" {
		if dir := filepath.Dir(opts.Path); dir != "." {
			_ = os.MkdirAll(dir, 0o755)
		}
		lj := &lumberjack.Logger{
			Filename:   opts.Path,
			MaxSize:    100, // megabytes
			MaxBackups: 3,
			MaxAge:     7, // days
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(lj), level))
	}

	zopts := []zap.Option{zap.AddCaller()}
	if opts.Development {
		zopts = append(zopts, zap.Development())
	}
	return zap.New(zapcore.NewTee(cores...), zopts...)
}

// ParseLevel maps a LOG_LEVEL value to a zap level, defaulting to info.
func ParseLevel(s string) zapcore.Level {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return zapcore.InfoLevel
	}
	return l
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
}
