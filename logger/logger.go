package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"acquisition-calc/config"
)

const (
	defaultName             = "dealcalc"
	defaultSampleInitial    = 100
	defaultSampleThereafter = 100
)

func encoderConfig(encoding string) zapcore.EncoderConfig {
	if encoding == "console" {
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return ec
	}
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "ts"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	return ec
}

func sampling(cfg config.LogConfig) *zap.SamplingConfig {
	if !cfg.Sampling {
		return nil
	}
	sc := &zap.SamplingConfig{Initial: cfg.SampleInitial, Thereafter: cfg.SampleThereafter}
	if sc.Initial <= 0 {
		sc.Initial = defaultSampleInitial
	}
	if sc.Thereafter <= 0 {
		sc.Thereafter = defaultSampleThereafter
	}
	return sc
}

// New builds the process logger. An unknown level falls back to info and an
// empty encoding to json; every entry carries the logger name and env.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if err := level.Set(strings.ToLower(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	encoding := strings.ToLower(cfg.Encoding)
	switch encoding {
	case "":
		encoding = "json"
	case "json", "console":
	default:
		return nil, fmt.Errorf("unknown log encoding %q", cfg.Encoding)
	}

	outputs := cfg.Outputs
	if len(outputs) == 0 {
		outputs = []string{"stdout"}
	}

	zc := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       cfg.Development,
		Encoding:          encoding,
		DisableCaller:     cfg.DisableCaller,
		DisableStacktrace: cfg.DisableStacktrace,
		Sampling:          sampling(cfg),
		EncoderConfig:     encoderConfig(encoding),
		OutputPaths:       outputs,
		ErrorOutputPaths:  []string{"stderr"},
	}

	log, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	name := cfg.Name
	if name == "" {
		name = defaultName
	}
	log = log.Named(name)
	if cfg.Env != "" {
		log = log.With(zap.String("env", cfg.Env))
	}
	return log, nil
}
