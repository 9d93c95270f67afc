// Package logging builds the zap logger shared by every component.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ThatOtherAndrew/volumedemo/internal/config"
)

// Config turns the logging settings into a zap configuration. Unknown level
// text falls back to info.
func Config(cfg config.LoggingSettings) zap.Config {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableStacktrace = true
	}
	zapCfg.EncoderConfig.FunctionKey = "func"
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg
}

func New(cfg config.LoggingSettings) (*zap.Logger, error) {
	return Config(cfg).Build()
}
