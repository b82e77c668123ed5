package logger

import (
	"go.uber.org/zap/zapcore"
)

// Config selects the encoder and minimum level of the command logger.
type Config struct {
	// Format is "console", "json" or "auto" (console).
	Format string        `toml:"format" yaml:"format"`
	Level  zapcore.Level `toml:"level" yaml:"level"`
}

// NewConfig returns a new instance of Config with defaults.
func NewConfig() Config {
	return Config{
		Format: "auto",
		Level:  zapcore.InfoLevel,
	}
}
