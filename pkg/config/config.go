package config

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/rulecheck/pkg/logger"
)

// Config holds the rulecheck command settings.
type Config struct {
	// Language selects the message catalog ("en", "ja", or any BCP 47 tag
	// that matches one of them).
	Language string `env:"RULECHECK_LANG" envDefault:"en"`
	// StrictPatterns rejects patterns on non-string rules.
	StrictPatterns bool `env:"RULECHECK_STRICT_PATTERNS" envDefault:"false"`

	LogLevel  string        `env:"RULECHECK_LOG_LEVEL" envDefault:"info"`
	LogFormat logger.Format `env:"RULECHECK_LOG_FORMAT" envDefault:"text"`
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	lvl, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: %w", ErrInvalidLogLevel, err)
	}
	return lvl, nil
}

// Validate checks the values env tags cannot express.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case logger.FormatJSON, logger.FormatText:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat)
	}
}

// Logger builds the logger described by the config.
func (c Config) Logger(opts ...logger.Option) (*slog.Logger, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	lvl, _ := c.Level()
	base := []logger.Option{logger.WithLevel(lvl), logger.WithFormat(c.LogFormat)}
	return logger.New(append(base, opts...)...), nil
}
