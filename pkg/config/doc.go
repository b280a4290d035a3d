// Package config loads settings from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// LoadEnv reads .env files into the process environment and Load parses the
// environment into any struct annotated with `env` tags. Each configuration
// type is parsed once and cached for the lifetime of the process; ResetCache
// clears the cache, which is mostly useful in tests.
//
// Config is the configuration of the rulecheck command:
//
//	RULECHECK_LANG             message language (default "en")
//	RULECHECK_STRICT_PATTERNS  reject patterns on non-string rules (default false)
//	RULECHECK_LOG_LEVEL        debug, info, warn or error (default "info")
//	RULECHECK_LOG_FORMAT       text or json (default "text")
//
// Usage:
//
//	if err := config.LoadEnv("./config/.env"); err != nil {
//	    return err
//	}
//	var cfg config.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//	log, err := cfg.Logger()
//
// Errors can be compared with errors.Is: ErrParsingConfig, ErrNilPointer,
// ErrLoadingEnvFile, ErrInvalidLogLevel and ErrInvalidLogFormat.
package config
