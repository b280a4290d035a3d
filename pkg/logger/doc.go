// Package logger builds *slog.Logger values from functional options and
// offers attribute helpers that keep key names consistent.
//
// New creates a logger writing JSON at info level to stderr unless told
// otherwise:
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithComponent("validator"),
//	)
//	log.Debug("record validated", logger.Fields(4), logger.ErrorCount(1))
//
// ParseLevel turns level names from configuration into slog levels. Discard
// returns a logger that drops everything and is the default for library
// code that was not handed a logger.
//
// Error returns an empty attribute for a nil error, so it can be passed
// without a nil check:
//
//	log.Info("rule set loaded", logger.Source(path), logger.Error(err))
package logger
