package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rulecheck/pkg/config"
	"github.com/dmitrymomot/rulecheck/pkg/logger"
	"github.com/dmitrymomot/rulecheck/pkg/record"
	"github.com/dmitrymomot/rulecheck/pkg/ruleset"
	"github.com/dmitrymomot/rulecheck/pkg/validator"
)

// errRecordInvalid makes the command exit with status 1 once the error map
// has been printed.
var errRecordInvalid = errors.New("record is invalid")

var validateCmd = &cobra.Command{
	Use:   "validate --rules FILE --record FILE",
	Short: "Validate a record and print the errors as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var cfg config.Config
		if err := config.Load(&cfg); err != nil {
			return err
		}
		if cmd.Flags().Changed("lang") {
			cfg.Language = flagLang
		}
		if cmd.Flags().Changed("strict") {
			cfg.StrictPatterns = flagStrict
		}

		log, err := cfg.Logger(logger.WithComponent(appName))
		if err != nil {
			return err
		}
		logger.SetAsDefault(log)

		return runValidate(cmd.Context(), validateParams{
			rules:      flagRules,
			record:     flagRecord,
			recordPath: flagRecordPath,
			lang:       cfg.Language,
			strict:     cfg.StrictPatterns,
		}, cmd.OutOrStdout(), log)
	},
}

type validateParams struct {
	rules      string
	record     string
	recordPath string
	lang       string
	strict     bool
}

// runValidate prints the error map of the record to out. It returns
// errRecordInvalid when the map is not empty.
func runValidate(ctx context.Context, p validateParams, out io.Writer, log *slog.Logger) error {
	rules, err := ruleset.LoadFile(ctx, p.rules, builtinCallbacks())
	if err != nil {
		return fmt.Errorf("load rules: %w", err)
	}
	log.DebugContext(ctx, "rule set loaded", logger.Source(p.rules), logger.Fields(len(rules)))

	data, err := loadRecord(p.record, p.recordPath)
	if err != nil {
		return fmt.Errorf("load record: %w", err)
	}

	engine, err := validator.New(
		validator.WithLanguage(p.lang),
		validator.WithStrictPatterns(p.strict),
		validator.WithLogger(log),
	).Rules(data, rules)
	if err != nil {
		return err
	}

	valid := engine.Exec()
	errs := engine.Errors()

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(errs); err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	log.InfoContext(ctx, "record checked",
		logger.Source(p.record),
		logger.Language(engine.Language()),
		logger.ErrorCount(len(errs)),
	)
	if !valid {
		return errRecordInvalid
	}
	return nil
}

func loadRecord(path, objectPath string) (validator.Record, error) {
	if objectPath == "" {
		return record.FromFile(path)
	}
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".json" {
		return nil, fmt.Errorf("%w: --path needs a JSON record, got %q", record.ErrUnsupportedFormat, ext)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(record.ErrFailedToReadFile, err)
	}
	return record.FromJSONPath(content, objectPath)
}
