package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

const appName = "rulecheck"

var (
	flagRules      string
	flagRecord     string
	flagRecordPath string
	flagLang       string
	flagStrict     bool
	flagEnvFiles   []string
)

func main() {
	rootCmd.AddCommand(validateCmd, typesCmd)

	rootCmd.PersistentFlags().StringArrayVar(&flagEnvFiles, "env-file", nil,
		".env file to load before reading configuration (repeatable)")

	validateCmd.Flags().StringVarP(&flagRules, "rules", "r", "", "rule set file (.json, .yaml or .yml)")
	validateCmd.Flags().StringVarP(&flagRecord, "record", "d", "", "record file (.json, .yaml or .yml)")
	validateCmd.Flags().StringVar(&flagRecordPath, "path", "",
		"gjson path of the object to validate inside a JSON record, e.g. \"items.0\"")
	validateCmd.Flags().StringVarP(&flagLang, "lang", "l", "", "message language (overrides RULECHECK_LANG)")
	validateCmd.Flags().BoolVar(&flagStrict, "strict", false,
		"reject patterns on non-string rules (overrides RULECHECK_STRICT_PATTERNS)")
	_ = validateCmd.MarkFlagRequired("rules")
	_ = validateCmd.MarkFlagRequired("record")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		// The error map is already on stdout.
		if !errors.Is(err, errRecordInvalid) {
			fmt.Fprintln(os.Stderr, "Error:", err.Error())
		}
		os.Exit(1)
	}
}
