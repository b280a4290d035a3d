package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rulecheck/pkg/validator"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List rule types, patterns and built-in callbacks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printTypes(cmd.OutOrStdout())
		return nil
	},
}

func printTypes(w io.Writer) {
	fmt.Fprintf(w, "types:     %s\n", strings.Join(validator.Kinds(), ", "))
	fmt.Fprintf(w, "patterns:  %s\n", strings.Join(validator.Patterns(), ", "))
	fmt.Fprintf(w, "callbacks: %s\n", strings.Join(builtinCallbacks().Names(), ", "))
}
