package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/helpers/internal/check"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Strings bool // accept numeric strings for number and integer
	Assert  bool // exit with ExitFailure when the predicate is false
}

// predicates maps predicate names to their implementation.
var predicates = map[string]func(v any, includeString bool) bool{
	"string":  func(v any, _ bool) bool { return check.IsString(v) },
	"boolean": func(v any, _ bool) bool { return check.IsBoolean(v) },
	"nullish": func(v any, _ bool) bool { return check.IsNullish(v) },
	"object":  func(v any, _ bool) bool { return check.IsObject(v) },
	"array":   func(v any, _ bool) bool { return check.IsArray(v) },
	"error":   func(v any, _ bool) bool { return check.IsError(v) },
	"truthy":  func(v any, _ bool) bool { return check.IsTruthy(v) },
	"number":  check.IsNumber,
	"integer": check.IsInteger,
}

// PredicateNames returns the predicate names accepted by check, sorted.
func PredicateNames() []string {
	names := lo.Keys(predicates)
	slices.Sort(names)
	return names
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <predicate> <json>",
		Short: "Classify a value with a type predicate",
		Long: fmt.Sprintf(`Classify a JSON value with a type predicate.

Predicates: %s

Text that is not valid JSON is checked as a string.

Exit codes:
  0 - Predicate evaluated (or held, with --assert)
  1 - Predicate was false and --assert was given
  2 - Command error (unknown predicate, etc.)`, strings.Join(PredicateNames(), ", ")),
		Example: `  helpers check number '"12.5"' --strings
  helpers check object '{"a":1}' --assert`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Strings, "strings", false, "accept numeric strings for number and integer")
	cmd.Flags().BoolVar(&opts.Assert, "assert", false, "exit 1 when the predicate is false")

	return cmd
}

func runCheck(opts *CheckOptions, name, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	predicate, ok := predicates[name]
	if !ok {
		return formatter.Fail(ErrCodeInvalidArg, fmt.Sprintf("unknown predicate %q: must be one of %v", name, PredicateNames()))
	}

	v := ParseInline(arg)
	result := predicate(v, opts.Strings)
	formatter.log().Debug("check", zap.String("predicate", name), zap.Any("value", v), zap.Bool("result", result))

	if err := formatter.Success(result); err != nil {
		return err
	}
	if opts.Assert && !result {
		return NewExitError(ExitFailure, fmt.Sprintf("%s check failed for %s", name, arg))
	}
	return nil
}
