package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/helpers/internal/collect"
)

// NewArrayCommand creates the array command.
func NewArrayCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "array <json>",
		Short: "Wrap a value in a list unless it already is one",
		Example: `  helpers array 2
  helpers array '[1,2,3]'`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			return formatter.Success(collect.ToArray(ParseInline(args[0])))
		},
	}
}

// NewEmptyCommand creates the empty command.
func NewEmptyCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "empty <json>",
		Short: "Report whether a value is empty",
		Long: `Report whether a value is empty: null, a blank string, an empty list
or an object without keys. Numbers and booleans are never empty.`,
		Example: `  helpers empty '"   "'
  helpers empty '{}'`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			return formatter.Success(collect.IsEmpty(ParseInline(args[0])))
		},
	}
}
