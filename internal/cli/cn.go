package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/helpers/internal/markup"
)

// NewCnCommand creates the cn command.
func NewCnCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cn [class]...",
		Short: "Join CSS class names",
		Long: `Join class names with single spaces.

Each argument is decoded as JSON first, so false, null and numbers are
dropped the same way non-string values are dropped in code.`,
		Example:       `  helpers cn btn false null btn-primary`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			classes := make([]any, len(args))
			for i, arg := range args {
				classes[i] = ParseInline(arg)
			}
			return formatter.Success(markup.Cn(classes...))
		},
	}
}
