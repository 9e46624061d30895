package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/helpers/internal/fn"
)

// NewMatchCommand creates the match command.
func NewMatchCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "match <value> <table-file>",
		Short: "Look a value up in a table",
		Long: `Look a value up in a JSON, YAML or CUE table.

The table's "default" entry is printed when the value is missing. Entries
holding a falsy result (0, false, "" or null) count as missing.`,
		Example: `  helpers match foo table.yaml
  helpers match bar table.cue --format json`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			table, err := LoadTable(args[1])
			if err != nil {
				return formatter.Fail(loadErrorCode(err), loadErrorMessage(err))
			}

			key := norm.NFC.String(args[0])
			formatter.log().Debug("match", zap.String("value", key), zap.Int("entries", len(table)))
			return formatter.Success(fn.MatchTable(key, table))
		},
	}
}
