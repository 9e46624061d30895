package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/helpers/internal/collect"
)

// NewRangeCommand creates the range command.
func NewRangeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "range <n>",
		Short: "Print the integers 0 to n-1",
		Example: `  helpers range 3
  helpers range 5 --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			n, err := strconv.Atoi(args[0])
			if err != nil {
				return formatter.Fail(ErrCodeInvalidArg, fmt.Sprintf("invalid length %q: must be an integer", args[0]))
			}
			formatter.log().Debug("range", zap.Int("n", n))
			return formatter.Success(collect.Range(n))
		},
	}
}
