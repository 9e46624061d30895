package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/helpers/internal/check"
	"github.com/roach88/helpers/internal/collect"
	"github.com/roach88/helpers/internal/value"
)

// DictOptions holds flags for the dict command.
type DictOptions struct {
	*RootOptions
	Key string // field to index by
}

// NewDictCommand creates the dict command.
func NewDictCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DictOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "dict <file>",
		Short: "Index a list of objects by a key field",
		Long: `Index the elements of a JSON, YAML or CUE list by a key field.

Elements without the key field are indexed by their position. Later
elements overwrite earlier ones with the same key.`,
		Example:       `  helpers dict users.json --key id`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDict(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Key, "key", "k", "id", "field to index by")

	return cmd
}

func runDict(opts *DictOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	seq, err := LoadFile(path)
	if err != nil {
		return formatter.Fail(loadErrorCode(err), loadErrorMessage(err))
	}
	if !check.IsArray(seq) {
		return formatter.Fail(ErrCodeWrongShape, fmt.Sprintf("%s: expected a list, got %s", path, value.KindOf(seq)))
	}

	dict := collect.ToDictionary(seq, opts.Key)
	formatter.log().Debug("dict", zap.String("key", opts.Key), zap.Int("entries", len(dict)))
	return formatter.Success(dict)
}
