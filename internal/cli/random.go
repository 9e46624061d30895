package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/helpers/internal/random"
)

// RandomOptions holds flags for the random command.
type RandomOptions struct {
	*RootOptions
	Float bool // draw from [min, max) instead of integers in [min, max]
	Count int  // how many numbers to draw
}

// NewRandomCommand creates the random command.
func NewRandomCommand(rootOpts *RootOptions) *cobra.Command {
	return newRandomCommand(rootOpts, random.New(nil))
}

// newRandomCommand creates the random command drawing from gen.
func newRandomCommand(rootOpts *RootOptions, gen *random.Generator) *cobra.Command {
	opts := &RandomOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "random [min max]",
		Short: "Print random numbers",
		Long: `Print random numbers.

With bounds, integers are drawn from [min, max] inclusive, or floats from
[min, max) with --float. Without bounds, floats are drawn from [0, 1).`,
		Example: `  helpers random
  helpers random --count 10 -- -1 1
  helpers random 0 100 --float`,
		Args:          cobra.MatchAll(cobra.RangeArgs(0, 2), rejectOneArg),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRandom(opts, gen, args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Float, "float", false, "draw floats from [min, max)")
	cmd.Flags().IntVarP(&opts.Count, "count", "n", 1, "how many numbers to draw")

	return cmd
}

func rejectOneArg(_ *cobra.Command, args []string) error {
	if len(args) == 1 {
		return fmt.Errorf("random needs both min and max, got only %q", args[0])
	}
	return nil
}

func runRandom(opts *RandomOptions, gen *random.Generator, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	if opts.Count < 1 {
		return formatter.Fail(ErrCodeInvalidArg, fmt.Sprintf("invalid count %d: must be at least 1", opts.Count))
	}

	draw := gen.Unit
	if len(args) == 2 {
		min, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return formatter.Fail(ErrCodeInvalidArg, fmt.Sprintf("invalid min %q: must be a number", args[0]))
		}
		max, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return formatter.Fail(ErrCodeInvalidArg, fmt.Sprintf("invalid max %q: must be a number", args[1]))
		}
		draw = func() float64 { return gen.Random(min, max, opts.Float) }
		formatter.log().Debug("random", zap.Float64("min", min), zap.Float64("max", max), zap.Bool("float", opts.Float))
	}

	values := make([]float64, opts.Count)
	for i := range values {
		values[i] = draw()
	}

	if len(values) == 1 {
		return formatter.Success(values[0])
	}
	return formatter.Success(values)
}

// NewIDCommand creates the id command.
func NewIDCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "id",
		Short:         "Print a random time-sortable identifier (UUIDv7)",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newFormatter(rootOpts, cmd).Success(random.ID())
		},
	}
}
