package random

import (
	"math/rand/v2"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestRandomProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)
	g := New(rand.New(rand.NewPCG(7, 11)))

	properties.Property("integer mode stays within [min, max]", prop.ForAll(
		func(min, span int) bool {
			max := min + span
			v := g.Random(float64(min), float64(max), false)
			return v >= float64(min) && v <= float64(max) && v == float64(int(v))
		},
		gen.IntRange(-1000, 1000),
		gen.IntRange(0, 100),
	))

	properties.Property("float mode stays within [min, max)", prop.ForAll(
		func(min, span float64) bool {
			max := min + span
			v := g.Random(min, max, true)
			return v >= min && v < max
		},
		gen.Float64Range(-1000, 1000),
		gen.Float64Range(1, 100),
	))

	properties.TestingRun(t)
}
