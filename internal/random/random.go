// Package random produces random numbers within bounds and random
// identifiers.
package random

import (
	"math"
	"math/rand/v2"

	"github.com/google/uuid"
)

// Source yields uniformly distributed floats in [0, 1).
// *rand.Rand from math/rand/v2 satisfies Source.
type Source interface {
	Float64() float64
}

// globalSource draws from the math/rand/v2 top-level generator, which is
// safe for concurrent use.
type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// Generator draws bounded random numbers from a Source.
//
// Thread-safety: a Generator is as safe for concurrent use as its Source.
type Generator struct {
	src Source
}

// New creates a Generator backed by src. A nil src uses the process-wide
// math/rand/v2 generator.
func New(src Source) *Generator {
	if src == nil {
		src = globalSource{}
	}
	return &Generator{src: src}
}

// Unit returns a random float in [0, 1).
func (g *Generator) Unit() float64 {
	return g.src.Float64()
}

// Random returns a random integer in [min, max] inclusive, or a random
// float in [min, max) when float is set.
func (g *Generator) Random(min, max float64, float bool) float64 {
	if float {
		return g.src.Float64()*(max-min) + min
	}
	// Widen by one before flooring so max itself is reachable.
	return math.Floor(g.src.Float64()*(max-min+1) + min)
}

// Int returns a random integer in [min, max] inclusive.
func (g *Generator) Int(min, max int) int {
	return int(g.Random(float64(min), float64(max), false))
}

var std = New(nil)

// Unit returns a random float in [0, 1) from the process-wide generator.
func Unit() float64 {
	return std.Unit()
}

// Random returns a random integer in [min, max] inclusive, or a random
// float in [min, max) when float is set, from the process-wide generator.
func Random(min, max float64, float bool) float64 {
	return std.Random(min, max, float)
}

// Int returns a random integer in [min, max] inclusive from the
// process-wide generator.
func Int(min, max int) int {
	return std.Int(min, max)
}

// ID returns a random time-sortable identifier (UUIDv7, 36 characters).
//
// Panics if UUID generation fails, which requires the system entropy
// source to fail.
func ID() string {
	return uuid.Must(uuid.NewV7()).String()
}
