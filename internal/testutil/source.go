// Package testutil provides deterministic doubles for tests.
package testutil

import "sync"

// SequenceSource yields a fixed sequence of floats, cycling when it runs
// out. It satisfies random.Source.
//
// Unlike a seeded generator, the exact values drawn are listed in the test,
// so bound calculations can be asserted precisely.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type SequenceSource struct {
	mu     sync.Mutex
	values []float64
	idx    int
}

// NewSequenceSource creates a source that returns values in order.
//
// With no values, Float64 always returns 0.
func NewSequenceSource(values ...float64) *SequenceSource {
	return &SequenceSource{values: values}
}

// Float64 returns the next value in the sequence.
func (s *SequenceSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.idx%len(s.values)]
	s.idx++
	return v
}

// Drawn returns how many values have been drawn.
func (s *SequenceSource) Drawn() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.idx
}

// Reset rewinds the sequence to its first value.
func (s *SequenceSource) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.idx = 0
}
