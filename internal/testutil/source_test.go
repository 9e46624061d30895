package testutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequenceSource_ReturnsInOrder(t *testing.T) {
	src := NewSequenceSource(0.1, 0.5, 0.9)

	assert.Equal(t, 0.1, src.Float64())
	assert.Equal(t, 0.5, src.Float64())
	assert.Equal(t, 0.9, src.Float64())
	assert.Equal(t, 3, src.Drawn())
}

func TestSequenceSource_Cycles(t *testing.T) {
	src := NewSequenceSource(0.25, 0.75)

	src.Float64()
	src.Float64()
	assert.Equal(t, 0.25, src.Float64())
}

func TestSequenceSource_Empty(t *testing.T) {
	src := NewSequenceSource()
	assert.Equal(t, 0.0, src.Float64())
}

func TestSequenceSource_Reset(t *testing.T) {
	src := NewSequenceSource(0.1, 0.2)
	src.Float64()
	src.Float64()

	src.Reset()
	assert.Equal(t, 0, src.Drawn())
	assert.Equal(t, 0.1, src.Float64())
}

func TestSequenceSource_ThreadSafe(t *testing.T) {
	src := NewSequenceSource(0.5)
	const numGoroutines = 50
	const callsPerGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < callsPerGoroutine; j++ {
				src.Float64()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, numGoroutines*callsPerGoroutine, src.Drawn())
}
