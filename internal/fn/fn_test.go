package fn

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunNonFunction(t *testing.T) {
	assert.Equal(t, "abc", Run("abc", 1, 2, 3))
	assert.Nil(t, Run(nil, 1, 2, 3))
	assert.Equal(t, 23, Run(23))
	assert.Equal(t, true, Run(true))
	assert.Equal(t, map[string]any{"a": 1}, Run(map[string]any{"a": 1}))

	var nilFunc func() int
	assert.Nil(t, Run(nilFunc))
}

func TestRunFunction(t *testing.T) {
	assert.Equal(t, 2, Run(func() int { return 2 }))
	assert.Equal(t, 2, Run(func(v int) int { return v }, 2))
	assert.Equal(t, 6, Run(func(a, b, c int) int { return a + b + c }, 1, 2, 3))
}

func TestRunResults(t *testing.T) {
	called := false
	assert.Nil(t, Run(func() { called = true }))
	assert.True(t, called)

	err := errors.New("boom")
	got := Run(func() (int, error) { return 1, err })
	assert.Equal(t, []any{1, err}, got)
}

func TestRunNilArguments(t *testing.T) {
	got := Run(func(p *int, s []string) bool { return p == nil && s == nil }, nil, nil)
	assert.Equal(t, true, got)

	got = Run(func(prefix string, rest ...any) int { return len(rest) }, "x", nil, 2)
	assert.Equal(t, 2, got)
}

func TestRunPropagatesPanics(t *testing.T) {
	assert.PanicsWithValue(t, "inner", func() {
		Run(func() { panic("inner") })
	})
	assert.Panics(t, func() {
		Run(func(a int) int { return a }, 1, 2)
	})
	assert.Panics(t, func() {
		Run(func(a int) int { return a }, "not an int")
	})
}

func TestIdentity(t *testing.T) {
	assert.Equal(t, 3, Identity(3))
	assert.Equal(t, "x", Identity("x"))
	assert.Nil(t, Identity[any](nil))
}

func TestNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		Noop()
		Noop(1, "a", nil)
	})
}
