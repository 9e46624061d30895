package collect

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToArray(t *testing.T) {
	assert.Equal(t, []any{nil}, ToArray(nil))
	assert.Equal(t, []any{nil}, ToArray([]any{nil}))
	assert.Equal(t, []any{0}, ToArray(0))
	assert.Equal(t, []any{0}, ToArray([]any{0}))
	assert.Equal(t, []any{false}, ToArray(false))
	assert.Equal(t, []any{false}, ToArray([]any{false}))
	assert.Equal(t, []any{[]any{}}, ToArray([]any{[]any{}}))
	assert.Equal(t, []any{}, ToArray([]any{}))
	assert.Equal(t, []any{map[string]any{"a": 1}}, ToArray(map[string]any{"a": 1}))
}

func TestToArrayPassesSliceThrough(t *testing.T) {
	in := []any{1, 2, 3}
	out := ToArray(in)
	require.Len(t, out, 3)

	out[0] = "changed"
	assert.Equal(t, "changed", in[0], "[]any input must be returned without copying")
}

func TestToArrayTypedSlices(t *testing.T) {
	assert.Equal(t, []any{1, 2}, ToArray([]int{1, 2}))
	assert.Equal(t, []any{"a", "b"}, ToArray([2]string{"a", "b"}))
	assert.Equal(t, []any{}, ToArray([]int(nil)))
}

func TestToArrayFollowsPointers(t *testing.T) {
	s := []any{map[string]any{"id": "a"}, map[string]any{"id": "b"}}
	assert.Equal(t, s, ToArray(&s))

	ints := [2]int{4, 5}
	assert.Equal(t, []any{4, 5}, ToArray(&ints))

	var nilSlice *[]int
	assert.Equal(t, []any{nilSlice}, ToArray(nilSlice))

	dict := ToDictionary(&s, "id")
	assert.Equal(t, map[string]any{"a": s[0], "b": s[1]}, dict)
}

func TestToDictionary(t *testing.T) {
	arr := []any{
		map[string]any{"id": 1, "name": "aaa"},
		map[string]any{"id": "hi", "name": "bbb"},
		map[string]any{"id": 3, "name": "ccc"},
	}
	expected := map[string]any{
		"1":  map[string]any{"id": 1, "name": "aaa"},
		"hi": map[string]any{"id": "hi", "name": "bbb"},
		"3":  map[string]any{"id": 3, "name": "ccc"},
	}

	assert.Equal(t, expected, ToDictionary(arr, "id"))
	assert.Equal(t, map[string]any{}, ToDictionary([]any{}, "id"))
}

func TestToDictionaryFallsBackToIndex(t *testing.T) {
	arr := []any{
		map[string]any{"name": "no id"},
		map[string]any{"id": 0, "name": "zero id"},
		map[string]any{"id": "x", "name": "x"},
		"scalar",
	}

	got := ToDictionary(arr, "id")
	assert.Equal(t, map[string]any{
		"0": map[string]any{"name": "no id"},
		"1": map[string]any{"id": 0, "name": "zero id"},
		"x": map[string]any{"id": "x", "name": "x"},
		"3": "scalar",
	}, got)
}

func TestToDictionaryDuplicatesOverwrite(t *testing.T) {
	first := map[string]any{"id": "a", "n": 1}
	second := map[string]any{"id": "a", "n": 2}

	got := ToDictionary([]any{first, second}, "id")
	assert.Equal(t, map[string]any{"a": second}, got)
}

func TestToDictionaryNonSequence(t *testing.T) {
	assert.Equal(t, map[string]any{}, ToDictionary(nil, "id"))
	assert.Equal(t, map[string]any{}, ToDictionary("abc", "id"))
	assert.Equal(t, map[string]any{}, ToDictionary(map[string]any{"id": 1}, "id"))
}

type user struct {
	ID   string `json:"user_id"`
	Name string
}

func TestToDictionaryStructs(t *testing.T) {
	users := []user{{ID: "u1", Name: "ann"}, {ID: "u2", Name: "bob"}}

	byTag := ToDictionary(users, "user_id")
	assert.Equal(t, map[string]any{"u1": users[0], "u2": users[1]}, byTag)

	byName := ToDictionary([]*user{&users[0]}, "Name")
	assert.Equal(t, map[string]any{"ann": &users[0]}, byName)
}

type Account struct {
	ID string
}

type member struct {
	*Account
	Name string
}

func TestToDictionaryNilEmbeddedStruct(t *testing.T) {
	members := []member{{Name: "ann"}, {Account: &Account{ID: "a1"}, Name: "bob"}}

	var dict map[string]any
	require.NotPanics(t, func() { dict = ToDictionary(members, "ID") })
	assert.Equal(t, map[string]any{"0": members[0], "a1": members[1]}, dict)
}

func TestKeyBy(t *testing.T) {
	users := []user{{ID: "u1", Name: "ann"}, {ID: "u2", Name: "bob"}}

	got := KeyBy(users, func(u user) string { return u.ID })
	assert.Equal(t, map[string]user{"u1": users[0], "u2": users[1]}, got)
}

func TestRange(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2}, Range(3))
	assert.Equal(t, []int{0}, Range(1))
	assert.Equal(t, []int{}, Range(0))
	assert.Equal(t, []int{}, Range(-4))
}

func TestIsEmpty(t *testing.T) {
	var nilPtr *user

	t.Run("nullish", func(t *testing.T) {
		assert.True(t, IsEmpty(nil))
		assert.True(t, IsEmpty(nilPtr))
	})
	t.Run("string", func(t *testing.T) {
		assert.False(t, IsEmpty("?"))
		assert.False(t, IsEmpty("false"))
		assert.True(t, IsEmpty("    "))
		assert.True(t, IsEmpty("\t\n"))
		assert.True(t, IsEmpty(""))
	})
	t.Run("object", func(t *testing.T) {
		assert.False(t, IsEmpty(map[string]any{"a": map[string]any{}}))
		assert.False(t, IsEmpty(map[string]any{"a": 1}))
		assert.True(t, IsEmpty(map[string]any{}))
	})
	t.Run("array", func(t *testing.T) {
		assert.False(t, IsEmpty([]any{nil}))
		assert.False(t, IsEmpty([]any{" "}))
		assert.False(t, IsEmpty([]int{1, 2}))
		assert.True(t, IsEmpty([]any{}))
		assert.True(t, IsEmpty([]int(nil)))
	})
	t.Run("error", func(t *testing.T) {
		assert.False(t, IsEmpty(errors.New("")))
		assert.False(t, IsEmpty(errors.New("err")))
	})
	t.Run("number", func(t *testing.T) {
		assert.False(t, IsEmpty(23))
		assert.False(t, IsEmpty(math.Inf(1)))
		assert.False(t, IsEmpty(0))
		assert.False(t, IsEmpty(math.NaN()))
	})
	t.Run("other", func(t *testing.T) {
		assert.False(t, IsEmpty(func() {}))
		assert.False(t, IsEmpty(true))
		assert.False(t, IsEmpty(false))
		assert.False(t, IsEmpty(user{}))
	})
}
