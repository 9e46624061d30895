package fn

import (
	"reflect"

	"github.com/roach88/helpers/internal/check"
)

// DefaultKey is the table entry MatchTable falls back to.
const DefaultKey = "default"

// Match looks value up in cases in place of a switch statement.
//
//	Match("foo", map[string]int{"foo": 2, "bar": 3}, 5)   // 2
//	Match("hello", map[string]int{"foo": 2, "bar": 3}, 5) // 5
//
// The stored result is returned only when both value and the result are
// truthy. Otherwise the first fallback is returned, or the zero value of V
// when no fallback is given. With an interface key type, a value that cannot
// be hashed, such as a slice, matches nothing.
func Match[K comparable, V any](value K, cases map[K]V, fallback ...V) V {
	if check.IsTruthy(value) && reflect.ValueOf(value).Comparable() {
		if v, ok := cases[value]; ok && check.IsTruthy(v) {
			return v
		}
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	var zero V
	return zero
}

// MatchTable is Match for tables that carry their own fallback under
// DefaultKey, as decoded documents do.
//
//	MatchTable("missing", map[string]any{"foo": 2, "default": 5}) // 5
func MatchTable[V any](value string, table map[string]V) V {
	return Match(value, table, table[DefaultKey])
}
