package collect

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/samber/lo"

	"github.com/roach88/helpers/internal/check"
	"github.com/roach88/helpers/internal/value"
)

// ToArray converts anything to a slice.
//
//	ToArray(nil)            // []any{nil}
//	ToArray("hello")        // []any{"hello"}
//	ToArray([]any{1, 2, 3}) // []any{1, 2, 3}, the same slice
//
// A []any is returned as is. Other slices and arrays, and pointers to them,
// are copied element by element. Any other value is wrapped.
func ToArray(v any) []any {
	if arr, ok := v.([]any); ok {
		return arr
	}
	rv := value.Indirect(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []any{v}
	}

	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// ToDictionary indexes the elements of sequence by their key field.
//
//	arr := []any{map[string]any{"id": 1, "name": "foo"}, map[string]any{"id": 2, "name": "bar"}}
//	ToDictionary(arr, "id") // {"1": {id: 1, ...}, "2": {id: 2, ...}}
//
// Elements may be string-keyed maps or structs, whose fields are matched by
// name or json tag. An element whose key is missing or falsy is indexed by
// its position instead. Later duplicates overwrite earlier ones. A
// non-sequence yields an empty map.
func ToDictionary(sequence any, key string) map[string]any {
	dict := make(map[string]any)
	if !check.IsArray(sequence) {
		return dict
	}

	for i, elem := range ToArray(sequence) {
		k, ok := field(elem, key)
		if !ok || !check.IsTruthy(k) {
			k = i
		}
		dict[fmt.Sprint(k)] = elem
	}
	return dict
}

// KeyBy indexes items by the key returned from keyFn.
// Later duplicates overwrite earlier ones.
func KeyBy[K comparable, T any](items []T, keyFn func(T) K) map[K]T {
	return lo.KeyBy(items, keyFn)
}

// field reads the named entry of a string-keyed map or the named field of
// a struct.
func field(elem any, name string) (any, bool) {
	rv := value.Indirect(elem)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		entry := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !entry.IsValid() {
			return nil, false
		}
		return entry.Interface(), true
	case reflect.Struct:
		return structField(rv, name)
	default:
		return nil, false
	}
}

// structField finds an exported field by its json tag, then by name.
// A field promoted through a nil embedded pointer is absent.
func structField(rv reflect.Value, name string) (any, bool) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if tag != "" && tag == name {
			return rv.Field(i).Interface(), true
		}
	}
	if sf, ok := rt.FieldByName(name); ok && sf.IsExported() {
		f, err := rv.FieldByIndexErr(sf.Index)
		if err != nil {
			return nil, false
		}
		return f.Interface(), true
	}
	return nil, false
}

// Range returns the integers 0 to n-1.
//
//	Range(3) // []int{0, 1, 2}
//
// n <= 0 yields an empty slice.
func Range(n int) []int {
	if n <= 0 {
		return []int{}
	}
	return lo.Range(n)
}

// IsEmpty reports whether v is nullish, a blank string, an empty slice or
// array, or a plain object without keys.
//
//	IsEmpty(nil)              // true
//	IsEmpty(" ")              // true
//	IsEmpty([]any{})          // true
//	IsEmpty(map[string]any{}) // true
//	IsEmpty(0)                // false
//
// Every other value, including numbers, booleans, functions and errors, is
// not empty.
func IsEmpty(v any) bool {
	switch value.KindOf(v) {
	case value.Null:
		return true
	case value.String:
		return strings.TrimFunc(value.Indirect(v).String(), unicode.IsSpace) == ""
	case value.Array, value.Object:
		return value.Indirect(v).Len() == 0
	default:
		return false
	}
}
