package fn

import (
	"reflect"
)

// Run invokes f with args if f is a function and returns its result;
// otherwise f is returned unchanged.
//
//	Run(func(v int) int { return v + 2 }, 1) // 3
//	Run("foo", 1)                           // "foo"
//
// A function with no results yields nil and one with several results yields
// them as []any. Nil arguments become the zero value of the matching
// parameter. Panics raised by f, including argument count or type
// mismatches, propagate to the caller.
func Run(f any, args ...any) any {
	rv := reflect.ValueOf(f)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return f
	}

	out := rv.Call(callArgs(rv.Type(), args))
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0].Interface()
	default:
		results := make([]any, len(out))
		for i, r := range out {
			results[i] = r.Interface()
		}
		return results
	}
}

// callArgs converts args to reflect values for a call to a function of
// type ft. Extra arguments are passed through so reflect reports the
// mismatch.
func callArgs(ft reflect.Type, args []any) []reflect.Value {
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg != nil {
			in[i] = reflect.ValueOf(arg)
			continue
		}
		if pt, ok := paramType(ft, i); ok {
			in[i] = reflect.Zero(pt)
			continue
		}
		in[i] = reflect.Zero(reflect.TypeOf((*any)(nil)).Elem())
	}
	return in
}

// paramType returns the type of the i'th argument in a call to ft,
// accounting for a variadic tail.
func paramType(ft reflect.Type, i int) (reflect.Type, bool) {
	n := ft.NumIn()
	if ft.IsVariadic() && i >= n-1 {
		return ft.In(n - 1).Elem(), true
	}
	if i < n {
		return ft.In(i), true
	}
	return nil, false
}

// Identity returns v.
func Identity[T any](v T) T {
	return v
}

// Noop accepts any arguments and does nothing.
func Noop(...any) {}
