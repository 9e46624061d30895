package value

import (
	"encoding/json"
	"reflect"
)

// Kind is the runtime type tag of a value.
type Kind int

const (
	// Other covers structs, channels, complex numbers and non-string-keyed maps.
	Other Kind = iota
	// Null is the absence of a value: untyped nil or a typed nil pointer.
	Null
	String
	Bool
	Number
	// Array is any slice or array.
	Array
	// Object is a string-keyed map, the plain object of a document.
	Object
	Function
	// Error is any non-nil error implementation.
	Error
)

var kindNames = map[Kind]string{
	Other:    "other",
	Null:     "null",
	String:   "string",
	Bool:     "bool",
	Number:   "number",
	Array:    "array",
	Object:   "object",
	Function: "function",
	Error:    "error",
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

var (
	errorType      = reflect.TypeOf((*error)(nil)).Elem()
	jsonNumberType = reflect.TypeOf(json.Number(""))
)

// KindOf returns the runtime type tag of v.
//
// Error is checked before the structural kinds, so a named string type
// implementing error is an Error, not a String.
func KindOf(v any) Kind {
	if v == nil {
		return Null
	}
	if _, ok := v.(error); ok {
		if isNilRef(reflect.ValueOf(v)) {
			return Null
		}
		return Error
	}
	return kindOfValue(reflect.ValueOf(v))
}

// kindOfValue dispatches on the reflect kind. Pointers and interfaces are
// followed until a concrete value or nil is reached.
func kindOfValue(rv reflect.Value) Kind {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return Null
		}
		if rv.Type().Implements(errorType) {
			return Error
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Invalid:
		return Null
	case reflect.String:
		if rv.Type() == jsonNumberType {
			return Number
		}
		return String
	case reflect.Bool:
		return Bool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return Number
	case reflect.Slice, reflect.Array:
		return Array
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return Object
		}
		return Other
	case reflect.Func:
		return Function
	default:
		return Other
	}
}

// isNilRef reports whether rv is a nil pointer, interface, map, slice,
// func or channel.
func isNilRef(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// Indirect follows pointers and interfaces in v and returns the reflect
// value underneath. The returned value is invalid for nil input.
func Indirect(v any) reflect.Value {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}
