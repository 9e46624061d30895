package check

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/roach88/helpers/internal/value"
)

// IsString reports whether v is a string.
func IsString(v any) bool {
	return value.KindOf(v) == value.String
}

// IsFunction reports whether v is a func value.
func IsFunction(v any) bool {
	return value.KindOf(v) == value.Function
}

// IsBoolean reports whether v is a bool.
func IsBoolean(v any) bool {
	return value.KindOf(v) == value.Bool
}

// IsNullish reports whether v is untyped nil or a typed nil pointer.
func IsNullish(v any) bool {
	return value.KindOf(v) == value.Null
}

// IsUndefined reports whether v is the untyped nil interface.
// A typed nil pointer is nullish but not undefined.
func IsUndefined(v any) bool {
	return v == nil
}

// IsObject reports whether v is a plain object: a string-keyed map.
//
//	IsObject(nil)                    // false
//	IsObject([]any{map[string]any{}}) // false
//	IsObject(map[string]any{"a": 1}) // true
func IsObject(v any) bool {
	return value.KindOf(v) == value.Object
}

// IsArray reports whether v is a slice or an array.
func IsArray(v any) bool {
	return value.KindOf(v) == value.Array
}

// IsError reports whether v is error-like: a non-nil error, or a plain
// object exposing string "message" and non-empty string "stack" entries.
func IsError(v any) bool {
	if value.KindOf(v) == value.Error {
		return true
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return false
	}
	stack, ok := obj["stack"].(string)
	if !ok || stack == "" {
		return false
	}
	_, ok = obj["message"].(string)
	return ok
}

// IsNumber reports whether v is a number other than NaN.
// With includeString, numeric strings such as "123.2144", ".123" and
// "123." are accepted too.
//
//	IsNumber(123.456, false) // true
//	IsNumber(".123", true)   // true
//	IsNumber("2", false)     // false
func IsNumber(v any, includeString bool) bool {
	f, ok := numeric(v, includeString)
	return ok && !math.IsNaN(f)
}

// IsInteger reports whether v is an integral number. 123.0 is integral.
// With includeString, numeric strings with an integral value such as
// "12", "123." and "123.0" are accepted too.
func IsInteger(v any, includeString bool) bool {
	if value.IsIntegerKind(v) {
		return true
	}
	f, ok := numeric(v, includeString)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return math.Trunc(f) == f
}

// IsTruthy reports whether v is truthy: nil, false, numeric zero, NaN, the
// empty string and nil pointers are falsy, everything else is truthy.
// Empty slices and maps are truthy.
func IsTruthy(v any) bool {
	switch value.KindOf(v) {
	case value.Null:
		return false
	case value.Bool:
		return value.Indirect(v).Bool()
	case value.String:
		return value.Indirect(v).Len() > 0
	case value.Number:
		f, ok := value.AsFloat(v)
		return ok && f != 0 && !math.IsNaN(f)
	default:
		return true
	}
}

// numeric extracts a float64 from a number, or from a numeric string when
// includeString is set.
func numeric(v any, includeString bool) (float64, bool) {
	switch value.KindOf(v) {
	case value.Number:
		return value.AsFloat(v)
	case value.String:
		if !includeString {
			return 0, false
		}
		return parseNumber(value.Indirect(v).String())
	default:
		return 0, false
	}
}

// parseNumber parses a decimal numeric string. Surrounding whitespace is
// ignored; blank strings are not numbers. Overflowing literals parse to
// infinity, but "inf", "NaN" and hex floats are rejected.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsFunc(s, notDecimal) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return f, true
		}
		return 0, false
	}
	return f, true
}

func notDecimal(r rune) bool {
	return !strings.ContainsRune("0123456789+-.eE", r)
}
