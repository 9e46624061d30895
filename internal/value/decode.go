package value

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

// ErrEmptyDocument is returned when a document contains no value.
var ErrEmptyDocument = errors.New("empty document")

// Decode parses a single JSON value into plain Go types.
// Integral numbers become int64; fractional or out-of-range numbers become
// float64. Trailing data after the first value is rejected.
func Decode(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected data after JSON value at offset %d", dec.InputOffset())
	}

	return normalize(raw)
}

// DecodeYAML parses a single YAML document into plain Go types.
func DecodeYAML(data []byte) (any, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))

	var raw any
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	return normalize(raw)
}

// DecodeCUE evaluates a CUE document and returns its concrete value as
// plain Go types. Incomplete values (unresolved references, open types)
// are rejected.
func DecodeCUE(data []byte) (any, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data)
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("compiling CUE: %w", err)
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("validating CUE: %w", err)
	}

	// Export through JSON so numbers follow the same int64/float64 rule as Decode.
	out, err := v.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("exporting CUE: %w", err)
	}
	return Decode(out)
}

// normalize recursively converts decoder output into the plain type set.
func normalize(v any) (any, error) {
	switch val := v.(type) {
	case nil, bool, string, int64, float64:
		return val, nil
	case int:
		return int64(val), nil
	case uint64:
		if val > math.MaxInt64 {
			return float64(val), nil
		}
		return int64(val), nil
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return n, nil
		}
		f, err := val.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", val, err)
		}
		return f, nil
	case []any:
		arr := make([]any, len(val))
		for i, elem := range val {
			n, err := normalize(elem)
			if err != nil {
				return nil, fmt.Errorf("array[%d]: %w", i, err)
			}
			arr[i] = n
		}
		return arr, nil
	case map[string]any:
		obj := make(map[string]any, len(val))
		for k, elem := range val {
			n, err := normalize(elem)
			if err != nil {
				return nil, fmt.Errorf("object[%q]: %w", k, err)
			}
			obj[k] = n
		}
		return obj, nil
	case map[any]any:
		// yaml.v3 produces these when a mapping has non-string keys.
		obj := make(map[string]any, len(val))
		for k, elem := range val {
			n, err := normalize(elem)
			if err != nil {
				return nil, fmt.Errorf("object[%v]: %w", k, err)
			}
			obj[fmt.Sprint(k)] = n
		}
		return obj, nil
	default:
		// yaml.v3 timestamps and other scalars keep their textual form.
		return fmt.Sprint(val), nil
	}
}
