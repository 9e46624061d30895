package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/helpers/internal/value"
)

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric      = "E001" // Generic/unknown error
	ErrCodeInvalidArg   = "E002" // Invalid argument or flag
	ErrCodeDecodeFailed = "E003" // Input could not be decoded
	ErrCodeUnsupported  = "E004" // Unsupported input format
	ErrCodeNotFound     = "E005" // Path not found
	ErrCodeWrongShape   = "E006" // Decoded input has the wrong shape
)

// LoadError represents an error that occurred while loading input.
type LoadError struct {
	Code    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// decoders maps file extensions to document decoders.
var decoders = map[string]func([]byte) (any, error){
	".json": value.Decode,
	".yaml": value.DecodeYAML,
	".yml":  value.DecodeYAML,
	".cue":  value.DecodeCUE,
}

// LoadFile reads and decodes a JSON, YAML or CUE document, chosen by the
// file extension.
func LoadFile(path string) (any, error) {
	ext := strings.ToLower(filepath.Ext(path))
	decode, ok := decoders[ext]
	if !ok {
		return nil, &LoadError{Code: ErrCodeUnsupported, Message: fmt.Sprintf("unsupported file type %q: use .json, .yaml, .yml or .cue", ext)}
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("file not found: %s", path), Err: err}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("reading %s: %v", path, err), Err: err}
	}

	v, err := decode(data)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeDecodeFailed, Message: fmt.Sprintf("decoding %s: %v", path, err), Err: err}
	}
	return v, nil
}

// ParseInline decodes a command line argument as a JSON value. Text that
// is not valid JSON is taken as a plain string.
func ParseInline(arg string) any {
	v, err := value.Decode([]byte(arg))
	if err != nil {
		return arg
	}
	return v
}

// LoadTable loads a string-keyed table document with its keys NFC
// normalized.
func LoadTable(path string) (map[string]any, error) {
	v, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	table, ok := v.(map[string]any)
	if !ok {
		return nil, &LoadError{Code: ErrCodeWrongShape, Message: fmt.Sprintf("%s: expected an object, got %s", path, value.KindOf(v))}
	}

	normalized := make(map[string]any, len(table))
	for k, entry := range table {
		normalized[norm.NFC.String(k)] = entry
	}
	return normalized, nil
}

// loadErrorCode returns the error code carried by err.
func loadErrorCode(err error) string {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		return loadErr.Code
	}
	return ErrCodeGeneric
}

// loadErrorMessage returns the human-readable message carried by err.
func loadErrorMessage(err error) string {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		return loadErr.Message
	}
	return err.Error()
}
