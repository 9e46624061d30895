// Package value classifies arbitrary runtime values and decodes them from
// JSON, YAML and CUE documents.
//
// This package is the foundational layer. Every other internal package may
// import value; value imports nothing internal.
//
// Key design constraints:
//   - Decoded documents use plain Go types only: nil, bool, string, int64,
//     float64, []any and map[string]any
//   - Integral JSON numbers decode to int64, everything else to float64
//   - Classification never panics, whatever the input
package value
