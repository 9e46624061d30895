// Package collect provides slice and map helpers over arbitrary values.
//
// Helpers degrade gracefully: input of the wrong shape yields an empty
// result, never a panic.
package collect
