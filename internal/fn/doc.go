// Package fn provides value-level helpers: conditional invocation,
// table-driven matching, identity and noop.
//
// Match dispatches on truthiness, not on key existence. A case whose key
// or stored result is falsy (zero, false, "" or nil) behaves as if it were
// absent and yields the fallback. Callers relying on zero-valued results
// should use a plain map lookup instead.
package fn
