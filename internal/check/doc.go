// Package check provides boolean predicates that classify arbitrary values.
//
// Predicates never panic. Unexpected shapes simply classify as false.
package check
