// Package address parses concrete, pattern-free OSC-style addresses
// into an ordered container path and a final method name.
package address
