// Package pattern parses glob-style OSC address patterns. Patterns are
// classification engines over slash-delimited paths: each segment may
// carry wildcards, character classes, or a two-way alternation, and
// parsing yields the ordered sequence of classified pattern values.
// Matching a parsed pattern against a concrete address is the caller's
// concern, not this package's.
package pattern
