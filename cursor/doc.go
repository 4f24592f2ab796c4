// Package cursor provides lazy, single-pass, forward-only iteration primitives.
//
// A [Cursor] produces elements on demand from an upstream source without
// materializing them. Two composite cursors are the building blocks of the
// persistent header list: [Filtering] skips elements failing a predicate and
// [Serial] concatenates several cursors in order.
//
// Cursors carry private state and must not be shared between goroutines.
// Calling Next on an exhausted cursor panics with [ErrExhausted].
// Cursors can be adapted to range-over-func sequences with [Seq].
package cursor
