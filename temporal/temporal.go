// Package temporal provides the immutable temporal value types a database
// client exchanges with a server whose temporal type system has no notion of
// a host time zone: [LocalDate], [LocalTime], [LocalDateTime], and the
// calendar-aware [Duration].
//
// Every type is a plain value object: construction validates, accessors read,
// and String renders the one canonical textual form used for both display
// and protocol round-tripping. No operation blocks, mutates, or consults the
// host clock or time zone, so values may be shared freely across goroutines.
package temporal

import "errors"

// ErrRange wraps constructor validation errors: a field outside its
// documented range. It is always returned synchronously at construction and
// never recovered internally.
var ErrRange = errors.New("range")

// ErrFormat wraps format-invariant violations: a canonical-format routine
// detected output or a decomposition violating an assumed invariant. These
// are programming defects, not input errors, so they surface as panics
// wrapping this sentinel.
var ErrFormat = errors.New("format")
