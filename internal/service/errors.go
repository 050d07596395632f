// Package service orchestrates the booking lifecycle: validation,
// pricing, reference assignment, persistence and lookup. These error
// types are how outcomes cross the service boundary; handlers map them
// to HTTP statuses without inspecting strings.
package service

import (
	"errors"
	"strings"
)

// ErrReferenceExhausted is reported when every generated booking
// reference collided with an existing one. With an 8-character random
// token this effectively never happens; hitting it means the reference
// generator is broken or the table is impossibly full.
var ErrReferenceExhausted = errors.New("booking reference space exhausted")

// ValidationError carries every problem found in a submission so the
// guest can fix the whole form in one pass instead of one field at a
// time. Messages are human-readable and shown verbatim.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string { return strings.Join(e.Messages, " ") }

// BookingFailedError wraps a storage failure during booking creation.
// The guest sees a generic message; the full cause stays attached for
// operator logs.
type BookingFailedError struct {
	Cause error
}

func (e *BookingFailedError) Error() string { return "booking failed: " + e.Cause.Error() }

func (e *BookingFailedError) Unwrap() error { return e.Cause }
