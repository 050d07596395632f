// Package repository implements persistence for bookings over
// database/sql. These sentinel values let higher layers distinguish
// failure scenarios without inspecting driver-specific errors.
package repository

import "errors"

// ErrNotFound is returned when a lookup matches no booking. Handlers
// should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("booking not found")

// ErrDuplicateRef is returned when an insert collides with an existing
// booking reference. The booking service retries with a fresh reference;
// it never reaches the guest directly.
var ErrDuplicateRef = errors.New("duplicate booking reference")
