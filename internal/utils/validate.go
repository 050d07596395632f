package utils

import (
	"regexp"
	"time"
)

var (
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneRe = regexp.MustCompile(`^[0-9\-\+\s]{7,15}$`)
)

// ValidEmail reports whether s is shaped like local@domain.tld with no
// whitespace. It deliberately stops at shape checking; deliverability is
// not this layer's concern.
func ValidEmail(s string) bool { return emailRe.MatchString(s) }

// ValidPhone accepts digits, spaces, '+' and '-', 7 to 15 characters in
// total.
func ValidPhone(s string) bool { return phoneRe.MatchString(s) }

// ValidDateRange reports whether checkOut falls strictly after checkIn.
func ValidDateRange(checkIn, checkOut time.Time) bool { return checkOut.After(checkIn) }

// NightsBetween returns the number of whole nights between two civil
// dates, floored at zero. Callers decide what a non-positive stay means.
func NightsBetween(checkIn, checkOut time.Time) int {
	n := int(checkOut.Sub(checkIn).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}
