package utils

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewBookingRef builds a human-readable booking reference of the form
// AP-YYMMDD-XXXXXXXX, where the tail is the first eight hex characters of
// a random UUID, upper-cased. Collisions are astronomically unlikely but
// not impossible; the bookings table's unique index on ref is the actual
// uniqueness guarantee.
func NewBookingRef(today time.Time) string {
	token := strings.ToUpper(uuid.NewString()[:8])
	return "AP-" + today.Format("060102") + "-" + token
}
