package utils_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/amberpalace/hotel-booking/internal/utils"
)

func TestNewBookingRef_Format(t *testing.T) {
	today := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)

	ref := utils.NewBookingRef(today)

	assert.Regexp(t, regexp.MustCompile(`^AP-250105-[A-Z0-9]{8}$`), ref)
}

func TestNewBookingRef_DatePortionFollowsInput(t *testing.T) {
	ref := utils.NewBookingRef(time.Date(2026, 12, 31, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, "AP-261231-", ref[:10])
}

func TestNewBookingRef_TokensVary(t *testing.T) {
	today := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		ref := utils.NewBookingRef(today)
		assert.False(t, seen[ref], "reference %s repeated", ref)
		seen[ref] = true
	}
}
