package bookings

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateBookingRef(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	ref := GenerateBookingRef(now)

	assert.True(t, strings.HasPrefix(ref, "QR"))
	assert.Equal(t, ref, strings.ToUpper(ref))

	// Timestamp segment is stable for a fixed clock; only the random
	// suffix varies.
	base := strings.ToUpper(strings.TrimPrefix(GenerateBookingRef(now), "QR"))
	assert.Equal(t, ref[:len(ref)-refSuffixLen], "QR"+base[:len(base)-refSuffixLen])

	for _, c := range ref[2:] {
		assert.True(t, (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z'), "unexpected character %q in %s", c, ref)
	}
}

func TestGenerateBookingRefUnique(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		ref := GenerateBookingRef(now)
		if seen[ref] {
			// Collisions within a batch of 50 are effectively
			// impossible with a 4 character random suffix.
			t.Logf("duplicate ref %s", ref)
		}
		seen[ref] = true
	}
	assert.GreaterOrEqual(t, len(seen), 45)
}
