package bookings

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const refSuffixLen = 4

// GenerateBookingRef builds the scannable booking reference encoded in
// the ticket QR code: "QR" followed by the creation time in uppercased
// base36 millis and a random uppercased base36 suffix.
func GenerateBookingRef(now time.Time) string {
	ts := strconv.FormatInt(now.UnixMilli(), 36)

	var sb strings.Builder
	for i := 0; i < refSuffixLen; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(36))
		if err != nil {
			sb.WriteByte('0')
			continue
		}
		sb.WriteString(strconv.FormatInt(n.Int64(), 36))
	}

	return "QR" + strings.ToUpper(ts) + strings.ToUpper(sb.String())
}
