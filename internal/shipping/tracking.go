package shipping

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const (
	trackingPrefix   = "TRK"
	trackingAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	trackingSuffix   = 6
)

// GenerateTrackingNumber builds a caller-facing shipment identifier:
// "TRK" + base-36 unix-millis + 6 random base-36 characters, uppercased.
// Uniqueness is probabilistic; there is no collision retry.
func GenerateTrackingNumber() string {
	var b strings.Builder
	b.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 36))
	for i := 0; i < trackingSuffix; i++ {
		b.WriteByte(trackingAlphabet[rand.Intn(len(trackingAlphabet))])
	}
	return trackingPrefix + strings.ToUpper(b.String())
}
