package handlers

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const orderIDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// generateOrderID builds a short human-readable order identifier, e.g.
// ORD-LX2K9F3A-7HQ4NZ. Collision probability is treated as negligible; the
// unique index on orderId is the backstop.
func generateOrderID() string {
	stamp := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))

	suffix := make([]byte, 6)
	max := big.NewInt(int64(len(orderIDAlphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken;
			// fall back to a time-derived digit.
			suffix[i] = orderIDAlphabet[time.Now().UnixNano()%int64(len(orderIDAlphabet))]
			continue
		}
		suffix[i] = orderIDAlphabet[n.Int64()]
	}

	return fmt.Sprintf("ORD-%s-%s", stamp, suffix)
}
