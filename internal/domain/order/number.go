package order

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const (
	base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	suffixLength   = 4
)

// NewNumber builds "{prefix}{base36 unix ms}{4 random base36 chars}".
// Orders created in the same millisecond (escrow release creates them in bulk)
// are told apart by the random suffix; the unique index is the final guard.
func NewNumber(prefix NumberPrefix, now time.Time) string {
	var b strings.Builder
	b.WriteString(string(prefix))
	b.WriteString(strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36)))
	b.WriteString(randomSuffix())
	return b.String()
}

func randomSuffix() string {
	buf := make([]byte, suffixLength)
	limit := big.NewInt(int64(len(base36Alphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			buf[i] = '0'
			continue
		}
		buf[i] = base36Alphabet[n.Int64()]
	}
	return string(buf)
}
