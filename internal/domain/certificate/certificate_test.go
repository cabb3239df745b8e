//go:build unit

package certificate_test

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"testing"
	"time"

	"limited-drop-api/internal/domain/certificate"
	"limited-drop-api/internal/domain/product"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	orderID   = uuid.MustParse("11111111-2222-4333-8444-555555555555")
	productID = uuid.MustParse("aaaaaaaa-bbbb-4ccc-8ddd-eeeeeeee9f3c")
	purchased = time.Date(2025, 4, 1, 8, 30, 15, 123_000_000, time.FixedZone("JST", 9*3600))
)

func TestSerial(t *testing.T) {
	cases := []struct {
		name  string
		phase product.Phase
		seq   int
		want  string
		errIs error
	}{
		{name: "originals", phase: product.PhaseOriginals, seq: 7, want: "OG-9F3C-0007"},
		{name: "echo", phase: product.PhaseEcho, seq: 150, want: "EC-9F3C-0150"},
		{name: "press", phase: product.PhasePress, seq: 1, want: "PR-9F3C-0001"},
		{name: "4桁超え", phase: product.PhaseOriginals, seq: 12345, want: "OG-9F3C-12345"},
		{name: "waitlistNG", phase: product.PhaseWaitlist, seq: 1, errIs: certificate.ErrUnsupportedPhase},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := certificate.Serial(c.phase, productID, c.seq)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestHash(t *testing.T) {
	serial := "OG-9F3C-0007"
	input := orderID.String() + "-" + productID.String() + "-" + serial + "-2025-03-31T23:30:15.123Z"
	sum := sha256.Sum256([]byte(input))
	want := hex.EncodeToString(sum[:])

	got := certificate.Hash(orderID, productID, serial, purchased)
	assert.Equal(t, want, got)
	assert.Equal(t, got, certificate.Hash(orderID, productID, serial, purchased.UTC()), "zone must not change the hash")
}

func TestDisplayHash(t *testing.T) {
	assert.Equal(t, "0123-4567-89AB-CDEF", certificate.DisplayHash("0123456789abcdef0011223344"))
	assert.Equal(t, "ABCD-EF", certificate.DisplayHash("abcdef"))
}

func TestGenerate_Stable(t *testing.T) {
	in := certificate.Input{
		OrderID:      orderID,
		ProductID:    productID,
		ProductName:  "Adire Coat",
		Phase:        product.PhaseOriginals,
		Sequence:     7,
		PurchaseDate: purchased,
	}
	first, err := certificate.Generate(in, time.Now())
	require.NoError(t, err)
	second, err := certificate.Generate(in, time.Now().Add(time.Hour))
	require.NoError(t, err)

	if diff := cmp.Diff(first, second, cmpopts.IgnoreFields(certificate.Certificate{}, "IssuedAt")); diff != "" {
		t.Errorf("certificate mismatch (-first +second):\n%s", diff)
	}
	assert.Equal(t, "OG-9F3C-0007", first.SerialNumber)
	assert.Equal(t, certificate.Signature, first.Signature)
	assert.Regexp(t, regexp.MustCompile(`^[0-9A-F]{4}(-[0-9A-F]{4}){3}$`), first.DisplayHash)
}
