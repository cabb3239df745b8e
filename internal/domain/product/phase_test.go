//go:build unit

package product_test

import (
	"testing"

	"limited-drop-api/internal/domain/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from product.Phase
		to   product.Phase
		want bool
	}{
		{name: "draft→waitlist OK", from: product.PhaseDraft, to: product.PhaseWaitlist, want: true},
		{name: "waitlist→originals OK", from: product.PhaseWaitlist, to: product.PhaseOriginals, want: true},
		{name: "originals→echo OK", from: product.PhaseOriginals, to: product.PhaseEcho, want: true},
		{name: "originals→press OK", from: product.PhaseOriginals, to: product.PhasePress, want: true},
		{name: "echo→press OK", from: product.PhaseEcho, to: product.PhasePress, want: true},
		{name: "press→echo OK", from: product.PhasePress, to: product.PhaseEcho, want: true},
		{name: "任意→ended OK", from: product.PhaseDraft, to: product.PhaseEnded, want: true},
		{name: "echo→ended OK", from: product.PhaseEcho, to: product.PhaseEnded, want: true},
		{name: "ended→originals NG", from: product.PhaseEnded, to: product.PhaseOriginals, want: false},
		{name: "ended→ended NG", from: product.PhaseEnded, to: product.PhaseEnded, want: false},
		{name: "draft→originals NG", from: product.PhaseDraft, to: product.PhaseOriginals, want: false},
		{name: "echo→originals NG", from: product.PhaseEcho, to: product.PhaseOriginals, want: false},
		{name: "同一フェーズNG", from: product.PhaseOriginals, to: product.PhaseOriginals, want: false},
		{name: "不明なフェーズNG", from: product.Phase("bogus"), to: product.PhaseEnded, want: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, product.CanTransition(c.from, c.to))

			err := product.ValidateTransition(c.from, c.to)
			if c.want {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, product.ErrInvalidPhaseTransition)
			}
		})
	}
}

func TestParsePhase(t *testing.T) {
	p, err := product.ParsePhase("echo")
	require.NoError(t, err)
	assert.Equal(t, product.PhaseEcho, p)

	_, err = product.ParsePhase("sold_out")
	assert.ErrorIs(t, err, product.ErrInvalidPhase)
}

func TestDefaultCap(t *testing.T) {
	assert.Equal(t, 100, product.DefaultCap(product.PhaseOriginals))
	assert.Equal(t, 100, product.DefaultCap(product.PhaseWaitlist))
	assert.Equal(t, 150, product.DefaultCap(product.PhaseEcho))
	assert.Equal(t, 10, product.DefaultCap(product.PhasePress))
}

func TestPhase_IsCheckoutPhase(t *testing.T) {
	assert.True(t, product.PhaseOriginals.IsCheckoutPhase())
	assert.True(t, product.PhaseEcho.IsCheckoutPhase())
	assert.False(t, product.PhaseWaitlist.IsCheckoutPhase())
	assert.False(t, product.PhasePress.IsCheckoutPhase())
	assert.False(t, product.PhaseEnded.IsCheckoutPhase())
}
