//go:build unit

package press_test

import (
	"testing"
	"time"

	"limited-drop-api/internal/domain/press"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount(t *testing.T) {
	assert.Equal(t, int64(0), press.Amount(10000, press.TypeInfluencer, 30))
	assert.Equal(t, int64(13000), press.Amount(10000, press.TypeRegular, 30))
	assert.Equal(t, int64(10000), press.Amount(10000, press.TypeRegular, 0))
	// 999 * 1.3 = 1298.7
	assert.Equal(t, int64(1299), press.Amount(999, press.TypeRegular, 30))
}

func TestDecide(t *testing.T) {
	id := uuid.MustParse("7c0a0d0e-0000-4000-8000-000000000001")
	now := time.Unix(1735689600, 0)

	t.Run("一般の承認は支払いリンク発行", func(t *testing.T) {
		out, err := press.Decide(press.StatusPending, press.DecisionApprove, id, press.TypeRegular, 13000, now)
		require.NoError(t, err)
		assert.Equal(t, press.StatusApproved, out.Status)
		require.NotNil(t, out.PaymentLinkID)
		assert.Equal(t, "press_7c0a0d0e-0000-4000-8000-000000000001_1735689600", *out.PaymentLinkID)
		assert.False(t, out.Complete)
	})

	t.Run("インフルエンサーの承認は即完了", func(t *testing.T) {
		out, err := press.Decide(press.StatusPending, press.DecisionApprove, id, press.TypeInfluencer, 0, now)
		require.NoError(t, err)
		assert.Equal(t, press.StatusCompleted, out.Status)
		assert.Nil(t, out.PaymentLinkID)
		assert.True(t, out.Complete)
	})

	t.Run("却下", func(t *testing.T) {
		out, err := press.Decide(press.StatusPending, press.DecisionReject, id, press.TypeRegular, 13000, now)
		require.NoError(t, err)
		assert.Equal(t, press.StatusRejected, out.Status)
	})

	t.Run("処理済みはNG", func(t *testing.T) {
		_, err := press.Decide(press.StatusApproved, press.DecisionApprove, id, press.TypeRegular, 13000, now)
		assert.ErrorIs(t, err, press.ErrAlreadyDecided)
	})
}

func TestParse(t *testing.T) {
	_, err := press.ParseRequestType("celebrity")
	assert.ErrorIs(t, err, press.ErrInvalidRequestType)
	_, err = press.ParseDecision("maybe")
	assert.ErrorIs(t, err, press.ErrInvalidDecision)
}
