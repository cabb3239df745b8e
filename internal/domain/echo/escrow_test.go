//go:build unit

package echo_test

import (
	"testing"
	"time"

	"limited-drop-api/internal/domain/echo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecide(t *testing.T) {
	cases := []struct {
		name       string
		qualifying int
		min        int
		ended      bool
		want       echo.Action
	}{
		{name: "閾値ちょうどで生産開始", qualifying: 2, min: 2, want: echo.ActionProductionStarted},
		{name: "閾値超えで生産開始", qualifying: 5, min: 2, want: echo.ActionProductionStarted},
		{name: "閾値未満は返金", qualifying: 1, min: 2, want: echo.ActionRefundsProcessed},
		{name: "終了済みは返金のみ", qualifying: 10, min: 2, ended: true, want: echo.ActionRefundsProcessed},
		{name: "最小値0は1扱い", qualifying: 0, min: 0, want: echo.ActionRefundsProcessed},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, echo.Decide(c.qualifying, c.min, c.ended))
		})
	}
}

func TestRequesterKey(t *testing.T) {
	id := uuid.New()

	key, err := echo.RequesterKey(&id, "ignored@example.com")
	require.NoError(t, err)
	assert.Equal(t, id.String(), key)

	key, err = echo.RequesterKey(nil, "  Guest@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "guest@example.com", key)

	_, err = echo.RequesterKey(nil, " ")
	assert.ErrorIs(t, err, echo.ErrRequesterRequired)
}

func TestInitialStatus(t *testing.T) {
	pi := "pi_123"
	blank := " "
	assert.Equal(t, echo.PaymentEscrowed, echo.InitialStatus(&pi))
	assert.Equal(t, echo.PaymentPending, echo.InitialStatus(&blank))
	assert.Equal(t, echo.PaymentPending, echo.InitialStatus(nil))
}

func TestSummarize(t *testing.T) {
	now := time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)

	t.Run("エスクローなし", func(t *testing.T) {
		s := echo.Summarize(0, 100, 14, nil, now)
		assert.False(t, s.ThresholdMet)
		assert.Nil(t, s.TimeRemaining)
	})

	t.Run("残り時間は最古のリクエスト基準", func(t *testing.T) {
		earliest := now.AddDate(0, 0, -10)
		s := echo.Summarize(3, 2, 14, &earliest, now)
		assert.True(t, s.ThresholdMet)
		require.NotNil(t, s.TimeRemaining)
		assert.Equal(t, 4*24*time.Hour, *s.TimeRemaining)
	})

	t.Run("期限切れは0", func(t *testing.T) {
		earliest := now.AddDate(0, 0, -30)
		s := echo.Summarize(1, 2, 14, &earliest, now)
		require.NotNil(t, s.TimeRemaining)
		assert.Equal(t, time.Duration(0), *s.TimeRemaining)
	})
}

func TestReleaseDate(t *testing.T) {
	now := time.Date(2025, 2, 20, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 6, 10, 0, 0, 0, time.UTC), echo.ReleaseDate(now, 14))
}
