//go:build unit

package metrics_test

import (
	"testing"

	"limited-drop-api/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.CheckoutOutcome("success")
	m.CheckoutOutcome("success")
	m.CheckoutOutcome("sales_cap_reached")
	m.EscrowProcessed("refunds_processed", 3)
	m.WaitlistJoined()
	m.PhaseTransition("originals", "ended")

	assert.Equal(t, 2, testutil.CollectAndCount(reg, "limited_drop_checkout_outcomes_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(reg, "limited_drop_escrow_requests_processed_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(reg, "limited_drop_waitlist_joins_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(reg, "limited_drop_phase_transitions_total"))
}
