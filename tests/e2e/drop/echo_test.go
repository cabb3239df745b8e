//go:build e2e

package drop_test

import (
	"context"
	"net/http"

	"limited-drop-api/internal/handler/dto/request"
	"limited-drop-api/internal/handler/dto/response"
	"limited-drop-api/tests/common/dbtest"
	httphelper "limited-drop-api/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *DropSuite) echoProduct(minRequests int) dbtest.SeededProduct {
	return dbtest.CreateTestProduct(s.T(), s.DB, dbtest.ProductFixture{
		BasePrice: defaultBasePrice,
		Phase:     "echo",
		Variants:  []dbtest.VariantFixture{{Color: "Onyx", Material: "Leather", Stock: 0}},
		Configs: []dbtest.PhaseConfigFixture{{
			Phase:            "echo",
			MinRequests:      dbtest.IntPtr(minRequests),
			WindowDays:       dbtest.IntPtr(7),
			SurchargePercent: dbtest.IntPtr(20),
		}},
	})
}

// escrowRequest submits an echo request and confirms its escrow payment.
func (s *DropSuite) escrowRequest(token string, productID uuid.UUID) uuid.UUID {
	t := s.T()

	w := httphelper.PerformRequest(t, s.Router, http.MethodPost, echoRequestsURL,
		request.SubmitEchoRequest{ProductID: productID}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var sub response.EchoSubmissionResponse
	httphelper.DecodeBody(t, w, &sub)
	require.Equal(t, "pending", sub.PaymentStatus)

	w = httphelper.PerformRequest(t, s.Router, http.MethodPost, url(echoEscrowURL, sub.RequestID),
		request.ConfirmEscrowRequest{PaymentIntentID: "pi_" + sub.RequestID.String()[:8]}, token)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	return sub.RequestID
}

func (s *DropSuite) matureEscrow(productID uuid.UUID) {
	_, err := s.DB.Exec(context.Background(),
		"UPDATE echo_requests SET escrow_release_date = now() - interval '1 minute' WHERE product_id = $1", productID)
	require.NoError(s.T(), err)
}

func (s *DropSuite) processEscrow(adminToken string, productID uuid.UUID) response.EscrowResponse {
	t := s.T()
	w := httphelper.PerformRequest(t, s.Router, http.MethodPost, echoProcessURL,
		request.ProcessEscrowRequest{ProductID: productID}, adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var res response.EscrowResponse
	httphelper.DecodeBody(t, w, &res)
	return res
}

func (s *DropSuite) TestEchoEscrow() {
	s.Run("期限前は何もしない", func() {
		t := s.T()
		p := s.echoProduct(1)
		_, token := s.customer("early@example.com")
		s.escrowRequest(token, p.ID)

		res := s.processEscrow(s.admin(), p.ID)
		assert.Equal(t, "none", res.Action)
		assert.Equal(t, "echo", res.Phase)
		assert.Equal(t, 0, s.countRows("SELECT count(*) FROM orders"))
	})

	s.Run("最低数に達すれば支払い済み注文を作り生産開始", func() {
		t := s.T()
		p := s.echoProduct(2)
		_, a := s.customer("echo-a@example.com")
		_, b := s.customer("echo-b@example.com")
		s.escrowRequest(a, p.ID)
		s.escrowRequest(b, p.ID)
		s.matureEscrow(p.ID)

		res := s.processEscrow(s.admin(), p.ID)
		assert.Equal(t, "production_started", res.Action)
		assert.Equal(t, 2, res.Processed)
		assert.Equal(t, 2, res.OrdersCreated)
		assert.Equal(t, "ended", res.Phase)

		phase, _, production := s.productState(p.ID)
		assert.Equal(t, "ended", phase)
		assert.Equal(t, "started", production)
		assert.Equal(t, 2, s.countRows("SELECT count(*) FROM orders WHERE phase = 'echo' AND payment_status = 'paid'"))
		assert.Equal(t, 2, s.countRows("SELECT count(*) FROM echo_requests WHERE payment_status = 'released' AND order_id IS NOT NULL"))
	})

	s.Run("最低数に届かなければ全額返金", func() {
		t := s.T()
		p := s.echoProduct(2)
		_, token := s.customer("refund@example.com")
		s.escrowRequest(token, p.ID)
		s.matureEscrow(p.ID)

		res := s.processEscrow(s.admin(), p.ID)
		assert.Equal(t, "refunds_processed", res.Action)
		assert.Equal(t, 1, res.Processed)
		assert.Equal(t, 0, res.OrdersCreated)

		phase, _, production := s.productState(p.ID)
		assert.Equal(t, "echo", phase)
		assert.Equal(t, "pending", production)
		assert.Equal(t, 0, s.countRows("SELECT count(*) FROM orders"))
		assert.Equal(t, 1, s.countRows("SELECT count(*) FROM echo_requests WHERE payment_status = 'refunded'"))
	})

	s.Run("返金後も新しいリクエストで最低数に達すれば生産開始", func() {
		t := s.T()
		p := s.echoProduct(2)
		_, first := s.customer("refund-first@example.com")
		s.escrowRequest(first, p.ID)
		s.matureEscrow(p.ID)

		res := s.processEscrow(s.admin(), p.ID)
		require.Equal(t, "refunds_processed", res.Action)
		require.Equal(t, "echo", res.Phase)

		_, a := s.customer("refund-later-a@example.com")
		_, b := s.customer("refund-later-b@example.com")
		s.escrowRequest(a, p.ID)
		s.escrowRequest(b, p.ID)
		s.matureEscrow(p.ID)

		res = s.processEscrow(s.admin(), p.ID)
		assert.Equal(t, "production_started", res.Action)
		assert.Equal(t, 2, res.Processed)
		assert.Equal(t, 2, res.OrdersCreated)
		assert.Equal(t, "ended", res.Phase)

		phase, _, production := s.productState(p.ID)
		assert.Equal(t, "ended", phase)
		assert.Equal(t, "started", production)
	})

	s.Run("同じバリアントへの重複リクエストは拒否", func() {
		t := s.T()
		p := s.echoProduct(2)
		_, token := s.customer("dup@example.com")
		s.escrowRequest(token, p.ID)

		w := httphelper.PerformRequest(t, s.Router, http.MethodPost, echoRequestsURL,
			request.SubmitEchoRequest{ProductID: p.ID}, token)
		assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})
}
