//go:build e2e

package drop_test

import (
	"encoding/json"
	"net/http"
	"sync"

	"limited-drop-api/internal/handler/dto/request"
	"limited-drop-api/internal/handler/dto/response"
	httphelper "limited-drop-api/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *DropSuite) TestCheckoutConcurrency() {
	s.Run("同時購入でも在庫を超えて確保しない", func() {
		t := s.T()
		const buyers = 20
		const stock = 5

		p := s.originals(100, stock)

		tokens := make([]string, buyers)
		for i := range tokens {
			_, tokens[i] = s.customer(uuid.NewString()[:8] + "@example.com")
		}

		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			start    = make(chan struct{})
			statuses = map[int]int{}
		)
		for _, token := range tokens {
			wg.Add(1)
			go func(token string) {
				defer wg.Done()
				<-start
				w := s.checkout(token, p.ID, 1)
				mu.Lock()
				statuses[w.Code]++
				mu.Unlock()
			}(token)
		}
		close(start)
		wg.Wait()

		assert.Equal(t, stock, statuses[http.StatusCreated], "statuses: %v", statuses)
		assert.Equal(t, buyers-stock, statuses[http.StatusConflict], "statuses: %v", statuses)
		assert.Equal(t, stock, s.reservedStock(p.VariantIDs[0]))

		_, allocated, _ := s.productState(p.ID)
		assert.Equal(t, stock, allocated)
		assert.Equal(t, stock, s.countRows("SELECT count(*) FROM orders WHERE status = 'pending'"))
	})

	s.Run("同時購入でも販売上限を超えない", func() {
		t := s.T()
		const buyers = 12
		const salesCap = 3
		const stock = 10

		p := s.originals(salesCap, stock)

		tokens := make([]string, buyers)
		for i := range tokens {
			_, tokens[i] = s.customer(uuid.NewString()[:8] + "@example.com")
		}

		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			start    = make(chan struct{})
			statuses = map[int]int{}
			messages []string
		)
		for _, token := range tokens {
			wg.Add(1)
			go func(token string) {
				defer wg.Done()
				<-start
				w := s.checkout(token, p.ID, 1)
				mu.Lock()
				defer mu.Unlock()
				statuses[w.Code]++
				if w.Code == http.StatusConflict {
					var env httphelper.ErrorEnvelope
					if err := json.Unmarshal(w.Body.Bytes(), &env); err == nil {
						messages = append(messages, env.Error.Message)
					}
				}
			}(token)
		}
		close(start)
		wg.Wait()

		assert.Equal(t, salesCap, statuses[http.StatusCreated], "statuses: %v", statuses)
		assert.Equal(t, buyers-salesCap, statuses[http.StatusConflict], "statuses: %v", statuses)
		require.Len(t, messages, buyers-salesCap)
		for _, msg := range messages {
			assert.Contains(t, msg, "sales cap reached")
		}

		phase, allocated, _ := s.productState(p.ID)
		assert.Equal(t, "ended", phase)
		assert.Equal(t, salesCap, allocated)
		assert.Equal(t, salesCap, s.reservedStock(p.VariantIDs[0]))
	})
}

func (s *DropSuite) TestOriginalsCap() {
	s.Run("上限到達で販売終了し生産開始", func() {
		t := s.T()
		p := s.originals(2, 5)
		_, first := s.customer("first@example.com")
		_, second := s.customer("second@example.com")
		_, late := s.customer("late@example.com")

		s.mustCheckout(first, p.ID, 1)
		s.mustCheckout(second, p.ID, 1)

		phase, allocated, production := s.productState(p.ID)
		assert.Equal(t, "ended", phase)
		assert.Equal(t, 2, allocated)
		assert.Equal(t, "started", production)

		w := s.checkout(late, p.ID, 1)
		httphelper.AssertUnavailable(t, w, 0)
	})

	s.Run("残り枠を超える数量は残数付きで拒否", func() {
		t := s.T()
		p := s.originals(3, 10)
		_, a := s.customer("a@example.com")
		_, b := s.customer("b@example.com")

		s.mustCheckout(a, p.ID, 2)

		w := s.checkout(b, p.ID, 2)
		httphelper.AssertUnavailable(t, w, 1)

		phase, allocated, _ := s.productState(p.ID)
		assert.Equal(t, "originals", phase)
		assert.Equal(t, 2, allocated)
		assert.Equal(t, 2, s.reservedStock(p.VariantIDs[0]))
	})

	s.Run("在庫不足は残数付きで拒否", func() {
		t := s.T()
		p := s.originals(100, 1)
		_, token := s.customer("stock@example.com")

		w := s.checkout(token, p.ID, 2)
		httphelper.AssertUnavailable(t, w, 1)

		_, allocated, _ := s.productState(p.ID)
		assert.Equal(t, 0, allocated)
	})
}

func (s *DropSuite) TestCheckoutIdempotency() {
	s.Run("同じキーの再送は同じ注文を返す", func() {
		t := s.T()
		p := s.originals(10, 10)
		_, token := s.customer("replay@example.com")

		body := request.CheckoutRequest{
			Items: []request.CheckoutItemRequest{{ProductID: p.ID, Quantity: 1}},
		}
		headers := map[string]string{idempotencyHdr: uuid.NewString()}

		w1 := httphelper.PerformRequestWithHeaders(t, s.Router, http.MethodPost, checkoutURL, body, token, headers)
		require.Equal(t, http.StatusCreated, w1.Code, w1.Body.String())
		w2 := httphelper.PerformRequestWithHeaders(t, s.Router, http.MethodPost, checkoutURL, body, token, headers)
		require.Equal(t, http.StatusOK, w2.Code, w2.Body.String())
		assert.Equal(t, "true", w2.Header().Get("Idempotent-Replayed"))

		var first, second response.CheckoutResponse
		httphelper.DecodeBody(t, w1, &first)
		httphelper.DecodeBody(t, w2, &second)
		assert.Equal(t, first.OrderID, second.OrderID)

		_, allocated, _ := s.productState(p.ID)
		assert.Equal(t, 1, allocated)
	})

	s.Run("同じキーで別内容は拒否", func() {
		t := s.T()
		p := s.originals(10, 10)
		_, token := s.customer("mismatch@example.com")
		headers := map[string]string{idempotencyHdr: uuid.NewString()}

		one := request.CheckoutRequest{Items: []request.CheckoutItemRequest{{ProductID: p.ID, Quantity: 1}}}
		two := request.CheckoutRequest{Items: []request.CheckoutItemRequest{{ProductID: p.ID, Quantity: 2}}}

		w := httphelper.PerformRequestWithHeaders(t, s.Router, http.MethodPost, checkoutURL, one, token, headers)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		w = httphelper.PerformRequestWithHeaders(t, s.Router, http.MethodPost, checkoutURL, two, token, headers)
		assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})
}

func (s *DropSuite) TestCancelReleasesAllocation() {
	s.Run("キャンセルで枠と在庫が戻る", func() {
		t := s.T()
		p := s.originals(5, 5)
		_, token := s.customer("cancel@example.com")

		order := s.mustCheckout(token, p.ID, 2)

		w := httphelper.PerformRequest(t, s.Router, http.MethodPost, url(cancelURL, order.OrderID), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		_, allocated, _ := s.productState(p.ID)
		assert.Equal(t, 0, allocated)
		assert.Equal(t, 0, s.reservedStock(p.VariantIDs[0]))

		w = httphelper.PerformRequest(t, s.Router, http.MethodPost, url(cancelURL, order.OrderID), nil, token)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})
}

func (s *DropSuite) TestCertificate() {
	s.Run("注文順に通し番号が振られる", func() {
		t := s.T()
		p := s.originals(10, 10)
		_, buyer := s.customer("collector@example.com")
		adminToken := s.admin()

		first := s.mustCheckout(buyer, p.ID, 1)
		second := s.mustCheckout(buyer, p.ID, 1)

		w := httphelper.PerformRequest(t, s.Router, http.MethodGet, url(certificateURL, first.OrderID), nil, buyer)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

		for _, id := range []uuid.UUID{first.OrderID, second.OrderID} {
			w := httphelper.PerformRequest(t, s.Router, http.MethodPost, confirmURL,
				request.ConfirmPaymentRequest{OrderID: id, PaymentStatus: "paid"}, adminToken)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		}

		var certs []response.CertificateResponse
		for _, id := range []uuid.UUID{first.OrderID, second.OrderID} {
			w := httphelper.PerformRequest(t, s.Router, http.MethodGet, url(certificateURL, id), nil, buyer)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			var cert response.CertificateResponse
			httphelper.DecodeBody(t, w, &cert)
			certs = append(certs, cert)
		}

		assert.Equal(t, 1, certs[0].PieceNumber)
		assert.Equal(t, 2, certs[1].PieceNumber)
		assert.NotEqual(t, certs[0].SerialNumber, certs[1].SerialNumber)
		assert.Equal(t, "collector@example.com", certs[0].CustomerEmail)

		w = httphelper.PerformRequest(t, s.Router, http.MethodGet, url(orderURL, first.OrderID), nil, buyer)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var order response.OrderResponse
		httphelper.DecodeBody(t, w, &order)
		assert.Equal(t, "paid", order.PaymentStatus)
		assert.True(t, order.CoaGenerated)
	})
}
