//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"limited-drop-api/internal/domain/user"
	"limited-drop-api/internal/handler/api"
	reqdto "limited-drop-api/internal/handler/dto/request"
	resdto "limited-drop-api/internal/handler/dto/response"
	"limited-drop-api/internal/handler/httperr"
	"limited-drop-api/internal/handler/middleware"
	"limited-drop-api/internal/pkg/errs"
	"limited-drop-api/internal/usecase/commands"
	"limited-drop-api/internal/usecase/queries"
	"limited-drop-api/tests/common/httptest"
	"limited-drop-api/tests/common/testutil"
	commandsmock "limited-drop-api/tests/mock/commands"
	queriesmock "limited-drop-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeAuth authenticates any bearer token. "admin-token" gets the admin role.
func fakeAuth(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
			return
		}
		role := user.RoleCustomer
		if header == "Bearer admin-token" {
			role = user.RoleAdmin
		}
		c.Set("user_id", userID)
		c.Set("user_role", role)
		c.Next()
	}
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	_ = middleware.RegisterValidators()
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	return r
}

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCheckout *commandsmock.MockCheckoutCommands
	mockOrders   *commandsmock.MockOrderCommands
	mockQueries  *queriesmock.MockOrderQueries
	userID       uuid.UUID
}

func (s *OrderHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCheckout = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.mockOrders = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.userID = uuid.New()

	h := api.NewOrderHandler(s.mockCheckout, s.mockOrders, s.mockQueries)
	auth := fakeAuth(s.userID)
	s.router.POST("/api/checkout", auth, h.Checkout)
	s.router.GET("/api/orders/:id", auth, h.Get)
	s.router.POST("/api/orders/:id/cancel", auth, h.Cancel)
	s.router.GET("/api/orders/:id/certificate", auth, h.Certificate)
	s.router.POST("/api/payments/confirm", auth, h.ConfirmPayment)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) checkoutBody() reqdto.CheckoutRequest {
	return reqdto.CheckoutRequest{Items: []reqdto.CheckoutItemRequest{
		{ProductID: uuid.New(), VariantRef: "indigo", Quantity: 1},
	}}
}

// ================================================================================
// TestCheckout
// ================================================================================

func (s *OrderHandlerTestSuite) TestCheckout() {
	url := "/api/checkout"
	body := s.checkoutBody()
	result := &commands.CreateOrderResult{OrderID: uuid.New(), OrderNumber: "LD-20250301-AB12", Total: 46500, PaymentRequired: true}

	s.Run("success: 201 with Location", func() {
		s.mockCheckout.EXPECT().CreateOrder(gomock.Any(), body.ToCommand(), s.userID, (*uuid.UUID)(nil)).Return(result, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "customer-token")

		var got resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
		s.Equal(result.OrderID, got.OrderID)
		s.Equal(int64(46500), got.Total)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/orders/" + result.OrderID.String()})
	})

	s.Run("replay: 200 with replay header", func() {
		key := uuid.New()
		replayed := *result
		replayed.IsReplayed = true
		s.mockCheckout.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), s.userID, &key).Return(&replayed, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, body, "customer-token",
			map[string]string{"Idempotency-Key": key.String()})

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Idempotent-Replayed": "true"})
	})

	s.Run("error: malformed idempotency key", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, body, "customer-token",
			map[string]string{"Idempotency-Key": "not-a-uuid"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "idempotency key")
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "quantity 0", mutate: func(m map[string]any) {
				m["items"] = []map[string]any{{"productId": uuid.NewString(), "quantity": 0}}
			}},
			{name: "quantity 11", mutate: func(m map[string]any) {
				m["items"] = []map[string]any{{"productId": uuid.NewString(), "quantity": 11}}
			}},
			{name: "missing productId", mutate: func(m map[string]any) {
				m["items"] = []map[string]any{{"quantity": 1}}
			}},
			{name: "items not a list", mutate: testutil.Field("items", "x")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), body, tc.mutate), "customer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name   string
			err    error
			status int
			msg    string
		}{
			{name: "sales cap", err: errs.Wrap(errs.SalesCapReached(0), "allocate"), status: http.StatusConflict, msg: "sales cap reached"},
			{name: "insufficient stock", err: errs.InsufficientStock(1), status: http.StatusConflict, msg: "insufficient stock"},
			{name: "phase", err: errs.Wrapf(errs.ErrPhaseNotPurchasable, "phase %s", "waitlist"), status: http.StatusUnprocessableEntity, msg: "does not allow"},
			{name: "unknown product", err: errs.Mark(errors.New("no rows"), errs.ErrProductNotFound), status: http.StatusNotFound, msg: "product not found"},
			{name: "idempotency in flight", err: errs.ErrIdempotencyInProgress, status: http.StatusConflict, msg: "in progress"},
			{name: "integrity failure", err: errs.Mark(errors.New("commit stock"), errs.ErrTransactionFailed), status: http.StatusServiceUnavailable, msg: "retry"},
			{name: "validation", err: errs.Mark(errors.New("quantity must be positive"), errs.ErrDomainValidation), status: http.StatusBadRequest, msg: "quantity must be positive"},
			{name: "unexpected", err: errors.New("database error"), status: http.StatusInternalServerError, msg: "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCheckout.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "customer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
			})
		}
	})

	s.Run("error: availability carries remaining", func() {
		s.mockCheckout.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errs.SalesCapReached(1))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "customer-token")

		var got struct {
			Detail struct {
				Remaining int `json:"remaining"`
			} `json:"detail"`
		}
		httptest.DecodeBody(s.T(), rec, &got)
		s.Equal(http.StatusConflict, rec.Code)
		s.Equal(1, got.Detail.Remaining)
	})
}

// ================================================================================
// TestGet / TestCertificate
// ================================================================================

func (s *OrderHandlerTestSuite) TestGet() {
	id := uuid.New()

	s.Run("success", func() {
		view := &queries.OrderView{ID: id, OrderNumber: "LD-20250301-AB12", Status: "pending", PaymentStatus: "pending",
			Items: []queries.OrderItemView{{ProductID: uuid.New(), Quantity: 1, UnitPrice: 45000, LineTotal: 45000}}}
		s.mockQueries.EXPECT().Get(gomock.Any(), id, s.userID, user.RoleCustomer).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders/"+id.String(), nil, "customer-token")

		var got resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(id, got.ID)
		s.Require().Len(got.Items, 1)
		s.Equal(int64(45000), got.Items[0].LineTotal)
	})

	s.Run("forbidden", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), id, s.userID, user.RoleCustomer).Return(nil, errs.ErrForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders/"+id.String(), nil, "customer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "forbidden")
	})

	s.Run("invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders/abc", nil, "customer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *OrderHandlerTestSuite) TestCertificate() {
	id := uuid.New()

	s.Run("success", func() {
		view := &queries.CertificateView{OrderID: id, SerialNumber: "OG-1A2B-0007", PieceNumber: 7, Phase: "originals"}
		s.mockQueries.EXPECT().Certificate(gomock.Any(), id, s.userID, user.RoleAdmin).Return(view, nil)
		s.mockOrders.EXPECT().MarkCertificateIssued(gomock.Any(), id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders/"+id.String()+"/certificate", nil, "admin-token")

		var got resdto.CertificateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal("OG-1A2B-0007", got.SerialNumber)
		s.Equal(7, got.PieceNumber)
	})

	s.Run("already recorded certificate is not marked again", func() {
		view := &queries.CertificateView{OrderID: id, SerialNumber: "OG-1A2B-0007", PieceNumber: 7, Recorded: true}
		s.mockQueries.EXPECT().Certificate(gomock.Any(), id, s.userID, user.RoleCustomer).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders/"+id.String()+"/certificate", nil, "customer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("marking failure still serves the certificate", func() {
		view := &queries.CertificateView{OrderID: id, SerialNumber: "OG-1A2B-0002", PieceNumber: 2}
		s.mockQueries.EXPECT().Certificate(gomock.Any(), id, s.userID, user.RoleCustomer).Return(view, nil)
		s.mockOrders.EXPECT().MarkCertificateIssued(gomock.Any(), id).Return(errors.New("connection reset"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders/"+id.String()+"/certificate", nil, "customer-token")

		var got resdto.CertificateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(2, got.PieceNumber)
	})

	s.Run("unpaid", func() {
		s.mockQueries.EXPECT().Certificate(gomock.Any(), id, s.userID, user.RoleCustomer).Return(nil, errs.ErrCertificateUnavailable)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders/"+id.String()+"/certificate", nil, "customer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "paid order")
	})
}

// ================================================================================
// TestCancel / TestConfirmPayment
// ================================================================================

func (s *OrderHandlerTestSuite) TestCancel() {
	id := uuid.New()

	s.Run("success: 204", func() {
		s.mockOrders.EXPECT().CancelOrder(gomock.Any(), id, s.userID, user.RoleCustomer).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/orders/"+id.String()+"/cancel", nil, "customer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("not pending: 422", func() {
		s.mockOrders.EXPECT().CancelOrder(gomock.Any(), id, s.userID, user.RoleCustomer).Return(errs.ErrOrderNotPending)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/orders/"+id.String()+"/cancel", nil, "customer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "not pending")
	})
}

func (s *OrderHandlerTestSuite) TestConfirmPayment() {
	orderID := uuid.New()
	body := reqdto.ConfirmPaymentRequest{OrderID: orderID, PaymentStatus: "paid"}

	s.Run("success", func() {
		s.mockOrders.EXPECT().ConfirmPayment(gomock.Any(), commands.ConfirmPaymentRequest{OrderID: orderID, PaymentStatus: "paid"}).
			Return(&commands.PaymentResult{OrderID: orderID, Status: "confirmed", PaymentStatus: "paid"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/payments/confirm", body, "admin-token")

		var got resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal("confirmed", got.Status)
		s.False(got.Replayed)
	})

	s.Run("invalid status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/payments/confirm",
			testutil.DtoMap(s.T(), body, testutil.Field("paymentStatus", "refunded")), "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("missing reservation is retryable", func() {
		s.mockOrders.EXPECT().ConfirmPayment(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("reservation missing"), errs.ErrTransactionFailed))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/payments/confirm", body, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "")
	})
}
