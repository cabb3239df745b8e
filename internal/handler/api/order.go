package api

import (
	"log/slog"
	"net/http"

	reqdto "limited-drop-api/internal/handler/dto/request"
	resdto "limited-drop-api/internal/handler/dto/response"
	"limited-drop-api/internal/handler/httperr"
	"limited-drop-api/internal/usecase/commands"
	"limited-drop-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	checkout commands.CheckoutCommands
	cmds     commands.OrderCommands
	q        queries.OrderQueries
}

func NewOrderHandler(checkout commands.CheckoutCommands, cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{checkout: checkout, cmds: cmds, q: q}
}

// @Summary Checkout
// @Description Reserve stock and a sales slot for every line and create a pending order
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key (uuid)"
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 201 {object} resdto.CheckoutResponse
// @Success 200 {object} resdto.CheckoutResponse "Replayed idempotent request"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/checkout [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	userID, _, ok := identity(c)
	if !ok {
		return
	}
	key, ok := idempotencyKey(c)
	if !ok {
		return
	}
	var req reqdto.CheckoutRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.checkout.CreateOrder(c.Request.Context(), req.ToCommand(), userID, key)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
		c.Header("Idempotent-Replayed", "true")
	}
	c.Header("Location", "/api/orders/"+result.OrderID.String())
	c.JSON(status, resdto.FromCreateOrderResult(result))
}

// @Summary Get order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, role, ok := identity(c)
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), id, userID, role)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary Cancel order
// @Description Cancel a pending order and release its reservations
// @Tags orders
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, role, ok := identity(c)
	if !ok {
		return
	}
	if err := h.cmds.CancelOrder(c.Request.Context(), id, userID, role); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Confirm payment
// @Description Payment gateway callback. paid commits the reservation, failed releases it
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ConfirmPaymentRequest true "Payment outcome"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/payments/confirm [post]
func (h *OrderHandler) ConfirmPayment(c *gin.Context) {
	var req reqdto.ConfirmPaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.ConfirmPayment(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentResult(result))
}

// @Summary Certificate of authenticity
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.CertificateResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/orders/{id}/certificate [get]
func (h *OrderHandler) Certificate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, role, ok := identity(c)
	if !ok {
		return
	}
	view, err := h.q.Certificate(c.Request.Context(), id, userID, role)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if !view.Recorded {
		// best effort, the certificate is still served
		if err := h.cmds.MarkCertificateIssued(c.Request.Context(), id); err != nil {
			slog.WarnContext(c.Request.Context(), "failed to mark certificate generated",
				"order_id", id.String(),
				"error", err.Error())
		}
	}
	c.JSON(http.StatusOK, resdto.FromCertificateView(view))
}
