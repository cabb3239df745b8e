package api

import (
	"net/http"

	resdto "limited-drop-api/internal/handler/dto/response"
	"limited-drop-api/internal/handler/httperr"
	"limited-drop-api/internal/handler/middleware"
	"limited-drop-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	q queries.ProductQueries
}

func NewProductHandler(q queries.ProductQueries) *ProductHandler {
	return &ProductHandler{q: q}
}

// @Summary Stock remaining
// @Description Sales slots left under the current phase cap
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.StockResponse
// @Failure 404 {object} httperr.Response
// @Router /api/products/{id}/stock [get]
func (h *ProductHandler) Stock(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.Stock(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStockView(view))
}

// @Summary Price quote
// @Description Price for the caller in the product's current phase. Priority club applies when authenticated
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 404 {object} httperr.Response
// @Router /api/products/{id}/quote [get]
func (h *ProductHandler) Quote(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.Quote(c.Request.Context(), id, middleware.OptionalUserID(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}
