package api

import (
	"net/http"

	reqdto "limited-drop-api/internal/handler/dto/request"
	resdto "limited-drop-api/internal/handler/dto/response"
	"limited-drop-api/internal/handler/httperr"
	"limited-drop-api/internal/usecase/commands"
	"limited-drop-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cmds commands.CartCommands
	q    queries.CartQueries
}

func NewCartHandler(cmds commands.CartCommands, q queries.CartQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q}
}

// @Summary Get cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartResponse
// @Router /api/cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	userID, _, ok := identity(c)
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Add or update a cart item
// @Description Adds the variant to the cart or replaces its quantity. Originals phase only
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddCartItemRequest true "Cart item"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, _, ok := identity(c)
	if !ok {
		return
	}
	var req reqdto.AddCartItemRequest
	if !bindJSON(c, &req) {
		return
	}
	if _, err := h.cmds.AddItem(c.Request.Context(), req.ToCommand(), userID); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.Get(c)
}

// @Summary Remove a cart item
// @Tags cart
// @Security BearerAuth
// @Param id path string true "Cart item ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, _, ok := identity(c)
	if !ok {
		return
	}
	if err := h.cmds.RemoveItem(c.Request.Context(), id, userID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Clear cart
// @Tags cart
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /api/cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	userID, _, ok := identity(c)
	if !ok {
		return
	}
	if err := h.cmds.Clear(c.Request.Context(), userID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
