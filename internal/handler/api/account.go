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

type AccountHandler struct {
	ownerTags commands.OwnerTagCommands
	settings  commands.SettingsCommands
	q         queries.SettingsQueries
}

func NewAccountHandler(ownerTags commands.OwnerTagCommands, settings commands.SettingsCommands, q queries.SettingsQueries) *AccountHandler {
	return &AccountHandler{ownerTags: ownerTags, settings: settings, q: q}
}

// @Summary Assign owner tag
// @Tags owners
// @Produce json
// @Security BearerAuth
// @Success 201 {object} resdto.OwnerTagResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/me/owner-tag [post]
func (h *AccountHandler) AssignOwnerTag(c *gin.Context) {
	userID, _, ok := identity(c)
	if !ok {
		return
	}
	tag, err := h.ownerTags.Assign(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.OwnerTagResponse{OwnerTag: tag})
}

// @Summary Verify owner tag
// @Tags owners
// @Produce json
// @Param tag query string true "Owner tag (XXX-NN-NN)"
// @Success 200 {object} resdto.OwnerVerificationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/verify [get]
func (h *AccountHandler) VerifyOwner(c *gin.Context) {
	view, err := h.q.VerifyOwner(c.Request.Context(), c.Query("tag"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOwnerVerification(view))
}

// @Summary Contact settings
// @Tags settings
// @Produce json
// @Success 200 {object} resdto.ContactSettingsResponse
// @Router /api/settings/contact [get]
func (h *AccountHandler) Contact(c *gin.Context) {
	view, err := h.q.Contact(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ContactSettingsResponse{WhatsAppNumber: view.WhatsAppNumber})
}

// @Summary Update contact settings
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateContactRequest true "Contact number"
// @Success 200 {object} resdto.ContactSettingsResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/settings/contact [put]
func (h *AccountHandler) UpdateContact(c *gin.Context) {
	var req reqdto.UpdateContactRequest
	if !bindJSON(c, &req) {
		return
	}
	number, err := h.settings.UpdateContact(c.Request.Context(), req.WhatsAppNumber)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ContactSettingsResponse{WhatsAppNumber: number})
}
