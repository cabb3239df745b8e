package api

import (
	"net/http"

	reqdto "limited-drop-api/internal/handler/dto/request"
	resdto "limited-drop-api/internal/handler/dto/response"
	"limited-drop-api/internal/handler/httperr"
	"limited-drop-api/internal/handler/middleware"
	"limited-drop-api/internal/usecase/commands"
	"limited-drop-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WaitlistHandler struct {
	cmds commands.WaitlistCommands
}

func NewWaitlistHandler(cmds commands.WaitlistCommands) *WaitlistHandler {
	return &WaitlistHandler{cmds: cmds}
}

// @Summary Join waitlist
// @Description Guests must send email and phone
// @Tags waitlist
// @Accept json
// @Produce json
// @Param request body reqdto.JoinWaitlistRequest true "Waitlist entry"
// @Success 201 {object} resdto.WaitlistJoinResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/waitlist [post]
func (h *WaitlistHandler) Join(c *gin.Context) {
	var req reqdto.JoinWaitlistRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.Join(c.Request.Context(), req.ToCommand(), middleware.OptionalUserID(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromWaitlistJoin(result))
}

type EchoHandler struct {
	cmds commands.EchoCommands
	q    queries.EchoQueries
}

func NewEchoHandler(cmds commands.EchoCommands, q queries.EchoQueries) *EchoHandler {
	return &EchoHandler{cmds: cmds, q: q}
}

// @Summary Submit echo request
// @Tags echo
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitEchoRequest true "Echo request"
// @Success 201 {object} resdto.EchoSubmissionResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/echo/requests [post]
func (h *EchoHandler) Submit(c *gin.Context) {
	var req reqdto.SubmitEchoRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.SubmitRequest(c.Request.Context(), req.ToCommand(), middleware.OptionalUserID(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromEchoSubmission(result))
}

// @Summary Confirm escrow payment
// @Tags echo
// @Accept json
// @Param id path string true "Echo request ID"
// @Param request body reqdto.ConfirmEscrowRequest true "Payment intent"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/echo/requests/{id}/escrow [post]
func (h *EchoHandler) ConfirmEscrow(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ConfirmEscrowRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.ConfirmEscrow(c.Request.Context(), id, req.PaymentIntentID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Echo status
// @Tags echo
// @Produce json
// @Param productId query string true "Product ID"
// @Success 200 {object} resdto.EchoStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/echo/status [get]
func (h *EchoHandler) Status(c *gin.Context) {
	productID, err := uuid.Parse(c.Query("productId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid productId", nil)
		return
	}
	view, err := h.q.Status(c.Request.Context(), productID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEchoStatusView(view))
}

// @Summary Process escrow
// @Description Releases or refunds every echo request whose window has elapsed
// @Tags echo
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ProcessEscrowRequest true "Product"
// @Success 200 {object} resdto.EscrowResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/echo/process [post]
func (h *EchoHandler) Process(c *gin.Context) {
	var req reqdto.ProcessEscrowRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.ProcessEscrow(c.Request.Context(), req.ProductID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEscrowResult(result))
}

type PressHandler struct {
	cmds commands.PressCommands
}

func NewPressHandler(cmds commands.PressCommands) *PressHandler {
	return &PressHandler{cmds: cmds}
}

// @Summary Submit press request
// @Tags press
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubmitPressRequest true "Press request"
// @Success 201 {object} resdto.PressSubmissionResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/press/requests [post]
func (h *PressHandler) Submit(c *gin.Context) {
	userID, _, ok := identity(c)
	if !ok {
		return
	}
	var req reqdto.SubmitPressRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.Submit(c.Request.Context(), req.ToCommand(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPressSubmission(result))
}

// @Summary Decide press request
// @Tags press
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Press request ID"
// @Param request body reqdto.PressDecisionRequest true "Decision"
// @Success 200 {object} resdto.PressDecisionResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/press/requests/{id}/decision [post]
func (h *PressHandler) Decide(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	approverID, _, ok := identity(c)
	if !ok {
		return
	}
	var req reqdto.PressDecisionRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.Decide(c.Request.Context(), id, req.Decision, approverID, req.Reason)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPressDecision(result))
}

// @Summary Pay press request
// @Tags press
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PressPaymentRequest true "Payment"
// @Success 201 {object} resdto.PressPaymentResponse
// @Failure 422 {object} httperr.Response
// @Router /api/press/payments [post]
func (h *PressHandler) Pay(c *gin.Context) {
	userID, _, ok := identity(c)
	if !ok {
		return
	}
	var req reqdto.PressPaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.Pay(c.Request.Context(), req.PaymentLinkID, req.PaymentIntentID, userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPressPayment(result))
}

type PhaseHandler struct {
	cmds commands.PhaseCommands
}

func NewPhaseHandler(cmds commands.PhaseCommands) *PhaseHandler {
	return &PhaseHandler{cmds: cmds}
}

// @Summary Production trigger
// @Description Named phase trigger: waitlist_to_originals, originals_cap_reached, echo_threshold_met
// @Tags phases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PhaseTriggerRequest true "Trigger"
// @Success 200 {object} resdto.TriggerResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/production/trigger [post]
func (h *PhaseHandler) Trigger(c *gin.Context) {
	_, role, ok := identity(c)
	if !ok {
		return
	}
	var req reqdto.PhaseTriggerRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.Trigger(c.Request.Context(), req.ProductID, req.Trigger, role)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTriggerResult(result))
}

// @Summary Set product phase
// @Tags phases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.SetPhaseRequest true "Target phase"
// @Success 200 {object} resdto.TriggerResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/admin/products/{id}/phase [put]
func (h *PhaseHandler) SetPhase(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.SetPhaseRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.SetPhase(c.Request.Context(), id, req.Phase)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTriggerResult(result))
}
