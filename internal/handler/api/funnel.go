package api

import (
	"errors"
	"net/http"
	"strconv"

	"ticket-monarch/internal/domain/booking"
	"ticket-monarch/internal/domain/checkout"
	reqdto "ticket-monarch/internal/handler/dto/request"
	resdto "ticket-monarch/internal/handler/dto/response"
	"ticket-monarch/internal/handler/httperr"
	"ticket-monarch/internal/handler/middleware"
	"ticket-monarch/internal/pkg/errs"
	"ticket-monarch/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FunnelHandler struct {
	funnel usecase.FunnelUseCase
}

func NewFunnelHandler(funnel usecase.FunnelUseCase) *FunnelHandler {
	return &FunnelHandler{funnel: funnel}
}

// @Summary List concerts
// @Description Home page concert list
// @Tags funnel
// @Produce json
// @Success 200 {array} resdto.ConcertResponse
// @Router /api/concerts [get]
func (h *FunnelHandler) ListConcerts(c *gin.Context) {
	visitorID, ok := visitor(c)
	if !ok {
		return
	}
	res, err := resdto.FromConcerts(h.funnel.Home(c.Request.Context(), visitorID))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Seat map
// @Description Sections and prices of a concert
// @Tags funnel
// @Produce json
// @Param id path int true "Concert ID"
// @Success 200 {object} resdto.SeatMapResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/concerts/{id}/sections [get]
func (h *FunnelHandler) SeatMap(c *gin.Context) {
	visitorID, ok := visitor(c)
	if !ok {
		return
	}
	concertID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid concert id", nil)
		return
	}

	seatMap, err := h.funnel.SeatMap(c.Request.Context(), visitorID, concertID)
	if err != nil {
		abortFunnelError(c, err)
		return
	}
	res, err := resdto.FromSeatMap(seatMap)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Select section
// @Description Store the booking selection and continue to checkout
// @Tags funnel
// @Accept json
// @Produce json
// @Param request body reqdto.SelectSectionRequest true "Selection"
// @Success 201 {object} resdto.SelectionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/funnel/selection [post]
func (h *FunnelHandler) SelectSection(c *gin.Context) {
	visitorID, ok := visitor(c)
	if !ok {
		return
	}
	var req reqdto.SelectSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	sel, err := h.funnel.SelectSection(c.Request.Context(), visitorID, req.ConcertID, req.Section)
	if err != nil {
		abortFunnelError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSelection(sel))
}

// @Summary Open checkout
// @Description Order summary and current checkout form
// @Tags funnel
// @Produce json
// @Success 200 {object} resdto.CheckoutPageResponse
// @Failure 409 {object} httperr.Response
// @Router /api/funnel/checkout [get]
func (h *FunnelHandler) OpenCheckout(c *gin.Context) {
	visitorID, ok := visitor(c)
	if !ok {
		return
	}
	page, err := h.funnel.OpenCheckout(c.Request.Context(), visitorID)
	if err != nil {
		abortFunnelError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutPage(page))
}

// @Summary Change checkout field
// @Description Apply one keystroke to a checkout field
// @Tags funnel
// @Accept json
// @Produce json
// @Param request body reqdto.ChangeFieldRequest true "Field change"
// @Success 200 {object} resdto.CheckoutFormResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/funnel/checkout/fields [patch]
func (h *FunnelHandler) ChangeField(c *gin.Context) {
	visitorID, ok := visitor(c)
	if !ok {
		return
	}
	var req reqdto.ChangeFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	field, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown field", nil)
		return
	}

	snap, err := h.funnel.ChangeField(c.Request.Context(), visitorID, field, req.Value)
	if err != nil {
		abortFunnelError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSnapshot(*snap))
}

// @Summary Submit checkout
// @Description Validate the form and submit it to the order backend
// @Tags funnel
// @Produce json
// @Success 200 {object} resdto.SubmitResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/funnel/checkout [post]
func (h *FunnelHandler) Submit(c *gin.Context) {
	visitorID, ok := visitor(c)
	if !ok {
		return
	}
	snap, err := h.funnel.Submit(c.Request.Context(), visitorID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrValidationFailed):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Please correct the errors in the form", resdto.FromSnapshot(*snap))
		case errors.Is(err, errs.ErrSubmitInProgress):
			httperr.AbortWithError(c, http.StatusConflict, err, "Checkout is already being processed", resdto.FromSnapshot(*snap))
		default:
			abortFunnelError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromSubmit(snap))
}

// @Summary Confirmation
// @Description Confirmation page for the last completed order
// @Tags funnel
// @Produce json
// @Success 200 {object} resdto.ConfirmationResponse
// @Failure 409 {object} httperr.Response
// @Router /api/funnel/confirmation [get]
func (h *FunnelHandler) Confirmation(c *gin.Context) {
	visitorID, ok := visitor(c)
	if !ok {
		return
	}
	order, err := h.funnel.Confirmation(c.Request.Context(), visitorID)
	if err != nil {
		abortFunnelError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderDetails(order))
}

// @Summary Return home
// @Description Discard the confirmed order and go back to the concert list
// @Tags funnel
// @Success 200 {object} map[string]string
// @Router /api/funnel/confirmation [delete]
func (h *FunnelHandler) ReturnHome(c *gin.Context) {
	visitorID, ok := visitor(c)
	if !ok {
		return
	}
	if err := h.funnel.ReturnHome(c.Request.Context(), visitorID); err != nil {
		abortFunnelError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"redirect": resdto.HomePath})
}

func visitor(c *gin.Context) (uuid.UUID, bool) {
	visitorID, ok := middleware.GetVisitorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("visitor id missing from context"), "Internal server error", nil)
		return uuid.Nil, false
	}
	return visitorID, true
}

func abortFunnelError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrSelectionNotFound):
		httperr.AbortWithRedirect(c, http.StatusConflict, err, "No seats selected", resdto.HomePath)
	case errors.Is(err, errs.ErrOrderNotFound):
		httperr.AbortWithRedirect(c, http.StatusConflict, err, "No completed order", resdto.HomePath)
	case errors.Is(err, booking.ErrConcertNotFound):
		httperr.AbortWithRedirect(c, http.StatusNotFound, err, "Concert not found", resdto.HomePath)
	case errors.Is(err, booking.ErrSectionNotFound):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Section not found", nil)
	case errors.Is(err, checkout.ErrUnknownField):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown field", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
