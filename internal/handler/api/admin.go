package api

import (
	"errors"
	"net/http"

	reqdto "ticket-monarch/internal/handler/dto/request"
	resdto "ticket-monarch/internal/handler/dto/response"
	"ticket-monarch/internal/handler/httperr"
	"ticket-monarch/internal/pkg/errs"
	"ticket-monarch/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AdminHandler proxies the orders admin page to the order backend. Backend
// failures are returned in the body with status 502 so the page can show them.
type AdminHandler struct {
	orders usecase.OrdersUseCase
}

func NewAdminHandler(orders usecase.OrdersUseCase) *AdminHandler {
	return &AdminHandler{orders: orders}
}

// @Summary List orders
// @Tags admin
// @Produce json
// @Param X-Admin-Key header string true "Admin key"
// @Success 200 {object} resdto.OrdersResponse
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} resdto.OrdersResponse
// @Router /api/admin/orders [get]
func (h *AdminHandler) ListOrders(c *gin.Context) {
	res := h.orders.ListOrders(c.Request.Context())
	body, err := resdto.FromOrdersResult(res)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(proxyStatus(res.Success, http.StatusOK), body)
}

// @Summary Create order
// @Tags admin
// @Accept json
// @Produce json
// @Param X-Admin-Key header string true "Admin key"
// @Param request body reqdto.CreateOrderRequest true "Order"
// @Success 201 {object} resdto.CreateOrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} resdto.CreateOrderResponse
// @Router /api/admin/orders [post]
func (h *AdminHandler) CreateOrder(c *gin.Context) {
	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	res, err := h.orders.CreateOrder(c.Request.Context(), req.ToInput())
	if err != nil {
		if errors.Is(err, errs.ErrInvalidOrder) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	body, err := resdto.FromCreateOrderResult(res)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(proxyStatus(res.Success, http.StatusCreated), body)
}

// @Summary Import orders
// @Tags admin
// @Produce json
// @Param X-Admin-Key header string true "Admin key"
// @Success 200 {object} resdto.MessageResponse
// @Failure 502 {object} resdto.MessageResponse
// @Router /api/admin/orders/import [post]
func (h *AdminHandler) ImportOrders(c *gin.Context) {
	res := h.orders.ImportOrders(c.Request.Context())
	c.JSON(proxyStatus(res.Success, http.StatusOK), resdto.FromImportResult(res))
}

// @Summary Export checkouts
// @Tags admin
// @Produce json
// @Param X-Admin-Key header string true "Admin key"
// @Success 200 {object} resdto.MessageResponse
// @Failure 502 {object} resdto.MessageResponse
// @Router /api/admin/export [get]
func (h *AdminHandler) Export(c *gin.Context) {
	res := h.orders.Export(c.Request.Context())
	c.JSON(proxyStatus(res.Success, http.StatusOK), resdto.FromExportResult(res))
}

// @Summary Backend health
// @Tags admin
// @Produce json
// @Param X-Admin-Key header string true "Admin key"
// @Success 200 {object} resdto.HealthResponse
// @Failure 502 {object} resdto.HealthResponse
// @Router /api/admin/backend-health [get]
func (h *AdminHandler) BackendHealth(c *gin.Context) {
	res := h.orders.Health(c.Request.Context())
	c.JSON(proxyStatus(res.Success, http.StatusOK), resdto.FromHealthResult(res))
}

func proxyStatus(success bool, okStatus int) int {
	if success {
		return okStatus
	}
	return http.StatusBadGateway
}
