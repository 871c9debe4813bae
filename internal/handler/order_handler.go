package handler

import (
	"net/http"
	"strconv"

	"dashboard/internal/middleware"
	"dashboard/internal/service"
	"dashboard/pkg/pagination"
	"dashboard/pkg/response"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService service.OrderService
	authService  service.AuthService
}

func NewOrderHandler(orderService service.OrderService, authService service.AuthService) *OrderHandler {
	return &OrderHandler{orderService: orderService, authService: authService}
}

func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	orders := router.Group("/api/v1/orders", middleware.RequireSession(h.authService))
	{
		orders.GET("", h.ListOrders)
		orders.GET("/:id", h.GetOrder)
		orders.PUT("/:id/tracking", h.UpdateTracking)
	}
}

// ListOrders returns all orders
// @Summary      List orders
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        page   query  int  false  "Page number (default: 1)"
// @Param        limit  query  int  false  "Items per page (default: 20)"
// @Success      200  {object}  response.Response
// @Router       /api/v1/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	orders, err := h.orderService.ListOrders(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err)
		return
	}

	params := pagination.Parse(c)
	start, end := params.Bounds(len(orders))
	c.JSON(http.StatusOK, response.SuccessWithPagination(http.StatusOK, orders[start:end], params.Page, params.Limit, len(orders)))
}

// GetOrder returns one order with supplier, requester and priced items
// @Summary      Get order detail
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "Order ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/v1/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid order id"))
		return
	}

	order, svcErr := h.orderService.GetOrder(c.Request.Context(), sess, id)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, order))
}

type trackingRequest struct {
	TrackingStatus string `json:"tracking_status" binding:"required,oneof=prepared shipped delivered"`
}

// UpdateTracking advances an order along the fulfillment chain
// @Summary      Update order tracking status
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  int              true  "Order ID"
// @Param        payload  body  trackingRequest  true  "New tracking status"
// @Success      200  {object}  response.Response
// @Failure      409  {object}  response.Response  "Illegal tracking transition"
// @Router       /api/v1/orders/{id}/tracking [put]
func (h *OrderHandler) UpdateTracking(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid order id"))
		return
	}

	var req trackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	updated, svcErr := h.orderService.UpdateTracking(c.Request.Context(), sess, id, req.TrackingStatus)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, updated))
}
