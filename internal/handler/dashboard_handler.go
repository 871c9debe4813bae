package handler

import (
	"net/http"

	"dashboard/internal/middleware"
	"dashboard/internal/service"
	"dashboard/pkg/response"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
	authService      service.AuthService
}

func NewDashboardHandler(dashboardService service.DashboardService, authService service.AuthService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, authService: authService}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/v1/dashboard", middleware.RequireSession(h.authService), h.Overview)
}

// Overview returns the aggregated dashboard view
// @Summary      Dashboard overview
// @Description  Request/order statistics, approval rate and recent records
// @Tags         dashboard
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      502  {object}  response.Response  "Backend unreachable"
// @Router       /api/v1/dashboard [get]
func (h *DashboardHandler) Overview(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	data, err := h.dashboardService.Overview(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, data))
}
