package handler

import (
	"net/http"
	"strconv"

	"dashboard/internal/middleware"
	"dashboard/internal/service"
	"dashboard/internal/workflow"
	"dashboard/pkg/pagination"
	"dashboard/pkg/response"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	requestService  service.RequestService
	approvalService service.ApprovalService
	authService     service.AuthService
}

func NewRequestHandler(requestService service.RequestService, approvalService service.ApprovalService, authService service.AuthService) *RequestHandler {
	return &RequestHandler{
		requestService:  requestService,
		approvalService: approvalService,
		authService:     authService,
	}
}

func (h *RequestHandler) RegisterRoutes(router *gin.RouterGroup) {
	requests := router.Group("/api/v1/requests", middleware.RequireSession(h.authService))
	{
		requests.GET("", h.ListRequests)
		requests.POST("", h.CreateRequest)
		requests.GET("/:id", h.GetRequest)
		requests.GET("/:id/approval", h.GetApproval)
		requests.POST("/:id/approval", h.CreateApproval)
	}
}

func requestIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request id"))
		return 0, false
	}
	return id, true
}

// ListRequests returns purchase requests with items and totals
// @Summary      List purchase requests
// @Tags         requests
// @Security     BearerAuth
// @Produce      json
// @Param        page   query  int  false  "Page number (default: 1)"
// @Param        limit  query  int  false  "Items per page (default: 20)"
// @Success      200  {object}  response.Response
// @Router       /api/v1/requests [get]
func (h *RequestHandler) ListRequests(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	requests, err := h.requestService.ListRequests(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err)
		return
	}

	params := pagination.Parse(c)
	start, end := params.Bounds(len(requests))
	c.JSON(http.StatusOK, response.SuccessWithPagination(http.StatusOK, requests[start:end], params.Page, params.Limit, len(requests)))
}

// GetRequest returns one request with enriched items and its approval
// @Summary      Get purchase request detail
// @Tags         requests
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "Request ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/v1/requests/{id} [get]
func (h *RequestHandler) GetRequest(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	id, ok := requestIDParam(c)
	if !ok {
		return
	}

	detail, err := h.requestService.GetRequest(c.Request.Context(), sess, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, detail))
}

// CreateRequest files a new purchase request
// @Summary      Create purchase request
// @Tags         requests
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.CreateRequestInput  true  "Request payload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/v1/requests [post]
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	var input service.CreateRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	created, err := h.requestService.CreateRequest(c.Request.Context(), sess, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, created))
}

// GetApproval returns the decision filed for a request, null when none
// @Summary      Get approval for a request
// @Tags         requests
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "Request ID"
// @Success      200  {object}  response.Response
// @Router       /api/v1/requests/{id}/approval [get]
func (h *RequestHandler) GetApproval(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	id, ok := requestIDParam(c)
	if !ok {
		return
	}

	approval, err := h.approvalService.ForRequest(c.Request.Context(), sess, id)
	if err != nil {
		respondError(c, err)
		return
	}

	// approval is nil when no decision has been filed; that is a
	// normal empty state, not a 404.
	c.JSON(http.StatusOK, response.Success(http.StatusOK, approval))
}

type approvalRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approved rejected pending_info"`
	Comment  string `json:"comment"`
}

// CreateApproval fires a financial decision on a pending request
// @Summary      Approve, reject or request info on a request
// @Tags         requests
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  int              true  "Request ID"
// @Param        payload  body  approvalRequest  true  "Decision payload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response  "Missing mandatory comment"
// @Failure      403  {object}  response.Response  "Role lacks approval authority"
// @Failure      409  {object}  response.Response  "Request is not pending"
// @Router       /api/v1/requests/{id}/approval [post]
func (h *RequestHandler) CreateApproval(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	id, ok := requestIDParam(c)
	if !ok {
		return
	}

	var req approvalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	action, known := workflow.ActionForDecision(req.Decision)
	if !known {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Unknown decision: "+req.Decision))
		return
	}

	approval, err := h.approvalService.Decide(c.Request.Context(), sess, id, action, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, approval))
}
