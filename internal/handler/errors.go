package handler

import (
	"errors"
	"net/http"

	"dashboard/internal/gateway"
	"dashboard/internal/service"
	"dashboard/internal/workflow"
	"dashboard/pkg/response"

	"github.com/gin-gonic/gin"
)

// respondError maps the domain failure taxonomy onto HTTP codes:
// validation problems are 400, capability denials 403, absent records
// 404, lifecycle violations 409, upstream trouble 502.
func respondError(c *gin.Context, err error) {
	var (
		validationErr *workflow.ValidationError
		transitionErr *workflow.InvalidTransitionError
		trackingErr   *workflow.InvalidTrackingError
		rejectedErr   *gateway.ServerRejectedError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, validationErr.Error()))
	case errors.As(err, &transitionErr):
		c.JSON(http.StatusConflict, response.Error(http.StatusConflict, transitionErr.Error()))
	case errors.As(err, &trackingErr):
		c.JSON(http.StatusConflict, response.Error(http.StatusConflict, trackingErr.Error()))
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, response.Error(http.StatusForbidden, err.Error()))
	case errors.Is(err, gateway.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Backend rejected the session credential, please log in again"))
	case errors.Is(err, gateway.ErrNotFound):
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "Record not found"))
	case gateway.IsUnreachable(err):
		c.JSON(http.StatusBadGateway, response.Error(http.StatusBadGateway, "Procurement backend unreachable, please retry"))
	case errors.As(err, &rejectedErr):
		c.JSON(http.StatusBadGateway, response.Error(http.StatusBadGateway, rejectedErr.Error()))
	default:
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
	}
}
