package handler

import (
	"net/http"
	"time"

	"dashboard/internal/middleware"
	"dashboard/internal/service"
	"dashboard/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService  service.AuthService
	cookieSecure bool
}

func NewAuthHandler(authService service.AuthService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{authService: authService, cookieSecure: cookieSecure}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/logout", middleware.RequireSession(h.authService), h.Logout)
		auth.GET("/me", middleware.RequireSession(h.authService), h.Me)
	}
}

type loginRequest struct {
	Token string `json:"token" binding:"required"`
}

// Login exchanges a Google ID token for a dashboard session
// @Summary      Log in with a Google ID token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body  loginRequest  true  "Google ID token"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	sess, err := h.authService.Login(c.Request.Context(), req.Token)
	if err != nil {
		if err == service.ErrUserNotRegistered {
			c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, err.Error()))
			return
		}
		respondError(c, err)
		return
	}

	maxAge := int(time.Until(sess.ExpiresAt).Seconds())
	middleware.SetSessionCookie(c, sess.ID, maxAge, h.cookieSecure)

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{
		"session_id": sess.ID,
		"expires_at": sess.ExpiresAt,
		"user":       sess.User,
	}))
}

// Logout tears the session down
// @Summary      Log out
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if err := h.authService.Logout(c.Request.Context(), sess.ID); err != nil {
		respondError(c, err)
		return
	}
	middleware.ClearSessionCookie(c, h.cookieSecure)
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Logged out"}))
}

// Me returns the logged-in user's profile
// @Summary      Current user
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	c.JSON(http.StatusOK, response.Success(http.StatusOK, sess.User))
}
