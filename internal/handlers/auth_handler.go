package handlers

import (
	"errors"
	"net/http"

	"github.com/bhagyamlottery/agency-backend/internal/middleware"
	"github.com/bhagyamlottery/agency-backend/internal/models"
	"github.com/bhagyamlottery/agency-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication related HTTP requests
type AuthHandler struct {
	authService services.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, msgInvalidData)
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			respondMessage(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Profile handles GET /api/auth/profile
func (h *AuthHandler) Profile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, middleware.MsgTokenFailed)
		return
	}
	c.JSON(http.StatusOK, user)
}
