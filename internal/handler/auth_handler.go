package handler

import (
	"net/http"

	"biomed-maintenance-tracker/internal/service"
	"biomed-maintenance-tracker/pkg/utils"

	"github.com/gin-gonic/gin"
)

const refreshCookie = "refresh_token"

type AuthHandler struct {
	authService *service.AuthService
	cookieTTL   int
	secure      bool
}

// NewAuthHandler sets refresh cookies that live for cookieTTL seconds.
// secure marks them HTTPS-only.
func NewAuthHandler(authService *service.AuthService, cookieTTL int, secure bool) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookieTTL:   cookieTTL,
		secure:      secure,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles user authentication
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	response, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setRefreshCookie(c, response.RefreshToken)
	utils.SuccessResponse(c, response)
}

// Refresh rotates the refresh cookie and returns a new access token
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshCookie)
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Refresh token not found")
		return
	}

	response, err := h.authService.Refresh(refreshToken)
	if err != nil {
		h.clearRefreshCookie(c)
		respondError(c, err)
		return
	}

	h.setRefreshCookie(c, response.RefreshToken)
	utils.SuccessResponse(c, response)
}

// Logout revokes the refresh token
func (h *AuthHandler) Logout(c *gin.Context) {
	if refreshToken, err := c.Cookie(refreshCookie); err == nil {
		h.authService.Logout(refreshToken)
	}

	h.clearRefreshCookie(c)
	utils.MessageResponse(c, "Logged out successfully")
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, token string) {
	c.SetCookie(refreshCookie, token, h.cookieTTL, "/", "", h.secure, true)
}

func (h *AuthHandler) clearRefreshCookie(c *gin.Context) {
	c.SetCookie(refreshCookie, "", -1, "/", "", h.secure, true)
}
