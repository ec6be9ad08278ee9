package handler

import (
	"net/http"

	"biomed-maintenance-tracker/internal/service"
	"biomed-maintenance-tracker/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ProfileHandler serves the signed-in user's account and preferences
type ProfileHandler struct {
	authService  *service.AuthService
	themeService *service.ThemeService
}

func NewProfileHandler(authService *service.AuthService, themeService *service.ThemeService) *ProfileHandler {
	return &ProfileHandler{
		authService:  authService,
		themeService: themeService,
	}
}

type ThemeRequest struct {
	Theme service.Theme `json:"theme" binding:"required"`
}

// Me returns the current user
func (h *ProfileHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, user)
}

func (h *ProfileHandler) GetTheme(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	utils.SuccessResponse(c, gin.H{"theme": h.themeService.Get(userID)})
}

func (h *ProfileHandler) SetTheme(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.themeService.Set(userID, req.Theme); err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"theme": req.Theme})
}

func (h *ProfileHandler) ToggleTheme(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	utils.SuccessResponse(c, gin.H{"theme": h.themeService.Toggle(userID)})
}
