package handler

import (
	"errors"
	"net/http"

	"biomed-maintenance-tracker/internal/middleware"
	"biomed-maintenance-tracker/pkg/apperrors"
	"biomed-maintenance-tracker/pkg/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP status codes
func respondError(c *gin.Context, err error) {
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		utils.ValidationErrorResponse(c, verr.Fields)
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrEquipmentNotFound),
		errors.Is(err, apperrors.ErrNotificationNotFound),
		errors.Is(err, apperrors.ErrUserNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, apperrors.ErrDuplicateEquipment),
		errors.Is(err, apperrors.ErrDuplicateUser):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, apperrors.ErrInvalidFilter),
		errors.Is(err, apperrors.ErrInvalidStaffRole),
		errors.Is(err, apperrors.ErrInvalidTheme):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrInvalidToken):
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, apperrors.ErrForbidden):
		utils.ErrorResponse(c, http.StatusForbidden, err.Error())
	default:
		_ = c.Error(err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}

// currentUserID reads the id AuthMiddleware placed on the context
func currentUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return "", false
	}
	return userID, true
}
