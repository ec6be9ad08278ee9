package handler

import (
	"net/http"

	"biomed-maintenance-tracker/internal/service"
	"biomed-maintenance-tracker/pkg/utils"

	"github.com/gin-gonic/gin"
)

type StaffHandler struct {
	staffService *service.StaffService
}

func NewStaffHandler(staffService *service.StaffService) *StaffHandler {
	return &StaffHandler{staffService: staffService}
}

// Create adds a Technician or Hospital Staff account
func (h *StaffHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.AddStaffInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.staffService.AddStaff(userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, user)
}
