package handler

import (
	"net/http"
	"strconv"

	"biomed-maintenance-tracker/internal/engine"
	"biomed-maintenance-tracker/internal/service"
	"biomed-maintenance-tracker/pkg/utils"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the dashboard, notifications and the risk reference table
type DashboardHandler struct {
	equipmentService    *service.EquipmentService
	notificationService *service.NotificationService
}

func NewDashboardHandler(equipmentService *service.EquipmentService, notificationService *service.NotificationService) *DashboardHandler {
	return &DashboardHandler{
		equipmentService:    equipmentService,
		notificationService: notificationService,
	}
}

// Dashboard returns the four stat cards, the department histogram and the next services
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	utils.SuccessResponse(c, h.equipmentService.Dashboard())
}

// Notifications returns the current notification set
func (h *DashboardHandler) Notifications(c *gin.Context) {
	set := h.notificationService.List()
	utils.SuccessResponse(c, gin.H{
		"items": set,
		"count": len(set),
	})
}

// Acknowledge dismisses one notification until the next regeneration
func (h *DashboardHandler) Acknowledge(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.notificationService.Acknowledge(userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.MessageResponse(c, "Notification acknowledged")
}

// ClassifyRisk maps ?rpn= onto its band
func (h *DashboardHandler) ClassifyRisk(c *gin.Context) {
	rpn, err := strconv.Atoi(c.Query("rpn"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "rpn must be an integer")
		return
	}
	utils.SuccessResponse(c, gin.H{
		"rpn":  rpn,
		"risk": engine.ClassifyRiskInfo(rpn),
	})
}

// RiskLevels returns every band with its range and recommended action
func (h *DashboardHandler) RiskLevels(c *gin.Context) {
	utils.SuccessResponse(c, engine.RiskTable())
}
