package handler

import (
	"fmt"
	"net/http"

	"biomed-maintenance-tracker/internal/engine"
	"biomed-maintenance-tracker/internal/models"
	"biomed-maintenance-tracker/internal/service"
	"biomed-maintenance-tracker/pkg/utils"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type EquipmentHandler struct {
	equipmentService *service.EquipmentService
	noteService      *service.NoteService
	exportService    *service.ExportService
}

func NewEquipmentHandler(
	equipmentService *service.EquipmentService,
	noteService *service.NoteService,
	exportService *service.ExportService,
) *EquipmentHandler {
	return &EquipmentHandler{
		equipmentService: equipmentService,
		noteService:      noteService,
		exportService:    exportService,
	}
}

type NotesRequest struct {
	Keywords string `json:"keywords"`
}

// listQuery reads ?filter=&search=&department=
func listQuery(c *gin.Context) (engine.ListQuery, error) {
	filter, err := engine.ParseDashboardFilter(c.Query("filter"))
	if err != nil {
		return engine.ListQuery{}, err
	}
	return engine.ListQuery{
		Filter:     filter,
		Search:     c.Query("search"),
		Department: c.DefaultQuery("department", engine.AllDepartments),
	}, nil
}

// List returns the equipment register narrowed by the query filters
func (h *EquipmentHandler) List(c *gin.Context) {
	q, err := listQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	items := h.equipmentService.List(q)
	utils.SuccessResponse(c, gin.H{
		"items": items,
		"count": len(items),
	})
}

// Export downloads the filtered register as an xlsx workbook
func (h *EquipmentHandler) Export(c *gin.Context) {
	q, err := listQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	buf, err := h.exportService.EquipmentWorkbook(h.equipmentService.List(q))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, service.ExportFilename(q)))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// Get returns one record with its histories newest first
func (h *EquipmentHandler) Get(c *gin.Context) {
	detail, err := h.equipmentService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, detail)
}

// Create registers new equipment
func (h *EquipmentHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var eq models.Equipment
	if err := c.ShouldBindJSON(&eq); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	detail, err := h.equipmentService.Add(userID, eq)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, detail)
}

// LogService appends a service event to the equipment's history
func (h *EquipmentHandler) LogService(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.LogServiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	detail, err := h.equipmentService.LogService(userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, detail)
}

// SubmitAssessment scores and appends a risk assessment
func (h *EquipmentHandler) SubmitAssessment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.AssessmentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	assessment, err := h.equipmentService.SubmitAssessment(userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, gin.H{
		"assessment": assessment,
		"risk":       engine.DescribeRisk(assessment.RiskLevel),
	})
}

// GenerateNotes drafts a service note from keywords. The response is always
// 200 for known equipment; failures come back as fixed note text.
func (h *EquipmentHandler) GenerateNotes(c *gin.Context) {
	if _, err := h.equipmentService.Get(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	var req NotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	utils.SuccessResponse(c, h.noteService.GenerateNotes(c.Request.Context(), req.Keywords))
}
