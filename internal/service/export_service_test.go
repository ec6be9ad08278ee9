package service

import (
	"testing"
	"time"

	"biomed-maintenance-tracker/internal/engine"
	"biomed-maintenance-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportService_EquipmentWorkbook(t *testing.T) {
	eq := baseEquipment("eq-1")
	eq.MaintenanceHistory = []models.MaintenanceLog{{ID: "l", Date: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), Status: models.StatusOperational}}

	buf, err := NewExportService().EquipmentWorkbook(engine.Annotate([]models.Equipment{eq}))
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, "eq-1", rows[1][0])
	assert.Equal(t, "Intensive Care Unit", rows[1][6])
	assert.Equal(t, "2026-01-05", rows[1][11])
	assert.Equal(t, "2026-04-05 00:00", rows[1][12])
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "equipment.xlsx", ExportFilename(engine.ListQuery{Department: engine.AllDepartments}))
	assert.Equal(t, "equipment_overdue_obstetrics-gynecology.xlsx", ExportFilename(engine.ListQuery{
		Filter:     engine.FilterOverdue,
		Department: string(models.DepartmentObstetricsGynecology),
	}))
}

func TestExportService_HeaderStyleAndWidths(t *testing.T) {
	buf, err := NewExportService().EquipmentWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	width, err := f.GetColWidth(exportSheet, "B")
	require.NoError(t, err)
	assert.Equal(t, 25.0, width)

	styleID, err := f.GetCellStyle(exportSheet, "A1")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	assert.True(t, style.Font.Bold)
}

func TestStyleSheet_ReportsErrors(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	err := styleSheet(f, "Missing")
	assert.ErrorContains(t, err, "failed to style header")
}
