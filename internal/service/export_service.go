package service

import (
	"bytes"
	"fmt"
	"strings"

	"biomed-maintenance-tracker/internal/engine"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Equipment"

var exportHeaders = []interface{}{
	"ID", "Name", "Model", "Serial Number", "Inventory Code", "Manufacturer", "Department",
	"Location", "Status", "Installation Date", "Interval (days)", "Last Service", "Next Service", "Current Risk",
}

var exportColumnWidths = []struct {
	from, to string
	width    float64
}{
	{"B", "C", 25},
	{"D", "F", 20},
	{"G", "H", 30},
	{"I", "N", 18},
}

// ExportService renders the equipment register as a spreadsheet
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// EquipmentWorkbook writes list to an xlsx workbook, one row per record in list order
func (s *ExportService) EquipmentWorkbook(list []engine.EquipmentWithNextService) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeaders); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, e := range list {
		lastService := ""
		if last, ok := engine.LastService(e.Equipment); ok {
			lastService = last.Date.Format("2006-01-02")
		}

		row := []interface{}{
			e.ID,
			e.Name,
			e.Model,
			e.SerialNumber,
			e.InventoryCode,
			e.Manufacturer,
			string(e.Department),
			e.Location,
			string(e.Status),
			e.InstallationDate.Format("2006-01-02"),
			e.MaintenanceIntervalDays,
			lastService,
			e.NextServiceDate.Format("2006-01-02 15:04"),
			string(e.CurrentRisk),
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := styleSheet(f, exportSheet); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf, nil
}

// styleSheet bolds the header row and sets the column widths
func styleSheet(f *excelize.File, sheet string) error {
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(exportHeaders))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", style); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for _, w := range exportColumnWidths {
		if err := f.SetColWidth(sheet, w.from, w.to, w.width); err != nil {
			return fmt.Errorf("failed to size columns %s:%s: %w", w.from, w.to, err)
		}
	}
	return nil
}

// ExportFilename names a download after the filter that produced it
func ExportFilename(q engine.ListQuery) string {
	parts := []string{"equipment"}
	if q.Filter != engine.FilterNone {
		parts = append(parts, string(q.Filter))
	}
	if q.Department != "" && q.Department != engine.AllDepartments {
		parts = append(parts, slug(q.Department))
	}
	return strings.Join(parts, "_") + ".xlsx"
}

func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
