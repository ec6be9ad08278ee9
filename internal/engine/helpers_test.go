package engine

import (
	"time"

	"biomed-maintenance-tracker/internal/models"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func daysAgo(days int) time.Time {
	return testNow.AddDate(0, 0, -days)
}

func newEquipment(id string, opts ...func(*models.Equipment)) models.Equipment {
	eq := models.Equipment{
		ID:                      id,
		Name:                    "Device " + id,
		Model:                   "Model " + id,
		SerialNumber:            "SN-" + id,
		InventoryCode:           "INV-" + id,
		Department:              models.DepartmentICU,
		Location:                "Ward 1",
		InstallationDate:        daysAgo(400),
		Status:                  models.StatusOperational,
		MaintenanceIntervalDays: 90,
	}
	for _, opt := range opts {
		opt(&eq)
	}
	return eq
}

func withLogs(dates ...time.Time) func(*models.Equipment) {
	return func(eq *models.Equipment) {
		for i, d := range dates {
			eq.MaintenanceHistory = append(eq.MaintenanceHistory, models.MaintenanceLog{
				ID:            eq.ID + "-log-" + string(rune('a'+i)),
				EquipmentID:   eq.ID,
				Date:          d,
				Technician:    "John Doe",
				WorkPerformed: "Preventive Maintenance",
				Status:        models.StatusOperational,
			})
		}
	}
}

func withAssessment(rpn int, date time.Time) func(*models.Equipment) {
	return func(eq *models.Equipment) {
		eq.RiskAssessments = append(eq.RiskAssessments, models.RiskAssessment{
			ID:             eq.ID + "-ra-" + date.Format("20060102150405"),
			EquipmentID:    eq.ID,
			RPN:            rpn,
			RiskLevel:      ClassifyRisk(rpn),
			ActionRequired: "Routine monitoring.",
			AssessmentDate: date,
		})
	}
}

func withStatus(s models.EquipmentStatus) func(*models.Equipment) {
	return func(eq *models.Equipment) { eq.Status = s }
}

func withDepartment(d models.Department) func(*models.Equipment) {
	return func(eq *models.Equipment) { eq.Department = d }
}

// dueIn makes the projected next service land exactly d from testNow
func dueIn(d time.Duration) func(*models.Equipment) {
	return func(eq *models.Equipment) {
		eq.MaintenanceHistory = nil
		eq.MaintenanceIntervalDays = 30
		eq.InstallationDate = testNow.Add(d).AddDate(0, 0, -30)
	}
}
