package validation

import (
	"errors"
	"testing"
	"time"

	"biomed-maintenance-tracker/internal/models"
	"biomed-maintenance-tracker/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEquipment() models.Equipment {
	return models.Equipment{
		ID:                      "eq-1",
		Name:                    "Ventilator",
		Model:                   "Respira Pro X",
		SerialNumber:            "SN-VNT-1",
		InventoryCode:           "ICU-VNT-01",
		Department:              models.DepartmentICU,
		InstallationDate:        time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Status:                  models.StatusOperational,
		MaintenanceIntervalDays: 90,
	}
}

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr), "expected a ValidationError, got %v", err)
	return verr.Fields
}

func TestValidator_AcceptsValidEquipment(t *testing.T) {
	assert.NoError(t, New().Struct(validEquipment()))
}

func TestValidator_EquipmentRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Equipment)
		field  string
	}{
		{name: "zero interval", mutate: func(e *models.Equipment) { e.MaintenanceIntervalDays = 0 }, field: "maintenance_interval_days"},
		{name: "negative interval", mutate: func(e *models.Equipment) { e.MaintenanceIntervalDays = -7 }, field: "maintenance_interval_days"},
		{name: "unknown department", mutate: func(e *models.Equipment) { e.Department = "Cafeteria" }, field: "department"},
		{name: "unknown status", mutate: func(e *models.Equipment) { e.Status = "Broken" }, field: "status"},
		{name: "missing serial", mutate: func(e *models.Equipment) { e.SerialNumber = "" }, field: "serial_number"},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eq := validEquipment()
			tt.mutate(&eq)
			assert.Contains(t, fieldsOf(t, v.Struct(eq)), tt.field)
		})
	}
}

func TestValidator_NestedAssessmentFactors(t *testing.T) {
	eq := validEquipment()
	eq.RiskAssessments = []models.RiskAssessment{{
		Likelihood:     6,
		Severity:       3,
		Detectability:  0,
		ActionRequired: "Replace sensor",
		AssessmentDate: time.Now(),
	}}

	fields := fieldsOf(t, New().Struct(eq))
	assert.Equal(t, "must be at most 5", fields["risk_assessments[0].likelihood"])
	assert.Equal(t, "must be at least 1", fields["risk_assessments[0].detectability"])
	assert.NotContains(t, fields, "risk_assessments[0].severity")
}
