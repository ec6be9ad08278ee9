package seed

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"biomed-maintenance-tracker/internal/engine"
	"biomed-maintenance-tracker/internal/models"
	"biomed-maintenance-tracker/pkg/apperrors"
	"biomed-maintenance-tracker/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)

func TestEquipment_IsValidAndUnique(t *testing.T) {
	list := Equipment(now)
	v := validation.New()

	ids := map[string]bool{}
	serials := map[string]bool{}
	codes := map[string]bool{}
	for _, eq := range list {
		require.NoError(t, v.Struct(eq), eq.ID)
		assert.False(t, ids[eq.ID] || serials[eq.SerialNumber] || codes[eq.InventoryCode], eq.ID)
		ids[eq.ID], serials[eq.SerialNumber], codes[eq.InventoryCode] = true, true, true

		for _, a := range eq.RiskAssessments {
			assert.Equal(t, engine.ClassifyRisk(a.RPN), a.RiskLevel)
		}
	}
}

func TestEquipment_ECGTriggersANotification(t *testing.T) {
	annotated := engine.Annotate(Equipment(now))

	notifications := engine.GenerateNotifications(annotated, now)
	require.Len(t, notifications, 1)
	assert.Equal(t, "notif-eq-007", notifications[0].ID)
	assert.True(t, notifications[0].NextServiceDate.Equal(now.Add(UrgentLead)))
}

func TestEquipment_XrayIsSevere(t *testing.T) {
	for _, eq := range Equipment(now) {
		if eq.ID == "eq-003" {
			assert.Equal(t, models.RiskSevere, engine.CurrentRisk(eq))
			return
		}
	}
	t.Fatal("eq-003 missing")
}

func TestUsers_PermissionsFollowRole(t *testing.T) {
	for _, u := range Users("hash", now) {
		assert.Equal(t, models.RolePermissions[u.Role], u.Permissions)
		assert.Equal(t, "hash", u.PasswordHash)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	fixture := `
equipment:
  - id: eq-100
    name: Suction Unit
    model: VacuPro
    serial_number: SN-Z1
    inventory_code: ER-SUC-01
    department: Emergency Department
    location: ER, Bay 2
    installation_date: 2025-01-10T00:00:00Z
    status: Operational
    maintenance_interval_days: 60
    maintenance_history:
      - id: log-100a
        date: 2025-06-01T08:00:00Z
        technician: John Doe
        work_performed: Seal replacement
        parts_used: [Seal kit]
        status: Operational
`
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o600))

	list, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, list, 1)

	eq := list[0]
	assert.Equal(t, models.DepartmentEmergency, eq.Department)
	require.Len(t, eq.MaintenanceHistory, 1)
	assert.Equal(t, "eq-100", eq.MaintenanceHistory[0].EquipmentID)
	assert.Equal(t, []string{"Seal kit"}, eq.MaintenanceHistory[0].PartsUsed)
	assert.Equal(t, time.Date(2025, 7, 31, 8, 0, 0, 0, time.UTC), engine.NextServiceDate(eq))
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFile_RejectsNonPositiveInterval(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	fixture := `
equipment:
  - id: eq-101
    name: Nebulizer
    model: AeroMist
    serial_number: SN-Z2
    inventory_code: PED-NEB-01
    department: Pediatric Ward
    installation_date: 2025-01-10T00:00:00Z
    status: Operational
    maintenance_interval_days: 0
`
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o600))

	_, err := LoadFile(path)
	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "maintenance_interval_days")
}

func TestStampCreated_KeepsListOrder(t *testing.T) {
	list := Equipment(now)
	kept := now.Add(-time.Hour)
	list[3].CreatedAt = kept

	StampCreated(list, now)

	assert.Equal(t, now, list[0].CreatedAt)
	assert.Equal(t, kept, list[3].CreatedAt)
	for i := 1; i < len(list); i++ {
		if i == 3 || i == 4 {
			continue
		}
		assert.True(t, list[i].CreatedAt.After(list[i-1].CreatedAt), "record %d", i)
	}
}
