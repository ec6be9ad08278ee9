package store

import (
	"errors"
	"testing"
	"time"

	"biomed-maintenance-tracker/internal/models"
	"biomed-maintenance-tracker/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEquipment(id string) models.Equipment {
	return models.Equipment{
		ID:                      id,
		Name:                    "Infusion Pump",
		Model:                   "FlowMax 200",
		SerialNumber:            "SN-" + id,
		InventoryCode:           "INV-" + id,
		Department:              models.DepartmentICU,
		InstallationDate:        time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		Status:                  models.StatusOperational,
		MaintenanceIntervalDays: 90,
	}
}

func TestEquipmentStore_AddRejectsDuplicates(t *testing.T) {
	s := NewEquipmentStore([]models.Equipment{sampleEquipment("a")})

	dupSerial := sampleEquipment("b")
	dupSerial.SerialNumber = "SN-a"
	_, err := s.Add(dupSerial, nil)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateEquipment)

	dupCode := sampleEquipment("c")
	dupCode.InventoryCode = "INV-a"
	_, err = s.Add(dupCode, nil)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateEquipment)

	_, err = s.Add(sampleEquipment("d"), nil)
	require.NoError(t, err)
	assert.Len(t, s.All(), 2)
}

func TestEquipmentStore_SnapshotsAreNotRewritten(t *testing.T) {
	s := NewEquipmentStore([]models.Equipment{sampleEquipment("a")})
	before := s.All()

	_, err := s.AppendLog("a", models.MaintenanceLog{
		ID:     "log-1",
		Date:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Status: models.StatusUnderMaintenance,
	}, nil)
	require.NoError(t, err)

	assert.Empty(t, before[0].MaintenanceHistory)
	assert.Equal(t, models.StatusOperational, before[0].Status)

	after := s.All()
	require.Len(t, after[0].MaintenanceHistory, 1)
	assert.Equal(t, models.StatusUnderMaintenance, after[0].Status)
}

func TestEquipmentStore_AppendLogSequencesEntries(t *testing.T) {
	s := NewEquipmentStore([]models.Equipment{sampleEquipment("a")})

	for i := 0; i < 3; i++ {
		_, err := s.AppendLog("a", models.MaintenanceLog{ID: string(rune('x' + i)), Status: models.StatusOperational}, nil)
		require.NoError(t, err)
	}

	eq, err := s.Get("a")
	require.NoError(t, err)
	for i, l := range eq.MaintenanceHistory {
		assert.Equal(t, i, l.Seq)
		assert.Equal(t, "a", l.EquipmentID)
	}
}

func TestEquipmentStore_PersistFailureAbortsChange(t *testing.T) {
	s := NewEquipmentStore([]models.Equipment{sampleEquipment("a")})
	boom := errors.New("db down")

	_, err := s.AppendAssessment("a", models.RiskAssessment{ID: "ra-1", RPN: 80}, func(models.RiskAssessment) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)

	eq, err := s.Get("a")
	require.NoError(t, err)
	assert.Empty(t, eq.RiskAssessments)
}

func TestEquipmentStore_UnknownID(t *testing.T) {
	s := NewEquipmentStore(nil)

	_, err := s.Get("missing")
	assert.ErrorIs(t, err, apperrors.ErrEquipmentNotFound)

	_, err = s.AppendLog("missing", models.MaintenanceLog{}, nil)
	assert.ErrorIs(t, err, apperrors.ErrEquipmentNotFound)
}

func TestEquipmentStore_GetReturnsCopy(t *testing.T) {
	eq := sampleEquipment("a")
	eq.MaintenanceHistory = []models.MaintenanceLog{{ID: "log-1", PartsUsed: []string{"filter"}}}
	s := NewEquipmentStore([]models.Equipment{eq})

	got, err := s.Get("a")
	require.NoError(t, err)
	got.MaintenanceHistory[0].PartsUsed[0] = "changed"

	again, _ := s.Get("a")
	assert.Equal(t, "filter", again.MaintenanceHistory[0].PartsUsed[0])
}
