package engine

import (
	"testing"
	"time"

	"biomed-maintenance-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNotifications_Window(t *testing.T) {
	list := Annotate([]models.Equipment{
		newEquipment("due-now", dueIn(0)),
		newEquipment("in-1h", dueIn(time.Hour)),
		newEquipment("in-24h", dueIn(24*time.Hour)),
		newEquipment("in-25h", dueIn(25*time.Hour)),
		newEquipment("overdue", dueIn(-time.Hour)),
	})

	got := GenerateNotifications(list, testNow)
	require.Len(t, got, 2)
	assert.Equal(t, "notif-in-1h", got[0].ID)
	assert.Equal(t, "notif-in-24h", got[1].ID)
	assert.Equal(t, "in-1h", got[0].EquipmentID)
	assert.Equal(t, "Device in-1h", got[0].EquipmentName)
	assert.Equal(t, models.DepartmentICU, got[0].Department)
	assert.Equal(t, "Ward 1", got[0].Location)
}

func TestGenerateNotifications_EmptyIsNotNil(t *testing.T) {
	got := GenerateNotifications(nil, testNow)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAcknowledge(t *testing.T) {
	set := []AppNotification{{ID: "notif-a"}, {ID: "notif-b"}}

	remaining, found := Acknowledge(set, "notif-a")
	assert.True(t, found)
	require.Len(t, remaining, 1)
	assert.Equal(t, "notif-b", remaining[0].ID)
	assert.Len(t, set, 2, "input set is untouched")

	_, found = Acknowledge(remaining, "notif-missing")
	assert.False(t, found)
}

func TestAcknowledge_LeavesUpcomingCountAndReturnsOnRegenerate(t *testing.T) {
	list := Annotate([]models.Equipment{newEquipment("ecg", dueIn(2*time.Hour))})

	assert.Equal(t, 1, ComputeStats(list, testNow).Upcoming)

	set := GenerateNotifications(list, testNow)
	require.Len(t, set, 1)

	set, found := Acknowledge(set, NotificationID("ecg"))
	require.True(t, found)
	assert.Empty(t, set)
	assert.Equal(t, 1, ComputeStats(list, testNow).Upcoming, "acknowledging does not touch the dashboard")

	regenerated := GenerateNotifications(list, testNow.Add(time.Minute))
	assert.Len(t, regenerated, 1, "next cycle reintroduces it while the condition holds")
}
