package engine

import (
	"sort"
	"time"

	"biomed-maintenance-tracker/internal/models"
)

// NotificationWindow is how far ahead service-due notifications look
const NotificationWindow = 24 * time.Hour

// AppNotification announces a service falling due within the notification window
type AppNotification struct {
	ID              string            `json:"id"`
	EquipmentID     string            `json:"equipment_id"`
	EquipmentName   string            `json:"equipment_name"`
	Department      models.Department `json:"department"`
	Location        string            `json:"location"`
	NextServiceDate time.Time         `json:"next_service_date"`
}

// NotificationID is the id of the notification generated for an equipment record
func NotificationID(equipmentID string) string {
	return "notif-" + equipmentID
}

// GenerateNotifications builds one notification per record with
// now < next service <= now + 24h, soonest first
func GenerateNotifications(list []EquipmentWithNextService, now time.Time) []AppNotification {
	horizon := now.Add(NotificationWindow)

	out := make([]AppNotification, 0)
	for _, e := range list {
		if !e.NextServiceDate.After(now) || e.NextServiceDate.After(horizon) {
			continue
		}
		out = append(out, AppNotification{
			ID:              NotificationID(e.ID),
			EquipmentID:     e.ID,
			EquipmentName:   e.Name,
			Department:      e.Department,
			Location:        e.Location,
			NextServiceDate: e.NextServiceDate,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].NextServiceDate.Before(out[j].NextServiceDate)
	})
	return out
}

// Acknowledge returns set without the notification id and whether it was present.
// set itself is left untouched.
func Acknowledge(set []AppNotification, id string) ([]AppNotification, bool) {
	out := make([]AppNotification, 0, len(set))
	found := false
	for _, n := range set {
		if n.ID == id {
			found = true
			continue
		}
		out = append(out, n)
	}
	return out, found
}
