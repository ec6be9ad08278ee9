package engine

import (
	"sort"
	"time"

	"biomed-maintenance-tracker/internal/models"
)

const (
	// UpcomingWindowDays bounds the "upcoming" dashboard card
	UpcomingWindowDays = 30
	// UpcomingLimit is how many entries the upcoming maintenance list shows
	UpcomingLimit = 5
)

// Stats are the four dashboard counts. Each is taken over the whole collection,
// so a record may be counted by more than one.
type Stats struct {
	Overdue     int `json:"overdue"`
	Upcoming    int `json:"upcoming"`
	HighRisk    int `json:"high_risk"`
	Operational int `json:"operational"`
}

// Dashboard bundles everything the dashboard view renders
type Dashboard struct {
	Stats               Stats                      `json:"stats"`
	Departments         map[models.Department]int  `json:"departments"`
	UpcomingMaintenance []EquipmentWithNextService `json:"upcoming_maintenance"`
	GeneratedAt         time.Time                  `json:"generated_at"`
}

// IsOverdue reports equipment flagged as needing maintenance or out of service
func IsOverdue(e EquipmentWithNextService) bool {
	return e.Status == models.StatusNeedsMaintenance || e.Status == models.StatusOutOfService
}

// IsUpcoming reports equipment due after now and no later than 30 calendar days from now
func IsUpcoming(e EquipmentWithNextService, now time.Time) bool {
	horizon := now.AddDate(0, 0, UpcomingWindowDays)
	return e.NextServiceDate.After(now) && !e.NextServiceDate.After(horizon)
}

// IsHighRisk reports assessed equipment whose current band is High or worse.
// Equipment without assessments is never high risk.
func IsHighRisk(e EquipmentWithNextService) bool {
	if len(e.RiskAssessments) == 0 {
		return false
	}
	return IsHighRiskLevel(CurrentRisk(e.Equipment))
}

// IsOperational reports equipment in the Operational status
func IsOperational(e EquipmentWithNextService) bool {
	return e.Status == models.StatusOperational
}

// ComputeStats counts the dashboard cards
func ComputeStats(list []EquipmentWithNextService, now time.Time) Stats {
	var s Stats
	for _, e := range list {
		if IsOverdue(e) {
			s.Overdue++
		}
		if IsUpcoming(e, now) {
			s.Upcoming++
		}
		if IsHighRisk(e) {
			s.HighRisk++
		}
		if IsOperational(e) {
			s.Operational++
		}
	}
	return s
}

// DepartmentHistogram counts equipment per department present in list
func DepartmentHistogram(list []EquipmentWithNextService) map[models.Department]int {
	counts := make(map[models.Department]int)
	for _, e := range list {
		counts[e.Department]++
	}
	return counts
}

// UpcomingMaintenance returns equipment due after now, soonest first, at most limit
// entries. A non-positive limit returns every match.
func UpcomingMaintenance(list []EquipmentWithNextService, now time.Time, limit int) []EquipmentWithNextService {
	out := make([]EquipmentWithNextService, 0, len(list))
	for _, e := range list {
		if e.NextServiceDate.After(now) {
			out = append(out, e)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].NextServiceDate.Equal(out[j].NextServiceDate) {
			return out[i].NextServiceDate.Before(out[j].NextServiceDate)
		}
		return out[i].ID < out[j].ID
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// BuildDashboard computes stats, the department histogram and the upcoming list
func BuildDashboard(list []EquipmentWithNextService, now time.Time) Dashboard {
	return Dashboard{
		Stats:               ComputeStats(list, now),
		Departments:         DepartmentHistogram(list),
		UpcomingMaintenance: UpcomingMaintenance(list, now, UpcomingLimit),
		GeneratedAt:         now,
	}
}
