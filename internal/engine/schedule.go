package engine

import (
	"sort"
	"time"

	"biomed-maintenance-tracker/internal/models"
)

// Clock supplies "now". Services take one so tests can pin time.
type Clock func() time.Time

// SystemClock reads the wall clock
func SystemClock() time.Time {
	return time.Now()
}

// EquipmentWithNextService is an equipment record annotated with its projected
// next service date and current risk band
type EquipmentWithNextService struct {
	models.Equipment
	NextServiceDate time.Time        `json:"next_service_date"`
	CurrentRisk     models.RiskLevel `json:"current_risk"`
}

// LastService returns the log entry with the greatest Date.
// When several share that date the last inserted one wins.
func LastService(eq models.Equipment) (models.MaintenanceLog, bool) {
	best := -1
	for i, l := range eq.MaintenanceHistory {
		if best < 0 || !l.Date.Before(eq.MaintenanceHistory[best].Date) {
			best = i
		}
	}
	if best < 0 {
		return models.MaintenanceLog{}, false
	}
	return eq.MaintenanceHistory[best], true
}

// NextServiceDate projects the next due service: the last service date, or the
// installation date when there is no history, plus MaintenanceIntervalDays calendar days.
func NextServiceDate(eq models.Equipment) time.Time {
	base := eq.InstallationDate
	if last, ok := LastService(eq); ok {
		base = last.Date
	}
	return base.AddDate(0, 0, eq.MaintenanceIntervalDays)
}

// Annotate computes the next service date and current risk for each record.
// Inputs are not modified.
func Annotate(list []models.Equipment) []EquipmentWithNextService {
	out := make([]EquipmentWithNextService, len(list))
	for i, eq := range list {
		out[i] = AnnotateOne(eq)
	}
	return out
}

// AnnotateOne is Annotate for a single record
func AnnotateOne(eq models.Equipment) EquipmentWithNextService {
	return EquipmentWithNextService{
		Equipment:       eq,
		NextServiceDate: NextServiceDate(eq),
		CurrentRisk:     CurrentRisk(eq),
	}
}

// SortedHistory returns a newest-first copy of the maintenance history. Entries
// with equal dates keep the later-inserted one first, matching LastService.
func SortedHistory(eq models.Equipment) []models.MaintenanceLog {
	n := len(eq.MaintenanceHistory)
	out := make([]models.MaintenanceLog, n)
	for i := range eq.MaintenanceHistory {
		out[i] = eq.MaintenanceHistory[n-1-i]
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// SortedAssessments returns a newest-first copy of the risk assessments
func SortedAssessments(eq models.Equipment) []models.RiskAssessment {
	n := len(eq.RiskAssessments)
	out := make([]models.RiskAssessment, n)
	for i := range eq.RiskAssessments {
		out[i] = eq.RiskAssessments[n-1-i]
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AssessmentDate.After(out[j].AssessmentDate)
	})
	return out
}
