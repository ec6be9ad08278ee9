package engine

import (
	"strings"
	"time"

	"biomed-maintenance-tracker/internal/models"
	"biomed-maintenance-tracker/pkg/apperrors"
)

// DashboardFilter narrows the equipment list to one dashboard card
type DashboardFilter string

const (
	FilterNone        DashboardFilter = ""
	FilterOverdue     DashboardFilter = "overdue"
	FilterUpcoming    DashboardFilter = "upcoming"
	FilterHighRisk    DashboardFilter = "highRisk"
	FilterOperational DashboardFilter = "operational"
)

// AllDepartments is the department filter value that disables department filtering
const AllDepartments = "all"

// ParseDashboardFilter accepts the four card tags or the empty string
func ParseDashboardFilter(s string) (DashboardFilter, error) {
	switch f := DashboardFilter(s); f {
	case FilterNone, FilterOverdue, FilterUpcoming, FilterHighRisk, FilterOperational:
		return f, nil
	default:
		return FilterNone, apperrors.ErrInvalidFilter
	}
}

// ListQuery holds the equipment list filters; they combine with AND
type ListQuery struct {
	Filter     DashboardFilter
	Search     string
	Department string
}

// Matches reports whether e passes every filter in q
func (q ListQuery) Matches(e EquipmentWithNextService, now time.Time) bool {
	if !matchesDashboardFilter(q.Filter, e, now) {
		return false
	}
	if q.Search != "" && !matchesSearch(e.Equipment, q.Search) {
		return false
	}
	if q.Department != "" && q.Department != AllDepartments && string(e.Department) != q.Department {
		return false
	}
	return true
}

// FilterList returns the records of list matching q, preserving order
func FilterList(list []EquipmentWithNextService, q ListQuery, now time.Time) []EquipmentWithNextService {
	out := make([]EquipmentWithNextService, 0, len(list))
	for _, e := range list {
		if q.Matches(e, now) {
			out = append(out, e)
		}
	}
	return out
}

func matchesDashboardFilter(f DashboardFilter, e EquipmentWithNextService, now time.Time) bool {
	switch f {
	case FilterOverdue:
		return IsOverdue(e)
	case FilterUpcoming:
		return IsUpcoming(e, now)
	case FilterHighRisk:
		return IsHighRisk(e)
	case FilterOperational:
		return IsOperational(e)
	default:
		return true
	}
}

// matchesSearch is a case-insensitive substring match over name, model, serial number and inventory code
func matchesSearch(eq models.Equipment, term string) bool {
	term = strings.ToLower(term)
	for _, field := range []string{eq.Name, eq.Model, eq.SerialNumber, eq.InventoryCode} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
