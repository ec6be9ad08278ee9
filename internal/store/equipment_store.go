package store

import (
	"sync"

	"biomed-maintenance-tracker/internal/models"
	"biomed-maintenance-tracker/pkg/apperrors"
)

// EquipmentStore owns the equipment collection. Every change builds a new slice
// and swaps it in under the lock, so a slice returned by All is never written again.
type EquipmentStore struct {
	mu    sync.RWMutex
	items []models.Equipment
}

func NewEquipmentStore(initial []models.Equipment) *EquipmentStore {
	s := &EquipmentStore{}
	s.Replace(initial)
	return s
}

// All returns the current snapshot. Callers must treat it as read-only.
func (s *EquipmentStore) All() []models.Equipment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items
}

// Get returns a copy of the record with the given id
func (s *EquipmentStore) Get(id string) (models.Equipment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.items, id)
	if i < 0 {
		return models.Equipment{}, apperrors.ErrEquipmentNotFound
	}
	return s.items[i].Clone(), nil
}

// Replace swaps in a whole new collection, e.g. after loading from storage
func (s *EquipmentStore) Replace(list []models.Equipment) {
	next := make([]models.Equipment, len(list))
	for i, eq := range list {
		next[i] = withSequence(eq.Clone())
	}

	s.mu.Lock()
	s.items = next
	s.mu.Unlock()
}

// Add appends a new record. The id, serial number and inventory code must be unused.
// persist, when non-nil, runs before the swap and its error aborts the change.
func (s *EquipmentStore) Add(eq models.Equipment, persist func(models.Equipment) error) (models.Equipment, error) {
	eq = withSequence(eq.Clone())

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.items {
		if existing.ID == eq.ID || existing.SerialNumber == eq.SerialNumber || existing.InventoryCode == eq.InventoryCode {
			return models.Equipment{}, apperrors.ErrDuplicateEquipment
		}
	}

	if persist != nil {
		if err := persist(eq); err != nil {
			return models.Equipment{}, err
		}
	}

	next := make([]models.Equipment, len(s.items), len(s.items)+1)
	copy(next, s.items)
	s.items = append(next, eq)
	return eq.Clone(), nil
}

// AppendLog adds entry to the history of equipment id and moves the equipment to
// the status recorded on the entry
func (s *EquipmentStore) AppendLog(id string, entry models.MaintenanceLog, persist func(models.MaintenanceLog) error) (models.Equipment, error) {
	return s.update(id, func(eq *models.Equipment) error {
		entry.EquipmentID = eq.ID
		entry.Seq = len(eq.MaintenanceHistory)
		if persist != nil {
			if err := persist(entry); err != nil {
				return err
			}
		}
		eq.MaintenanceHistory = append(eq.MaintenanceHistory, entry)
		eq.Status = entry.Status
		return nil
	})
}

// AppendAssessment adds a to the risk history of equipment id
func (s *EquipmentStore) AppendAssessment(id string, a models.RiskAssessment, persist func(models.RiskAssessment) error) (models.Equipment, error) {
	return s.update(id, func(eq *models.Equipment) error {
		a.EquipmentID = eq.ID
		a.Seq = len(eq.RiskAssessments)
		if persist != nil {
			if err := persist(a); err != nil {
				return err
			}
		}
		eq.RiskAssessments = append(eq.RiskAssessments, a)
		return nil
	})
}

func (s *EquipmentStore) update(id string, change func(*models.Equipment) error) (models.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.items, id)
	if i < 0 {
		return models.Equipment{}, apperrors.ErrEquipmentNotFound
	}

	updated := s.items[i].Clone()
	if err := change(&updated); err != nil {
		return models.Equipment{}, err
	}

	next := make([]models.Equipment, len(s.items))
	copy(next, s.items)
	next[i] = updated
	s.items = next
	return updated.Clone(), nil
}

func indexOf(list []models.Equipment, id string) int {
	for i, eq := range list {
		if eq.ID == id {
			return i
		}
	}
	return -1
}

// withSequence numbers history entries by position so insertion order survives storage
func withSequence(eq models.Equipment) models.Equipment {
	for i := range eq.MaintenanceHistory {
		eq.MaintenanceHistory[i].EquipmentID = eq.ID
		eq.MaintenanceHistory[i].Seq = i
	}
	for i := range eq.RiskAssessments {
		eq.RiskAssessments[i].EquipmentID = eq.ID
		eq.RiskAssessments[i].Seq = i
	}
	return eq
}
