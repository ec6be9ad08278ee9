package service

import (
	"fmt"
	"sync"

	"biomed-maintenance-tracker/internal/engine"
	"biomed-maintenance-tracker/pkg/apperrors"

	"go.uber.org/zap"
)

// NotificationService holds the current notification set. Acknowledged entries
// stay out until the next Regenerate, which rebuilds the set from scratch. The
// set is regenerated whenever the equipment register changes.
type NotificationService struct {
	equipment *EquipmentService
	audit     AuditLogger
	log       *zap.Logger

	mu  sync.RWMutex
	set []engine.AppNotification
}

func NewNotificationService(equipment *EquipmentService, audit AuditLogger, log *zap.Logger) *NotificationService {
	s := &NotificationService{
		equipment: equipment,
		audit:     audit,
		log:       log.Named("notifications"),
		set:       []engine.AppNotification{},
	}
	equipment.OnChange(func() { s.Regenerate() })
	return s
}

// Regenerate replaces the set with the notifications due at the current time
func (s *NotificationService) Regenerate() []engine.AppNotification {
	next := engine.GenerateNotifications(s.equipment.Snapshot(), s.equipment.Now())

	s.mu.Lock()
	s.set = next
	s.mu.Unlock()

	s.log.Debug("notifications regenerated", zap.Int("count", len(next)))
	return next
}

// List returns the current set
func (s *NotificationService) List() []engine.AppNotification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]engine.AppNotification{}, s.set...)
}

// Acknowledge removes one notification from the current set
func (s *NotificationService) Acknowledge(actorID, id string) error {
	s.mu.Lock()
	remaining, found := engine.Acknowledge(s.set, id)
	if found {
		s.set = remaining
	}
	s.mu.Unlock()

	if !found {
		return apperrors.ErrNotificationNotFound
	}

	audit(s.audit, s.log, actorID, "notification_acknowledged", fmt.Sprintf("Acknowledged %s", id))
	return nil
}
