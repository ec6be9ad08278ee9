package service

import (
	"context"
	"time"

	"biomed-maintenance-tracker/internal/engine"

	"go.uber.org/zap"
)

// DashboardObserver receives the figures of each regeneration cycle.
// metrics.Collector implements it.
type DashboardObserver interface {
	Observe(list []engine.EquipmentWithNextService, dash engine.Dashboard, pending int)
}

type WorkerService struct {
	equipment     *EquipmentService
	notifications *NotificationService
	observer      DashboardObserver
	interval      time.Duration
	log           *zap.Logger
}

func NewWorkerService(
	equipment *EquipmentService,
	notifications *NotificationService,
	observer DashboardObserver,
	interval time.Duration,
	log *zap.Logger,
) *WorkerService {
	return &WorkerService{
		equipment:     equipment,
		notifications: notifications,
		observer:      observer,
		interval:      interval,
		log:           log.Named("worker"),
	}
}

// Start regenerates notifications once, then again on every tick until ctx is done
func (w *WorkerService) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.log.Info("background worker started", zap.Duration("interval", w.interval))
	w.RunOnce()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("background worker stopped")
			return
		case <-ticker.C:
			w.RunOnce()
		}
	}
}

// RunOnce performs a single regeneration cycle
func (w *WorkerService) RunOnce() {
	set := w.notifications.Regenerate()

	if w.observer == nil {
		return
	}

	now := w.equipment.Now()
	list := w.equipment.Snapshot()
	w.observer.Observe(list, engine.BuildDashboard(list, now), len(set))
}
