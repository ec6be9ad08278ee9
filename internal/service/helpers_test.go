package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"biomed-maintenance-tracker/internal/engine"
	"biomed-maintenance-tracker/internal/models"
	"biomed-maintenance-tracker/internal/store"
	"biomed-maintenance-tracker/pkg/validation"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

type auditEntry struct {
	userID, action, details string
}

type fakeAudit struct {
	mu      sync.Mutex
	entries []auditEntry
}

func (a *fakeAudit) CreateAuditLog(userID *string, action string, details string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	id := ""
	if userID != nil {
		id = *userID
	}
	a.entries = append(a.entries, auditEntry{userID: id, action: action, details: details})
	return nil
}

func (a *fakeAudit) actions() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.entries))
	for i, e := range a.entries {
		out[i] = e.action
	}
	return out
}

type fakeWriter struct {
	err         error
	equipment   []models.Equipment
	logs        []models.MaintenanceLog
	assessments []models.RiskAssessment
}

func (w *fakeWriter) CreateEquipment(eq *models.Equipment) error {
	if w.err != nil {
		return w.err
	}
	w.equipment = append(w.equipment, *eq)
	return nil
}

func (w *fakeWriter) CreateMaintenanceLog(entry *models.MaintenanceLog) error {
	if w.err != nil {
		return w.err
	}
	w.logs = append(w.logs, *entry)
	return nil
}

func (w *fakeWriter) CreateRiskAssessment(a *models.RiskAssessment) error {
	if w.err != nil {
		return w.err
	}
	w.assessments = append(w.assessments, *a)
	return nil
}

// fakeModel answers every prompt with reply, or fails with err
type fakeModel struct {
	reply   string
	err     error
	prompts []string
}

func (m *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	for _, msg := range messages {
		for _, part := range msg.Parts {
			if text, ok := part.(llms.TextContent); ok {
				m.prompts = append(m.prompts, text.Text)
			}
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: m.reply}}}, nil
}

func (m *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

var errBoom = errors.New("boom")

func baseEquipment(id string) models.Equipment {
	return models.Equipment{
		ID:                      id,
		Name:                    "Ventilator " + id,
		Model:                   "Respira Pro X",
		SerialNumber:            "SN-" + id,
		InventoryCode:           "ICU-" + id,
		Department:              models.DepartmentICU,
		Location:                "ICU, Bed 4",
		InstallationDate:        testNow.AddDate(0, 0, -100),
		Status:                  models.StatusOperational,
		MaintenanceIntervalDays: 90,
	}
}

// dueIn places the next service exactly d after testNow
func dueIn(eq models.Equipment, d time.Duration) models.Equipment {
	eq.MaintenanceIntervalDays = 30
	eq.InstallationDate = testNow.Add(d).AddDate(0, 0, -30)
	return eq
}

func newEquipmentService(writer EquipmentWriter, a AuditLogger, list ...models.Equipment) *EquipmentService {
	return NewEquipmentService(
		store.NewEquipmentStore(list),
		writer,
		validation.New(),
		a,
		zap.NewNop(),
		engine.Clock(fixedClock),
	)
}
