package service

import (
	"fmt"
	"sync"
	"time"

	"biomed-maintenance-tracker/internal/engine"
	"biomed-maintenance-tracker/internal/models"
	"biomed-maintenance-tracker/internal/store"
	"biomed-maintenance-tracker/pkg/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EquipmentWriter persists appended records. repository.EquipmentRepository
// implements it; a nil writer keeps everything in memory.
type EquipmentWriter interface {
	CreateEquipment(eq *models.Equipment) error
	CreateMaintenanceLog(entry *models.MaintenanceLog) error
	CreateRiskAssessment(a *models.RiskAssessment) error
}

type EquipmentService struct {
	store     *store.EquipmentStore
	writer    EquipmentWriter
	validator *validation.Validator
	audit     AuditLogger
	log       *zap.Logger
	clock     engine.Clock

	mu       sync.RWMutex
	onChange []func()
}

func NewEquipmentService(
	store *store.EquipmentStore,
	writer EquipmentWriter,
	validator *validation.Validator,
	audit AuditLogger,
	log *zap.Logger,
	clock engine.Clock,
) *EquipmentService {
	return &EquipmentService{
		store:     store,
		writer:    writer,
		validator: validator,
		audit:     audit,
		log:       log.Named("equipment"),
		clock:     clock,
	}
}

// EquipmentDetail is one record with both histories newest first and its risk band described
type EquipmentDetail struct {
	engine.EquipmentWithNextService
	LastServiceDate    *time.Time              `json:"last_service_date"`
	Risk               engine.RiskLevelInfo    `json:"risk"`
	LatestAssessment   *models.RiskAssessment  `json:"latest_assessment"`
	MaintenanceHistory []models.MaintenanceLog `json:"maintenance_history"`
	RiskAssessments    []models.RiskAssessment `json:"risk_assessments"`
}

// LogServiceInput describes a completed service event. A nil Date means now.
type LogServiceInput struct {
	Date          *time.Time             `json:"date"`
	Technician    string                 `json:"technician"`
	WorkPerformed string                 `json:"work_performed"`
	PartsUsed     []string               `json:"parts_used"`
	Notes         string                 `json:"notes"`
	Status        models.EquipmentStatus `json:"status"`
}

// AssessmentInput carries the three scored factors. A nil AssessmentDate means now.
type AssessmentInput struct {
	Likelihood     int        `json:"likelihood"`
	Severity       int        `json:"severity"`
	Detectability  int        `json:"detectability"`
	ActionRequired string     `json:"action_required"`
	AssessmentDate *time.Time `json:"assessment_date"`
}

// OnChange registers fn to run after every successful change to the register
func (s *EquipmentService) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}

func (s *EquipmentService) changed() {
	s.mu.RLock()
	hooks := append([]func(){}, s.onChange...)
	s.mu.RUnlock()

	for _, fn := range hooks {
		fn()
	}
}

// Now reads the service clock
func (s *EquipmentService) Now() time.Time {
	return s.clock()
}

// Snapshot annotates the current collection
func (s *EquipmentService) Snapshot() []engine.EquipmentWithNextService {
	return engine.Annotate(s.store.All())
}

// List returns the annotated records matching q
func (s *EquipmentService) List(q engine.ListQuery) []engine.EquipmentWithNextService {
	return engine.FilterList(s.Snapshot(), q, s.clock())
}

// Dashboard builds the dashboard view at the current time
func (s *EquipmentService) Dashboard() engine.Dashboard {
	return engine.BuildDashboard(s.Snapshot(), s.clock())
}

// Get returns the detail view of one record
func (s *EquipmentService) Get(id string) (*EquipmentDetail, error) {
	eq, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	return buildDetail(eq), nil
}

func buildDetail(eq models.Equipment) *EquipmentDetail {
	detail := &EquipmentDetail{
		EquipmentWithNextService: engine.AnnotateOne(eq),
		MaintenanceHistory:       engine.SortedHistory(eq),
		RiskAssessments:          engine.SortedAssessments(eq),
	}
	detail.Risk = engine.DescribeRisk(detail.CurrentRisk)

	if last, ok := engine.LastService(eq); ok {
		date := last.Date
		detail.LastServiceDate = &date
	}
	if latest, ok := engine.LatestAssessment(eq); ok {
		detail.LatestAssessment = &latest
	}
	return detail
}

// Add validates and registers new equipment. Missing ids are generated, a missing
// status defaults to Operational, and RPN and risk level of any initial
// assessments are recomputed from their factors.
func (s *EquipmentService) Add(actorID string, eq models.Equipment) (*EquipmentDetail, error) {
	if eq.ID == "" {
		eq.ID = uuid.NewString()
	}
	if eq.Status == "" {
		eq.Status = models.StatusOperational
	}
	eq.CreatedAt = s.clock()

	for i := range eq.MaintenanceHistory {
		if eq.MaintenanceHistory[i].ID == "" {
			eq.MaintenanceHistory[i].ID = uuid.NewString()
		}
	}
	for i := range eq.RiskAssessments {
		a := &eq.RiskAssessments[i]
		if a.ID == "" {
			a.ID = uuid.NewString()
		}
		a.RPN = engine.ComputeRPN(a.Likelihood, a.Severity, a.Detectability)
		a.RiskLevel = engine.ClassifyRisk(a.RPN)
	}

	if err := s.validator.Struct(eq); err != nil {
		return nil, err
	}

	var persist func(models.Equipment) error
	if s.writer != nil {
		persist = func(e models.Equipment) error {
			if err := s.writer.CreateEquipment(&e); err != nil {
				return fmt.Errorf("failed to save equipment: %w", err)
			}
			return nil
		}
	}

	added, err := s.store.Add(eq, persist)
	if err != nil {
		return nil, err
	}

	s.log.Info("equipment added", zap.String("equipment_id", added.ID), zap.String("department", string(added.Department)))
	audit(s.audit, s.log, actorID, "equipment_added", fmt.Sprintf("Added %s (%s)", added.Name, added.InventoryCode))
	s.changed()

	return buildDetail(added), nil
}

// LogService appends a service event. The equipment takes on the status recorded on the event.
func (s *EquipmentService) LogService(actorID, equipmentID string, in LogServiceInput) (*EquipmentDetail, error) {
	entry := models.MaintenanceLog{
		ID:            uuid.NewString(),
		EquipmentID:   equipmentID,
		Technician:    in.Technician,
		WorkPerformed: in.WorkPerformed,
		PartsUsed:     append([]string{}, in.PartsUsed...),
		Notes:         in.Notes,
		Status:        in.Status,
	}
	if in.Date != nil {
		entry.Date = *in.Date
	} else {
		entry.Date = s.clock()
	}
	if entry.Status == "" {
		entry.Status = models.StatusOperational
	}

	if err := s.validator.Struct(entry); err != nil {
		return nil, err
	}

	var persist func(models.MaintenanceLog) error
	if s.writer != nil {
		persist = func(l models.MaintenanceLog) error {
			if err := s.writer.CreateMaintenanceLog(&l); err != nil {
				return fmt.Errorf("failed to save maintenance log: %w", err)
			}
			return nil
		}
	}

	updated, err := s.store.AppendLog(equipmentID, entry, persist)
	if err != nil {
		return nil, err
	}

	s.log.Info("service logged",
		zap.String("equipment_id", equipmentID),
		zap.String("technician", entry.Technician),
		zap.String("status", string(entry.Status)),
	)
	audit(s.audit, s.log, actorID, "service_logged", fmt.Sprintf("%s on %s: %s", entry.Technician, updated.Name, entry.WorkPerformed))
	s.changed()

	return buildDetail(updated), nil
}

// SubmitAssessment scores a new risk assessment and appends it
func (s *EquipmentService) SubmitAssessment(actorID, equipmentID string, in AssessmentInput) (*models.RiskAssessment, error) {
	rpn := engine.ComputeRPN(in.Likelihood, in.Severity, in.Detectability)
	a := models.RiskAssessment{
		ID:             uuid.NewString(),
		EquipmentID:    equipmentID,
		Likelihood:     in.Likelihood,
		Severity:       in.Severity,
		Detectability:  in.Detectability,
		RPN:            rpn,
		RiskLevel:      engine.ClassifyRisk(rpn),
		ActionRequired: in.ActionRequired,
	}
	if in.AssessmentDate != nil {
		a.AssessmentDate = *in.AssessmentDate
	} else {
		a.AssessmentDate = s.clock()
	}

	if err := s.validator.Struct(a); err != nil {
		return nil, err
	}

	var persist func(models.RiskAssessment) error
	if s.writer != nil {
		persist = func(ra models.RiskAssessment) error {
			if err := s.writer.CreateRiskAssessment(&ra); err != nil {
				return fmt.Errorf("failed to save risk assessment: %w", err)
			}
			return nil
		}
	}

	updated, err := s.store.AppendAssessment(equipmentID, a, persist)
	if err != nil {
		return nil, err
	}

	saved := updated.RiskAssessments[len(updated.RiskAssessments)-1]
	s.log.Info("risk assessed",
		zap.String("equipment_id", equipmentID),
		zap.Int("rpn", saved.RPN),
		zap.String("risk_level", string(saved.RiskLevel)),
	)
	audit(s.audit, s.log, actorID, "risk_assessed", fmt.Sprintf("%s scored RPN %d (%s)", updated.Name, saved.RPN, saved.RiskLevel))
	s.changed()

	return &saved, nil
}
