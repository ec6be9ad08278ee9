package repository

import (
	"errors"

	"biomed-maintenance-tracker/internal/models"
	"biomed-maintenance-tracker/pkg/apperrors"

	"gorm.io/gorm"
)

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepo(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

func orderBySeq(db *gorm.DB) *gorm.DB {
	return db.Order("seq ASC")
}

// ListEquipment loads the whole register with both histories in insertion order.
// Records created in the same instant fall back to id order.
func (r *EquipmentRepository) ListEquipment() ([]models.Equipment, error) {
	var list []models.Equipment
	err := r.db.
		Preload("MaintenanceHistory", orderBySeq).
		Preload("RiskAssessments", orderBySeq).
		Order("created_at ASC, id ASC").
		Find(&list).Error
	return list, err
}

// GetEquipmentByID retrieves a single record with its histories
func (r *EquipmentRepository) GetEquipmentByID(id string) (*models.Equipment, error) {
	var eq models.Equipment
	err := r.db.
		Preload("MaintenanceHistory", orderBySeq).
		Preload("RiskAssessments", orderBySeq).
		Where("id = ?", id).
		First(&eq).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEquipmentNotFound
		}
		return nil, err
	}
	return &eq, nil
}

// CountEquipment is used at startup to decide whether the register needs seeding
func (r *EquipmentRepository) CountEquipment() (int64, error) {
	var count int64
	err := r.db.Model(&models.Equipment{}).Count(&count).Error
	return count, err
}

// CreateEquipment inserts a record together with any history it carries
func (r *EquipmentRepository) CreateEquipment(eq *models.Equipment) error {
	return r.db.Create(eq).Error
}

// CreateMaintenanceLog appends a log and moves the equipment to the log's status
func (r *EquipmentRepository) CreateMaintenanceLog(entry *models.MaintenanceLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		return tx.Model(&models.Equipment{}).
			Where("id = ?", entry.EquipmentID).
			Update("status", entry.Status).Error
	})
}

// CreateRiskAssessment appends an assessment
func (r *EquipmentRepository) CreateRiskAssessment(a *models.RiskAssessment) error {
	return r.db.Create(a).Error
}
