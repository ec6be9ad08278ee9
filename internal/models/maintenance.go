package models

import "time"

// MaintenanceLog represents the maintenance_logs table
// A service event; never updated or deleted once written
type MaintenanceLog struct {
	ID            string          `gorm:"primaryKey;size:64" json:"id" yaml:"id"`
	EquipmentID   string          `gorm:"size:64;not null;index" json:"equipment_id" yaml:"-"`
	Seq           int             `gorm:"not null;default:0" json:"-" yaml:"-"` // insertion order within the equipment
	Date          time.Time       `gorm:"not null" json:"date" yaml:"date" validate:"required"`
	Technician    string          `gorm:"size:255;not null" json:"technician" yaml:"technician" validate:"required"`
	WorkPerformed string          `gorm:"size:255;not null" json:"work_performed" yaml:"work_performed" validate:"required"`
	PartsUsed     []string        `gorm:"serializer:json;type:text" json:"parts_used" yaml:"parts_used"`
	Notes         string          `gorm:"type:text" json:"notes" yaml:"notes"`
	Status        EquipmentStatus `gorm:"size:50;not null" json:"status" yaml:"status" validate:"equipment_status"`
}

// TableName specifies the table name for MaintenanceLog model
func (MaintenanceLog) TableName() string {
	return "maintenance_logs"
}
