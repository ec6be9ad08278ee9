package models

import "time"

// Department is one of the fixed hospital units equipment can be assigned to
type Department string

const (
	DepartmentICU                  Department = "Intensive Care Unit"
	DepartmentEmergency            Department = "Emergency Department"
	DepartmentRadiology            Department = "Radiology"
	DepartmentDental               Department = "Dental Clinic"
	DepartmentObstetricsGynecology Department = "Obstetrics & Gynecology"
	DepartmentSurgicalWard         Department = "Surgical Ward"
	DepartmentMedicalWard          Department = "Medical Ward"
	DepartmentLaboratory           Department = "Laboratory"
	DepartmentPediatricWard        Department = "Pediatric Ward"
	DepartmentOperationRoom        Department = "Operation Room"
	DepartmentOPD                  Department = "Outpatient Department"
	DepartmentDialysisUnit         Department = "Dialysis Unit"
	DepartmentMaternityWard        Department = "Maternity Ward"
	DepartmentNICU                 Department = "Neonatal Intensive Care Unit"
	DepartmentPhysiotherapy        Department = "Physiotherapy"
)

// Departments lists every known department in display order
var Departments = []Department{
	DepartmentICU,
	DepartmentEmergency,
	DepartmentRadiology,
	DepartmentDental,
	DepartmentObstetricsGynecology,
	DepartmentSurgicalWard,
	DepartmentMedicalWard,
	DepartmentLaboratory,
	DepartmentPediatricWard,
	DepartmentOperationRoom,
	DepartmentOPD,
	DepartmentDialysisUnit,
	DepartmentMaternityWard,
	DepartmentNICU,
	DepartmentPhysiotherapy,
}

// IsValid reports whether d is one of the fixed departments
func (d Department) IsValid() bool {
	for _, known := range Departments {
		if d == known {
			return true
		}
	}
	return false
}

// EquipmentStatus is the operational state of a device
type EquipmentStatus string

const (
	StatusOperational      EquipmentStatus = "Operational"
	StatusNeedsMaintenance EquipmentStatus = "Needs Maintenance"
	StatusUnderMaintenance EquipmentStatus = "Under Maintenance"
	StatusOutOfService     EquipmentStatus = "Out of Service"
)

// EquipmentStatuses lists every status value
var EquipmentStatuses = []EquipmentStatus{
	StatusOperational,
	StatusNeedsMaintenance,
	StatusUnderMaintenance,
	StatusOutOfService,
}

// IsValid reports whether s is a known status
func (s EquipmentStatus) IsValid() bool {
	for _, known := range EquipmentStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Equipment represents the equipment table
// One physical biomedical device with its append-only service and risk history
type Equipment struct {
	ID                      string          `gorm:"primaryKey;size:64" json:"id" yaml:"id"`
	Name                    string          `gorm:"size:255;not null" json:"name" yaml:"name" validate:"required"`
	Model                   string          `gorm:"size:255;not null" json:"model" yaml:"model" validate:"required"`
	SerialNumber            string          `gorm:"size:100;not null;uniqueIndex" json:"serial_number" yaml:"serial_number" validate:"required"`
	InventoryCode           string          `gorm:"size:100;not null;uniqueIndex" json:"inventory_code" yaml:"inventory_code" validate:"required"`
	Manufacturer            string          `gorm:"size:255" json:"manufacturer" yaml:"manufacturer"`
	Department              Department      `gorm:"size:100;not null;index" json:"department" yaml:"department" validate:"department"`
	Location                string          `gorm:"size:255" json:"location" yaml:"location"`
	PurchaseDate            time.Time       `json:"purchase_date" yaml:"purchase_date"`
	InstallationDate        time.Time       `gorm:"not null" json:"installation_date" yaml:"installation_date" validate:"required"`
	Status                  EquipmentStatus `gorm:"size:50;not null;default:'Operational'" json:"status" yaml:"status" validate:"equipment_status"`
	MaintenanceIntervalDays int             `gorm:"not null" json:"maintenance_interval_days" yaml:"maintenance_interval_days" validate:"gt=0"`
	CreatedAt               time.Time       `json:"created_at" yaml:"-"`

	// Relationships, kept in insertion order
	MaintenanceHistory []MaintenanceLog `gorm:"foreignKey:EquipmentID" json:"maintenance_history" yaml:"maintenance_history" validate:"dive"`
	RiskAssessments    []RiskAssessment `gorm:"foreignKey:EquipmentID" json:"risk_assessments" yaml:"risk_assessments" validate:"dive"`
}

// TableName specifies the table name for Equipment model
func (Equipment) TableName() string {
	return "equipment"
}

// Clone returns a copy whose history slices do not alias the receiver's
func (e Equipment) Clone() Equipment {
	out := e
	out.MaintenanceHistory = make([]MaintenanceLog, len(e.MaintenanceHistory))
	for i, l := range e.MaintenanceHistory {
		out.MaintenanceHistory[i] = l
		out.MaintenanceHistory[i].PartsUsed = append([]string(nil), l.PartsUsed...)
	}
	out.RiskAssessments = append([]RiskAssessment(nil), e.RiskAssessments...)
	return out
}
