package models

import "time"

// RiskLevel is one of six ordered risk bands derived from an RPN
type RiskLevel string

const (
	RiskNegligible RiskLevel = "Negligible"
	RiskLow        RiskLevel = "Low"
	RiskModerate   RiskLevel = "Moderate"
	RiskHigh       RiskLevel = "High"
	RiskCritical   RiskLevel = "Critical"
	RiskSevere     RiskLevel = "Severe"
)

// RiskLevels lists the bands from least to most severe
var RiskLevels = []RiskLevel{
	RiskNegligible,
	RiskLow,
	RiskModerate,
	RiskHigh,
	RiskCritical,
	RiskSevere,
}

// Rank returns the position of r in severity order, or -1 for unknown values
func (r RiskLevel) Rank() int {
	for i, level := range RiskLevels {
		if r == level {
			return i
		}
	}
	return -1
}

// RiskAssessment represents the risk_assessments table
// Likelihood, severity and detectability are scored 1-5; RPN is their product
type RiskAssessment struct {
	ID             string    `gorm:"primaryKey;size:64" json:"id" yaml:"id"`
	EquipmentID    string    `gorm:"size:64;not null;index" json:"equipment_id" yaml:"-"`
	Seq            int       `gorm:"not null;default:0" json:"-" yaml:"-"`
	Likelihood     int       `gorm:"not null" json:"likelihood" yaml:"likelihood" validate:"min=1,max=5"`
	Severity       int       `gorm:"not null" json:"severity" yaml:"severity" validate:"min=1,max=5"`
	Detectability  int       `gorm:"not null" json:"detectability" yaml:"detectability" validate:"min=1,max=5"`
	RPN            int       `gorm:"column:rpn;not null" json:"rpn" yaml:"rpn"`
	RiskLevel      RiskLevel `gorm:"size:20;not null" json:"risk_level" yaml:"risk_level"`
	ActionRequired string    `gorm:"type:text" json:"action_required" yaml:"action_required" validate:"required"`
	AssessmentDate time.Time `gorm:"not null" json:"assessment_date" yaml:"assessment_date" validate:"required"`
}

// TableName specifies the table name for RiskAssessment model
func (RiskAssessment) TableName() string {
	return "risk_assessments"
}
