package seed

import (
	"fmt"
	"os"
	"time"

	"biomed-maintenance-tracker/internal/engine"
	"biomed-maintenance-tracker/internal/models"
	"biomed-maintenance-tracker/pkg/validation"

	"gopkg.in/yaml.v3"
)

// Fixture is the on-disk shape of a SEED_FILE
type Fixture struct {
	Equipment []models.Equipment `yaml:"equipment"`
}

// LoadFile reads an equipment register from a YAML fixture. RPNs and risk
// levels are derived from the factors; any record failing validation fails the load.
func LoadFile(path string) ([]models.Equipment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var fx Fixture
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	v := validation.New()
	for i := range fx.Equipment {
		eq := &fx.Equipment[i]
		for j := range eq.MaintenanceHistory {
			eq.MaintenanceHistory[j].EquipmentID = eq.ID
			eq.MaintenanceHistory[j].Seq = j
		}
		for j := range eq.RiskAssessments {
			eq.RiskAssessments[j].EquipmentID = eq.ID
			eq.RiskAssessments[j].Seq = j
			a := &eq.RiskAssessments[j]
			a.RPN = engine.ComputeRPN(a.Likelihood, a.Severity, a.Detectability)
			a.RiskLevel = engine.ClassifyRisk(a.RPN)
		}
		if err := v.Struct(*eq); err != nil {
			return nil, fmt.Errorf("seed equipment %q: %w", eq.ID, err)
		}
	}

	return fx.Equipment, nil
}

// StampCreated gives records without a creation time one a second apart from
// now, in list order, so the register loads back in the same order.
func StampCreated(list []models.Equipment, now time.Time) {
	for i := range list {
		if list[i].CreatedAt.IsZero() {
			list[i].CreatedAt = now.Add(time.Duration(i) * time.Second)
		}
	}
}
