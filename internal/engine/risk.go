package engine

import "biomed-maintenance-tracker/internal/models"

// Upper bounds (inclusive) of each risk band. Anything above RPNCriticalMax is Severe.
const (
	RPNNegligibleMax = 10
	RPNLowMax        = 30
	RPNModerateMax   = 50
	RPNHighMax       = 75
	RPNCriticalMax   = 100
)

// RiskLevelInfo is the display metadata attached to a risk band
type RiskLevelInfo struct {
	Level  models.RiskLevel `json:"level"`
	Label  string           `json:"label"`
	Range  string           `json:"range"`
	Action string           `json:"recommended_action"`
}

var riskLevelInfo = map[models.RiskLevel]RiskLevelInfo{
	models.RiskNegligible: {
		Level:  models.RiskNegligible,
		Label:  "Negligible",
		Range:  "1-10",
		Action: "No action required; routine monitoring only",
	},
	models.RiskLow: {
		Level:  models.RiskLow,
		Label:  "Low",
		Range:  "11-30",
		Action: "Acceptable, but schedule regular preventive maintenance",
	},
	models.RiskModerate: {
		Level:  models.RiskModerate,
		Label:  "Moderate",
		Range:  "31-50",
		Action: "Review and consider mitigation (e.g., software updates, minor servicing)",
	},
	models.RiskHigh: {
		Level:  models.RiskHigh,
		Label:  "High",
		Range:  "51-75",
		Action: "Requires corrective maintenance: prioritize for scheduled maintenance",
	},
	models.RiskCritical: {
		Level:  models.RiskCritical,
		Label:  "Critical",
		Range:  "76-100",
		Action: "Immediate intervention needed; possible equipment failure risk",
	},
	models.RiskSevere: {
		Level:  models.RiskSevere,
		Label:  "Severe",
		Range:  ">100",
		Action: "Urgent action required; equipment may need immediate repair, decommissioning, or replacement",
	},
}

// ClassifyRisk maps an RPN to its risk band. It is total over all integers:
// values below the scoring range fall into Negligible, values above it into Severe.
func ClassifyRisk(rpn int) models.RiskLevel {
	switch {
	case rpn <= RPNNegligibleMax:
		return models.RiskNegligible
	case rpn <= RPNLowMax:
		return models.RiskLow
	case rpn <= RPNModerateMax:
		return models.RiskModerate
	case rpn <= RPNHighMax:
		return models.RiskHigh
	case rpn <= RPNCriticalMax:
		return models.RiskCritical
	default:
		return models.RiskSevere
	}
}

// DescribeRisk returns the display metadata for level. Unknown levels describe as Negligible.
func DescribeRisk(level models.RiskLevel) RiskLevelInfo {
	if info, ok := riskLevelInfo[level]; ok {
		return info
	}
	return riskLevelInfo[models.RiskNegligible]
}

// ClassifyRiskInfo classifies rpn and attaches its display metadata
func ClassifyRiskInfo(rpn int) RiskLevelInfo {
	return DescribeRisk(ClassifyRisk(rpn))
}

// RiskTable returns the band metadata ordered from least to most severe
func RiskTable() []RiskLevelInfo {
	out := make([]RiskLevelInfo, 0, len(models.RiskLevels))
	for _, level := range models.RiskLevels {
		out = append(out, riskLevelInfo[level])
	}
	return out
}

// ComputeRPN returns likelihood × severity × detectability
func ComputeRPN(likelihood, severity, detectability int) int {
	return likelihood * severity * detectability
}

// LatestAssessment returns the assessment with the greatest AssessmentDate.
// When several share that date the last inserted one wins.
func LatestAssessment(eq models.Equipment) (models.RiskAssessment, bool) {
	best := -1
	for i, a := range eq.RiskAssessments {
		if best < 0 || !a.AssessmentDate.Before(eq.RiskAssessments[best].AssessmentDate) {
			best = i
		}
	}
	if best < 0 {
		return models.RiskAssessment{}, false
	}
	return eq.RiskAssessments[best], true
}

// CurrentRisk classifies the latest assessment's RPN. Equipment that has never
// been assessed reports Negligible.
func CurrentRisk(eq models.Equipment) models.RiskLevel {
	latest, ok := LatestAssessment(eq)
	if !ok {
		return models.RiskNegligible
	}
	return ClassifyRisk(latest.RPN)
}

// IsHighRiskLevel reports whether level is High or worse
func IsHighRiskLevel(level models.RiskLevel) bool {
	return level.Rank() >= models.RiskHigh.Rank()
}
