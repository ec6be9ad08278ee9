package seed

import (
	"time"

	"biomed-maintenance-tracker/internal/engine"
	"biomed-maintenance-tracker/internal/models"
)

// UrgentLead is how far ahead of "now" the ECG machine's next service falls,
// so a fresh start always has one pending notification.
const UrgentLead = 2*time.Hour + 30*time.Minute

type logSpec struct {
	id, technician, work, notes string
	date                        time.Time
	parts                       []string
	status                      models.EquipmentStatus
}

type assessmentSpec struct {
	l, s, d int
	action  string
	date    time.Time
}

func entry(id string, date time.Time, technician, work string, parts []string, notes string, status models.EquipmentStatus) logSpec {
	return logSpec{id: id, date: date, technician: technician, work: work, parts: parts, notes: notes, status: status}
}

func assess(l, s, d int, action string, date time.Time) assessmentSpec {
	return assessmentSpec{l: l, s: s, d: d, action: action, date: date}
}

func device(eq models.Equipment, logs []logSpec, assessments []assessmentSpec) models.Equipment {
	for _, l := range logs {
		eq.MaintenanceHistory = append(eq.MaintenanceHistory, models.MaintenanceLog{
			ID:            l.id,
			EquipmentID:   eq.ID,
			Seq:           len(eq.MaintenanceHistory),
			Date:          l.date,
			Technician:    l.technician,
			WorkPerformed: l.work,
			PartsUsed:     append([]string{}, l.parts...),
			Notes:         l.notes,
			Status:        l.status,
		})
	}
	for i, a := range assessments {
		rpn := engine.ComputeRPN(a.l, a.s, a.d)
		eq.RiskAssessments = append(eq.RiskAssessments, models.RiskAssessment{
			ID:             eq.ID + "-ra-" + string(rune('a'+i)),
			EquipmentID:    eq.ID,
			Seq:            i,
			Likelihood:     a.l,
			Severity:       a.s,
			Detectability:  a.d,
			RPN:            rpn,
			RiskLevel:      engine.ClassifyRisk(rpn),
			ActionRequired: a.action,
			AssessmentDate: a.date,
		})
	}
	return eq
}

// Equipment builds the demo register with every date placed relative to now
func Equipment(now time.Time) []models.Equipment {
	daysAgo := func(days int) time.Time { return now.AddDate(0, 0, -days) }
	urgent := func(intervalDays int) time.Time { return now.Add(UrgentLead).AddDate(0, 0, -intervalDays) }

	const (
		operational = models.StatusOperational
		needs       = models.StatusNeedsMaintenance
		under       = models.StatusUnderMaintenance
		outOfSvc    = models.StatusOutOfService
	)

	return []models.Equipment{
		device(models.Equipment{
			ID: "eq-001", Name: "Ventilator", Model: "Respira Pro X", SerialNumber: "SN-A12345",
			Department: models.DepartmentICU, Location: "ICU, Bed 4", Manufacturer: "MedTech Inc.",
			PurchaseDate: daysAgo(730), InstallationDate: daysAgo(720), Status: needs,
			InventoryCode: "ICU-VNT-01", MaintenanceIntervalDays: 90,
		}, []logSpec{
			entry("log-001a", daysAgo(180), "John Doe", "Preventive Maintenance", []string{"Air Filter"}, "Routine check, replaced filter.", operational),
			entry("log-001b", daysAgo(30), "Jane Smith", "Calibration", nil, "Recalibrated pressure sensors.", operational),
		}, []assessmentSpec{
			assess(4, 5, 2, "Review alarm system software.", daysAgo(5)),
		}),
		device(models.Equipment{
			ID: "eq-002", Name: "Defibrillator", Model: "CardioShock 500", SerialNumber: "SN-B67890",
			Department: models.DepartmentEmergency, Location: "ER, Crash Cart 1", Manufacturer: "LifeLine Solutions",
			PurchaseDate: daysAgo(1095), InstallationDate: daysAgo(1090), Status: operational,
			InventoryCode: "ER-DEF-01", MaintenanceIntervalDays: 180,
		}, []logSpec{
			entry("log-002a", daysAgo(90), "John Doe", "Battery Replacement", []string{"Li-ion Battery Pack"}, "Replaced battery pack and tested charge cycles.", operational),
		}, []assessmentSpec{
			assess(2, 5, 1, "Routine monitoring.", daysAgo(90)),
		}),
		device(models.Equipment{
			ID: "eq-003", Name: "X-ray Machine", Model: "ImageX 3000", SerialNumber: "SN-C11223",
			Department: models.DepartmentRadiology, Location: "Radiology, Room 2", Manufacturer: "RayView Technologies",
			PurchaseDate: daysAgo(1825), InstallationDate: daysAgo(1820), Status: outOfSvc,
			InventoryCode: "RAD-XRAY-02", MaintenanceIntervalDays: 365,
		}, []logSpec{
			entry("log-003a", daysAgo(2), "System", "Tube Failure Detected", nil, "X-ray tube has failed. Requires immediate replacement.", outOfSvc),
		}, []assessmentSpec{
			assess(5, 4, 1, "Acceptable, but schedule regular preventive maintenance", daysAgo(365)),
			assess(5, 5, 5, "Immediate replacement of X-ray tube required.", daysAgo(2)),
		}),
		device(models.Equipment{
			ID: "eq-004", Name: "Dental Chair", Model: "ComfortDent Pro", SerialNumber: "SN-D44556",
			Department: models.DepartmentDental, Location: "Dental Clinic, Suite 3", Manufacturer: "SmileMakers Dental",
			PurchaseDate: daysAgo(365), InstallationDate: daysAgo(360), Status: operational,
			InventoryCode: "DNT-CHR-03", MaintenanceIntervalDays: 180,
		}, []logSpec{
			entry("log-004a", daysAgo(10), "Emily White", "Hydraulic Fluid Check", nil, "Checked and topped off hydraulic fluid. System operating smoothly.", operational),
		}, []assessmentSpec{
			assess(1, 2, 2, "Routine monitoring.", daysAgo(10)),
		}),
		device(models.Equipment{
			ID: "eq-005", Name: "Ultrasound Machine", Model: "SonoScan HD", SerialNumber: "SN-E77889",
			Department: models.DepartmentObstetricsGynecology, Location: "OBGYN Clinic, Room A", Manufacturer: "MedTech Inc.",
			PurchaseDate: daysAgo(500), InstallationDate: daysAgo(495), Status: under,
			InventoryCode: "OB-US-01", MaintenanceIntervalDays: 120,
		}, []logSpec{
			entry("log-005a", daysAgo(1), "Jane Smith", "Transducer Repair", []string{"Transducer Cable"}, "Replacing faulty transducer cable. Awaiting part delivery.", under),
		}, []assessmentSpec{
			assess(3, 3, 3, "Schedule preventive maintenance.", daysAgo(30)),
		}),
		device(models.Equipment{
			ID: "eq-006", Name: "Patient Monitor", Model: "VitalTrack 8", SerialNumber: "SN-F99001",
			Department: models.DepartmentSurgicalWard, Location: "Surgical Ward, Bed 12", Manufacturer: "LifeLine Solutions",
			PurchaseDate: daysAgo(800), InstallationDate: daysAgo(790), Status: needs,
			InventoryCode: "SW-MON-12", MaintenanceIntervalDays: 90,
		}, nil, []assessmentSpec{
			assess(4, 4, 2, "ECG module showing intermittent failures. Requires inspection.", daysAgo(7)),
		}),
		device(models.Equipment{
			ID: "eq-007", Name: "ECG Machine", Model: "CardioGraph 12", SerialNumber: "SN-G12121",
			Department: models.DepartmentMedicalWard, Location: "Ward 3, Station A", Manufacturer: "MedTech Inc.",
			PurchaseDate: daysAgo(300), InstallationDate: daysAgo(295), Status: operational,
			InventoryCode: "MW-ECG-04", MaintenanceIntervalDays: 30,
		}, []logSpec{
			entry("log-007a", urgent(30), "John Doe", "Preventive Maintenance", []string{"Electrodes"}, "Routine check, replaced electrodes.", operational),
		}, []assessmentSpec{
			assess(2, 3, 2, "Schedule regular maintenance.", daysAgo(30)),
		}),
		device(models.Equipment{
			ID: "eq-008", Name: "Microscope", Model: "LabScope 5", SerialNumber: "SN-H23232",
			Department: models.DepartmentLaboratory, Location: "Lab, Station 3", Manufacturer: "OptiCore Labs",
			PurchaseDate: daysAgo(400), InstallationDate: daysAgo(395), Status: operational,
			InventoryCode: "LAB-MIC-05", MaintenanceIntervalDays: 180,
		}, []logSpec{
			entry("log-008a", daysAgo(100), "Emily White", "Cleaned Lenses", nil, "Objective lenses cleaned and calibrated.", operational),
		}, []assessmentSpec{
			assess(1, 2, 1, "Routine monitoring.", daysAgo(100)),
		}),
		device(models.Equipment{
			ID: "eq-009", Name: "Infusion Pump", Model: "FluidFlow 300", SerialNumber: "SN-I34343",
			Department: models.DepartmentPediatricWard, Location: "Peds, Room 201", Manufacturer: "MedTech Inc.",
			PurchaseDate: daysAgo(150), InstallationDate: daysAgo(145), Status: needs,
			InventoryCode: "PED-INF-02", MaintenanceIntervalDays: 60,
		}, nil, []assessmentSpec{
			assess(3, 4, 2, "Flow rate sensor requires calibration.", daysAgo(3)),
		}),
		device(models.Equipment{
			ID: "eq-010", Name: "Anesthesia Machine", Model: "SomaSafe 9000", SerialNumber: "SN-J45454",
			Department: models.DepartmentOperationRoom, Location: "OR 3", Manufacturer: "LifeLine Solutions",
			PurchaseDate: daysAgo(900), InstallationDate: daysAgo(890), Status: operational,
			InventoryCode: "OR-ANM-03", MaintenanceIntervalDays: 120,
		}, []logSpec{
			entry("log-010a", daysAgo(50), "John Doe", "Vaporizer check", []string{"Sealant Ring"}, "Replaced vaporizer sealant ring and passed leak test.", operational),
		}, []assessmentSpec{
			assess(2, 5, 2, "Routine maintenance schedule on track.", daysAgo(50)),
		}),
		device(models.Equipment{
			ID: "eq-011", Name: "Autoclave", Model: "SteriPro 20L", SerialNumber: "SN-K56565",
			Department: models.DepartmentDental, Location: "Sterilization Room", Manufacturer: "SmileMakers Dental",
			PurchaseDate: daysAgo(600), InstallationDate: daysAgo(595), Status: under,
			InventoryCode: "DNT-ACL-01", MaintenanceIntervalDays: 90,
		}, []logSpec{
			entry("log-011a", daysAgo(1), "Jane Smith", "Pressure Valve Replacement", []string{"Pressure Release Valve"}, "Valve failed during cycle. Awaiting new part.", under),
		}, []assessmentSpec{
			assess(4, 3, 1, "Monitor pressure cycles after repair.", daysAgo(1)),
		}),
		device(models.Equipment{
			ID: "eq-012", Name: "Centrifuge", Model: "SpinMaster 5000", SerialNumber: "SN-L67676",
			Department: models.DepartmentLaboratory, Location: "Lab, Bench 2", Manufacturer: "OptiCore Labs",
			PurchaseDate: daysAgo(1200), InstallationDate: daysAgo(1195), Status: operational,
			InventoryCode: "LAB-CEN-02", MaintenanceIntervalDays: 365,
		}, []logSpec{
			entry("log-012a", daysAgo(200), "Emily White", "Motor brush replacement", []string{"Carbon Brushes"}, "Routine replacement of motor brushes.", operational),
		}, []assessmentSpec{
			assess(2, 2, 2, "Routine monitoring.", daysAgo(200)),
		}),
		device(models.Equipment{
			ID: "eq-013", Name: "Blood Pressure Monitor", Model: "CuffCheck Basic", SerialNumber: "SN-M78787",
			Department: models.DepartmentOPD, Location: "OPD, Room 5", Manufacturer: "MedTech Inc.",
			PurchaseDate: daysAgo(180), InstallationDate: daysAgo(180), Status: operational,
			InventoryCode: "OPD-BPM-05", MaintenanceIntervalDays: 365,
		}, nil, []assessmentSpec{
			assess(1, 2, 1, "Annual calibration check.", daysAgo(180)),
		}),
		device(models.Equipment{
			ID: "eq-014", Name: "Surgical Light", Model: "LumaField Pro", SerialNumber: "SN-N89898",
			Department: models.DepartmentSurgicalWard, Location: "OR 2", Manufacturer: "RayView Technologies",
			PurchaseDate: daysAgo(2000), InstallationDate: daysAgo(1990), Status: operational,
			InventoryCode: "SW-LGT-02", MaintenanceIntervalDays: 730,
		}, []logSpec{
			entry("log-014a", daysAgo(400), "John Doe", "Bulb Replacement", []string{"LED Bulb Array"}, "Replaced primary bulb array.", operational),
		}, []assessmentSpec{
			assess(2, 3, 1, "Routine monitoring.", daysAgo(400)),
		}),
		device(models.Equipment{
			ID: "eq-015", Name: "Hemodialysis Machine", Model: "PuraFlow 100", SerialNumber: "SN-O90909",
			Department: models.DepartmentDialysisUnit, Location: "Dialysis, Station 6", Manufacturer: "LifeLine Solutions",
			PurchaseDate: daysAgo(600), InstallationDate: daysAgo(590), Status: needs,
			InventoryCode: "DIA-HDM-06", MaintenanceIntervalDays: 180,
		}, []logSpec{
			entry("log-015a", daysAgo(170), "Jane Smith", "Filter change", []string{"Dialyzer Filter"}, "Routine filter change performed.", operational),
		}, []assessmentSpec{
			assess(4, 5, 3, "Blood leak detector is reporting false positives. Immediate inspection required.", daysAgo(4)),
		}),
		device(models.Equipment{
			ID: "eq-016", Name: "Fetal Monitor", Model: "BabyBeat 2", SerialNumber: "SN-P13579",
			Department: models.DepartmentMaternityWard, Location: "L&D, Room 3", Manufacturer: "MedTech Inc.",
			PurchaseDate: daysAgo(250), InstallationDate: daysAgo(245), Status: operational,
			InventoryCode: "MAT-FET-03", MaintenanceIntervalDays: 90,
		}, nil, []assessmentSpec{
			assess(2, 4, 2, "Schedule regular maintenance.", daysAgo(245)),
		}),
		device(models.Equipment{
			ID: "eq-017", Name: "Incubator", Model: "NurturePod 1", SerialNumber: "SN-Q24680",
			Department: models.DepartmentNICU, Location: "NICU, Bay 1", Manufacturer: "LifeLine Solutions",
			PurchaseDate: daysAgo(1000), InstallationDate: daysAgo(990), Status: operational,
			InventoryCode: "NICU-INC-01", MaintenanceIntervalDays: 180,
		}, []logSpec{
			entry("log-017a", daysAgo(30), "John Doe", "Temperature sensor calibration", nil, "Calibrated primary and secondary temperature sensors.", operational),
		}, []assessmentSpec{
			assess(2, 5, 1, "Routine monitoring.", daysAgo(30)),
		}),
		device(models.Equipment{
			ID: "eq-018", Name: "Treadmill", Model: "CardioRun 5K", SerialNumber: "SN-R11224",
			Department: models.DepartmentPhysiotherapy, Location: "Rehab Gym", Manufacturer: "FitWell Inc.",
			PurchaseDate: daysAgo(800), InstallationDate: daysAgo(790), Status: outOfSvc,
			InventoryCode: "PHY-TRD-01", MaintenanceIntervalDays: 365,
		}, []logSpec{
			entry("log-018a", daysAgo(10), "System", "Motor Overload", nil, "Drive motor failed. Unit is out of service until motor is replaced.", outOfSvc),
		}, []assessmentSpec{
			assess(3, 2, 1, "Routine monitoring.", daysAgo(365)),
		}),
		device(models.Equipment{
			ID: "eq-019", Name: "MRI Machine", Model: "Magneton Spectra", SerialNumber: "SN-S33445",
			Department: models.DepartmentRadiology, Location: "Radiology, MRI Suite", Manufacturer: "RayView Technologies",
			PurchaseDate: daysAgo(2500), InstallationDate: daysAgo(2450), Status: under,
			InventoryCode: "RAD-MRI-01", MaintenanceIntervalDays: 730,
		}, []logSpec{
			entry("log-019a", daysAgo(3), "Jane Smith", "Cooling System Flush", []string{"Helium (Top-up)"}, "Performing scheduled cryogen top-up and cooling system flush. System unavailable for 48 hours.", under),
		}, []assessmentSpec{
			assess(2, 5, 4, "Monitor helium levels closely post-service.", daysAgo(3)),
		}),
	}
}
