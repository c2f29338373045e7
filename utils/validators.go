package utils

import (
	"fmt"

	"github.com/lucas-hsi/melitusgym-sub000/models"
)

// Plausibility bounds for clinical measurements. Values outside these are
// almost certainly data-entry mistakes and are rejected before persistence.
const (
	GlucoseMinMgDl = 20
	GlucoseMaxMgDl = 600

	InsulinMinUnits = 0.5
	InsulinMaxUnits = 100

	SystolicMin  = 70
	SystolicMax  = 250
	DiastolicMin = 40
	DiastolicMax = 150

	WeightMinKg = 10
	WeightMaxKg = 400

	HeartRateMin = 30
	HeartRateMax = 220
)

// ValidateMeasurement checks a clinical value against the plausible range
// for its type. SecondaryValue is the diastolic for blood pressure.
func ValidateMeasurement(t models.MeasurementType, value float64, secondary *float64) error {
	switch t {
	case models.MeasurementGlucose:
		if value < GlucoseMinMgDl || value > GlucoseMaxMgDl {
			return fmt.Errorf("glucose %.1f mg/dL outside plausible range [%d, %d]", value, GlucoseMinMgDl, GlucoseMaxMgDl)
		}
	case models.MeasurementInsulin:
		if value < InsulinMinUnits || value > InsulinMaxUnits {
			return fmt.Errorf("insulin %.1f U outside plausible range [%.1f, %d]", value, InsulinMinUnits, InsulinMaxUnits)
		}
	case models.MeasurementBloodPressure:
		if value < SystolicMin || value > SystolicMax {
			return fmt.Errorf("systolic %.0f mmHg outside plausible range [%d, %d]", value, SystolicMin, SystolicMax)
		}
		if secondary == nil {
			return fmt.Errorf("blood pressure requires a diastolic value")
		}
		if *secondary < DiastolicMin || *secondary > DiastolicMax {
			return fmt.Errorf("diastolic %.0f mmHg outside plausible range [%d, %d]", *secondary, DiastolicMin, DiastolicMax)
		}
	case models.MeasurementWeight:
		if value < WeightMinKg || value > WeightMaxKg {
			return fmt.Errorf("weight %.1f kg outside plausible range [%d, %d]", value, WeightMinKg, WeightMaxKg)
		}
	case models.MeasurementHeartRate:
		if value < HeartRateMin || value > HeartRateMax {
			return fmt.Errorf("heart rate %.0f bpm outside plausible range [%d, %d]", value, HeartRateMin, HeartRateMax)
		}
	default:
		return fmt.Errorf("unknown measurement type %q", t)
	}
	return nil
}

// GlucoseAlertLevel classifies a reading against the alerting thresholds.
// Returns the alert type and severity, or ok=false for an in-range reading.
func GlucoseAlertLevel(valueMgDl float64) (typ, severity string, ok bool) {
	switch {
	case valueMgDl < 54:
		return "hypo", "high", true
	case valueMgDl < 70:
		return "hypo", "caution", true
	case valueMgDl > 250:
		return "hyper", "high", true
	case valueMgDl > 180:
		return "hyper", "caution", true
	}
	return "", "", false
}
