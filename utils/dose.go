package utils

import (
	"errors"
	"math"
)

// ErrInvalidSensitivity is returned when the sensitivity factor is not
// positive. The calculation halts; no default is substituted.
var ErrInvalidSensitivity = errors.New("sensitivity must be greater than zero g/U")

// DoseConfig centralizes the therapy constants the calculator needs. It is
// passed in explicitly — never read from globals — so per-user overrides and
// future clinical revisions stay auditable.
type DoseConfig struct {
	CorrectionFactorMgDl float64 // mg/dL lowered per unit of insulin
	DefaultSensitivity   float64 // g of carbs per unit, used when input omits it
	GlucoseTargetMgDl    float64 // correction target
}

// DefaultDoseConfig mirrors the product defaults: 1 U corrects 50 mg/dL,
// covers 15 g of carbs, toward a 100 mg/dL target.
func DefaultDoseConfig() DoseConfig {
	return DoseConfig{
		CorrectionFactorMgDl: 50,
		DefaultSensitivity:   15,
		GlucoseTargetMgDl:    100,
	}
}

type DoseInput struct {
	TotalCarbs            float64  `json:"total_carbs"`
	Sensitivity           float64  `json:"sensitivity"` // g carbs per unit
	GlycemicAdjustmentPct float64  `json:"glycemic_adjustment_pct"`
	Measured              bool     `json:"measured"`
	GlucoseValue          *float64 `json:"glucose_value,omitempty"`
	GlucoseTargetValue    *float64 `json:"glucose_target_value,omitempty"`
}

// DoseResult is immutable once computed; a new input produces a new result.
type DoseResult struct {
	BaseDose       float64 `json:"base_dose"`
	CorrectionDose float64 `json:"correction_dose"`
	TotalDose      float64 `json:"total_dose"`
	DisplayUnits   float64 `json:"display_units"`
}

// ComputeDose suggests a bolus dose from carbohydrate totals plus an
// optional glucose correction. It only ever suggests — the applied dose is a
// separate user-editable field on the meal log.
//
// A glucose reading at or below target contributes zero correction, never a
// negative one: this calculator must not subtract insulin on its own.
func ComputeDose(cfg DoseConfig, in DoseInput) (DoseResult, error) {
	sensitivity := in.Sensitivity
	if sensitivity == 0 {
		sensitivity = cfg.DefaultSensitivity
	}
	if sensitivity <= 0 {
		return DoseResult{}, ErrInvalidSensitivity
	}

	base := in.TotalCarbs / sensitivity

	adjPct := in.GlycemicAdjustmentPct
	if adjPct < 0 {
		adjPct = 0
	}
	if adjPct > 100 {
		adjPct = 100
	}
	adjusted := base * (1 + adjPct/100)

	var correction float64
	if in.Measured && in.GlucoseValue != nil {
		target := cfg.GlucoseTargetMgDl
		if in.GlucoseTargetValue != nil {
			target = *in.GlucoseTargetValue
		}
		if *in.GlucoseValue > target && cfg.CorrectionFactorMgDl > 0 {
			correction = (*in.GlucoseValue - target) / cfg.CorrectionFactorMgDl
		}
	}

	total := Round1(adjusted + correction)

	return DoseResult{
		BaseDose:       Round1(base),
		CorrectionDose: Round1(correction),
		TotalDose:      total,
		DisplayUnits:   DisplayUnits(total),
	}, nil
}

// DisplayUnits applies the clinical display rounding policy: a zero dose
// displays as zero, any positive dose up to 1.5 U displays as 1 U (no
// fractional sub-unit suggestions below the smallest deliverable increment),
// and anything above rounds half-up to the nearest whole unit (3.5 → 4).
func DisplayUnits(totalDose float64) float64 {
	if totalDose <= 0 {
		return 0
	}
	if totalDose <= 1.5 {
		return 1
	}
	return math.Round(totalDose)
}
