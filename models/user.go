package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	FullName string

	// Body metrics for the profile card
	HeightCm float64
	WeightKg float64

	// Therapy settings used to default dosing inputs. Zero means "use the
	// configured default" — a user never dosing insulin simply leaves these.
	SensitivityGPerUnit   float64 // g of carbs covered by 1 U
	CorrectionFactorMgDl  float64 // mg/dL lowered by 1 U
	GlucoseTargetMgDl     float64
	GlycemicAdjustmentPct float64 // % bump for high-GI meals
}
