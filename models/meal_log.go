package models

import (
	"time"

	"gorm.io/gorm"
)

// MealLogItem is the nutrition snapshot of one dish line at assembly time.
// Stored as JSON inside the meal log; never re-derived after persistence.
type MealLogItem struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Source    FoodSource      `json:"source"`
	Grams     float64         `json:"grams"`
	Nutrients NutrientProfile `json:"nutrients"`
}

// MealLog is one confirmed meal: the dish lines, their totals and the
// clinical context captured alongside them.
type MealLog struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null"`
	MealTime string    `gorm:"index"` // "café da manhã", "almoço", …
	MealDate time.Time `gorm:"index"`

	Items          []MealLogItem   `gorm:"serializer:json"`
	TotalNutrients NutrientProfile `gorm:"serializer:json"`
	Notes          string
	PhotoURL       string

	CarbohydratesTotal *float64

	GlucoseValue         *float64
	GlucoseMeasured      bool
	GlucoseMeasureTiming string // "before" | "after"

	// Suggested vs actually administered — always stored separately.
	InsulinRecommendedUnits *float64
	InsulinAppliedUnits     *float64

	RecordedAt time.Time
}
