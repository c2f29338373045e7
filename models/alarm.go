package models

import (
	"time"

	"gorm.io/gorm"
)

// Alarm is a user-scheduled reminder (glucose check, medication, meal).
// The scheduler pushes it once when due and stamps NotifiedAt.
type Alarm struct {
	gorm.Model
	UserID     uint   `gorm:"index;not null"`
	Title      string `gorm:"not null"`
	Body       string
	Kind       string    `gorm:"size:24"` // "glucose" | "medication" | "meal"
	DueAt      time.Time `gorm:"index;not null"`
	Enabled    bool      `gorm:"default:true"`
	NotifiedAt *time.Time
}
