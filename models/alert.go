package models

import "time"

type Alert struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index"`
	Type      string    `gorm:"size:24"` // "hypo" | "hyper" | "info"
	Severity  string    `gorm:"size:12"` // "info" | "caution" | "high"
	Message   string    `gorm:"type:text"`
	CreatedAt time.Time
}
