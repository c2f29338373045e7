package models

import (
	"time"

	"gorm.io/gorm"
)

type MeasurementType string

const (
	MeasurementGlucose       MeasurementType = "GLUCOSE"        // mg/dL
	MeasurementInsulin       MeasurementType = "INSULIN"        // units
	MeasurementBloodPressure MeasurementType = "BLOOD_PRESSURE" // mmHg
	MeasurementWeight        MeasurementType = "WEIGHT"         // kg
	MeasurementHeartRate     MeasurementType = "HEART_RATE"     // bpm
)

type MeasurementPeriod string

const (
	PeriodFasting  MeasurementPeriod = "FASTING"
	PeriodPreMeal  MeasurementPeriod = "PRE_MEAL"
	PeriodPostMeal MeasurementPeriod = "POST_MEAL"
	PeriodBedtime  MeasurementPeriod = "BEDTIME"
	PeriodRandom   MeasurementPeriod = "RANDOM"
)

// ClinicalLog is a single measurement (glucose reading, insulin application,
// blood pressure, …). SecondaryValue carries the diastolic for BP.
type ClinicalLog struct {
	gorm.Model
	UserID          uint            `gorm:"index;not null"`
	MeasurementType MeasurementType `gorm:"size:24;index;not null"`
	Value           float64
	SecondaryValue  *float64
	Unit            string `gorm:"size:16"`
	Period          MeasurementPeriod
	Notes           string
	MeasuredAt      time.Time `gorm:"index"`
}
