package services

import (
	"time"

	"github.com/lucas-hsi/melitusgym-sub000/config"
	"github.com/lucas-hsi/melitusgym-sub000/models"
	"github.com/lucas-hsi/melitusgym-sub000/utils"
)

type ClinicalService struct{}

func NewClinicalService() *ClinicalService {
	return &ClinicalService{}
}

// Record validates and persists one measurement. Glucose readings that fall
// outside the alerting thresholds additionally go through the alert bus.
func (s *ClinicalService) Record(userID uint, entry models.ClinicalLog) (*models.ClinicalLog, error) {
	if err := utils.ValidateMeasurement(entry.MeasurementType, entry.Value, entry.SecondaryValue); err != nil {
		return nil, err
	}

	entry.UserID = userID
	if entry.MeasuredAt.IsZero() {
		entry.MeasuredAt = time.Now()
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}

	if entry.MeasurementType == models.MeasurementGlucose {
		if typ, severity, out := utils.GlucoseAlertLevel(entry.Value); out {
			EmitGlucoseAlert(userID, typ, severity, entry.Value, glucoseAlertMessage(typ))
		}
	}
	return &entry, nil
}

func glucoseAlertMessage(typ string) string {
	if typ == "hypo" {
		return "Glicemia baixa: verifique e corrija com carboidrato rápido."
	}
	return "Glicemia alta: considere uma dose de correção."
}

func (s *ClinicalService) List(userID uint, t models.MeasurementType, from, to *time.Time) ([]models.ClinicalLog, error) {
	q := config.DB.Where("user_id = ?", userID)
	if t != "" {
		q = q.Where("measurement_type = ?", t)
	}
	if from != nil && to != nil {
		q = q.Where("measured_at >= ? AND measured_at < ?", *from, *to)
	}
	var logs []models.ClinicalLog
	err := q.Order("measured_at DESC").Find(&logs).Error
	return logs, err
}

// TypeStats summarizes one measurement type over a window.
type TypeStats struct {
	MeasurementType models.MeasurementType `json:"measurement_type"`
	Count           int64                  `json:"count"`
	AvgValue        float64                `json:"avg_value"`
	MinValue        float64                `json:"min_value"`
	MaxValue        float64                `json:"max_value"`
	LastMeasurement *time.Time             `json:"last_measurement,omitempty"`
}

func (s *ClinicalService) Stats(userID uint, t models.MeasurementType, from, to time.Time) (*TypeStats, error) {
	base := config.DB.
		Model(&models.ClinicalLog{}).
		Where("user_id = ? AND measurement_type = ? AND measured_at >= ? AND measured_at < ?",
			userID, t, from, to)

	out := &TypeStats{MeasurementType: t}
	if err := base.Count(&out.Count).Error; err != nil {
		return nil, err
	}
	if out.Count == 0 {
		return out, nil
	}

	row := struct {
		Avg float64
		Min float64
		Max float64
	}{}
	if err := base.
		Select("AVG(value) AS avg, MIN(value) AS min, MAX(value) AS max").
		Scan(&row).Error; err != nil {
		return nil, err
	}
	out.AvgValue = row.Avg
	out.MinValue = row.Min
	out.MaxValue = row.Max

	var last models.ClinicalLog
	if err := base.Order("measured_at DESC").First(&last).Error; err == nil {
		out.LastMeasurement = &last.MeasuredAt
	}
	return out, nil
}
