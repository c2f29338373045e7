package services

import (
	"errors"
	"log"
	"time"

	"github.com/lucas-hsi/melitusgym-sub000/config"
	"github.com/lucas-hsi/melitusgym-sub000/models"
	"github.com/lucas-hsi/melitusgym-sub000/utils"
)

// ErrEmptyDish rejects assembling a meal log with no food lines.
var ErrEmptyDish = errors.New("a meal log must contain at least one food line")

type MealLogService struct{}

func NewMealLogService() *MealLogService {
	return &MealLogService{}
}

// ClinicalContext is the glucose reading captured with the meal, if any.
type ClinicalContext struct {
	GlucoseValue  *float64 `json:"glucose_value,omitempty"`
	Measured      bool     `json:"measured"`
	MeasureTiming string   `json:"measure_timing,omitempty"` // "before" | "after"
}

// MealMeta carries the user-facing labels of the record.
type MealMeta struct {
	MealTime string     `json:"meal_time"` // "café da manhã", "almoço", …
	MealDate *time.Time `json:"meal_date,omitempty"`
	Notes    string     `json:"notes,omitempty"`
	PhotoURL string     `json:"photo_url,omitempty"`
}

// AssembleMealLog packages a dish snapshot, the dosing suggestion and the
// clinical context into a persistable record. Lines, totals and dosing are
// copied, never aliased: mutating the live dish afterwards must not reach
// into an already-assembled log. When no meal date is given it defaults to
// now at assembly time — not at persistence time, which may be deferred by
// an offline queue.
func AssembleMealLog(
	userID uint,
	dish Dish,
	dosing *utils.DoseResult,
	appliedUnits *float64,
	cc ClinicalContext,
	meta MealMeta,
) (*models.MealLog, error) {
	if len(dish.Lines) == 0 {
		return nil, ErrEmptyDish
	}

	items := make([]models.MealLogItem, 0, len(dish.Lines))
	for _, l := range dish.Lines {
		items = append(items, models.MealLogItem{
			ID:        l.Item.ID,
			Name:      l.Item.Name,
			Source:    l.Item.Source,
			Grams:     l.Grams,
			Nutrients: l.Nutrients.Clone(),
		})
	}

	totals := dish.Totals()
	now := time.Now()
	mealDate := now
	if meta.MealDate != nil {
		mealDate = *meta.MealDate
	}

	rec := &models.MealLog{
		UserID:               userID,
		MealTime:             meta.MealTime,
		MealDate:             mealDate,
		Items:                items,
		TotalNutrients:       totals,
		Notes:                meta.Notes,
		PhotoURL:             meta.PhotoURL,
		GlucoseValue:         copyFloat(cc.GlucoseValue),
		GlucoseMeasured:      cc.Measured,
		GlucoseMeasureTiming: cc.MeasureTiming,
		InsulinAppliedUnits:  copyFloat(appliedUnits),
		RecordedAt:           now,
	}
	if carbs, ok := totals[models.NutrientCarbs]; ok {
		rec.CarbohydratesTotal = &carbs
	}
	if dosing != nil {
		d := dosing.TotalDose
		rec.InsulinRecommendedUnits = &d
	}
	return rec, nil
}

// Create persists an assembled record and emits companion clinical entries
// one-way. A persistence failure leaves the record intact for the caller to
// retry or queue locally; a failed clinical emission never blocks the save.
func (s *MealLogService) Create(rec *models.MealLog) (*models.MealLog, error) {
	if err := config.DB.Create(rec).Error; err != nil {
		return nil, err
	}
	s.emitClinical(rec)
	return rec, nil
}

func (s *MealLogService) emitClinical(rec *models.MealLog) {
	clinical := NewClinicalService()

	if rec.GlucoseMeasured && rec.GlucoseValue != nil {
		period := models.PeriodPreMeal
		if rec.GlucoseMeasureTiming == "after" {
			period = models.PeriodPostMeal
		}
		_, err := clinical.Record(rec.UserID, models.ClinicalLog{
			MeasurementType: models.MeasurementGlucose,
			Value:           *rec.GlucoseValue,
			Unit:            "mg/dL",
			Period:          period,
			MeasuredAt:      rec.RecordedAt,
		})
		if err != nil {
			log.Printf("meal %d: glucose emission skipped: %v", rec.ID, err)
		}
	}

	if rec.InsulinAppliedUnits != nil && *rec.InsulinAppliedUnits > 0 {
		_, err := clinical.Record(rec.UserID, models.ClinicalLog{
			MeasurementType: models.MeasurementInsulin,
			Value:           *rec.InsulinAppliedUnits,
			Unit:            "U",
			Period:          models.PeriodPreMeal,
			Notes:           "bolus logged with meal",
			MeasuredAt:      rec.RecordedAt,
		})
		if err != nil {
			log.Printf("meal %d: insulin emission skipped: %v", rec.ID, err)
		}
	}
}

func (s *MealLogService) Get(userID, mealID uint) (*models.MealLog, error) {
	var rec models.MealLog
	err := config.DB.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *MealLogService) ListByDateRange(userID uint, from, to time.Time) ([]models.MealLog, error) {
	var recs []models.MealLog
	err := config.DB.
		Where("user_id = ? AND meal_date >= ? AND meal_date < ?", userID, from, to).
		Order("meal_date DESC").
		Find(&recs).Error
	return recs, err
}

func (s *MealLogService) ListRecent(userID uint, limit int) ([]models.MealLog, error) {
	if limit <= 0 {
		limit = 3
	}
	var recs []models.MealLog
	err := config.DB.
		Where("user_id = ?", userID).
		Order("meal_date DESC").
		Limit(limit).
		Find(&recs).Error
	return recs, err
}

// Update replaces the whole record: a persisted log is immutable except
// through wholesale replacement.
func (s *MealLogService) Update(userID, mealID uint, replacement *models.MealLog) (*models.MealLog, error) {
	var existing models.MealLog
	if err := config.DB.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&existing).Error; err != nil {
		return nil, err
	}

	replacement.ID = existing.ID
	replacement.UserID = userID
	replacement.CreatedAt = existing.CreatedAt
	if err := config.DB.Save(replacement).Error; err != nil {
		return nil, err
	}
	return replacement, nil
}

func (s *MealLogService) Delete(userID, mealID uint) error {
	return config.DB.
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.MealLog{}).Error
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
