package services

import (
	"time"

	"github.com/lucas-hsi/melitusgym-sub000/models"
	"github.com/lucas-hsi/melitusgym-sub000/utils"
)

// DailySummary aggregates one day of meal logs and glucose readings.
type DailySummary struct {
	Date string `json:"date"`

	Meals          int                    `json:"meals"`
	TotalNutrients models.NutrientProfile `json:"total_nutrients"`
	InsulinApplied float64                `json:"insulin_applied_units"`

	Glucose *TypeStats `json:"glucose,omitempty"`
}

type SummaryService struct {
	meals    *MealLogService
	clinical *ClinicalService
}

func NewSummaryService(meals *MealLogService, clinical *ClinicalService) *SummaryService {
	return &SummaryService{meals: meals, clinical: clinical}
}

// Daily builds the summary for the local calendar day containing date.
func (s *SummaryService) Daily(userID uint, date time.Time) (*DailySummary, error) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.Add(24 * time.Hour)

	logs, err := s.meals.ListByDateRange(userID, start, end)
	if err != nil {
		return nil, err
	}

	out := &DailySummary{
		Date:           start.Format("2006-01-02"),
		Meals:          len(logs),
		TotalNutrients: models.NutrientProfile{},
	}
	for _, m := range logs {
		for k, v := range m.TotalNutrients {
			out.TotalNutrients[k] = utils.Round2(out.TotalNutrients[k] + v)
		}
		if m.InsulinAppliedUnits != nil {
			out.InsulinApplied += *m.InsulinAppliedUnits
		}
	}

	glucose, err := s.clinical.Stats(userID, models.MeasurementGlucose, start, end)
	if err != nil {
		return nil, err
	}
	if glucose.Count > 0 {
		out.Glucose = glucose
	}
	return out, nil
}
