package services

import (
	"testing"
	"time"

	"github.com/lucas-hsi/melitusgym-sub000/models"
	"github.com/lucas-hsi/melitusgym-sub000/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleMealLogRejectsEmptyDish(t *testing.T) {
	_, err := AssembleMealLog(1, Dish{}, nil, nil, ClinicalContext{}, MealMeta{})
	assert.ErrorIs(t, err, ErrEmptyDish)
}

func TestAssembleMealLogSnapshotsDish(t *testing.T) {
	dish, _ := Dish{}.AddLine(arrozCozido(), 150)
	dish, _ = dish.AddLine(feijaoCarioca(), 100)

	rec, err := AssembleMealLog(7, dish, nil, nil, ClinicalContext{}, MealMeta{MealTime: "almoço"})
	require.NoError(t, err)

	assert.Equal(t, uint(7), rec.UserID)
	assert.Equal(t, "almoço", rec.MealTime)
	require.Len(t, rec.Items, 2)
	assert.Equal(t, "taco-1", rec.Items[0].ID)
	assert.InDelta(t, 150, rec.Items[0].Grams, 1e-9)
	assert.InDelta(t, 52.15, rec.TotalNutrients[models.NutrientCarbs], 1e-9)
	require.NotNil(t, rec.CarbohydratesTotal)
	assert.InDelta(t, 52.15, *rec.CarbohydratesTotal, 1e-9)
}

func TestAssembleMealLogCopiesNotAliases(t *testing.T) {
	dish, _ := Dish{}.AddLine(arrozCozido(), 150)

	applied := 3.0
	rec, err := AssembleMealLog(1, dish, nil, &applied, ClinicalContext{}, MealMeta{})
	require.NoError(t, err)

	// mutating the live dish after assembly must not reach the record
	dish.Lines[0].Nutrients[models.NutrientCarbs] = 999
	assert.InDelta(t, 42.15, rec.Items[0].Nutrients[models.NutrientCarbs], 1e-9)

	applied = 9
	assert.InDelta(t, 3.0, *rec.InsulinAppliedUnits, 1e-9)
}

func TestAssembleMealLogCarriesDoseSuggestion(t *testing.T) {
	dish, _ := Dish{}.AddLine(arrozCozido(), 150)

	dose, err := utils.ComputeDose(utils.DefaultDoseConfig(), utils.DoseInput{
		TotalCarbs:  dish.Totals()[models.NutrientCarbs],
		Sensitivity: 15,
	})
	require.NoError(t, err)

	rec, err := AssembleMealLog(1, dish, &dose, nil, ClinicalContext{}, MealMeta{})
	require.NoError(t, err)

	require.NotNil(t, rec.InsulinRecommendedUnits)
	assert.InDelta(t, dose.TotalDose, *rec.InsulinRecommendedUnits, 1e-9)
	assert.Nil(t, rec.InsulinAppliedUnits, "suggested and applied doses are separate fields")
}

func TestAssembleMealLogClinicalContext(t *testing.T) {
	dish, _ := Dish{}.AddLine(arrozCozido(), 150)

	glucose := 145.0
	rec, err := AssembleMealLog(1, dish, nil, nil, ClinicalContext{
		GlucoseValue:  &glucose,
		Measured:      true,
		MeasureTiming: "before",
	}, MealMeta{})
	require.NoError(t, err)

	require.NotNil(t, rec.GlucoseValue)
	assert.InDelta(t, 145, *rec.GlucoseValue, 1e-9)
	assert.True(t, rec.GlucoseMeasured)
	assert.Equal(t, "before", rec.GlucoseMeasureTiming)
}

func TestAssembleMealLogDefaultsDates(t *testing.T) {
	dish, _ := Dish{}.AddLine(arrozCozido(), 150)

	before := time.Now()
	rec, err := AssembleMealLog(1, dish, nil, nil, ClinicalContext{}, MealMeta{})
	require.NoError(t, err)
	after := time.Now()

	assert.False(t, rec.MealDate.Before(before) || rec.MealDate.After(after))
	assert.Equal(t, rec.RecordedAt, rec.MealDate, "assembly time stamps both fields")
}

func TestAssembleMealLogExplicitDate(t *testing.T) {
	dish, _ := Dish{}.AddLine(arrozCozido(), 150)

	when := time.Date(2026, 8, 20, 12, 30, 0, 0, time.Local)
	rec, err := AssembleMealLog(1, dish, nil, nil, ClinicalContext{}, MealMeta{MealDate: &when})
	require.NoError(t, err)

	assert.True(t, rec.MealDate.Equal(when))
}
