package services

import (
	"testing"

	"github.com/lucas-hsi/melitusgym-sub000/models"
	"github.com/lucas-hsi/melitusgym-sub000/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func arrozCozido() models.FoodItem {
	return models.FoodItem{
		ID:     "taco-1",
		Source: models.SourceLocal,
		Name:   "Arroz, integral, cozido",
		NutrientsPer100g: models.NutrientProfile{
			models.NutrientCarbs:      28.1,
			models.NutrientProtein:    2.5,
			models.NutrientEnergyKcal: 123.5,
		},
	}
}

func feijaoCarioca() models.FoodItem {
	return models.FoodItem{
		ID:     "taco-2",
		Source: models.SourceLocal,
		Name:   "Feijão, carioca, cozido",
		NutrientsPer100g: models.NutrientProfile{
			models.NutrientCarbs:      10,
			models.NutrientProtein:    4.8,
			models.NutrientEnergyKcal: 76,
		},
	}
}

func TestDishAddLineNormalizesPortion(t *testing.T) {
	dish, err := Dish{}.AddLine(arrozCozido(), 150)
	require.NoError(t, err)
	require.Len(t, dish.Lines, 1)

	line := dish.Lines[0]
	assert.NotEmpty(t, line.LineID)
	assert.InDelta(t, 150, line.Grams, 1e-9)
	assert.InDelta(t, 42.15, line.Nutrients[models.NutrientCarbs], 1e-9)
	assert.InDelta(t, 3.75, line.Nutrients[models.NutrientProtein], 1e-9)
}

func TestDishAddLineRejectsInvalidGrams(t *testing.T) {
	dish := Dish{}
	_, err := dish.AddLine(arrozCozido(), 0)
	assert.ErrorIs(t, err, utils.ErrInvalidPortion)
	assert.Empty(t, dish.Lines)
}

func TestDishTotalsAggregateAcrossLines(t *testing.T) {
	dish, err := Dish{}.AddLine(arrozCozido(), 150)
	require.NoError(t, err)
	dish, err = dish.AddLine(feijaoCarioca(), 100)
	require.NoError(t, err)

	totals := dish.Totals()
	assert.InDelta(t, 52.15, totals[models.NutrientCarbs], 1e-9)
	assert.InDelta(t, 8.55, totals[models.NutrientProtein], 1e-9)
}

func TestDishRemoveLineLeavesOthersUntouched(t *testing.T) {
	dish, _ := Dish{}.AddLine(arrozCozido(), 150)
	dish, _ = dish.AddLine(feijaoCarioca(), 100)
	removed := dish.RemoveLine(dish.Lines[0].LineID)

	require.Len(t, removed.Lines, 1)
	assert.Equal(t, "taco-2", removed.Lines[0].Item.ID)
	assert.InDelta(t, 10, removed.Totals()[models.NutrientCarbs], 1e-9)

	// original snapshot is unchanged
	assert.Len(t, dish.Lines, 2)
}

func TestDishAdjustGramsRenormalizesOneLine(t *testing.T) {
	dish, _ := Dish{}.AddLine(arrozCozido(), 150)
	dish, _ = dish.AddLine(feijaoCarioca(), 100)

	adjusted, err := dish.AdjustGrams(dish.Lines[0].LineID, -50)
	require.NoError(t, err)

	assert.InDelta(t, 100, adjusted.Lines[0].Grams, 1e-9)
	assert.InDelta(t, 28.1, adjusted.Lines[0].Nutrients[models.NutrientCarbs], 1e-9)
	// the other line is untouched
	assert.InDelta(t, 10, adjusted.Lines[1].Nutrients[models.NutrientCarbs], 1e-9)
	assert.InDelta(t, 38.1, adjusted.Totals()[models.NutrientCarbs], 1e-9)
}

func TestDishAdjustGramsClampsAtZero(t *testing.T) {
	dish, _ := Dish{}.AddLine(arrozCozido(), 150)

	adjusted, err := dish.AdjustGrams(dish.Lines[0].LineID, -500)
	require.NoError(t, err)

	assert.InDelta(t, 0, adjusted.Lines[0].Grams, 1e-9)
	assert.Empty(t, adjusted.Lines[0].Nutrients)
	assert.Empty(t, adjusted.Totals())
}

func TestDishAdjustGramsUnknownLine(t *testing.T) {
	dish, _ := Dish{}.AddLine(arrozCozido(), 150)
	_, err := dish.AdjustGrams("no-such-line", 10)
	assert.Error(t, err)
}

func TestDishOperationsDoNotAliasSnapshots(t *testing.T) {
	dish, _ := Dish{}.AddLine(arrozCozido(), 150)
	adjusted, _ := dish.AdjustGrams(dish.Lines[0].LineID, 50)

	// mutating the new snapshot's profile must not leak into the old one
	adjusted.Lines[0].Nutrients[models.NutrientCarbs] = 999
	assert.InDelta(t, 42.15, dish.Lines[0].Nutrients[models.NutrientCarbs], 1e-9)
}

func TestDishToDoseEndToEnd(t *testing.T) {
	dish, _ := Dish{}.AddLine(arrozCozido(), 150)
	dish, _ = dish.AddLine(feijaoCarioca(), 100)

	totals := dish.Totals()
	res, err := utils.ComputeDose(utils.DefaultDoseConfig(), utils.DoseInput{
		TotalCarbs:  totals[models.NutrientCarbs],
		Sensitivity: 15,
	})
	require.NoError(t, err)

	assert.InDelta(t, 3.5, res.TotalDose, 1e-9)
	assert.InDelta(t, 4, res.DisplayUnits, 1e-9)
}
