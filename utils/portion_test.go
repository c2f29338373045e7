package utils

import (
	"testing"

	"github.com/lucas-hsi/melitusgym-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePortionScalesLinearly(t *testing.T) {
	per100 := models.NutrientProfile{
		models.NutrientCarbs:      28.1,
		models.NutrientProtein:    2.5,
		models.NutrientEnergyKcal: 128,
	}

	got, err := NormalizePortion(per100, 150)
	require.NoError(t, err)

	assert.InDelta(t, 42.15, got[models.NutrientCarbs], 1e-9)
	assert.InDelta(t, 3.75, got[models.NutrientProtein], 1e-9)
	assert.InDelta(t, 192, got[models.NutrientEnergyKcal], 1e-9)
}

func TestNormalizePortionIdentityAt100g(t *testing.T) {
	per100 := models.NutrientProfile{models.NutrientFat: 6.66}

	got, err := NormalizePortion(per100, 100)
	require.NoError(t, err)
	assert.InDelta(t, 6.66, got[models.NutrientFat], 1e-9)
}

func TestNormalizePortionKeepsAbsentKeysAbsent(t *testing.T) {
	per100 := models.NutrientProfile{models.NutrientCarbs: 10}

	got, err := NormalizePortion(per100, 50)
	require.NoError(t, err)

	_, hasSodium := got[models.NutrientSodiumMg]
	assert.False(t, hasSodium, "unknown nutrient must not appear as zero")
	assert.Len(t, got, 1)
}

func TestNormalizePortionRejectsNonPositiveGrams(t *testing.T) {
	per100 := models.NutrientProfile{models.NutrientCarbs: 10}

	for _, grams := range []float64{0, -1, -250} {
		_, err := NormalizePortion(per100, grams)
		assert.ErrorIs(t, err, ErrInvalidPortion, "grams=%v", grams)
	}
}

func TestNormalizePortionDoesNotMutateInput(t *testing.T) {
	per100 := models.NutrientProfile{models.NutrientCarbs: 28.1}

	_, err := NormalizePortion(per100, 37)
	require.NoError(t, err)
	assert.InDelta(t, 28.1, per100[models.NutrientCarbs], 1e-9)
}

func TestNormalizePortionRoundsToTwoDecimals(t *testing.T) {
	per100 := models.NutrientProfile{models.NutrientFiber: 1.234}

	got, err := NormalizePortion(per100, 33)
	require.NoError(t, err)
	// 1.234 * 0.33 = 0.40722 → 0.41
	assert.InDelta(t, 0.41, got[models.NutrientFiber], 1e-9)
}

func TestKJToKcal(t *testing.T) {
	assert.InDelta(t, 100, KJToKcal(418.4), 1e-9)
	assert.InDelta(t, 0, KJToKcal(0), 1e-9)
}
