package utils

import (
	"errors"
	"math"

	"github.com/lucas-hsi/melitusgym-sub000/models"
)

// ErrInvalidPortion is returned for a non-positive gram amount. The caller
// must not aggregate the line.
var ErrInvalidPortion = errors.New("portion must be greater than zero grams")

// Round1 rounds to one decimal, half away from zero. Dose values use this.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 rounds to two decimals. Nutrient values keep two decimals so small
// portions of low-density foods don't collapse to zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// NormalizePortion scales a per-100g nutrient profile to an arbitrary gram
// portion. Keys absent from the input stay absent in the output: an unknown
// sodium value must not silently become "0 mg sodium". Pure — safe to call
// on every portion adjustment.
func NormalizePortion(profile models.NutrientProfile, grams float64) (models.NutrientProfile, error) {
	if grams <= 0 {
		return nil, ErrInvalidPortion
	}
	out := make(models.NutrientProfile, len(profile))
	for k, v := range profile {
		out[k] = Round2(v * grams / 100)
	}
	return out, nil
}

// KJToKcal converts kilojoules to kilocalories.
func KJToKcal(kj float64) float64 {
	return kj / 4.184
}
