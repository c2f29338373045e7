package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestComputeDoseBaseOnly(t *testing.T) {
	res, err := ComputeDose(DefaultDoseConfig(), DoseInput{TotalCarbs: 45, Sensitivity: 15})
	require.NoError(t, err)

	assert.InDelta(t, 3.0, res.BaseDose, 1e-9)
	assert.InDelta(t, 0, res.CorrectionDose, 1e-9)
	assert.InDelta(t, 3.0, res.TotalDose, 1e-9)
	assert.InDelta(t, 3, res.DisplayUnits, 1e-9)
}

func TestComputeDoseFallsBackToDefaultSensitivity(t *testing.T) {
	res, err := ComputeDose(DefaultDoseConfig(), DoseInput{TotalCarbs: 30})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, res.BaseDose, 1e-9) // 30 g at 15 g/U
}

func TestComputeDoseInvalidSensitivity(t *testing.T) {
	_, err := ComputeDose(DefaultDoseConfig(), DoseInput{TotalCarbs: 30, Sensitivity: -5})
	assert.ErrorIs(t, err, ErrInvalidSensitivity)

	// no usable default either
	_, err = ComputeDose(DoseConfig{}, DoseInput{TotalCarbs: 30})
	assert.ErrorIs(t, err, ErrInvalidSensitivity)
}

func TestComputeDoseCorrectionAboveTarget(t *testing.T) {
	res, err := ComputeDose(DefaultDoseConfig(), DoseInput{
		TotalCarbs:   45,
		Sensitivity:  15,
		Measured:     true,
		GlucoseValue: f(180),
	})
	require.NoError(t, err)

	// (180-100)/50 = 1.6 on top of the 3.0 base
	assert.InDelta(t, 1.6, res.CorrectionDose, 1e-9)
	assert.InDelta(t, 4.6, res.TotalDose, 1e-9)
	assert.InDelta(t, 5, res.DisplayUnits, 1e-9)
}

func TestComputeDoseNeverSubtractsBelowTarget(t *testing.T) {
	res, err := ComputeDose(DefaultDoseConfig(), DoseInput{
		TotalCarbs:   45,
		Sensitivity:  15,
		Measured:     true,
		GlucoseValue: f(80), // below the 100 target
	})
	require.NoError(t, err)

	assert.InDelta(t, 0, res.CorrectionDose, 1e-9)
	assert.InDelta(t, 3.0, res.TotalDose, 1e-9)
}

func TestComputeDoseCorrectionNeedsMeasurement(t *testing.T) {
	// reading present but flagged unmeasured
	res, err := ComputeDose(DefaultDoseConfig(), DoseInput{
		TotalCarbs:   45,
		Sensitivity:  15,
		GlucoseValue: f(200),
	})
	require.NoError(t, err)
	assert.InDelta(t, 0, res.CorrectionDose, 1e-9)

	// measured but no value attached
	res, err = ComputeDose(DefaultDoseConfig(), DoseInput{
		TotalCarbs:  45,
		Sensitivity: 15,
		Measured:    true,
	})
	require.NoError(t, err)
	assert.InDelta(t, 0, res.CorrectionDose, 1e-9)
}

func TestComputeDoseCustomTarget(t *testing.T) {
	res, err := ComputeDose(DefaultDoseConfig(), DoseInput{
		TotalCarbs:         0,
		Sensitivity:        15,
		Measured:           true,
		GlucoseValue:       f(200),
		GlucoseTargetValue: f(150),
	})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.CorrectionDose, 1e-9) // (200-150)/50
}

func TestComputeDoseGlycemicAdjustmentClamped(t *testing.T) {
	// 100% adjustment doubles the base
	res, err := ComputeDose(DefaultDoseConfig(), DoseInput{
		TotalCarbs: 30, Sensitivity: 15, GlycemicAdjustmentPct: 250,
	})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, res.TotalDose, 1e-9)

	// negative adjustment is treated as zero
	res, err = ComputeDose(DefaultDoseConfig(), DoseInput{
		TotalCarbs: 30, Sensitivity: 15, GlycemicAdjustmentPct: -40,
	})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, res.TotalDose, 1e-9)
}

func TestComputeDoseTotalRoundedToOneDecimal(t *testing.T) {
	// 52.15 / 15 = 3.4766…
	res, err := ComputeDose(DefaultDoseConfig(), DoseInput{TotalCarbs: 52.15, Sensitivity: 15})
	require.NoError(t, err)
	assert.InDelta(t, 3.5, res.TotalDose, 1e-9)
	assert.InDelta(t, 4, res.DisplayUnits, 1e-9)
}

func TestDisplayUnitsPolicy(t *testing.T) {
	tests := []struct {
		total float64
		want  float64
	}{
		{-1, 0},
		{0, 0},
		{0.2, 1},
		{1.0, 1},
		{1.5, 1},
		{1.6, 2},
		{2.4, 2},
		{2.5, 3}, // half-up
		{3.5, 4},
		{7.2, 7},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, DisplayUnits(tt.total), 1e-9, "total=%v", tt.total)
	}
}

func TestComputeDoseZeroCarbsNoReading(t *testing.T) {
	res, err := ComputeDose(DefaultDoseConfig(), DoseInput{TotalCarbs: 0, Sensitivity: 15})
	require.NoError(t, err)
	assert.InDelta(t, 0, res.TotalDose, 1e-9)
	assert.InDelta(t, 0, res.DisplayUnits, 1e-9)
}
