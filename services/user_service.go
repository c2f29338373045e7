package services

import (
	"github.com/lucas-hsi/melitusgym-sub000/config"
	"github.com/lucas-hsi/melitusgym-sub000/models"
	"github.com/lucas-hsi/melitusgym-sub000/utils"
)

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := config.DB.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(id uint) (*models.User, error) {
	var user models.User
	err := config.DB.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type ProfileUpdate struct {
	FullName string   `json:"full_name"`
	HeightCm *float64 `json:"height_cm,omitempty"`
	WeightKg *float64 `json:"weight_kg,omitempty"`

	SensitivityGPerUnit   *float64 `json:"sensitivity_g_per_unit,omitempty"`
	CorrectionFactorMgDl  *float64 `json:"correction_factor_mg_dl,omitempty"`
	GlucoseTargetMgDl     *float64 `json:"glucose_target_mg_dl,omitempty"`
	GlycemicAdjustmentPct *float64 `json:"glycemic_adjustment_pct,omitempty"`
}

func UpdateProfile(userID uint, in ProfileUpdate) (*models.User, error) {
	user, err := FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	if in.FullName != "" {
		user.FullName = in.FullName
	}
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&user.HeightCm, in.HeightCm)
	set(&user.WeightKg, in.WeightKg)
	set(&user.SensitivityGPerUnit, in.SensitivityGPerUnit)
	set(&user.CorrectionFactorMgDl, in.CorrectionFactorMgDl)
	set(&user.GlucoseTargetMgDl, in.GlucoseTargetMgDl)
	set(&user.GlycemicAdjustmentPct, in.GlycemicAdjustmentPct)

	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// DoseConfigForUser resolves the therapy constants for dosing, falling back
// to the product defaults for anything the user has not configured.
func DoseConfigForUser(user *models.User) utils.DoseConfig {
	cfg := utils.DefaultDoseConfig()
	if user == nil {
		return cfg
	}
	if user.CorrectionFactorMgDl > 0 {
		cfg.CorrectionFactorMgDl = user.CorrectionFactorMgDl
	}
	if user.SensitivityGPerUnit > 0 {
		cfg.DefaultSensitivity = user.SensitivityGPerUnit
	}
	if user.GlucoseTargetMgDl > 0 {
		cfg.GlucoseTargetMgDl = user.GlucoseTargetMgDl
	}
	return cfg
}
