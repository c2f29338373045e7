package controllers

import (
	"net/http"

	"github.com/lucas-hsi/melitusgym-sub000/services"
	"github.com/lucas-hsi/melitusgym-sub000/utils"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	uid := c.GetUint("userID")

	user, err := services.FindUserByID(uid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	resp := gin.H{
		"email":                   user.Email,
		"full_name":               user.FullName,
		"height_cm":               user.HeightCm,
		"weight_kg":               user.WeightKg,
		"sensitivity_g_per_unit":  user.SensitivityGPerUnit,
		"correction_factor_mg_dl": user.CorrectionFactorMgDl,
		"glucose_target_mg_dl":    user.GlucoseTargetMgDl,
		"glycemic_adjustment_pct": user.GlycemicAdjustmentPct,
	}
	if bmi, err := utils.CalculateBMI(user.HeightCm, user.WeightKg); err == nil {
		resp["bmi"] = utils.Round1(bmi)
		resp["bmi_category"] = utils.BMICategory(bmi)
	}
	c.JSON(http.StatusOK, resp)
}

func UpdateProfile(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.ProfileUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.UpdateProfile(uid, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "profile updated", "full_name": user.FullName})
}
