package controllers

import (
	"errors"
	"net/http"

	"github.com/lucas-hsi/melitusgym-sub000/services"
	"github.com/lucas-hsi/melitusgym-sub000/utils"

	"github.com/gin-gonic/gin"
)

// POST /nutrition/dose/preview
// Computes a bolus suggestion from the dish totals. The response is a
// suggestion only; the applied dose is whatever the user later confirms on
// the meal log.
func DosePreview(c *gin.Context) {
	var input utils.DoseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.FindUserByID(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	result, err := utils.ComputeDose(services.DoseConfigForUser(user), input)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidSensitivity) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
