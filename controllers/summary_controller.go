package controllers

import (
	"net/http"
	"time"

	"github.com/lucas-hsi/melitusgym-sub000/services"

	"github.com/gin-gonic/gin"
)

// GET /analytics/daily?date=2026-08-25
func DailySummary(c *gin.Context) {
	uid := c.GetUint("userID")

	date := time.Now()
	if d := c.Query("date"); d != "" {
		parsed, err := time.ParseInLocation("2006-01-02", d, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	svc := services.NewSummaryService(services.NewMealLogService(), services.NewClinicalService())
	summary, err := svc.Daily(uid, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
