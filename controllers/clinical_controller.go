package controllers

import (
	"net/http"
	"time"

	"github.com/lucas-hsi/melitusgym-sub000/models"
	"github.com/lucas-hsi/melitusgym-sub000/services"

	"github.com/gin-gonic/gin"
)

type clinicalLogInput struct {
	MeasurementType models.MeasurementType   `json:"measurement_type" binding:"required"`
	Value           float64                  `json:"value" binding:"required"`
	SecondaryValue  *float64                 `json:"secondary_value,omitempty"`
	Unit            string                   `json:"unit"`
	Period          models.MeasurementPeriod `json:"period,omitempty"`
	Notes           string                   `json:"notes,omitempty"`
	MeasuredAt      *time.Time               `json:"measured_at,omitempty"`
}

// POST /clinical/logs
func CreateClinicalLog(c *gin.Context) {
	uid := c.GetUint("userID")

	var input clinicalLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := models.ClinicalLog{
		MeasurementType: input.MeasurementType,
		Value:           input.Value,
		SecondaryValue:  input.SecondaryValue,
		Unit:            input.Unit,
		Period:          input.Period,
		Notes:           input.Notes,
	}
	if input.MeasuredAt != nil {
		entry.MeasuredAt = *input.MeasuredAt
	}

	saved, err := services.NewClinicalService().Record(uid, entry)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// GET /clinical/logs?type=GLUCOSE&from=…&to=…
func ListClinicalLogs(c *gin.Context) {
	uid := c.GetUint("userID")

	var from, to *time.Time
	if f, t := c.Query("from"), c.Query("to"); f != "" && t != "" {
		ft, err1 := time.ParseInLocation("2006-01-02", f, time.Local)
		tt, err2 := time.ParseInLocation("2006-01-02", t, time.Local)
		if err1 != nil || err2 != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from/to must be YYYY-MM-DD"})
			return
		}
		tt = tt.Add(24 * time.Hour)
		from, to = &ft, &tt
	}

	logs, err := services.NewClinicalService().List(uid, models.MeasurementType(c.Query("type")), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}

// GET /clinical/stats?type=GLUCOSE&from=…&to=…
func ClinicalStats(c *gin.Context) {
	uid := c.GetUint("userID")

	t := models.MeasurementType(c.DefaultQuery("type", string(models.MeasurementGlucose)))

	from, err1 := time.ParseInLocation("2006-01-02", c.Query("from"), time.Local)
	to, err2 := time.ParseInLocation("2006-01-02", c.Query("to"), time.Local)
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from/to must be YYYY-MM-DD"})
		return
	}

	stats, err := services.NewClinicalService().Stats(uid, t, from, to.Add(24*time.Hour))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
