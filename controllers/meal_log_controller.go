package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/lucas-hsi/melitusgym-sub000/models"
	"github.com/lucas-hsi/melitusgym-sub000/services"
	"github.com/lucas-hsi/melitusgym-sub000/utils"

	"github.com/gin-gonic/gin"
)

type mealLineRequest struct {
	Item  models.FoodItem `json:"item" binding:"required"`
	Grams float64         `json:"grams" binding:"required"`
}

type mealLogRequest struct {
	MealTime string     `json:"meal_time" binding:"required"`
	MealDate *time.Time `json:"meal_date,omitempty"`
	Notes    string     `json:"notes,omitempty"`
	PhotoURL string     `json:"photo_url,omitempty"`

	Items []mealLineRequest `json:"items" binding:"required"`

	// Optional dosing: when DoseInput is present the server recomputes the
	// suggestion from the dish totals it derives itself.
	DoseInput           *utils.DoseInput         `json:"dose_input,omitempty"`
	InsulinAppliedUnits *float64                 `json:"insulin_applied_units,omitempty"`
	Clinical            services.ClinicalContext `json:"clinical"`
}

func buildMealLog(c *gin.Context, uid uint, body mealLogRequest) (*models.MealLog, bool) {
	dish := services.Dish{}
	for _, it := range body.Items {
		var err error
		dish, err = dish.AddLine(it.Item, it.Grams)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return nil, false
		}
	}

	var dosing *utils.DoseResult
	if body.DoseInput != nil {
		user, err := services.FindUserByID(uid)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return nil, false
		}
		in := *body.DoseInput
		in.TotalCarbs = dish.Totals()[models.NutrientCarbs]
		result, err := utils.ComputeDose(services.DoseConfigForUser(user), in)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return nil, false
		}
		dosing = &result
	}

	rec, err := services.AssembleMealLog(uid, dish, dosing, body.InsulinAppliedUnits, body.Clinical, services.MealMeta{
		MealTime: body.MealTime,
		MealDate: body.MealDate,
		Notes:    body.Notes,
		PhotoURL: body.PhotoURL,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmptyDish) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return nil, false
	}
	return rec, true
}

// POST /nutrition/meals
func CreateMealLog(c *gin.Context) {
	uid := c.GetUint("userID")

	var body mealLogRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, ok := buildMealLog(c, uid, body)
	if !ok {
		return
	}

	saved, err := services.NewMealLogService().Create(rec)
	if err != nil {
		// The assembled record survives a persistence failure; hand it back
		// so the client can retry or queue it locally.
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error(), "unsaved": rec})
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// GET /nutrition/meals?from=2026-08-01&to=2026-08-31
func ListMealLogs(c *gin.Context) {
	uid := c.GetUint("userID")
	svc := services.NewMealLogService()

	fromStr, toStr := c.Query("from"), c.Query("to")
	if fromStr == "" || toStr == "" {
		recs, err := svc.ListRecent(uid, 20)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, recs)
		return
	}

	from, err1 := time.ParseInLocation("2006-01-02", fromStr, time.Local)
	to, err2 := time.ParseInLocation("2006-01-02", toStr, time.Local)
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from/to must be YYYY-MM-DD"})
		return
	}

	recs, err := svc.ListByDateRange(uid, from, to.Add(24*time.Hour))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recs)
}

// GET /nutrition/meals/:id
func GetMealLog(c *gin.Context) {
	uid := c.GetUint("userID")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	rec, err := services.NewMealLogService().Get(uid, uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// PUT /nutrition/meals/:id — wholesale replacement of the record.
func UpdateMealLog(c *gin.Context) {
	uid := c.GetUint("userID")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	var body mealLogRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, ok := buildMealLog(c, uid, body)
	if !ok {
		return
	}

	updated, err := services.NewMealLogService().Update(uid, uint(id), rec)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /nutrition/meals/:id
func DeleteMealLog(c *gin.Context) {
	uid := c.GetUint("userID")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	if err := services.NewMealLogService().Delete(uid, uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /nutrition/meals/photo  { "image_base64": "data:…" }
func UploadMealPhoto(c *gin.Context) {
	uid := c.GetUint("userID")

	var req struct {
		ImageBase64 string `json:"image_base64" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	url, err := utils.UploadBase64ImageToS3(req.ImageBase64, strconv.FormatUint(uint64(uid), 10))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
