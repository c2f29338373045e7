package controllers

import (
	"net/http"
	"strconv"

	"github.com/lucas-hsi/melitusgym-sub000/config"
	"github.com/lucas-hsi/melitusgym-sub000/services"
	"github.com/lucas-hsi/melitusgym-sub000/utils"

	"github.com/gin-gonic/gin"
)

func newResolver() *services.FoodResolver {
	taco := services.NewTacoService(config.DB)
	tbca := services.NewTBCAService()
	return services.NewFoodResolver(taco, tbca, 20)
}

// GET /nutrition/foods/search?q=arroz&source=both&limit=20
func SearchFoods(c *gin.Context) {
	pref := services.SourcePreference(c.DefaultQuery("source", string(services.PreferBoth)))
	switch pref {
	case services.PreferLocal, services.PreferRemote, services.PreferBoth:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "source must be local, remote or both"})
		return
	}

	res := newResolver().Resolve(c.Request.Context(), c.Query("q"), pref)
	switch res.Status {
	case services.StatusFound:
		c.JSON(http.StatusOK, res)
	case services.StatusNotFound:
		// A neutral empty state, not an error banner.
		c.JSON(http.StatusOK, res)
	default:
		c.JSON(http.StatusBadGateway, gin.H{"status": res.Status, "error": res.Reason})
	}
}

// POST /nutrition/foods/recognize  { "image_base64": "data:…" }
func RecognizeFood(c *gin.Context) {
	var req struct {
		ImageBase64 string `json:"image_base64" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	rek, err := services.NewRekognitionService()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	labels, err := rek.Detect(req.ImageBase64)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(labels) == 0 {
		c.JSON(http.StatusOK, gin.H{"status": services.StatusNotFound, "labels": labels})
		return
	}

	// Resolve the top label; remaining labels go back as alternate hints.
	res := newResolver().Resolve(c.Request.Context(), labels[0].Label, services.PreferBoth)
	c.JSON(http.StatusOK, gin.H{
		"labels":     labels,
		"resolution": res,
	})
}

// GET /nutrition/foods/portion?id=12&grams=150
func PortionPreview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Query("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}
	grams, err := strconv.ParseFloat(c.Query("grams"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "grams query parameter required"})
		return
	}

	item, err := services.NewTacoService(config.DB).Get(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
		return
	}

	nutrients, err := utils.NormalizePortion(item.NutrientsPer100g, grams)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"item":      item,
		"grams":     grams,
		"nutrients": nutrients,
	})
}
