package controllers

import (
	"net/http"

	"github.com/lucas-hsi/melitusgym-sub000/config"

	"github.com/gin-gonic/gin"
)

// GET /health — liveness plus a DB ping for readiness probes.
func HealthCheck(c *gin.Context) {
	sqlDB, err := config.DB.DB()
	if err != nil || sqlDB.Ping() != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "down"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "up"})
}
