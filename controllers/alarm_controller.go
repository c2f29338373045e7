package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/lucas-hsi/melitusgym-sub000/models"
	"github.com/lucas-hsi/melitusgym-sub000/services"

	"github.com/gin-gonic/gin"
)

type AlarmController struct {
	Alarms *services.AlarmService
}

func NewAlarmController(a *services.AlarmService) *AlarmController {
	return &AlarmController{Alarms: a}
}

type alarmInput struct {
	Title   string    `json:"title" binding:"required"`
	Body    string    `json:"body"`
	Kind    string    `json:"kind"` // "glucose" | "medication" | "meal"
	DueAt   time.Time `json:"due_at" binding:"required"`
	Enabled *bool     `json:"enabled,omitempty"`
}

func (ac *AlarmController) Create(c *gin.Context) {
	uid := c.GetUint("userID")

	var input alarmInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alarm := models.Alarm{
		Title:   input.Title,
		Body:    input.Body,
		Kind:    input.Kind,
		DueAt:   input.DueAt,
		Enabled: input.Enabled == nil || *input.Enabled,
	}
	saved, err := ac.Alarms.Create(uid, alarm)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (ac *AlarmController) List(c *gin.Context) {
	uid := c.GetUint("userID")

	alarms, err := ac.Alarms.List(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, alarms)
}

func (ac *AlarmController) Update(c *gin.Context) {
	uid := c.GetUint("userID")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alarm id"})
		return
	}

	var input alarmInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := models.Alarm{
		Title:   input.Title,
		Body:    input.Body,
		Kind:    input.Kind,
		DueAt:   input.DueAt,
		Enabled: input.Enabled == nil || *input.Enabled,
	}
	updated, err := ac.Alarms.Update(uid, uint(id), patch)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "alarm not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (ac *AlarmController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alarm id"})
		return
	}

	if err := ac.Alarms.Delete(uid, uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
