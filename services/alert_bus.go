package services

import (
	"fmt"
	"time"

	"github.com/lucas-hsi/melitusgym-sub000/models"
	"github.com/lucas-hsi/melitusgym-sub000/utils"

	"gorm.io/gorm"
)

type alertDeps struct {
	db   *gorm.DB
	rt   *RealtimeHub
	ps   *PushService
	mail bool // enable the SES channel for high-severity alerts
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService, mail bool) {
	_alert = alertDeps{db: db, rt: rt, ps: ps, mail: mail}
}

// EmitGlucoseAlert carries the reading value so the email channel can show
// it. Delivery semantics are those of EmitAlert.
func EmitGlucoseAlert(userID uint, typ, severity string, valueMgDl float64, message string) {
	emit(userID, typ, severity, valueMgDl, message)
}

// EmitAlert is a one-way notification: it persists the alert and fans it
// out over websocket, push and (for high severity) email. Safe to call
// anywhere; failures of any channel never propagate to the caller.
func EmitAlert(userID uint, typ, severity, message string) {
	emit(userID, typ, severity, 0, message)
}

func emit(userID uint, typ, severity string, valueMgDl float64, message string) {
	if _alert.db == nil {
		return // not initialized
	}
	a := &models.Alert{UserID: userID, Type: typ, Severity: severity, Message: message, CreatedAt: time.Now()}
	_ = _alert.db.Create(a).Error

	if _alert.rt != nil {
		_alert.rt.Broadcast(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
	if _alert.ps != nil {
		_alert.ps.PushToUser(userID, "MelitusGym", message, map[string]string{
			"type": typ, "severity": severity, "alertId": fmt.Sprintf("%d", a.ID),
		})
	}
	if _alert.mail && severity == "high" {
		var u models.User
		if err := _alert.db.First(&u, userID).Error; err == nil && u.Email != "" {
			_ = utils.SendGlucoseAlertEmail(u.Email, valueMgDl, message)
		}
	}
}
