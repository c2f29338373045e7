package services

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/lucas-hsi/melitusgym-sub000/config"
	"github.com/lucas-hsi/melitusgym-sub000/models"
)

// AlarmService manages reminder alarms (glucose checks, medication, meals)
// and runs the background scheduler that pushes them when due.
type AlarmService struct {
	push *PushService
}

func NewAlarmService(push *PushService) *AlarmService {
	return &AlarmService{push: push}
}

func (s *AlarmService) Create(userID uint, alarm models.Alarm) (*models.Alarm, error) {
	alarm.UserID = userID
	alarm.NotifiedAt = nil
	if err := config.DB.Create(&alarm).Error; err != nil {
		return nil, err
	}
	return &alarm, nil
}

func (s *AlarmService) List(userID uint) ([]models.Alarm, error) {
	var alarms []models.Alarm
	err := config.DB.
		Where("user_id = ?", userID).
		Order("due_at ASC").
		Find(&alarms).Error
	return alarms, err
}

func (s *AlarmService) Update(userID, alarmID uint, patch models.Alarm) (*models.Alarm, error) {
	var alarm models.Alarm
	if err := config.DB.
		Where("id = ? AND user_id = ?", alarmID, userID).
		First(&alarm).Error; err != nil {
		return nil, err
	}
	alarm.Title = patch.Title
	alarm.Body = patch.Body
	alarm.Kind = patch.Kind
	alarm.Enabled = patch.Enabled
	if !patch.DueAt.IsZero() && !patch.DueAt.Equal(alarm.DueAt) {
		alarm.DueAt = patch.DueAt
		alarm.NotifiedAt = nil // rescheduling re-arms the alarm
	}
	if err := config.DB.Save(&alarm).Error; err != nil {
		return nil, err
	}
	return &alarm, nil
}

func (s *AlarmService) Delete(userID, alarmID uint) error {
	return config.DB.
		Where("id = ? AND user_id = ?", alarmID, userID).
		Delete(&models.Alarm{}).Error
}

// RunScheduler checks for due alarms once a minute and pushes a reminder
// for each, stamping NotifiedAt so an alarm fires exactly once. Blocks
// until ctx is cancelled; run it in its own goroutine from main.
func (s *AlarmService) RunScheduler(ctx context.Context) {
	t := time.NewTicker(time.Minute)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.fireDue(time.Now())
		}
	}
}

func (s *AlarmService) fireDue(now time.Time) {
	var due []models.Alarm
	err := config.DB.
		Where("enabled = ? AND notified_at IS NULL AND due_at <= ?", true, now).
		Find(&due).Error
	if err != nil {
		log.Printf("alarm scheduler query failed: %v", err)
		return
	}

	for _, a := range due {
		if s.push != nil {
			s.push.PushToUser(a.UserID, a.Title, a.Body, map[string]string{
				"kind":    a.Kind,
				"alarmId": strconv.FormatUint(uint64(a.ID), 10),
			})
		}
		stamp := now
		err := config.DB.Model(&models.Alarm{}).
			Where("id = ?", a.ID).
			Update("notified_at", &stamp).Error
		if err != nil {
			log.Printf("alarm %d: failed to mark notified: %v", a.ID, err)
		}
	}
}
