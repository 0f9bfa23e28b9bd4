package services

import (
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub) {
	_alert = alertDeps{db: db, rt: rt}
}

// EmitAlert persists an alert and pushes it to any open websocket.
// Safe to call anywhere; a no-op until wired at startup.
func EmitAlert(userID uint, typ, message string) {
	if _alert.db == nil {
		return
	}
	a := &models.Alert{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
	_ = _alert.db.Create(a).Error

	if _alert.rt != nil {
		_alert.rt.Broadcast(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
}

func ListAlerts(userID uint, limit int) ([]models.Alert, error) {
	if limit <= 0 {
		limit = 20
	}
	var alerts []models.Alert
	err := _alert.db.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&alerts).Error
	return alerts, err
}
