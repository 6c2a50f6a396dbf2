// controllers/reminder.go
package controllers

import (
	"net/http"

	"cashback-backend/services"

	"github.com/gin-gonic/gin"
)

// ReminderController exposes the cashback notification run on demand.
type ReminderController struct {
	Notifications *services.NotificationService
}

// SendCashbackReminders notifies every customer with an unannounced credit.
func (rc *ReminderController) SendCashbackReminders(c *gin.Context) {
	sent, failed, err := rc.Notifications.SendPendingNotifications(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to send notifications")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"sent":    sent,
		"failed":  failed,
	})
}
