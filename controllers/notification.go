// controllers/notification.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"org-portal-api/config"
	"org-portal-api/models"
	"org-portal-api/services"
)

// GetNotifications lists the viewer's notifications with per-viewer read state.
func GetNotifications(c *gin.Context) {
	org, _ := currentOrg(c)

	notifications, err := services.NewNotificationService(config.DB).ListForViewer(org)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	unread := 0
	for _, n := range notifications {
		if !n.IsRead {
			unread++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"notifications": notifications,
		"unread":        unread,
		"total":         len(notifications),
	})
}

// MarkNotificationRead records that the viewer has seen a notification.
func MarkNotificationRead(c *gin.Context) {
	org, _ := currentOrg(c)

	notificationID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification id"})
		return
	}

	if err := services.NewNotificationService(config.DB).MarkRead(uint(notificationID), org); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteAllNotifications deletes the viewer's notifications outright. This is
// a destructive delete of the rows, not a per-reader hide.
func DeleteAllNotifications(c *gin.Context) {
	org, _ := currentOrg(c)

	if err := services.NewNotificationService(config.DB).DeleteAll(org); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// BroadcastNotification lets the office announce to every organization.
func BroadcastNotification(c *gin.Context) {
	org, _ := currentOrg(c)

	var req struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description" binding:"required"`
		EventID     *uint  `json:"event_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.NewNotificationService(config.DB).
		Notify(models.OrgAll, req.Title, req.Description, org, req.EventID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true})
}
