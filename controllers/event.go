// controllers/event.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"org-portal-api/config"
	"org-portal-api/models"
	"org-portal-api/services"
	"org-portal-api/utils"
)

// GetEvents lists stored events.
func GetEvents(c *gin.Context) {
	var events []models.Event
	if err := config.DB.Where("delete_at IS NULL").Order("start_date").Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"events":  events,
		"total":   len(events),
	})
}

// CreateEvent creates an event. Only the Office of Student Life may create
// events; the route enforces that.
func CreateEvent(c *gin.Context) {
	org, _ := currentOrg(c)

	var req models.EventCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.TargetOrg != models.OrgAll && !models.IsValidOrganization(req.TargetOrg) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown target organization"})
		return
	}
	if !utils.IsValidDate(req.StartDate) || (req.EndDate != nil && !utils.IsValidDate(*req.EndDate)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dates must be in YYYY-MM-DD format"})
		return
	}

	event := models.Event{
		Title:                 utils.SanitizeInput(req.Title),
		Description:           req.Description,
		StartDate:             req.StartDate,
		EndDate:               req.EndDate,
		StartTime:             req.StartTime,
		EndTime:               req.EndTime,
		AllDay:                req.AllDay,
		TargetOrg:             req.TargetOrg,
		RequireAccomplishment: req.RequireAccomplishment,
		RequireLiquidation:    req.RequireLiquidation,
		CreatedBy:             org,
		CreateAt:              time.Now(),
		UpdateAt:              time.Now(),
	}
	if err := config.DB.Create(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "event": event})
}

// UpdateEvent mutates an event owned by the office. Setting an override date
// here is how an appeal approval is recorded against the parent event.
func UpdateEvent(c *gin.Context) {
	eventID := c.Param("id")

	var event models.Event
	if err := config.DB.Where("event_id = ? AND delete_at IS NULL", eventID).First(&event).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	var req models.EventUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{"update_at": time.Now()}
	if req.Title != nil {
		updates["title"] = utils.SanitizeInput(*req.Title)
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.StartDate != nil {
		if !utils.IsValidDate(*req.StartDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Dates must be in YYYY-MM-DD format"})
			return
		}
		updates["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		if !utils.IsValidDate(*req.EndDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Dates must be in YYYY-MM-DD format"})
			return
		}
		updates["end_date"] = *req.EndDate
	}
	if req.StartTime != nil {
		updates["start_time"] = *req.StartTime
	}
	if req.EndTime != nil {
		updates["end_time"] = *req.EndTime
	}
	if req.AllDay != nil {
		updates["all_day"] = *req.AllDay
	}
	if req.TargetOrg != nil {
		if *req.TargetOrg != models.OrgAll && !models.IsValidOrganization(*req.TargetOrg) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown target organization"})
			return
		}
		updates["target_org"] = *req.TargetOrg
	}
	if req.RequireAccomplishment != nil {
		updates["require_accomplishment"] = *req.RequireAccomplishment
	}
	if req.RequireLiquidation != nil {
		updates["require_liquidation"] = *req.RequireLiquidation
	}
	if req.AccomplishmentOverride != nil {
		if *req.AccomplishmentOverride != "" && !utils.IsValidDate(*req.AccomplishmentOverride) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Override dates must be in YYYY-MM-DD format"})
			return
		}
		updates["accomplishment_override"] = nullableDate(*req.AccomplishmentOverride)
	}
	if req.LiquidationOverride != nil {
		if *req.LiquidationOverride != "" && !utils.IsValidDate(*req.LiquidationOverride) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Override dates must be in YYYY-MM-DD format"})
			return
		}
		updates["liquidation_override"] = nullableDate(*req.LiquidationOverride)
	}

	if err := config.DB.Model(&event).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}

	config.DB.Where("event_id = ?", event.EventID).First(&event)
	c.JSON(http.StatusOK, gin.H{"success": true, "event": event})
}

// DeleteEvent soft-deletes an event and removes the notifications correlated
// to it. Derived deadline entries disappear with the event since they are
// regenerated from stored events on every load.
func DeleteEvent(c *gin.Context) {
	eventID := c.Param("id")

	var event models.Event
	if err := config.DB.Where("event_id = ? AND delete_at IS NULL", eventID).First(&event).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	now := time.Now()
	if err := config.DB.Model(&event).Update("delete_at", &now).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}

	notifications := services.NewNotificationService(config.DB)
	if err := notifications.DeleteForEvent(event.EventID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func nullableDate(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}
