// controllers/deadline.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"org-portal-api/config"
	"org-portal-api/models"
	"org-portal-api/services"
)

// GetDeadlines returns the viewer's deadline entries, each annotated with its
// resolved appeal state so the dashboard merely renders.
func GetDeadlines(c *gin.Context) {
	viewer, ok := currentOrg(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Organization not found"})
		return
	}

	deadlines := services.NewDeadlineService(config.DB)
	entries, err := deadlines.EntriesForViewer(viewer)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var appeals []models.Submission
	if err := config.DB.Where("submission_type = ?", models.SubmissionTypeLetterOfAppeal).
		Find(&appeals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appeals"})
		return
	}

	today := time.Now().Format(services.DateLayout)
	out := make([]models.DeadlineEntryResponse, 0, len(entries))
	for _, entry := range entries {
		state := services.ResolveAppealState(viewer, entry, appeals, today)
		out = append(out, models.DeadlineEntryResponse{
			DeadlineEntry: entry,
			AppealState:   string(state),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"deadlines": out,
		"total":     len(out),
	})
}

// SendDeadlineReminder is the one-shot notify action offered to a reviewer
// observing a subordinate's deadline. Non-owners never get the file-appeal
// action; this is the only action available to them.
func SendDeadlineReminder(c *gin.Context) {
	viewer, _ := currentOrg(c)

	eventID, err := strconv.ParseUint(c.Param("event_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event id"})
		return
	}

	var event models.Event
	if err := config.DB.Where("event_id = ? AND delete_at IS NULL", eventID).First(&event).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	if event.TargetOrg == viewer {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Reminders are for deadlines you oversee, not your own"})
		return
	}

	kind := c.Query("report_kind")
	if kind != models.ReportKindAccomplishment && kind != models.ReportKindLiquidation {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown report kind"})
		return
	}

	id := uint(eventID)
	notifications := services.NewNotificationService(config.DB)
	title := "Report Deadline Reminder"
	description := models.GetOrganizationName(viewer) + " reminds you to submit the " +
		kind + " report for \"" + event.Title + "\"."
	if err := notifications.Notify(event.TargetOrg, title, description, viewer, &id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
