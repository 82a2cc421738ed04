// controllers/submission.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"org-portal-api/config"
	"org-portal-api/models"
	"org-portal-api/services"
)

func submissionService() *services.SubmissionService {
	return services.NewSubmissionService(config.DB, services.NewNotificationService(config.DB))
}

// GetSubmissions returns the filer's own submissions.
func GetSubmissions(c *gin.Context) {
	org, _ := currentOrg(c)

	query := config.DB.Where("organization = ?", org)
	if submissionType := c.Query("submission_type"); submissionType != "" {
		query = query.Where("submission_type = ?", submissionType)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var submissions []models.Submission
	if err := query.Order("submitted_at DESC").Find(&submissions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch submissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"submissions": submissions,
		"total":       len(submissions),
	})
}

// GetSubmissionInbox returns the submissions routed to the viewer for review.
func GetSubmissionInbox(c *gin.Context) {
	org, _ := currentOrg(c)

	query := config.DB.Where("submitted_to = ?", org)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var submissions []models.Submission
	if err := query.Order("submitted_at DESC").Find(&submissions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch submissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"submissions": submissions,
		"total":       len(submissions),
	})
}

// SubmitReport files an accomplishment or liquidation report by Drive link.
func SubmitReport(c *gin.Context) {
	org, _ := currentOrg(c)

	var req models.ReportSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	submission, err := submissionService().SubmitReport(org, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "submission": submission})
}

// SubmitActivityRequest files a conduct-activity request. The client is
// expected to run the pending-request pre-check first; the check here is
// advisory and a concurrent duplicate can slip through.
func SubmitActivityRequest(c *gin.Context) {
	org, _ := currentOrg(c)

	var req models.ActivityRequestSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	submission, err := submissionService().SubmitActivityRequest(org, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "submission": submission})
}

// HasPendingActivityRequest exposes the advisory pre-check to the client.
func HasPendingActivityRequest(c *gin.Context) {
	org, _ := currentOrg(c)

	pending, err := submissionService().HasPendingActivityRequest(org)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "has_pending_request": pending})
}

// SubmitAppeal files a letter of appeal for a missed deadline. Multipart form:
// event_id, report_kind, file.
func SubmitAppeal(c *gin.Context) {
	org, _ := currentOrg(c)

	eventID, err := strconv.ParseUint(c.PostForm("event_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event id"})
		return
	}
	kind := c.PostForm("report_kind")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		// Missing file blocks the submission before any write happens.
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"fields": gin.H{"file": "Letter of appeal file is required"},
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to read uploaded file"})
		return
	}
	defer file.Close()

	appeals := services.NewAppealService(config.DB, services.NewStorageService(), services.NewNotificationService(config.DB))
	submission, err := appeals.SubmitAppeal(org, uint(eventID), kind, fileHeader.Filename,
		file, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "submission": submission})
}

// UpdateSubmissionStatus records a reviewer decision on a submission routed to
// it: approved, or for-revision with a reason.
func UpdateSubmissionStatus(c *gin.Context) {
	org, _ := currentOrg(c)

	submissionID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission id"})
		return
	}

	var req models.SubmissionStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	submission, err := submissionService().UpdateStatus(org, uint(submissionID), req.Status, req.RevisionReason)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "submission": submission})
}
