// controllers/account.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"org-portal-api/config"
	"org-portal-api/models"
)

// GetAccountStatus returns the viewer's account status. The dashboard polls
// this every 30 seconds; a hold applied by a reviewer shows up within that
// interval. Submissions already in flight are not retroactively rejected.
func GetAccountStatus(c *gin.Context) {
	org, _ := currentOrg(c)

	var account models.Account
	if err := config.DB.Where("organization = ? AND delete_at IS NULL", org).First(&account).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"status":  account.Status,
		"on_hold": account.IsOnHold(),
	})
}

// UpdateAccountStatus places an organization's account on hold or reactivates
// it. Office of Student Life only; the route enforces that.
func UpdateAccountStatus(c *gin.Context) {
	targetOrg := c.Param("org")
	if !models.IsValidOrganization(targetOrg) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown organization"})
		return
	}

	var req models.AccountStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var account models.Account
	if err := config.DB.Where("organization = ? AND delete_at IS NULL", targetOrg).First(&account).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		return
	}

	if err := config.DB.Model(&account).Updates(map[string]interface{}{
		"status":    req.Status,
		"update_at": time.Now(),
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update account status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "status": req.Status})
}
