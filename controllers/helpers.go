// controllers/helpers.go
package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"org-portal-api/services"
)

// currentOrg returns the authenticated organization code set by the auth
// middleware.
func currentOrg(c *gin.Context) (string, bool) {
	if v, ok := c.Get("organization"); ok {
		if org, ok := v.(string); ok {
			return org, true
		}
	}
	return "", false
}

// respondServiceError converts an engine error into the single user-facing
// message the UI shows. All storage errors were already logged at the
// operation boundary; there is no retry.
func respondServiceError(c *gin.Context, err error) {
	var validation *services.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"fields": validation.Fields,
		})
		return
	}

	var upload *services.UploadError
	if errors.As(err, &upload) {
		log.Printf("upload error: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "File upload failed. Please try again."})
		return
	}

	var persistence *services.PersistenceError
	if errors.As(err, &persistence) {
		log.Printf("persistence error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
		return
	}

	if errors.Is(err, services.ErrAccountOnHold) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Your account is on hold. Activity requests are blocked."})
		return
	}

	log.Printf("unexpected error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
}
