// controllers/file.go
package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"org-portal-api/services"
)

// ListFiles lists stored objects by prefix. Office of Student Life only.
func ListFiles(c *gin.Context) {
	keys, err := services.NewStorageService().List(c.Query("prefix"))
	if err != nil {
		log.Printf("storage list failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to list files"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "files": keys, "total": len(keys)})
}

// DeleteFile removes one stored object by key.
func DeleteFile(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "key is required"})
		return
	}

	if err := services.NewStorageService().Remove(key); err != nil {
		log.Printf("storage remove failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to delete file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
