package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"org-portal-api/config"
	"org-portal-api/models"
)

type Claims struct {
	AccountID    uint   `json:"account_id"`
	Organization string `json:"organization"`
	Email        string `json:"email"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates JWT token and resolves the authenticated
// organization. Engine code downstream treats the org code as an opaque input.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get token from header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Check Bearer prefix
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		// Parse token
		token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(*Claims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		// Check if the account still exists
		var account models.Account
		if err := config.DB.Where("account_id = ? AND delete_at IS NULL", claims.AccountID).First(&account).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Account not found"})
			c.Abort()
			return
		}

		c.Set("accountID", claims.AccountID)
		c.Set("email", claims.Email)
		c.Set("organization", claims.Organization)

		c.Next()
	}
}

// RequireOrganization restricts a route to specific organizations.
func RequireOrganization(orgs ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, exists := c.Get("organization")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Organization not found"})
			c.Abort()
			return
		}

		org := current.(string)
		allowed := false
		for _, candidate := range orgs {
			if org == candidate {
				allowed = true
				break
			}
		}

		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			c.Abort()
			return
		}

		c.Next()
	}
}
