// controllers/auth.go
package controllers

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"org-portal-api/config"
	"org-portal-api/middleware"
	"org-portal-api/models"
)

type LoginResponse struct {
	Token   string         `json:"token"`
	Account models.Account `json:"account"`
	Message string         `json:"message"`
}

// Login authenticates an organization account and issues a JWT carrying the
// organization code. The account status travels in the response so the
// dashboard can gate activity requests immediately.
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var account models.Account
	if err := config.DB.Where("email = ? AND delete_at IS NULL", req.Email).
		First(&account).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := generateToken(account)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:   token,
		Account: account,
		Message: "Login successful",
	})
}

// GetProfile returns the authenticated organization's account.
func GetProfile(c *gin.Context) {
	accountID, _ := c.Get("accountID")

	var account models.Account
	if err := config.DB.Where("account_id = ?", accountID).First(&account).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"account": account})
}

func generateToken(account models.Account) (string, error) {
	claims := middleware.Claims{
		AccountID:    account.AccountID,
		Organization: account.Organization,
		Email:        account.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// HashPassword hashes password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}
