// utils/validator.go - Input validation
package utils

import (
	"regexp"
	"strings"
	"time"
)

// ValidateEmail checks if email is valid
func ValidateEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// IsBlank reports whether the value is empty after trimming spaces.
func IsBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// IsDriveLink reports whether the link points at Google Drive or Docs.
// Every file reference submitted through the portal must be a Drive URL.
func IsDriveLink(link string) bool {
	link = strings.TrimSpace(link)
	if link == "" {
		return false
	}
	return strings.Contains(link, "drive.google.com") || strings.Contains(link, "docs.google.com")
}

// IsValidDate reports whether the value parses as a YYYY-MM-DD date.
func IsValidDate(value string) bool {
	_, err := time.Parse("2006-01-02", strings.TrimSpace(value))
	return err == nil
}

// SanitizeInput removes potentially harmful characters
func SanitizeInput(input string) string {
	// Remove leading/trailing spaces
	input = strings.TrimSpace(input)

	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	return input
}
