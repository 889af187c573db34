package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/portfolio-site-api/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidEmail reports whether the string looks like an email address
func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidateContact validates a contact form submission
func ValidateContact(msg *models.ContactMessage) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(msg.Name) == "" {
		errors = append(errors, ValidationError{Field: "name", Message: "name is required"})
	}

	if strings.TrimSpace(msg.Email) == "" {
		errors = append(errors, ValidationError{Field: "email", Message: "email is required"})
	} else if !ValidEmail(msg.Email) {
		errors = append(errors, ValidationError{Field: "email", Message: "invalid email format"})
	}

	if strings.TrimSpace(msg.Subject) == "" {
		errors = append(errors, ValidationError{Field: "subject", Message: "subject is required"})
	}

	message := strings.TrimSpace(msg.Message)
	if message == "" {
		errors = append(errors, ValidationError{Field: "message", Message: "message is required"})
	} else if utf8.RuneCountInString(message) < models.MinContactMessageLength {
		errors = append(errors, ValidationError{
			Field:   "message",
			Message: "please enter at least 10 characters",
		})
	}

	return errors
}
