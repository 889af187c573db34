package validation

import (
	"testing"

	"github.com/portfolio-site-api/internal/models"
)

func TestValidEmail(t *testing.T) {
	valid := []string{
		"test@example.com",
		"user.name+tag@sub.domain.org",
		"UPPER@CASE.COM",
	}
	invalid := []string{
		"",
		"not-an-email",
		"missing@tld",
		"@nodomain.com",
		"spaces in@email.com",
	}

	for _, email := range valid {
		if !ValidEmail(email) {
			t.Errorf("Expected %q to be valid", email)
		}
	}
	for _, email := range invalid {
		if ValidEmail(email) {
			t.Errorf("Expected %q to be invalid", email)
		}
	}
}

func TestValidateContact_Valid(t *testing.T) {
	msg := &models.ContactMessage{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hello",
		Message: "This is a long enough message.",
	}

	errors := ValidateContact(msg)
	if len(errors) != 0 {
		t.Errorf("Expected no errors, got %v", errors)
	}
}

func TestValidateContact_MissingFields(t *testing.T) {
	errors := ValidateContact(&models.ContactMessage{})
	if len(errors) != 4 {
		t.Errorf("Expected 4 errors, got %d: %v", len(errors), errors)
	}
}

func TestValidateContact_ShortMessage(t *testing.T) {
	msg := &models.ContactMessage{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hello",
		Message: "too short",
	}

	errors := ValidateContact(msg)
	if len(errors) != 1 {
		t.Fatalf("Expected 1 error, got %d: %v", len(errors), errors)
	}
	if errors[0].Field != "message" {
		t.Errorf("Expected message error, got field %q", errors[0].Field)
	}
}

func TestValidateContact_BadEmail(t *testing.T) {
	msg := &models.ContactMessage{
		Name:    "Visitor",
		Email:   "nope",
		Subject: "Hello",
		Message: "This is a long enough message.",
	}

	errors := ValidateContact(msg)
	if len(errors) != 1 {
		t.Fatalf("Expected 1 error, got %d: %v", len(errors), errors)
	}
	if errors[0].Field != "email" {
		t.Errorf("Expected email error, got field %q", errors[0].Field)
	}
}
