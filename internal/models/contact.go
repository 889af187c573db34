package models

// ContactMessage represents a submission from the contact form
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// MinContactMessageLength is the minimum message length after trimming,
// so there is something substantive to respond to.
const MinContactMessageLength = 10
