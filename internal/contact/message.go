// Package contact implements the contact form: required-field validation,
// the submit lifecycle with its success/failure notifications, and the
// transports a message can be sent through.
package contact

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Fields are the four values a visitor types into the contact form.
type Fields struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

// ValidationError lists the required fields that were left empty.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// Validate checks that every field is filled in. Only presence is checked.
func (f Fields) Validate() error {
	var missing []string
	for _, field := range []struct{ name, value string }{
		{"name", f.Name},
		{"email", f.Email},
		{"subject", f.Subject},
		{"message", f.Message},
	} {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// Empty reports whether every field is blank.
func (f Fields) Empty() bool {
	return f == Fields{}
}

// Message is a submitted form, stamped for delivery.
type Message struct {
	ID     uuid.UUID
	Fields Fields
	SentAt time.Time
}

// NewMessage stamps f with a fresh id and the current time.
func NewMessage(f Fields) Message {
	return Message{
		ID:     uuid.New(),
		Fields: f,
		SentAt: time.Now(),
	}
}
