package contact

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("github.com/rajdeepray/portfolio/internal/contact")

// ErrSubmitInProgress is returned when Submit is called while another
// submission from the same form is still in flight.
var ErrSubmitInProgress = errors.New("submission already in progress")

// Kind distinguishes success and failure notifications.
type Kind string

const (
	Success Kind = "success"
	Failure Kind = "failure"
)

// Notification is the toast shown to the visitor after a submit.
type Notification struct {
	Kind        Kind   `json:"kind"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

var (
	sentNotification = Notification{
		Kind:        Success,
		Title:       "Message Sent Successfully!",
		Description: "Thank you for reaching out. I'll get back to you soon!",
	}
	failedNotification = Notification{
		Kind:        Failure,
		Title:       "Error sending message",
		Description: "Please try again later or contact me directly.",
	}
)

// Form owns the contact form's field values and submitting flag.
type Form struct {
	mu         sync.Mutex
	fields     Fields
	submitting bool
}

// NewForm returns a form pre-filled with f.
func NewForm(f Fields) *Form {
	return &Form{fields: f}
}

// Fields returns the current field values.
func (f *Form) Fields() Fields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// SetFields replaces the field values.
func (f *Form) SetFields(v Fields) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields = v
}

// Submitting reports whether a submit is in flight.
func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Submit validates the form and sends it through s. On success the fields
// are cleared; on failure they are kept so the visitor can retry. The
// submitting flag is cleared either way. The returned error is the cause of
// a failure notification, or nil on success.
func (f *Form) Submit(ctx context.Context, s Sender) (Notification, error) {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return failedNotification, ErrSubmitInProgress
	}
	fields := f.fields
	if err := fields.Validate(); err != nil {
		f.mu.Unlock()
		return failedNotification, err
	}
	f.submitting = true
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	msg := NewMessage(fields)
	ctx, span := tracer.Start(ctx, "contact.submit")
	span.SetAttributes(attribute.String("contact.message_id", msg.ID.String()))
	defer span.End()

	if err := send(ctx, s, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Printf("Contact message %s failed: %v", msg.ID, err)
		return failedNotification, err
	}

	f.mu.Lock()
	f.fields = Fields{}
	f.mu.Unlock()
	return sentNotification, nil
}

// send calls s, turning a panic inside the transport into an error.
func send(ctx context.Context, s Sender, m Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sender panicked: %v", r)
		}
	}()
	return s.Send(ctx, m)
}
