package contact

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/smtp"
	"time"

	"github.com/emersion/go-message/mail"
)

// DefaultDelay is how long the simulated transport takes to "send".
const DefaultDelay = 2 * time.Second

// Sender delivers a contact message.
type Sender interface {
	Send(ctx context.Context, m Message) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, m Message) error

func (f SenderFunc) Send(ctx context.Context, m Message) error {
	return f(ctx, m)
}

// SimulatedSender stands in for a real transport: it waits Delay and then
// reports Err, nil meaning success.
type SimulatedSender struct {
	Delay time.Duration
	Err   error
}

func (s SimulatedSender) Send(ctx context.Context, m Message) error {
	t := time.NewTimer(s.Delay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
	}
	if s.Err != nil {
		return s.Err
	}
	log.Printf("Simulated delivery of message %s from %s", m.ID, m.Fields.Email)
	return nil
}

// SMTPConfig holds the SMTP relay settings.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	To       string
}

// ErrSMTPNotConfigured is returned when no SMTP credentials are set.
var ErrSMTPNotConfigured = errors.New("SMTP credentials not configured")

// SMTPSender delivers messages through an SMTP relay with PLAIN auth.
type SMTPSender struct {
	cfg      SMTPConfig
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPSender returns a sender for cfg.
func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	if cfg.Username == "" || cfg.Password == "" {
		return nil, ErrSMTPNotConfigured
	}
	if cfg.To == "" {
		cfg.To = cfg.Username
	}
	return &SMTPSender{cfg: cfg, sendMail: smtp.SendMail}, nil
}

func (s *SMTPSender) Send(ctx context.Context, m Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := s.compose(m)
	if err != nil {
		return fmt.Errorf("composing message %s: %w", m.ID, err)
	}

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := s.cfg.Host + ":" + s.cfg.Port
	if err := s.sendMail(addr, auth, s.cfg.Username, []string{s.cfg.To}, body); err != nil {
		log.Printf("Error sending email: %v", err)
		return fmt.Errorf("sending message %s: %w", m.ID, err)
	}

	log.Printf("Email sent successfully from %s (%s)", m.Fields.Name, m.Fields.Email)
	return nil
}

// compose renders m as an RFC 5322 message with the visitor as Reply-To.
func (s *SMTPSender) compose(m Message) ([]byte, error) {
	var h mail.Header
	h.SetDate(m.SentAt)
	h.SetAddressList("From", []*mail.Address{{Name: "Portfolio", Address: s.cfg.Username}})
	h.SetAddressList("To", []*mail.Address{{Address: s.cfg.To}})
	h.SetAddressList("Reply-To", []*mail.Address{{Name: m.Fields.Name, Address: m.Fields.Email}})
	h.SetSubject("Portfolio Contact: " + m.Fields.Subject)
	h.SetMessageID(m.ID.String() + "@portfolio")
	h.SetContentType("text/plain", map[string]string{"charset": "utf-8"})

	var buf bytes.Buffer
	w, err := mail.CreateSingleInlineWriter(&buf, h)
	if err != nil {
		return nil, err
	}
	body := fmt.Sprintf(`New contact form submission from your portfolio:

Name: %s
Email: %s
Subject: %s
Message:
%s

---
Sent from your portfolio contact form
`, m.Fields.Name, m.Fields.Email, m.Fields.Subject, m.Fields.Message)
	if _, err := io.WriteString(w, body); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
