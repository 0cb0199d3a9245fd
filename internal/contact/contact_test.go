package contact

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-message/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var filled = Fields{
	Name:    "Ada Lovelace",
	Email:   "ada@example.com",
	Subject: "Collaboration",
	Message: "Let's build an engine.",
}

func TestValidate(t *testing.T) {
	require.NoError(t, filled.Validate())

	err := Fields{Name: "Ada", Message: "  "}.Validate()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"email", "subject", "message"}, verr.Missing)
	assert.Equal(t, "missing required fields: email, subject, message", err.Error())
}

func TestSubmitSuccessClearsFields(t *testing.T) {
	form := NewForm(filled)

	n, err := form.Submit(context.Background(), SimulatedSender{Delay: time.Millisecond})
	require.NoError(t, err)
	assert.Equal(t, Success, n.Kind)
	assert.Equal(t, "Message Sent Successfully!", n.Title)
	assert.Equal(t, Fields{}, form.Fields())
	assert.True(t, form.Fields().Empty())
	assert.False(t, form.Submitting())
}

func TestSubmitFailurePreservesFields(t *testing.T) {
	form := NewForm(filled)

	n, err := form.Submit(context.Background(), SimulatedSender{Delay: time.Millisecond, Err: errors.New("relay down")})
	require.Error(t, err)
	assert.Equal(t, Failure, n.Kind)
	assert.Equal(t, "Error sending message", n.Title)
	assert.Equal(t, filled, form.Fields())
	assert.False(t, form.Submitting())
}

func TestSubmitPanicIsFailure(t *testing.T) {
	form := NewForm(filled)

	n, err := form.Submit(context.Background(), SenderFunc(func(context.Context, Message) error {
		panic("boom")
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, Failure, n.Kind)
	assert.Equal(t, filled, form.Fields())
	assert.False(t, form.Submitting())
}

func TestSubmitRejectsMissingFields(t *testing.T) {
	form := NewForm(Fields{Name: "Ada"})
	called := false

	n, err := form.Submit(context.Background(), SenderFunc(func(context.Context, Message) error {
		called = true
		return nil
	}))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.False(t, called)
	assert.Equal(t, Failure, n.Kind)
	assert.Equal(t, "Ada", form.Fields().Name)
}

func TestSubmitWhileInFlight(t *testing.T) {
	form := NewForm(filled)
	entered := make(chan struct{})
	release := make(chan struct{})
	slow := SenderFunc(func(ctx context.Context, m Message) error {
		close(entered)
		<-release
		return nil
	})

	errc := make(chan error, 1)
	go func() {
		_, err := form.Submit(context.Background(), slow)
		errc <- err
	}()

	<-entered
	assert.True(t, form.Submitting())
	_, err := form.Submit(context.Background(), slow)
	assert.ErrorIs(t, err, ErrSubmitInProgress)

	close(release)
	require.NoError(t, <-errc)
	assert.False(t, form.Submitting())
}

func TestSimulatedSenderHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := SimulatedSender{Delay: time.Hour}.Send(ctx, NewMessage(filled))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewSMTPSenderRequiresCredentials(t *testing.T) {
	_, err := NewSMTPSender(SMTPConfig{Host: "smtp.example.com", Port: "587"})
	assert.ErrorIs(t, err, ErrSMTPNotConfigured)
}

func TestSMTPSenderComposesMail(t *testing.T) {
	s, err := NewSMTPSender(SMTPConfig{
		Host:     "smtp.example.com",
		Port:     "587",
		Username: "site@example.com",
		Password: "secret",
		To:       "owner@example.com",
	})
	require.NoError(t, err)

	var (
		gotAddr string
		gotTo   []string
		gotMsg  []byte
	)
	s.sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotTo, gotMsg = addr, to, msg
		return nil
	}

	m := NewMessage(filled)
	require.NoError(t, s.Send(context.Background(), m))
	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, []string{"owner@example.com"}, gotTo)

	r, err := mail.CreateReader(bytes.NewReader(gotMsg))
	require.NoError(t, err)
	subject, err := r.Header.Subject()
	require.NoError(t, err)
	assert.Equal(t, "Portfolio Contact: Collaboration", subject)

	replyTo, err := r.Header.AddressList("Reply-To")
	require.NoError(t, err)
	require.Len(t, replyTo, 1)
	assert.Equal(t, "ada@example.com", replyTo[0].Address)

	part, err := r.NextPart()
	require.NoError(t, err)
	body, err := io.ReadAll(part.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "Let's build an engine."))
}

func TestSMTPSenderWrapsTransportError(t *testing.T) {
	s, err := NewSMTPSender(SMTPConfig{Host: "h", Port: "25", Username: "u@example.com", Password: "p"})
	require.NoError(t, err)
	s.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("421 try later")
	}

	form := NewForm(filled)
	n, err := form.Submit(context.Background(), s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "421 try later")
	assert.Equal(t, Failure, n.Kind)
	assert.Equal(t, filled, form.Fields())
}
