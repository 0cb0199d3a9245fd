package main

import (
	"fmt"

	"github.com/rajdeepray/portfolio/internal/config"
	"github.com/rajdeepray/portfolio/internal/contact"
)

// newSender picks the contact transport named by cfg.
func newSender(cfg config.ContactConfig) (contact.Sender, error) {
	switch cfg.Transport {
	case config.TransportSMTP:
		s, err := contact.NewSMTPSender(contact.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUser,
			Password: cfg.SMTPPass,
			To:       cfg.ToEmail,
		})
		if err != nil {
			return nil, fmt.Errorf("smtp transport: %w", err)
		}
		return s, nil
	case config.TransportSimulated, "":
		return contact.SimulatedSender{Delay: cfg.Delay}, nil
	default:
		return nil, fmt.Errorf("unknown contact transport %q", cfg.Transport)
	}
}
