// Package config reads runtime settings from the environment. A .env file in
// the working directory is loaded first, so local development can keep its
// SMTP credentials out of the shell.
package config

import (
	"fmt"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/viper"
)

// Transport names.
const (
	TransportSimulated = "simulated"
	TransportSMTP      = "smtp"
)

// Config holds all application configuration.
type Config struct {
	Port    string
	GinMode string
	Contact ContactConfig
	Anim    AnimationConfig
	Tracing TracingConfig
}

// ContactConfig selects and configures the contact-form transport.
type ContactConfig struct {
	Transport string
	Delay     time.Duration
	SMTPHost  string
	SMTPPort  string
	SMTPUser  string
	SMTPPass  string
	ToEmail   string
}

// AnimationConfig holds the skill-bar timings.
type AnimationConfig struct {
	Stagger    time.Duration
	Transition time.Duration
}

// TracingConfig holds the OTLP exporter settings. An empty endpoint leaves
// tracing disabled.
type TracingConfig struct {
	Endpoint    string
	ServiceName string
}

// Addr returns the listen address for the web server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("CONTACT_TRANSPORT", "")
	v.SetDefault("CONTACT_DELAY", "2s")
	v.SetDefault("SMTP_HOST", "smtp.gmail.com")
	v.SetDefault("SMTP_PORT", "587")
	v.SetDefault("SMTP_USER", "")
	v.SetDefault("SMTP_PASS", "")
	v.SetDefault("TO_EMAIL", "")
	v.SetDefault("SKILL_STAGGER", "200ms")
	v.SetDefault("SKILL_TRANSITION", "1s")
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	v.SetDefault("OTEL_SERVICE_NAME", "portfolio")

	cfg := &Config{
		Port:    v.GetString("PORT"),
		GinMode: v.GetString("GIN_MODE"),
		Contact: ContactConfig{
			Transport: strings.ToLower(v.GetString("CONTACT_TRANSPORT")),
			Delay:     v.GetDuration("CONTACT_DELAY"),
			SMTPHost:  v.GetString("SMTP_HOST"),
			SMTPPort:  v.GetString("SMTP_PORT"),
			SMTPUser:  v.GetString("SMTP_USER"),
			SMTPPass:  v.GetString("SMTP_PASS"),
			ToEmail:   v.GetString("TO_EMAIL"),
		},
		Anim: AnimationConfig{
			Stagger:    v.GetDuration("SKILL_STAGGER"),
			Transition: v.GetDuration("SKILL_TRANSITION"),
		},
		Tracing: TracingConfig{
			Endpoint:    v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
			ServiceName: v.GetString("OTEL_SERVICE_NAME"),
		},
	}

	if cfg.Contact.Transport == "" {
		cfg.Contact.Transport = TransportSimulated
		if cfg.Contact.SMTPUser != "" && cfg.Contact.SMTPPass != "" {
			cfg.Contact.Transport = TransportSMTP
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Contact.Transport {
	case TransportSimulated, TransportSMTP:
	default:
		return fmt.Errorf("unknown CONTACT_TRANSPORT %q", c.Contact.Transport)
	}
	if c.Contact.Delay < 0 {
		return fmt.Errorf("CONTACT_DELAY must not be negative, got %s", c.Contact.Delay)
	}
	if c.Anim.Stagger <= 0 {
		return fmt.Errorf("SKILL_STAGGER must be positive, got %s", c.Anim.Stagger)
	}
	if c.Anim.Transition < 0 {
		return fmt.Errorf("SKILL_TRANSITION must not be negative, got %s", c.Anim.Transition)
	}
	return nil
}
