package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rajdeepray/portfolio/internal/config"
	"github.com/rajdeepray/portfolio/internal/contact"
)

var (
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5EE7DF"))
	failureStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B"))
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Send a message through the contact form",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		sender, err := newSender(cfg.Contact)
		if err != nil {
			return err
		}

		var f contact.Fields
		if err := contactForm(&f).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		form := contact.NewForm(f)
		fmt.Println("Sending...")
		n, err := form.Submit(cmd.Context(), sender)
		fmt.Println(render(n))
		return err
	},
}

func contactForm(f *contact.Fields) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("Your Name").
				Value(&f.Name).
				Validate(required("Name")),
			huh.NewInput().
				Title("Email").
				Placeholder("your.email@example.com").
				Value(&f.Email).
				Validate(required("Email")),
			huh.NewInput().
				Title("Subject").
				Placeholder("What's this about?").
				Value(&f.Subject).
				Validate(required("Subject")),
			huh.NewText().
				Title("Message").
				Placeholder("Your message...").
				Value(&f.Message).
				Validate(required("Message")),
		),
	)
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func render(n contact.Notification) string {
	style := successStyle
	if n.Kind == contact.Failure {
		style = failureStyle
	}
	return style.Render(n.Title) + "\n" + n.Description
}
