package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rajdeepray/portfolio/internal/catalog"
	"github.com/rajdeepray/portfolio/internal/config"
	"github.com/rajdeepray/portfolio/internal/preview"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Browse the portfolio in the terminal",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cat, err := catalog.Default()
		if err != nil {
			return fmt.Errorf("loading catalog: %w", err)
		}

		m := preview.New(cat, cfg.Anim)
		defer m.Close()

		p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
		_, err = p.Run()
		return err
	},
}
