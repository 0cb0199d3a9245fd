package preview

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#5EE7DF")
	violet = lipgloss.Color("#B490CA")
	muted  = lipgloss.Color("#9AA3BD")
	faint  = lipgloss.Color("#3A4262")

	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(accent)
	headingStyle   = lipgloss.NewStyle().Bold(true).Foreground(violet)
	mutedStyle     = lipgloss.NewStyle().Foreground(muted)
	hiddenStyle    = lipgloss.NewStyle().Foreground(faint)
	badgeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#202538")).Background(accent).Padding(0, 1)
	barFillStyle   = lipgloss.NewStyle().Foreground(accent)
	barTrackStyle  = lipgloss.NewStyle().Foreground(faint)
	statusBarStyle = lipgloss.NewStyle().Foreground(muted).Background(lipgloss.Color("#262C42"))
)
