package preview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/rajdeepray/portfolio/internal/catalog"
)

const barWidth = 30

func wrap(text string, width int, style lipgloss.Style) []string {
	return strings.Split(style.Width(width).Render(text), "\n")
}

func bar(level int) string {
	level = min(max(level, 0), 100)
	filled := level * barWidth / 100
	return barFillStyle.Render(strings.Repeat("█", filled)) +
		barTrackStyle.Render(strings.Repeat("░", barWidth-filled))
}

// renderSection returns the revealed lines for sec. The hidden rendering has
// the same height, so layout never depends on reveal state.
func (m *Model) renderSection(sec catalog.Section, width int) []string {
	var lines []string
	switch sec.Anchor {
	case "hero":
		lines = m.renderHero(width)
	case "about":
		lines = m.renderAbout(width)
	case "skills":
		lines = m.renderSkills(width)
	case "projects":
		lines = m.renderProjects(width)
	case "contact":
		lines = m.renderContact(width)
	case "footer":
		lines = m.renderFooter(width)
	default:
		lines = []string{titleStyle.Render(sec.Title)}
	}
	return append(lines, "")
}

func (m *Model) renderHero(width int) []string {
	p := m.profile
	lines := []string{
		"",
		titleStyle.Render("Hi, I'm " + p.Name),
		"I'm " + headingStyle.Render(m.typer.Text()) + "|",
		"",
	}
	lines = append(lines, wrap(p.Tagline, width, mutedStyle)...)
	lines = append(lines, "", mutedStyle.Render("[1-5] jump to section · ↑/↓ scroll · t top · q quit"))
	// The hero fills the first screen.
	for len(lines) < m.height-1 {
		lines = append(lines, "")
	}
	return lines
}

func (m *Model) renderAbout(width int) []string {
	lines := []string{titleStyle.Render("About Me"), ""}
	for _, para := range m.profile.About {
		lines = append(lines, wrap(para, width, lipgloss.NewStyle())...)
		lines = append(lines, "")
	}
	var hl []string
	for _, h := range m.profile.Highlights {
		hl = append(hl, "◆ "+h)
	}
	lines = append(lines, wrap(strings.Join(hl, "   "), width, headingStyle)...)
	return lines
}

func (m *Model) renderSkills(width int) []string {
	lines := []string{
		titleStyle.Render("My Skills"),
		mutedStyle.Render("A comprehensive blend of technical expertise and interpersonal abilities"),
	}
	for _, group := range []struct {
		title string
		cat   catalog.Category
	}{
		{"Soft Skills", catalog.Soft},
		{"Hard Skills", catalog.Hard},
	} {
		lines = append(lines, "", headingStyle.Render(group.title))
		for _, s := range m.skills {
			if s.Category != group.cat {
				continue
			}
			level := m.anim.Level(s.Name)
			lines = append(lines,
				fmt.Sprintf("%-18s %3d%%  %s", s.Name, level, mutedStyle.Render(s.Tier())),
				bar(level),
			)
		}
	}
	return lines
}

func (m *Model) renderProjects(width int) []string {
	lines := []string{titleStyle.Render("My Projects"), ""}
	for _, p := range m.projects {
		lines = append(lines, badgeStyle.Render(p.Category)+" "+headingStyle.Render(p.Title))
		lines = append(lines, wrap(p.Description, width, mutedStyle)...)
		lines = append(lines, wrap(strings.Join(p.Technologies, " · "), width, lipgloss.NewStyle())...)
		lines = append(lines, mutedStyle.Render("/projects/"+p.ID), "")
	}
	return lines
}

func (m *Model) renderContact(width int) []string {
	lines := []string{titleStyle.Render("Get In Touch"), ""}
	for _, c := range m.profile.Contact {
		lines = append(lines, fmt.Sprintf("%-9s %s", c.Label, c.Value))
	}
	lines = append(lines, "")
	for _, s := range m.profile.Social {
		lines = append(lines, fmt.Sprintf("%-9s %s", s.Label, mutedStyle.Render(s.Href)))
	}
	lines = append(lines, "", mutedStyle.Render("Run `portfolio contact` to send a message."))
	return lines
}

func (m *Model) renderFooter(width int) []string {
	var nav []string
	for _, s := range m.sections {
		if s.sec.Nav {
			nav = append(nav, s.sec.Title)
		}
	}
	return []string{
		strings.Join(nav, " · "),
		mutedStyle.Render(fmt.Sprintf("© %d %s. All rights reserved.", time.Now().Year(), m.profile.Name)),
	}
}

// placeholder renders n lines standing in for a hidden section.
func placeholder(title string, n int) []string {
	lines := make([]string, n)
	if n > 0 {
		lines[0] = hiddenStyle.Render("· · · " + title)
	}
	return lines
}
