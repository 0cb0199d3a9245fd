// Package preview renders the portfolio in the terminal. The page is laid out
// as lines; each section's line range is its region, and the scroll offset
// drives a reveal.Watcher, so sections reveal as they scroll into view the
// same way they do in the browser.
package preview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rajdeepray/portfolio/internal/catalog"
	"github.com/rajdeepray/portfolio/internal/config"
	"github.com/rajdeepray/portfolio/internal/reveal"
)

const (
	frameInterval  = 100 * time.Millisecond
	scrollInterval = 16 * time.Millisecond
)

type frameMsg time.Time
type scrollMsg time.Time

type section struct {
	sec   catalog.Section
	ctrl  *reveal.Controller
	start int
	lines int
}

// Model is the bubbletea model for the terminal preview.
type Model struct {
	profile  catalog.Profile
	projects []catalog.Project
	skills   []catalog.Skill
	sections []*section

	watcher *reveal.Watcher
	anim    *reveal.Animator
	typer   *Typewriter
	keys    keyMap

	width, height int
	offset        int
	target        int
	total         int
	mounted       bool
	closed        bool
	err           error
}

// Option configures a Model.
type Option func(*modelOptions)

type modelOptions struct {
	clock reveal.Clock
}

// WithClock drives the skill animation from c instead of the wall clock.
func WithClock(c reveal.Clock) Option {
	return func(o *modelOptions) {
		o.clock = c
	}
}

// New builds a preview of cat. Sections mount on the first window size.
func New(cat *catalog.Catalog, anim config.AnimationConfig, opts ...Option) *Model {
	var o modelOptions
	for _, opt := range opts {
		opt(&o)
	}

	m := &Model{
		profile:  cat.Profile(),
		projects: cat.Projects(),
		skills:   cat.Skills(),
		watcher:  reveal.NewWatcher(reveal.Rect{}),
		keys:     defaultKeyMap(),
	}
	m.typer = NewTypewriter(m.profile.Roles)

	targets := make([]reveal.Target, 0, len(m.skills))
	for _, s := range m.skills {
		targets = append(targets, reveal.Target{Key: s.Name, Level: s.Level})
	}
	var animOpts []reveal.AnimatorOption
	if o.clock != nil {
		animOpts = append(animOpts, reveal.WithClock(o.clock))
	}
	m.anim = reveal.NewAnimator(targets, anim.Stagger, animOpts...)

	for _, sec := range cat.Sections() {
		m.sections = append(m.sections, &section{sec: sec})
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	return frame()
}

func frame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func scrollStep() tea.Cmd {
	return tea.Tick(scrollInterval, func(t time.Time) tea.Msg { return scrollMsg(t) })
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case frameMsg:
		if m.closed {
			return m, nil
		}
		m.typer.Advance(frameInterval)
		return m, frame()

	case scrollMsg:
		if m.offset == m.target {
			return m, nil
		}
		diff := m.target - m.offset
		step := diff / 4
		if step == 0 {
			step = diff / abs(diff)
		}
		m.scrollTo(m.offset + step)
		return m, scrollStep()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	page := max(m.pageHeight()-1, 1)
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.jump(m.offset - 1)
	case key.Matches(msg, m.keys.Down):
		m.jump(m.offset + 1)
	case key.Matches(msg, m.keys.PageUp):
		m.jump(m.offset - page)
	case key.Matches(msg, m.keys.PageDown):
		m.jump(m.offset + page)
	case key.Matches(msg, m.keys.Bottom):
		m.jump(m.total)
	case key.Matches(msg, m.keys.Top):
		return m, m.smoothScroll(0)
	default:
		for i, b := range m.keys.Anchors {
			if key.Matches(msg, b) {
				return m, m.smoothScroll(m.anchorOffset(anchorKeys[i]))
			}
		}
	}
	return m, nil
}

// layout measures every section at the current width, moves each
// controller's region, and mounts controllers the first time through.
func (m *Model) layout() {
	y := 0
	for _, s := range m.sections {
		s.start = y
		s.lines = len(m.renderSection(s.sec, m.contentWidth()))
		y += s.lines
	}
	m.total = y

	m.offset = m.clamp(m.offset)
	m.target = m.clamp(m.target)
	vp := m.viewport()

	for _, s := range m.sections {
		if s.ctrl != nil {
			s.ctrl.SetRegion(m.region(s), vp)
		}
	}
	m.watcher.Scroll(vp)

	if m.closed {
		return
	}
	for _, s := range m.sections {
		if s.ctrl != nil {
			continue
		}
		opts := []reveal.Option{reveal.WithName(s.sec.Anchor)}
		if s.sec.Anchor == "skills" {
			opts = append(opts, reveal.WithOnReveal(func() { m.anim.Start() }))
		}
		ctrl, err := reveal.Observe(m.watcher, m.region(s), s.sec.Threshold, opts...)
		if err != nil {
			m.err = err
			continue
		}
		s.ctrl = ctrl
	}
	m.mounted = true
}

func (m *Model) region(s *section) reveal.Rect {
	return reveal.Rect{Y: float64(s.start), Width: float64(m.width), Height: float64(s.lines)}
}

// pageHeight is the number of rows left for the page above the status bar.
func (m *Model) pageHeight() int {
	return max(m.height-1, 1)
}

func (m *Model) contentWidth() int {
	return max(min(m.width, 100)-4, 20)
}

func (m *Model) viewport() reveal.Rect {
	return reveal.Rect{Y: float64(m.offset), Width: float64(m.width), Height: float64(m.pageHeight())}
}

func (m *Model) clamp(offset int) int {
	return max(min(offset, m.total-m.pageHeight()), 0)
}

// jump scrolls instantly and cancels any smooth scroll in flight.
func (m *Model) jump(offset int) {
	m.scrollTo(offset)
	m.target = m.offset
}

func (m *Model) scrollTo(offset int) {
	offset = m.clamp(offset)
	if offset == m.offset {
		return
	}
	m.offset = offset
	m.watcher.Scroll(m.viewport())
}

// smoothScroll starts an animated scroll toward offset.
func (m *Model) smoothScroll(offset int) tea.Cmd {
	m.target = m.clamp(offset)
	if m.target == m.offset {
		return nil
	}
	return scrollStep()
}

func (m *Model) anchorOffset(anchor string) int {
	for _, s := range m.sections {
		if s.sec.Anchor == anchor {
			return s.start
		}
	}
	return 0
}

// Revealed reports whether the section with anchor has been revealed.
func (m *Model) Revealed(anchor string) bool {
	for _, s := range m.sections {
		if s.sec.Anchor == anchor {
			return s.ctrl != nil && s.ctrl.Revealed()
		}
	}
	return false
}

// Close unmounts every section: viewport subscriptions are released and
// pending skill timers are discarded.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	for _, s := range m.sections {
		if s.ctrl != nil {
			s.ctrl.Close()
		}
	}
	m.anim.Stop()
}

func (m *Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n", m.err)
	}
	if !m.mounted {
		return "Loading..."
	}

	var page []string
	width := m.contentWidth()
	for _, s := range m.sections {
		if s.ctrl != nil && s.ctrl.Revealed() {
			page = append(page, m.renderSection(s.sec, width)...)
		} else {
			page = append(page, placeholder(s.sec.Title, s.lines)...)
		}
	}

	end := min(m.offset+m.pageHeight(), len(page))
	visible := page[min(m.offset, end):end]

	var b strings.Builder
	for _, line := range visible {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	for i := len(visible); i < m.pageHeight(); i++ {
		b.WriteByte('\n')
	}
	b.WriteString(m.statusBar())
	return b.String()
}

func (m *Model) statusBar() string {
	var parts []string
	for _, s := range m.sections {
		mark := "○"
		if s.ctrl != nil && s.ctrl.Revealed() {
			mark = "●"
		}
		parts = append(parts, mark+" "+s.sec.Anchor)
	}
	pct := 100
	if m.total > m.pageHeight() {
		pct = m.offset * 100 / (m.total - m.pageHeight())
	}
	return statusBarStyle.Width(m.width).Render(fmt.Sprintf(" %s  %3d%%", strings.Join(parts, "  "), pct))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
