package catalog

import "strings"

// Category groups skills on the skills section.
type Category string

const (
	Soft Category = "soft"
	Hard Category = "hard"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return c == Soft || c == Hard
}

// Project is a portfolio project, including the extended fields shown on its
// detail page.
type Project struct {
	ID              string   `yaml:"id" json:"id"`
	Title           string   `yaml:"title" json:"title"`
	Description     string   `yaml:"description" json:"description"`
	LongDescription string   `yaml:"long_description" json:"long_description"`
	Image           string   `yaml:"image" json:"image"`
	Technologies    []string `yaml:"technologies" json:"technologies"`
	Category        string   `yaml:"category" json:"category"`
	DemoURL         string   `yaml:"demo_url" json:"demo_url,omitempty"`
	GitHubURL       string   `yaml:"github_url" json:"github_url,omitempty"`

	// Detail view
	FullContent string   `yaml:"full_content" json:"full_content"`
	StartDate   string   `yaml:"start_date" json:"start_date"`
	Duration    string   `yaml:"duration" json:"duration"`
	TeamSize    string   `yaml:"team_size" json:"team_size"`
	Role        string   `yaml:"role" json:"role"`
	Challenges  []string `yaml:"challenges" json:"challenges"`
	Features    []string `yaml:"features" json:"features"`
	Screenshots []string `yaml:"screenshots" json:"screenshots"`
}

// Paragraphs splits FullContent on blank lines.
func (p Project) Paragraphs() []string {
	var out []string
	for _, para := range strings.Split(p.FullContent, "\n\n") {
		if para = strings.TrimSpace(para); para != "" {
			out = append(out, para)
		}
	}
	return out
}

func (p Project) clone() Project {
	p.Technologies = cloneStrings(p.Technologies)
	p.Challenges = cloneStrings(p.Challenges)
	p.Features = cloneStrings(p.Features)
	p.Screenshots = cloneStrings(p.Screenshots)
	return p
}

// Skill is one entry on the skills section.
type Skill struct {
	Name     string   `yaml:"name" json:"name"`
	Level    int      `yaml:"level" json:"level"`
	Category Category `yaml:"category" json:"category"`
}

// Tier names the proficiency band shown under a skill bar.
func (s Skill) Tier() string {
	switch {
	case s.Level >= 90:
		return "Expert"
	case s.Level >= 80:
		return "Advanced"
	case s.Level >= 70:
		return "Intermediate"
	default:
		return "Beginner"
	}
}

// Link is a labelled outbound link.
type Link struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value,omitempty" json:"value,omitempty"`
	Href  string `yaml:"href" json:"href"`
}

// Profile holds the copy for the hero, about, contact, and footer sections.
type Profile struct {
	Name       string   `yaml:"name" json:"name"`
	Tagline    string   `yaml:"tagline" json:"tagline"`
	Roles      []string `yaml:"roles" json:"roles"`
	Image      string   `yaml:"image" json:"image"`
	About      []string `yaml:"about" json:"about"`
	Highlights []string `yaml:"highlights" json:"highlights"`
	Contact    []Link   `yaml:"contact" json:"contact"`
	Social     []Link   `yaml:"social" json:"social"`
}

// Section is a page block with a stable anchor and the fraction of it that
// must be on screen before it reveals.
type Section struct {
	Anchor    string  `yaml:"anchor" json:"anchor"`
	Title     string  `yaml:"title" json:"title"`
	Threshold float64 `yaml:"threshold" json:"threshold"`
	Nav       bool    `yaml:"nav" json:"nav"`
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}
