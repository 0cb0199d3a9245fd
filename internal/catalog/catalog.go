// Package catalog holds the portfolio's static content: profile copy, page
// sections, projects, and skills. The tables are parsed once from an embedded
// YAML document and never change afterwards.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/portfolio.yaml
var portfolioYAML []byte

// ErrProjectNotFound is returned when a project id has no record.
var ErrProjectNotFound = errors.New("project not found")

type document struct {
	Profile  Profile   `yaml:"profile"`
	Sections []Section `yaml:"sections"`
	Projects []Project `yaml:"projects"`
	Skills   []Skill   `yaml:"skills"`
}

// Catalog is an immutable view over the portfolio content. Every accessor
// returns copies.
type Catalog struct {
	profile  Profile
	sections []Section
	order    []string
	projects map[string]Project
	skills   []Skill
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	c := &Catalog{
		profile:  doc.Profile,
		sections: doc.Sections,
		projects: make(map[string]Project, len(doc.Projects)),
		skills:   doc.Skills,
	}

	for _, p := range doc.Projects {
		if p.ID == "" {
			return nil, fmt.Errorf("project %q has no id", p.Title)
		}
		if p.Title == "" {
			return nil, fmt.Errorf("project %s has no title", p.ID)
		}
		if _, dup := c.projects[p.ID]; dup {
			return nil, fmt.Errorf("duplicate project id %s", p.ID)
		}
		c.projects[p.ID] = p
		c.order = append(c.order, p.ID)
	}

	seen := make(map[string]bool, len(doc.Skills))
	for _, s := range doc.Skills {
		if s.Level < 0 || s.Level > 100 {
			return nil, fmt.Errorf("skill %s: level %d out of range [0,100]", s.Name, s.Level)
		}
		if !s.Category.Valid() {
			return nil, fmt.Errorf("skill %s: unknown category %q", s.Name, s.Category)
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("duplicate skill %s", s.Name)
		}
		seen[s.Name] = true
	}

	for _, s := range doc.Sections {
		if s.Threshold < 0 || s.Threshold > 1 {
			return nil, fmt.Errorf("section %s: threshold %g out of range [0,1]", s.Anchor, s.Threshold)
		}
	}

	return c, nil
}

var defaultCatalog = sync.OnceValues(func() (*Catalog, error) {
	return Parse(portfolioYAML)
})

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return defaultCatalog()
}

// Profile returns the site owner's profile copy.
func (c *Catalog) Profile() Profile {
	p := c.profile
	p.Roles = cloneStrings(p.Roles)
	p.About = cloneStrings(p.About)
	p.Highlights = cloneStrings(p.Highlights)
	p.Contact = append([]Link(nil), p.Contact...)
	p.Social = append([]Link(nil), p.Social...)
	return p
}

// Sections returns the page sections in display order.
func (c *Catalog) Sections() []Section {
	return append([]Section(nil), c.sections...)
}

// Section looks up a section by anchor.
func (c *Catalog) Section(anchor string) (Section, bool) {
	for _, s := range c.sections {
		if s.Anchor == anchor {
			return s, true
		}
	}
	return Section{}, false
}

// Projects returns every project in display order.
func (c *Catalog) Projects() []Project {
	out := make([]Project, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.projects[id].clone())
	}
	return out
}

// Project returns the project with the given id.
func (c *Catalog) Project(id string) (Project, error) {
	p, ok := c.projects[id]
	if !ok {
		return Project{}, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}
	return p.clone(), nil
}

// Skills returns every skill in display order.
func (c *Catalog) Skills() []Skill {
	return append([]Skill(nil), c.skills...)
}

// SkillsByCategory returns the skills in cat, preserving display order.
func (c *Catalog) SkillsByCategory(cat Category) []Skill {
	var out []Skill
	for _, s := range c.skills {
		if s.Category == cat {
			out = append(out, s)
		}
	}
	return out
}
