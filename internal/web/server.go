// Package web serves the portfolio over HTTP: the single-page site, the
// project detail pages, the HTMX contact form, and a small JSON API over the
// catalog.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rajdeepray/portfolio/internal/catalog"
	"github.com/rajdeepray/portfolio/internal/config"
	"github.com/rajdeepray/portfolio/internal/contact"
	"github.com/rajdeepray/portfolio/internal/reveal"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Server holds what the handlers need.
type Server struct {
	catalog *catalog.Catalog
	sender  contact.Sender
	anim    config.AnimationConfig
	ipSalt  string

	// ImagesDir is served at /images. Project and profile images live
	// outside the binary.
	ImagesDir string
}

// NewServer returns a server rendering cat and delivering contact messages
// through sender.
func NewServer(cat *catalog.Catalog, sender contact.Sender, anim config.AnimationConfig) *Server {
	return &Server{
		catalog:   cat,
		sender:    sender,
		anim:      anim,
		ipSalt:    newSalt(),
		ImagesDir: "./images",
	}
}

// Router builds the gin engine with every route registered.
func (s *Server) Router() (*gin.Engine, error) {
	tmpl, err := s.templates()
	if err != nil {
		return nil, err
	}

	r := gin.Default()
	r.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}
	r.StaticFS("/static", http.FS(static))
	r.Static("/images", s.ImagesDir)

	r.GET("/", s.index)
	r.GET("/projects/:id", s.projectDetail)

	// HTMX contact form
	r.GET("/contact-form", s.contactForm)
	r.POST("/contact", s.submitContact)

	api := r.Group("/api")
	api.GET("/projects", s.listProjects)
	api.GET("/projects/:id", s.getProject)
	api.GET("/skills", s.listSkills)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r, nil
}

func (s *Server) templates() (*template.Template, error) {
	funcs := template.FuncMap{
		// delay renders a staggered animation delay in milliseconds.
		"delay": func(baseMs, stepMs, index int) int64 {
			return reveal.Delay(
				time.Duration(baseMs)*time.Millisecond,
				time.Duration(stepMs)*time.Millisecond,
				index,
			).Milliseconds()
		},
		"ms": func(d time.Duration) int64 {
			return d.Milliseconds()
		},
		"threshold": func(anchor string) float64 {
			if sec, ok := s.catalog.Section(anchor); ok {
				return sec.Threshold
			}
			return 0
		},
		"year": func() int {
			return time.Now().Year()
		},
		"dict": dict,
	}
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}

// dict builds a map from alternating keys and values, for passing more than
// one value into a nested template.
func dict(kv ...any) (map[string]any, error) {
	if len(kv)%2 != 0 {
		return nil, fmt.Errorf("dict: odd number of arguments")
	}
	m := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", kv[i])
		}
		m[k] = kv[i+1]
	}
	return m, nil
}
