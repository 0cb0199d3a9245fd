package web

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rajdeepray/portfolio/internal/catalog"
	"github.com/rajdeepray/portfolio/internal/contact"
)

// pageData is the view model for the single-page site.
type pageData struct {
	Profile    catalog.Profile
	Sections   []catalog.Section
	Projects   []catalog.Project
	SoftSkills []catalog.Skill
	HardSkills []catalog.Skill
	Stagger    int64
	Transition int64
	Fields     contact.Fields
}

func (s *Server) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", pageData{
		Profile:    s.catalog.Profile(),
		Sections:   s.catalog.Sections(),
		Projects:   s.catalog.Projects(),
		SoftSkills: s.catalog.SkillsByCategory(catalog.Soft),
		HardSkills: s.catalog.SkillsByCategory(catalog.Hard),
		Stagger:    s.anim.Stagger.Milliseconds(),
		Transition: s.anim.Transition.Milliseconds(),
	})
}

// projectDetail renders one project. Unknown ids go back to the listing.
func (s *Server) projectDetail(c *gin.Context) {
	project, err := s.catalog.Project(c.Param("id"))
	if errors.Is(err, catalog.ErrProjectNotFound) {
		c.Redirect(http.StatusFound, "/")
		return
	}

	c.HTML(http.StatusOK, "project.html", gin.H{
		"Profile": s.catalog.Profile(),
		"Project": project,
	})
}

func (s *Server) contactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"Fields": contact.Fields{},
	})
}

// submitContact sends the posted form and answers with an HTMX fragment: the
// success toast and a blank form, or the error toast and the visitor's input.
func (s *Server) submitContact(c *gin.Context) {
	var fields contact.Fields
	if err := c.ShouldBind(&fields); err != nil {
		c.HTML(http.StatusBadRequest, "contact-error.html", gin.H{
			"Notification": contact.Notification{Kind: contact.Failure, Title: "Invalid form", Description: err.Error()},
			"Fields":       fields,
		})
		return
	}

	form := contact.NewForm(fields)
	notification, err := form.Submit(c.Request.Context(), s.sender)
	if err != nil {
		var missing []string
		var verr *contact.ValidationError
		if errors.As(err, &verr) {
			missing = verr.Missing
		}
		log.Printf("Contact submission from %s failed: %v", s.hashIP(c.ClientIP()), err)
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"Notification": notification,
			"Fields":       form.Fields(),
			"Missing":      missing,
		})
		return
	}

	log.Printf("Contact submission from %s delivered", s.hashIP(c.ClientIP()))
	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"Notification": notification,
		"Fields":       form.Fields(),
	})
}

func (s *Server) listProjects(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.Projects())
}

func (s *Server) getProject(c *gin.Context) {
	project, err := s.catalog.Project(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, project)
}

func (s *Server) listSkills(c *gin.Context) {
	cat := catalog.Category(c.Query("category"))
	if cat == "" {
		c.JSON(http.StatusOK, s.catalog.Skills())
		return
	}
	if !cat.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category: " + string(cat)})
		return
	}
	skills := s.catalog.SkillsByCategory(cat)
	if skills == nil {
		skills = []catalog.Skill{}
	}
	c.JSON(http.StatusOK, skills)
}
