package main

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Site renders the landing page and the HTMX fragments that carry its
// page-local state.
type Site struct {
	projects []ProjectEntry
	relay    Relayer
}

func NewSite(projects []ProjectEntry, relay Relayer) *Site {
	return &Site{projects: projects, relay: relay}
}

func (s *Site) pageData() gin.H {
	cards := make([]*ProjectCard, len(s.projects))
	for i, p := range s.projects {
		cards[i] = NewProjectCard(p)
	}
	return gin.H{
		"ownerName":    OwnerName,
		"ownerRole":    OwnerRole,
		"sections":     Sections,
		"nav":          NewNavigationState(),
		"aboutMe":      AboutMe,
		"skills":       Skills,
		"experience":   Experience,
		"cards":        cards,
		"contactBlurb": ContactBlurb,
		"socialLinks":  SocialLinks,
		"form":         ContactForm{},
		"footerYear":   FooterYear,
	}
}

// Index handles GET /
func (s *Site) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", s.pageData())
}

// Nav handles GET /nav and returns the header fragment.
//
// Query: op (track|toggle|select), active, menu, section, geom.
func (s *Site) Nav(c *gin.Context) {
	nav := NewNavigationState()
	if raw := c.Query("active"); raw != "" {
		sec, err := ParseSection(raw)
		if err != nil {
			c.String(http.StatusBadRequest, "%v", err)
			return
		}
		nav.Active = sec
	}
	nav.MenuOpen = c.Query("menu") == "true"

	switch op := c.Query("op"); op {
	case "", "track":
		geoms, err := ParseGeometry(c.Query("geom"))
		if err != nil {
			c.String(http.StatusBadRequest, "%v", err)
			return
		}
		nav = nav.Track(geoms)
	case "toggle":
		nav = nav.Toggle()
	case "select":
		sec, err := ParseSection(c.Query("section"))
		if err != nil {
			c.String(http.StatusBadRequest, "%v", err)
			return
		}
		nav = nav.Select(sec)
	default:
		c.String(http.StatusBadRequest, "unknown op %q", op)
		return
	}

	c.HTML(http.StatusOK, "nav", nav)
}

// ProjectCard handles GET /projects/:slug/card?sub=i
func (s *Site) ProjectCard(c *gin.Context) {
	entry, ok := FindProject(s.projects, c.Param("slug"))
	if !ok {
		c.String(http.StatusNotFound, "project not found")
		return
	}

	card := NewProjectCard(entry)
	if raw := c.Query("sub"); raw != "" {
		i, err := strconv.Atoi(raw)
		if err != nil {
			c.String(http.StatusBadRequest, "invalid sub-project index")
			return
		}
		if err := card.Select(i); err != nil {
			c.String(http.StatusBadRequest, "%v", err)
			return
		}
	}

	c.HTML(http.StatusOK, "project-card", card)
}

// Contact handles POST /contact from the HTMX form and re-renders it with
// the resulting status.
func (s *Site) Contact(c *gin.Context) {
	reqID := c.GetString(requestIDKey)

	var form ContactForm
	if err := c.ShouldBind(&form.Fields); err != nil {
		c.String(http.StatusBadRequest, "invalid form")
		return
	}
	form.OnStatus = func(st FormStatus) {
		log.Printf("[%s] Contact form %s", reqID, st)
	}

	if err := form.Submit(c.Request.Context(), s.relay); err != nil {
		log.Printf("[%s] Contact relay failed: %v", reqID, err)
	}

	c.HTML(http.StatusOK, "contact-form", form)
}

// Health handles GET /healthz
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
