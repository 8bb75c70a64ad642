package site

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lisawang/lisa-site/internal/contact"
	"github.com/lisawang/lisa-site/internal/content"
	"github.com/lisawang/lisa-site/internal/nav"
)

type section struct {
	Anchor   nav.Anchor
	Template string
}

// pageSections is the top-to-bottom order of the page.
var pageSections = []section{
	{Anchor: nav.Top, Template: "hero"},
	{Anchor: nav.About, Template: "about"},
	{Anchor: nav.Strengths, Template: "strengths"},
	{Anchor: nav.Experience, Template: "experience"},
	{Anchor: nav.Achievements, Template: "achievements"},
	{Anchor: nav.Volunteering, Template: "volunteering"},
	{Anchor: nav.Education, Template: "education"},
	{Anchor: nav.Contact, Template: "contact"},
}

// pageData is handed to the layout and to every section template.
type pageData struct {
	Title           string
	Profile         content.Profile
	Registry        *content.Registry
	Links           []nav.Link
	Menu            nav.Menu
	HeroMailto      string
	DirectMailto    string
	CopyLabel       string
	CopyResetMillis int64
	Sections        []template.HTML
}

func (s *Server) newPageData(menu nav.Menu) pageData {
	return pageData{
		Title:           s.registry.Profile.Title,
		Profile:         s.registry.Profile,
		Registry:        s.registry,
		Links:           nav.Links(),
		Menu:            menu,
		HeroMailto:      contact.HeroURI(),
		DirectMailto:    contact.DirectURI(),
		CopyLabel:       "Email",
		CopyResetMillis: contact.FeedbackDelay.Milliseconds(),
	}
}

// renderSections executes each section template in page order.
func (s *Server) renderSections(data pageData) ([]template.HTML, error) {
	out := make([]template.HTML, 0, len(pageSections))
	var buf bytes.Buffer
	for _, sec := range pageSections {
		buf.Reset()
		if err := s.tmpl.ExecuteTemplate(&buf, sec.Template, data); err != nil {
			return nil, fmt.Errorf("render section %s: %w", sec.Anchor, err)
		}
		out = append(out, template.HTML(buf.String()))
	}
	return out, nil
}

func (s *Server) handleShell(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.Header("Allow", "GET, HEAD")
		c.AbortWithStatus(http.StatusMethodNotAllowed)
		return
	}

	data := s.newPageData(nav.Menu{})
	sections, err := s.renderSections(data)
	if err != nil {
		s.log.Error("render page", zap.Error(err))
		c.String(http.StatusInternalServerError, "Sorry, this page could not be rendered.")
		return
	}
	data.Sections = sections

	c.HTML(http.StatusOK, "page", data)
}
