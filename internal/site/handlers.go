package site

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lisawang/lisa-site/internal/contact"
	"github.com/lisawang/lisa-site/internal/nav"
)

// handleContact composes the quick message and sends the browser to the mailto:
// link. Every field is optional, so this always redirects.
func (s *Server) handleContact(c *gin.Context) {
	var form contact.Form
	if err := c.ShouldBind(&form); err != nil {
		s.log.Debug("contact form bind", zap.Error(err))
	}

	var target string
	composer := contact.NewComposer(contact.NavigatorFunc(func(uri string) error {
		target = uri
		return nil
	}), s.log)
	for _, f := range contact.Fields {
		composer.UpdateField(f, form.Get(f))
	}
	composer.Submit()

	if c.GetHeader("HX-Request") == "true" {
		c.Header("HX-Redirect", target)
		c.Status(http.StatusNoContent)
		return
	}
	c.Redirect(http.StatusSeeOther, target)
}

// handleMenu flips the mobile menu from the state the client reports.
func (s *Server) handleMenu(c *gin.Context) {
	visible, err := strconv.ParseBool(c.Query("visible"))
	if err != nil {
		visible = false
	}
	menu := nav.Menu{Visible: visible}
	menu.Toggle()

	c.HTML(http.StatusOK, "mobile-menu", s.newPageData(menu))
}
