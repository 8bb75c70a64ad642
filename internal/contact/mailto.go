package contact

import (
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// Recipient is the only address the site composes mail for.
const Recipient = "wangyuyanlisa@gmail.com"

const (
	placeholderMessage = "[Your message here]"
	placeholderName    = "Visitor"
	placeholderEmail   = "Not provided"
	placeholderSubject = "website visitor"

	heroSubject = "Collaboration with Lisa Wang"
)

// Draft is a composed message ready to hand to a mail client.
type Draft struct {
	To      string
	Subject string
	Body    string
}

// Compose turns a form into a draft. Empty fields fall back to placeholders, so
// every form composes.
func Compose(f Form) Draft {
	from := f.Name
	if from == "" {
		from = placeholderSubject
	}
	lines := []string{
		"Hi Lisa,",
		"",
		orDefault(f.Message, placeholderMessage),
		"",
		"---",
		"From: " + orDefault(f.Name, placeholderName),
		"Email: " + orDefault(f.Email, placeholderEmail),
	}
	return Draft{
		To:      Recipient,
		Subject: "Message for Lisa Wang from " + from,
		Body:    strings.Join(lines, "\n"),
	}
}

// URI renders the draft as mailto:<to>?subject=...&body=...
func (d Draft) URI() string {
	var b strings.Builder
	b.WriteString("mailto:")
	b.WriteString(d.To)
	b.WriteString("?subject=")
	b.WriteString(encodeComponent(d.Subject))
	b.WriteString("&body=")
	b.WriteString(encodeComponent(d.Body))
	return b.String()
}

// HeroURI is the call-to-action link in the page header.
func HeroURI() string {
	return "mailto:" + Recipient + "?subject=" + encodeComponent(heroSubject)
}

// DirectURI is the bare address link next to the email row.
func DirectURI() string {
	return "mailto:" + Recipient
}

// encodeComponent percent-encodes everything outside the unreserved set. Spaces
// become %20: mail handlers read '+' in a mailto query literally.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// Navigator hands a URI to whatever opens it: the browser, the OS handler.
type Navigator interface {
	Navigate(uri string) error
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(uri string) error

func (fn NavigatorFunc) Navigate(uri string) error { return fn(uri) }

// Composer owns one visitor's form and submits it to a Navigator.
type Composer struct {
	form Form
	nav  Navigator
	log  *zap.Logger
}

func NewComposer(nav Navigator, log *zap.Logger) *Composer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Composer{nav: nav, log: log}
}

// UpdateField replaces one field with value, unmodified.
func (c *Composer) UpdateField(field Field, value string) {
	c.form.Set(field, value)
}

func (c *Composer) Form() Form {
	return c.form
}

// Submit composes the current form and navigates to its mailto URI. Whether a
// mail client picks it up is outside our control; navigator errors are only logged.
func (c *Composer) Submit() Draft {
	d := Compose(c.form)
	if c.nav == nil {
		return d
	}
	if err := c.nav.Navigate(d.URI()); err != nil {
		c.log.Debug("mail handler navigation failed", zap.Error(err))
	}
	return d
}
