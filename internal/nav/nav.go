// Package nav holds the in-page anchors and the mobile menu toggle.
package nav

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Anchor is a fragment identifier of a section on the page.
type Anchor string

const (
	Top          Anchor = "top"
	About        Anchor = "about"
	Strengths    Anchor = "strengths"
	Experience   Anchor = "experience"
	Achievements Anchor = "achievements"
	Volunteering Anchor = "volunteering"
	Education    Anchor = "education"
	Contact      Anchor = "contact"
)

// Anchors lists every section anchor in page order.
var Anchors = []Anchor{Top, About, Strengths, Experience, Achievements, Volunteering, Education, Contact}

// linked is the navigation order. Experience renders on the page but is not linked.
var linked = []Anchor{About, Strengths, Achievements, Volunteering, Education, Contact}

// Href returns the in-page link target, e.g. "#about".
func (a Anchor) Href() string {
	return "#" + string(a)
}

// Label returns the title-cased link text for the anchor.
func (a Anchor) Label() string {
	return cases.Title(language.English).String(string(a))
}

// ParseAnchor accepts "about" or "#about". ok is false for anything that is not a
// section on the page.
func ParseAnchor(s string) (Anchor, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	for _, a := range Anchors {
		if string(a) == s {
			return a, true
		}
	}
	return "", false
}

// Link is one entry of the navigation bar.
type Link struct {
	Anchor Anchor
	Label  string
	Href   string
	Key    string // shortcut in the terminal renderer
}

// Links returns the navigation links in display order.
func Links() []Link {
	out := make([]Link, 0, len(linked))
	for i, a := range linked {
		out = append(out, Link{
			Anchor: a,
			Label:  a.Label(),
			Href:   a.Href(),
			Key:    string(rune('1' + i)),
		})
	}
	return out
}

// LinkForKey finds the link bound to a terminal shortcut.
func LinkForKey(key string) (Link, bool) {
	for _, l := range Links() {
		if l.Key == key {
			return l, true
		}
	}
	return Link{}, false
}

// Menu is the show/hide state of the mobile navigation panel. The zero value is hidden.
type Menu struct {
	Visible bool
}

// Toggle flips the menu visibility and returns the new state.
func (m *Menu) Toggle() bool {
	m.Visible = !m.Visible
	return m.Visible
}
