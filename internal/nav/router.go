package nav

import (
	"net/url"
	"strings"
)

// Location is where a URL lands on the page. Every path renders the same page
// shell, so only the fragment matters, and only as a scroll target.
type Location struct {
	Path   string
	Anchor Anchor
}

// Resolve splits raw into its path and the section its fragment points at.
// Both "/#about" and hash-router style "/#/about" resolve to About; a missing
// fragment resolves to Top. ok is false when raw does not parse or its
// fragment names no section, in which case the location is still Top.
func Resolve(raw string) (loc Location, ok bool) {
	loc = Location{Path: "/", Anchor: Top}
	u, err := url.Parse(raw)
	if err != nil {
		return loc, false
	}
	if u.Path != "" {
		loc.Path = u.Path
	}
	frag := strings.TrimPrefix(u.Fragment, "/")
	if frag == "" {
		return loc, true
	}
	a, ok := ParseAnchor(frag)
	if !ok {
		return loc, false
	}
	loc.Anchor = a
	return loc, true
}
