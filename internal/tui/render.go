package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lisawang/lisa-site/internal/content"
	"github.com/lisawang/lisa-site/internal/nav"
)

// renderPage lays out every section in page order and records the line each
// section starts on, so anchors can scroll to it.
func renderPage(reg *content.Registry, st Styles, width int) (string, map[nav.Anchor]int) {
	if width < 20 {
		width = 20
	}
	var b strings.Builder
	offsets := make(map[nav.Anchor]int, len(nav.Anchors))
	for i, a := range nav.Anchors {
		if i > 0 {
			b.WriteString("\n\n")
		}
		offsets[a] = strings.Count(b.String(), "\n")
		b.WriteString(renderSection(a, reg, st, width))
	}
	return b.String(), offsets
}

func renderSection(a nav.Anchor, reg *content.Registry, st Styles, width int) string {
	wrap := lipgloss.NewStyle().Width(width)
	switch a {
	case nav.Top:
		return renderHero(reg, st, wrap)
	case nav.About:
		return renderAbout(reg, st, wrap)
	case nav.Strengths:
		items := make([]string, 0, len(reg.Strengths))
		for _, s := range reg.Strengths {
			items = append(items, st.Heading.Render(s.Title)+"\n"+st.Body.Render(wrap.Render(s.Description)))
		}
		return header(reg.Header(string(a)), st, wrap) + "\n\n" + strings.Join(items, "\n\n")
	case nav.Experience:
		var items []string
		for _, e := range reg.Experience {
			lines := []string{
				st.Heading.Render(e.Title + " · " + e.Company),
				st.Muted.Render(e.Focus),
				st.Label.Render(e.Period + " · " + e.Location),
			}
			for _, h := range e.Highlights {
				lines = append(lines, st.Body.Render(wrap.Render("• "+h)))
			}
			items = append(items, strings.Join(lines, "\n"))
		}
		return header(reg.Header(string(a)), st, wrap) + "\n\n" + strings.Join(items, "\n\n")
	case nav.Achievements:
		items := make([]string, 0, len(reg.Achievements))
		for _, ach := range reg.Achievements {
			items = append(items, st.Accent.Render("★ ")+st.Body.Render(wrap.Render(ach.Description)))
		}
		return header(reg.Header(string(a)), st, wrap) + "\n\n" + strings.Join(items, "\n")
	case nav.Volunteering:
		var items []string
		for _, v := range reg.Volunteering {
			items = append(items, strings.Join([]string{
				st.Heading.Render(v.Title + " · " + v.Location),
				st.Label.Render(v.Period),
				st.Body.Render(wrap.Render(v.Description)),
			}, "\n"))
		}
		return header(reg.Header(string(a)), st, wrap) + "\n\n" + strings.Join(items, "\n\n")
	case nav.Education:
		var items []string
		for _, e := range reg.Education {
			items = append(items, strings.Join([]string{
				st.Accent.Render(e.Period),
				st.Heading.Render(e.Title),
				st.Muted.Render(e.Institution),
				st.Body.Render(wrap.Render(e.Description)),
			}, "\n"))
		}
		return header(reg.Header(string(a)), st, wrap) + "\n\n" + strings.Join(items, "\n\n")
	case nav.Contact:
		return header(reg.Header(string(a)), st, wrap) + "\n\n" + strings.Join([]string{
			st.Label.Render("EMAIL"),
			st.Heading.Render(reg.Profile.Email),
			st.Muted.Render("c copies the address · f writes a quick message"),
		}, "\n")
	}
	return ""
}

func renderHero(reg *content.Registry, st Styles, wrap lipgloss.Style) string {
	p := reg.Profile
	lines := []string{
		st.Eyebrow.Render(p.Headline),
		"",
		st.Name.Render(p.Name),
		st.Body.Render(wrap.Render(p.Summary)),
		"",
	}
	for _, s := range reg.Stats {
		lines = append(lines, fmt.Sprintf("%s  %s", st.Label.Render(strings.ToUpper(s.Label)), st.Body.Render(s.Value)))
	}
	lines = append(lines, "", st.Accent.Render(wrap.Render(fmt.Sprintf("%s · %s: %q", p.Name, p.Zodiac, p.Quote))))
	return strings.Join(lines, "\n")
}

func renderAbout(reg *content.Registry, st Styles, wrap lipgloss.Style) string {
	p := reg.Profile
	parts := []string{header(reg.Header(string(nav.About)), st, wrap)}
	for _, para := range p.Bio {
		parts = append(parts, st.Body.Render(wrap.Render(para)))
	}
	parts = append(parts, st.Heading.Render("Professional Profile")+"\n"+st.Body.Render(wrap.Render(p.Summary)))

	facts := []string{st.Heading.Render("Snapshot")}
	for _, f := range p.Facts() {
		facts = append(facts, fmt.Sprintf("%s  %s", st.Label.Render(strings.ToUpper(f.Label)), f.Value))
	}
	facts = append(facts, st.Label.Render("OFFICE")+"  "+p.Office.Address)
	parts = append(parts, strings.Join(facts, "\n"))
	return strings.Join(parts, "\n\n")
}

func header(h content.SectionHeader, st Styles, wrap lipgloss.Style) string {
	out := st.Eyebrow.Render(h.Eyebrow) + "\n" + st.Heading.Render(wrap.Render(h.Heading))
	if h.Intro != "" {
		out += "\n" + st.Muted.Render(wrap.Render(h.Intro))
	}
	return out
}
