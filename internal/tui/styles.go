package tui

import "github.com/charmbracelet/lipgloss"

// Palette follows the web page: slate text, amber accents.
var (
	Slate900 = lipgloss.Color("#0f172a")
	Slate600 = lipgloss.Color("#475569")
	Slate400 = lipgloss.Color("#94a3b8")
	Amber500 = lipgloss.Color("#f59e0b")
	Amber700 = lipgloss.Color("#b45309")
	Border   = lipgloss.Color("#e2e8f0")
)

// Styles holds the lipgloss styles used by the page and the chrome around it.
type Styles struct {
	Name    lipgloss.Style
	Tagline lipgloss.Style
	Eyebrow lipgloss.Style
	Heading lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style
	Label   lipgloss.Style
	Accent  lipgloss.Style
	Card    lipgloss.Style
	Menu    lipgloss.Style
	Help    lipgloss.Style
	Focused lipgloss.Style
	Status  lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Name:    lipgloss.NewStyle().Bold(true).Foreground(Slate900),
		Tagline: lipgloss.NewStyle().Foreground(Slate600),
		Eyebrow: lipgloss.NewStyle().Bold(true).Foreground(Amber500),
		Heading: lipgloss.NewStyle().Bold(true).Foreground(Slate900),
		Body:    lipgloss.NewStyle().Foreground(Slate600),
		Muted:   lipgloss.NewStyle().Foreground(Slate400),
		Label:   lipgloss.NewStyle().Foreground(Slate400),
		Accent:  lipgloss.NewStyle().Foreground(Amber700),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1),
		Menu: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false).
			BorderForeground(Border),
		Help:    lipgloss.NewStyle().Foreground(Slate400),
		Focused: lipgloss.NewStyle().Bold(true).Foreground(Amber700),
		Status:  lipgloss.NewStyle().Italic(true).Foreground(Amber700),
	}
}
