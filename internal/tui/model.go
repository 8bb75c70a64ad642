// Package tui renders the resume page in a terminal with bubbletea.
//
// The page is the same content as the web renderer, laid out with lipgloss and
// scrolled in a viewport. The contact composer and the clipboard copier run
// in-process here, so their feedback is driven by messages from the Copier.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lisawang/lisa-site/internal/contact"
	"github.com/lisawang/lisa-site/internal/content"
	"github.com/lisawang/lisa-site/internal/nav"
)

const copyLabel = "Email"

// feedbackMsg is sent by the Copier whenever the copied label changes.
type feedbackMsg struct {
	label string
}

// Model is the root bubbletea model for the page.
type Model struct {
	registry *content.Registry
	styles   Styles
	copier   *contact.Copier
	composer *contact.Composer

	width    int
	height   int
	ready    bool
	viewport viewport.Model
	offsets  map[nav.Anchor]int
	start    nav.Anchor

	menu nav.Menu

	composing bool
	focus     int
	name      textinput.Model
	email     textinput.Model
	message   textarea.Model
	status    string
}

type Option func(*Model)

// WithStart scrolls to anchor once the terminal size is known.
func WithStart(a nav.Anchor) Option {
	return func(m *Model) { m.start = a }
}

// New returns the page model. A nil copier turns the copy key off; composer
// is required.
func New(reg *content.Registry, copier *contact.Copier, composer *contact.Composer, opts ...Option) Model {
	name := textinput.New()
	name.Placeholder = "Enter your name"
	name.Prompt = ""
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.Prompt = ""
	message := textarea.New()
	message.Placeholder = "Share a bit about your goals, timeline, and preferred way to collaborate."
	message.ShowLineNumbers = false
	message.SetHeight(4)

	m := Model{
		registry: reg,
		styles:   DefaultStyles(),
		copier:   copier,
		composer: composer,
		start:    nav.Top,
		name:     name,
		email:    email,
		message:  message,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init sets the terminal title once for the lifetime of the program.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.registry.Profile.Title)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		if !m.ready {
			m.ready = true
			m.jump(m.start)
		}
		return m, nil

	case feedbackMsg:
		// Copier state is read at render time; this only triggers a redraw.
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.composing {
			return m.updateForm(msg)
		}
		return m.updatePage(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) updatePage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if link, ok := nav.LinkForKey(key); ok {
		m.jump(link.Anchor)
		return m, nil
	}
	switch key {
	case "q":
		return m, tea.Quit
	case "g":
		m.jump(nav.Top)
		return m, nil
	case "m":
		m.menu.Toggle()
		m.resize()
		return m, nil
	case "c":
		if m.copier == nil {
			return m, nil
		}
		copier, value := m.copier, m.registry.Profile.Email
		return m, func() tea.Msg {
			copier.Copy(copyLabel, value)
			return nil
		}
	case "f":
		m.composing = true
		m.status = ""
		m.focus = 0
		m.resize()
		return m, m.focusField()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.composing = false
		m.resize()
		return m, nil
	case "tab":
		m.focus = (m.focus + 1) % len(contact.Fields)
		return m, m.focusField()
	case "shift+tab":
		m.focus = (m.focus + len(contact.Fields) - 1) % len(contact.Fields)
		return m, m.focusField()
	case "ctrl+s":
		m.composer.Submit()
		m.status = "Opening your mail client with this message…"
		m.composing = false
		m.resize()
		return m, nil
	}

	var cmd tea.Cmd
	field := contact.Fields[m.focus]
	switch field {
	case contact.FieldName:
		m.name, cmd = m.name.Update(msg)
		m.composer.UpdateField(field, m.name.Value())
	case contact.FieldEmail:
		m.email, cmd = m.email.Update(msg)
		m.composer.UpdateField(field, m.email.Value())
	case contact.FieldMessage:
		m.message, cmd = m.message.Update(msg)
		m.composer.UpdateField(field, m.message.Value())
	}
	return m, cmd
}

func (m *Model) focusField() tea.Cmd {
	m.name.Blur()
	m.email.Blur()
	m.message.Blur()
	switch contact.Fields[m.focus] {
	case contact.FieldName:
		return m.name.Focus()
	case contact.FieldEmail:
		return m.email.Focus()
	default:
		return m.message.Focus()
	}
}

func (m *Model) jump(a nav.Anchor) {
	m.viewport.SetYOffset(m.offsets[a])
}

// resize re-renders the page for the current width and gives the viewport
// whatever height the chrome leaves over.
func (m *Model) resize() {
	if m.width == 0 {
		return
	}
	inner := m.width - 2
	body, offsets := renderPage(m.registry, m.styles, inner)
	m.offsets = offsets

	m.name.Width = inner - 2
	m.email.Width = inner - 2
	m.message.SetWidth(inner)

	h := m.height - lipgloss.Height(m.headerView()) - lipgloss.Height(m.footerView())
	if m.composing {
		h -= lipgloss.Height(m.formView())
	}
	if h < 1 {
		h = 1
	}

	if !m.ready {
		m.viewport = viewport.New(m.width, h)
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = h
	}
	m.viewport.SetContent(body)
}

func (m Model) View() string {
	if !m.ready {
		return "Loading…"
	}
	parts := []string{m.headerView(), m.viewport.View()}
	if m.composing {
		parts = append(parts, m.formView())
	}
	parts = append(parts, m.footerView())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) headerView() string {
	p := m.registry.Profile
	head := m.styles.Name.Render(p.Name) + "  " + m.styles.Tagline.Render(p.Tagline)
	if !m.menu.Visible {
		return head
	}
	var links []string
	for _, l := range nav.Links() {
		links = append(links, m.styles.Accent.Render("["+l.Key+"]")+" "+l.Label)
	}
	return head + "\n" + m.styles.Menu.Render(strings.Join(links, "\n"))
}

func (m Model) formView() string {
	label := func(i int, text string) string {
		if i == m.focus {
			return m.styles.Focused.Render("› " + text)
		}
		return m.styles.Label.Render("  " + text)
	}
	return m.styles.Card.Render(strings.Join([]string{
		m.styles.Heading.Render("Quick message"),
		label(0, "Your name"), m.name.View(),
		label(1, "Your email"), m.email.View(),
		label(2, "Your message"), m.message.View(),
		m.styles.Help.Render("tab next field · ctrl+s open email with this message · esc close"),
	}, "\n"))
}

func (m Model) footerView() string {
	button := "Copy"
	if m.copier != nil && m.copier.Copied(copyLabel) {
		button = "Copied"
	}
	help := m.styles.Help.Render("1-6 jump · g top · m menu · c " + button + " email · f message · q quit")
	if m.status != "" {
		return m.styles.Status.Render(m.status) + "\n" + help
	}
	return help
}
