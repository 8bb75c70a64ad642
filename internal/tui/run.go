package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-rod/rod/lib/launcher"
	"go.uber.org/zap"

	"github.com/lisawang/lisa-site/internal/contact"
	"github.com/lisawang/lisa-site/internal/content"
	"github.com/lisawang/lisa-site/internal/nav"
)

// openURL is a package-level variable to allow mocking in tests.
var openURL = launcher.Open

// systemNavigator hands mailto: links to the OS default handler.
func systemNavigator() contact.Navigator {
	return contact.NavigatorFunc(func(uri string) error {
		openURL(uri)
		return nil
	})
}

// Run shows the page until the user quits or ctx is cancelled. start is the
// anchor to scroll to first, e.g. from a "#education" argument.
func Run(ctx context.Context, reg *content.Registry, log *zap.Logger, start nav.Anchor) error {
	copier := contact.NewCopier(contact.SystemClipboard{}, log)
	defer copier.Stop()
	composer := contact.NewComposer(systemNavigator(), log)

	p := tea.NewProgram(
		New(reg, copier, composer, WithStart(start)),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	copier.OnChange(func(label string) {
		p.Send(feedbackMsg{label: label})
	})

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
