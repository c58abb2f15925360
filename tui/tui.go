// Package tui implements the interactive theme browser.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/prism-vault/prism/engine"
	"github.com/prism-vault/prism/internal/ui"
	"github.com/prism-vault/prism/notify"
)

// Options configures the browser.
type Options struct {
	// Sync propagates switched themes to the host stores.
	Sync bool
}

// Run builds an engine over the configured vault and runs the browser until the user quits.
func Run(options *Options) error {
	notifications := ui.NewNotifier()
	e := engine.New(engine.Configured(notify.Multi{notify.Log{}, notifications}))

	bubble := newBubble(e, notifications, options)
	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
