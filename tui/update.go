package tui

import (
	"fmt"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/prism-vault/prism/internal/ui"
	"github.com/prism-vault/prism/theme"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmd = uiCmd
	}

	switch msg := msg.(type) {
	case ui.Notification:
		return b, tea.Batch(cmd, b.notifications.Wait())
	case error:
		b.busy = false
		b.raiseError(msg)
		return b, cmd
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case catalogLoadedMsg:
		b.setState(themesState)
		b.invalidatePreview()
		cmd = tea.Batch(cmd, b.setCatalog(msg))
		b.refreshPreview()
		return b, cmd
	case switchedMsg:
		b.busy = false
		if msg.ok {
			b.selection = msg.selection
			b.markSelection()
			b.invalidatePreview()
			b.refreshPreview()
		}
		return b, cmd
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}

		if b.busy {
			return b, cmd
		}

		if bubblesKey.Matches(msg, b.keymap.back) {
			switch b.state {
			case themesState:
				if b.themesC.FilterState() != list.Unfiltered {
					break
				}
				return b, cmd
			case schemesState:
				if b.schemesC.FilterState() != list.Unfiltered {
					break
				}
				b.previousState()
				b.invalidatePreview()
				b.refreshPreview()
				return b, cmd
			case errorState:
				b.previousState()
				return b, cmd
			}
		}
	}

	var stateCmd tea.Cmd
	switch b.state {
	case loadingState:
		b.spinnerC, stateCmd = b.spinnerC.Update(msg)
	case themesState:
		stateCmd = b.updateThemes(msg)
	case schemesState:
		stateCmd = b.updateSchemes(msg)
	case errorState:
		stateCmd = b.updateError(msg)
	}

	return b, tea.Batch(cmd, stateCmd)
}

func (b *statefulBubble) updateThemes(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && b.themesC.FilterState() != list.Filtering {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			item, ok := b.themesC.SelectedItem().(*listItem)
			if !ok {
				return nil
			}
			return b.switchTheme(item.internal.(theme.Info).ID, b.selection.ColorOverrideID)
		case bubblesKey.Matches(msg, b.keymap.schemes):
			b.newState(schemesState)
			b.refreshPreview()
			return nil
		case bubblesKey.Matches(msg, b.keymap.clearScheme):
			if b.selection.ColorOverrideID == "" {
				return nil
			}
			return b.switchTheme(b.selection.ThemeID, "")
		case bubblesKey.Matches(msg, b.keymap.toggleSync):
			b.shouldSync = !b.shouldSync
			return b.themesC.NewStatusMessage(fmt.Sprintf("sync %s", onOff(b.shouldSync)))
		case bubblesKey.Matches(msg, b.keymap.reload):
			b.setState(loadingState)
			b.progressStatus = "Rescanning themes"
			return tea.Batch(b.spinnerC.Tick, b.loadCatalog())
		}
	}

	var cmd tea.Cmd
	b.themesC, cmd = b.themesC.Update(msg)
	b.refreshPreview()
	return cmd
}

func (b *statefulBubble) updateSchemes(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && b.schemesC.FilterState() != list.Filtering {
		if bubblesKey.Matches(msg, b.keymap.confirm) {
			item, ok := b.schemesC.SelectedItem().(*listItem)
			if !ok {
				return nil
			}

			name := item.internal.(string)
			if name == noOverride {
				name = ""
			}

			b.previousState()
			return b.switchTheme(b.selection.ThemeID, name)
		}
	}

	var cmd tea.Cmd
	b.schemesC, cmd = b.schemesC.Update(msg)
	b.refreshPreview()
	return cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && bubblesKey.Matches(msg, b.keymap.quit) {
		return tea.Quit
	}
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
