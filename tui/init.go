package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (b *statefulBubble) Init() tea.Cmd {
	b.progressStatus = "Scanning themes"
	return tea.Batch(b.spinnerC.Tick, b.loadCatalog(), b.notifications.Wait())
}
