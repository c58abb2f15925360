package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/prism-vault/prism/color"
	"github.com/prism-vault/prism/icon"
	"github.com/prism-vault/prism/theme"
)

// listItem adapts themes and color override names to list.Item.
type listItem struct {
	internal any
	marked   bool
}

func (t *listItem) Title() (title string) {
	switch e := t.internal.(type) {
	case theme.Info:
		title = e.Name
	case string:
		title = e
	default:
		title = t.FilterValue()
	}

	if t.marked {
		title = fmt.Sprintf("%s %s", title, lipgloss.NewStyle().Bold(true).Foreground(color.HiPurple).Render(icon.Get(icon.Success)))
	}
	return
}

func (t *listItem) Description() string {
	switch e := t.internal.(type) {
	case theme.Info:
		var sb strings.Builder
		sb.WriteString(e.ID)
		if e.Version != "" {
			sb.WriteString(" v" + e.Version)
		}
		if e.Author != "" {
			sb.WriteString(" by " + e.Author)
		}
		if e.HasSprite {
			sb.WriteString(" " + icon.Get(icon.Theme))
		}
		return sb.String()
	default:
		return ""
	}
}

func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case theme.Info:
		return e.ID + " " + e.Name
	case string:
		return e
	default:
		return ""
	}
}
