package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/prism-vault/prism/color"
	"github.com/prism-vault/prism/icon"
	"github.com/prism-vault/prism/style"
	"github.com/prism-vault/prism/theme"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
	previewStyle          = lipgloss.NewStyle().Padding(1, 2).Width(previewWidth)
)

// previewProperties are the swatches shown for a theme.
var previewProperties = []theme.Property{
	theme.ColorBackground,
	theme.ColorSurface,
	theme.ColorBorder,
	theme.ColorAccent,
	theme.ColorAccentHover,
	theme.ColorText,
	theme.ColorTextMuted,
	theme.ColorRed,
	theme.ColorOrange,
	theme.ColorYellow,
	theme.ColorGreen,
	theme.ColorCyan,
	theme.ColorBlue,
	theme.ColorPurple,
	theme.ColorPink,
}

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case loadingState:
		output = b.viewLoading()
	case themesState:
		output = b.withPreview(b.themesC.View())
	case schemesState:
		output = b.withPreview(b.schemesC.View())
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	return paddingStyle.Render(strings.Join([]string{
		style.Title("Loading"),
		"",
		b.spinnerC.View() + " " + b.progressStatus,
	}, "\n"))
}

func (b *statefulBubble) viewError() string {
	errorMsg := wrap.String(style.Fg(color.Red)(b.lastError.Error()), b.width)
	return paddingStyle.Render(strings.Join([]string{
		style.New().Background(color.Red).Foreground(color.Black).Padding(0, 1).Render("Error"),
		"",
		icon.Get(icon.Fail) + " " + errorMsg,
		"",
		b.helpC.View(b.keymap),
	}, "\n"))
}

func (b *statefulBubble) withPreview(main string) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		listExtraPaddingStyle.Render(main),
		previewStyle.Render(b.viewPreview()),
	)
}

func (b *statefulBubble) viewPreview() string {
	if b.preview == nil {
		return ""
	}

	var (
		r     = b.preview
		title = style.Title(r.Get(theme.Name))
	)

	if accent, ok := color.Swatch(r.Get(theme.ColorAccent)); ok {
		fg := color.White
		if color.IsLight(r.Get(theme.ColorAccent)) {
			fg = color.Black
		}
		title = style.Colored(fg, accent).Padding(0, 1).Render(r.Get(theme.Name))
	}

	lines := []string{title, ""}

	if desc := r.Get(theme.Description); desc != "" {
		lines = append(lines, style.Italic(wrap.String(desc, previewWidth-4)), "")
	}

	for _, p := range previewProperties {
		name := strings.TrimPrefix(string(p), "color-")
		lines = append(lines, fmt.Sprintf("%-13s %s", name, style.Swatch(r.Get(p))))
	}

	lines = append(lines, "")
	if path := overridePath(b.highlightedOverride()); path != "" {
		lines = append(lines, style.Faint(path))
	}
	lines = append(lines, style.Faint(fmt.Sprintf("sync %s", onOff(b.shouldSync))))

	return strings.Join(lines, "\n")
}

func (b *statefulBubble) highlightedOverride() string {
	_, overrideID, _ := b.highlighted()
	return overrideID
}
