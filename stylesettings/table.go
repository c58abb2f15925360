package stylesettings

import "github.com/prism-vault/prism/theme"

// Separator joins namespace, slot and mode in external keys.
const Separator = "@@"

const (
	minimal = "minimal-style"
	extras  = "extra-extras"
)

// Entry maps one external slot to an internal property.
type Entry struct {
	Namespace    string
	Slot         string
	Target       theme.Property
	ModeSpecific bool
}

// Key returns the external key of the entry for mode.
// Mode-agnostic entries ignore the mode.
func (e Entry) Key(mode Mode) string {
	base := e.Namespace + Separator + e.Slot
	if !e.ModeSpecific {
		return base
	}
	return base + Separator + string(mode)
}

func both(ns, slot string, target theme.Property) Entry {
	return Entry{Namespace: ns, Slot: slot, Target: target, ModeSpecific: true}
}

// table follows Minimal theme semantics: bg = backgrounds, ui = borders,
// ax = accents, tx = text, hl = highlights.
var table = []Entry{
	both(minimal, "bg1", theme.ColorBackground),
	both(minimal, "bg2", theme.ColorSurface),
	both(minimal, "bg3", theme.ColorSurfaceHover),

	both(minimal, "ui1", theme.ColorBorder),
	both(minimal, "ui2", theme.ColorBorderHighlight),
	both(minimal, "ui3", theme.ColorBorderActive),

	both(minimal, "ax1", theme.ColorAccent),
	both(minimal, "ax2", theme.ColorAccentHover),
	both(minimal, "ax3", theme.ColorAccentActive),
	both(minimal, "sp1", theme.ColorTextOnAccent),

	both(minimal, "tx1", theme.ColorText),
	both(minimal, "tx2", theme.ColorTextMuted),
	both(minimal, "tx3", theme.ColorTextFaint),
	both(minimal, "hl1", theme.ColorSelectionBg),
	both(minimal, "hl2", theme.ColorHighlightBg),

	both(minimal, "color-red", theme.ColorRed),
	both(minimal, "color-orange", theme.ColorOrange),
	both(minimal, "color-yellow", theme.ColorYellow),
	both(minimal, "color-green", theme.ColorGreen),
	both(minimal, "color-cyan", theme.ColorCyan),
	both(minimal, "color-blue", theme.ColorBlue),
	both(minimal, "color-purple", theme.ColorPurple),
	both(minimal, "color-pink", theme.ColorPink),

	both(minimal, "h1-color", theme.ColorHeading1),
	both(minimal, "h2-color", theme.ColorHeading2),
	both(minimal, "h3-color", theme.ColorHeading3),
	both(minimal, "h4-color", theme.ColorHeading4),
	both(minimal, "h5-color", theme.ColorHeading5),
	both(minimal, "h6-color", theme.ColorHeading6),

	both(minimal, "icon-color", theme.ColorIcon),
	both(minimal, "icon-color-hover", theme.ColorIconHover),
	both(minimal, "icon-color-active", theme.ColorIconActive),

	both(minimal, "link-color", theme.ColorLink),
	both(minimal, "link-color-hover", theme.ColorLinkHover),
	both(minimal, "link-external-color", theme.ColorLinkExternal),
	both(minimal, "link-external-color-hover", theme.ColorLinkExternalHover),

	both(minimal, "graph-node", theme.ColorGraphNode),
	both(minimal, "graph-node-focused", theme.ColorGraphNodeActive),
	both(minimal, "graph-node-tag", theme.ColorGraphNodeTag),

	both(minimal, "line-number-color", theme.ColorLineNumber),
	both(minimal, "gutter-background", theme.ColorGutter),
	both(minimal, "active-line-bg", theme.ColorActiveLine),
	both(minimal, "minimal-tab-text-color", theme.ColorTab),
	both(minimal, "minimal-tab-text-color-active", theme.ColorTabActive),

	both(extras, "extras-hr-color", theme.ColorDivider),
}

// Table returns a copy of the mapping table.
func Table() []Entry {
	out := make([]Entry, len(table))
	copy(out, table)
	return out
}

// HostAccentSlot is the entry whose value the host uses as its accent color.
var HostAccentSlot = both(minimal, "ui3", theme.ColorBorderActive)
