package theme

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Property names a well-known theme key.
type Property string

// Identity.
const (
	ID          Property = "theme-id"
	Name        Property = "theme-name"
	Description Property = "theme-description"
	Version     Property = "theme-version"
	Author      Property = "theme-author"
)

// Backgrounds, borders and accents.
const (
	ColorBackground      Property = "color-background"
	ColorSurface         Property = "color-surface"
	ColorSurfaceHover    Property = "color-surface-hover"
	ColorBorder          Property = "color-border"
	ColorBorderHighlight Property = "color-border-highlight"
	ColorBorderActive    Property = "color-border-active"
	ColorAccent          Property = "color-accent"
	ColorAccentHover     Property = "color-accent-hover"
	ColorAccentActive    Property = "color-accent-active"
	ColorTextOnAccent    Property = "color-text-on-accent"
)

// Text.
const (
	ColorText        Property = "color-text"
	ColorTextMuted   Property = "color-text-muted"
	ColorTextFaint   Property = "color-text-faint"
	ColorSelectionBg Property = "color-selection-bg"
	ColorHighlightBg Property = "color-highlight-bg"
)

// Extended palette.
const (
	ColorRed    Property = "color-red"
	ColorOrange Property = "color-orange"
	ColorYellow Property = "color-yellow"
	ColorGreen  Property = "color-green"
	ColorCyan   Property = "color-cyan"
	ColorBlue   Property = "color-blue"
	ColorPurple Property = "color-purple"
	ColorPink   Property = "color-pink"
)

// Semantic colors.
const (
	ColorSuccess Property = "color-success"
	ColorWarning Property = "color-warning"
	ColorError   Property = "color-error"
)

// Headings.
const (
	ColorHeading1 Property = "color-heading-1"
	ColorHeading2 Property = "color-heading-2"
	ColorHeading3 Property = "color-heading-3"
	ColorHeading4 Property = "color-heading-4"
	ColorHeading5 Property = "color-heading-5"
	ColorHeading6 Property = "color-heading-6"
)

// Icons, links and graph nodes.
const (
	ColorIcon              Property = "color-icon"
	ColorIconHover         Property = "color-icon-hover"
	ColorIconActive        Property = "color-icon-active"
	ColorLink              Property = "color-link"
	ColorLinkHover         Property = "color-link-hover"
	ColorLinkExternal      Property = "color-link-external"
	ColorLinkExternalHover Property = "color-link-external-hover"
	ColorGraphNode         Property = "color-graph-node"
	ColorGraphNodeActive   Property = "color-graph-node-active"
	ColorGraphNodeTag      Property = "color-graph-node-tag"
)

// Editor chrome.
const (
	ColorDivider    Property = "color-divider"
	ColorLineNumber Property = "color-line-number"
	ColorGutter     Property = "color-gutter"
	ColorActiveLine Property = "color-active-line"
	ColorTab        Property = "color-tab"
	ColorTabActive  Property = "color-tab-active"
)

// Glow, motion and typography.
const (
	GlowEnabled        Property = "glow-enabled"
	GlowColorActive    Property = "glow-color-active"
	GlowColorHover     Property = "glow-color-hover"
	GlowIntensity      Property = "glow-intensity"
	GlowSpread         Property = "glow-spread"
	TransitionDuration Property = "transition-duration"
	TransitionEasing   Property = "transition-easing"
	BorderRadiusSmall  Property = "border-radius-small"
	BorderRadiusMedium Property = "border-radius-medium"
	BorderRadiusLarge  Property = "border-radius-large"
	FontInterface      Property = "font-interface"
	FontText           Property = "font-text"
	FontMono           Property = "font-mono"
)

// Sprites.
const (
	BarSprite    Property = "bar-sprite"
	ToggleSprite Property = "toggle-sprite"
)

// Charts.
const (
	ChartColor1   Property = "chart-color-1"
	ChartColor2   Property = "chart-color-2"
	ChartColor3   Property = "chart-color-3"
	ChartColor4   Property = "chart-color-4"
	ChartColor5   Property = "chart-color-5"
	ChartColor6   Property = "chart-color-6"
	HeatmapFilled Property = "heatmap-filled"
)

// Host synchronization sources.
const (
	HostAccentColor Property = "obsidian-accent-color"
	SyncToHost      Property = "sync-to-obsidian"
	StyleSettings   Property = "style-settings"
	MinimalSettings Property = "minimal-settings"
)

// derivedOnly lists well-known keys that have no literal default and are always
// produced by derivation.
var derivedOnly = []Property{
	GlowColorActive, GlowColorHover,
	ChartColor1, ChartColor2, ChartColor3, ChartColor4, ChartColor5, ChartColor6,
	HeatmapFilled,
}

// Optional lists keys a theme may set that have no default and are never derived.
// Their absence is meaningful (no custom font, no sprite).
var Optional = []Property{
	FontInterface, FontText, BarSprite, ToggleSprite,
	"bar-track-bg", "toggle-idle-bg", "toggle-hover-bg", "toggle-active-bg",
	"icon-water", "icon-sleep", "icon-exercise", "icon-mood", "icon-food", "icon-journal",
	"hr-svg", StyleSettings, MinimalSettings, Version, Author,
}

// WellKnown is the sorted catalog of keys guaranteed to be set on every resolved theme.
var WellKnown = func() []Property {
	keys := lo.Map(lo.Keys(defaults), func(k string, _ int) Property { return Property(k) })
	keys = lo.Uniq(append(keys, derivedOnly...))
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}()

// IsColor reports whether the property is a color slot; edits to these trigger re-derivation.
func (p Property) IsColor() bool {
	return strings.HasPrefix(string(p), "color-")
}
