package derive

import (
	"github.com/prism-vault/prism/color"
	"github.com/prism-vault/prism/theme"
)

// Literals used when the palette itself is missing a slot.
const (
	fallbackAccent      = "#7c3aed"
	fallbackAccentHover = "#8b5cf6"
	fallbackPurple      = "#8b5cf6"
	fallbackOrange      = "#f59e0b"
	fallbackGreen       = "#10b981"
	fallbackRed         = "#ef4444"
	fallbackBlue        = "#3b82f6"
	fallbackPink        = "#ec4899"

	darkText  = "#1e1e1e"
	lightText = "#ffffff"
)

// first returns the first set property, or literal.
func first(bag theme.Bag, literal string, props ...theme.Property) string {
	for _, p := range props {
		if v := bag.String(p); v != "" {
			return v
		}
	}
	return literal
}

func accentChain(bag theme.Bag) string {
	return first(bag, fallbackAccent, theme.ColorAccent, theme.ColorAccentHover, theme.ColorAccentActive)
}

func hoverChain(bag theme.Bag) string {
	return first(bag, fallbackAccentHover, theme.ColorAccentHover, theme.ColorAccent, theme.ColorAccentActive)
}

func activeChain(bag theme.Bag) string {
	return first(bag, fallbackAccent, theme.ColorAccentActive, theme.ColorAccent, theme.ColorAccentHover)
}

func glow(bag theme.Bag) {
	bag.SetIfAbsent(theme.GlowColorActive, color.HexToRGBA(accentChain(bag), 0.4))
	bag.SetIfAbsent(theme.GlowColorHover, color.HexToRGBA(hoverChain(bag), 0.25))
}

func text(bag theme.Bag) {
	primary := lightText
	if color.IsLight(bag.String(theme.ColorBackground)) {
		primary = darkText
	}
	bag.SetIfAbsent(theme.ColorText, primary)

	base := bag.String(theme.ColorText)
	bag.SetIfAbsent(theme.ColorTextMuted, color.HexToRGBA(base, 0.6))
	bag.SetIfAbsent(theme.ColorTextFaint, color.HexToRGBA(base, 0.4))
}

func accents(bag theme.Bag) {
	accent, hover, active := accentChain(bag), hoverChain(bag), activeChain(bag)

	bag.SetIfAbsent(theme.ColorLink, accent)
	bag.SetIfAbsent(theme.ColorLinkHover, hover)
	bag.SetIfAbsent(theme.ColorLinkExternal, first(bag, fallbackBlue, theme.ColorBlue))
	bag.SetIfAbsent(theme.ColorLinkExternalHover, bag.String(theme.ColorLinkExternal))

	bag.SetIfAbsent(theme.ColorIcon, accent)
	bag.SetIfAbsent(theme.ColorIconHover, hover)
	bag.SetIfAbsent(theme.ColorIconActive, active)

	bag.SetIfAbsent(theme.ColorGraphNode, accent)
	bag.SetIfAbsent(theme.ColorGraphNodeActive, first(bag, fallbackOrange, theme.ColorOrange))
	bag.SetIfAbsent(theme.ColorGraphNodeTag, first(bag, fallbackGreen, theme.ColorGreen))

	bag.SetIfAbsent(theme.ColorBorderActive, accent)
	bag.SetIfAbsent(theme.ColorDivider, accent)
}

func semantic(bag theme.Bag) {
	bag.SetIfAbsent(theme.ColorSuccess, first(bag, fallbackGreen, theme.ColorGreen))
	bag.SetIfAbsent(theme.ColorWarning, first(bag, fallbackOrange, theme.ColorOrange))
	bag.SetIfAbsent(theme.ColorError, first(bag, fallbackRed, theme.ColorRed))
}

func charts(bag theme.Bag) {
	palette := []struct {
		slot     theme.Property
		source   theme.Property
		fallback string
	}{
		{theme.ChartColor1, theme.ColorPurple, fallbackPurple},
		{theme.ChartColor2, theme.ColorOrange, fallbackOrange},
		{theme.ChartColor3, theme.ColorGreen, fallbackGreen},
		{theme.ChartColor4, theme.ColorRed, fallbackRed},
		{theme.ChartColor5, theme.ColorBlue, fallbackBlue},
		{theme.ChartColor6, theme.ColorPink, fallbackPink},
		{theme.HeatmapFilled, theme.ColorPurple, fallbackPurple},
	}

	for _, p := range palette {
		bag.SetIfAbsent(p.slot, first(bag, p.fallback, p.source))
	}
}
