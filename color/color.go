// Package color provides a curated terminal palette and pure conversions for theme color values.
package color

import "github.com/charmbracelet/lipgloss"

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// Standard ANSI 8-color palette.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	White  = New("7")
	Black  = New("8")
)

// High-intensity ANSI 16-color palette extension.
var (
	HiRed    = New("9")
	HiGreen  = New("10")
	HiYellow = New("11")
	HiBlue   = New("12")
	HiPurple = New("13")
	HiCyan   = New("14")
)

// Swatch returns a terminal color for a theme value, or false when the value is not a plain color.
func Swatch(value string) (lipgloss.Color, bool) {
	c, ok := parse(value)
	if !ok {
		return "", false
	}
	return New(c.Hex()), true
}
