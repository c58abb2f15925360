package color

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// FallbackRGB is the accent used when a value cannot be read as a color.
var FallbackRGB = [3]uint8{124, 58, 237}

// LightThreshold separates light from dark colors on the perceived luminance scale.
const LightThreshold = 0.5

var rgbFunc = regexp.MustCompile(`^rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*[\d.]+\s*)?\)$`)

func parse(value string) (colorful.Color, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return colorful.Color{}, false
	}

	if m := rgbFunc.FindStringSubmatch(value); m != nil {
		var ch [3]float64
		for i := range ch {
			n, err := strconv.Atoi(m[i+1])
			if err != nil || n > 255 {
				return colorful.Color{}, false
			}
			ch[i] = float64(n) / 255
		}
		return colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, true
	}

	c, err := colorful.Hex("#" + expandHex(strings.TrimPrefix(value, "#")))
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

// expandHex turns the short rgb and rgba forms into rrggbb and drops the
// alpha channel of rgba and rrggbbaa.
func expandHex(digits string) string {
	switch len(digits) {
	case 3, 4:
		var b strings.Builder
		for _, d := range digits[:3] {
			b.WriteString(strings.Repeat(string(d), 2))
		}
		return b.String()
	case 8:
		return digits[:6]
	default:
		return digits
	}
}

// HexToRGBA renders a hex color (or an rgb/rgba expression) as an rgba() value with the given alpha.
// Unreadable input yields FallbackRGB at that alpha.
func HexToRGBA(hex string, alpha float64) string {
	r, g, b := FallbackRGB[0], FallbackRGB[1], FallbackRGB[2]
	if c, ok := parse(hex); ok {
		r, g, b = c.RGB255()
	}

	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(alpha, 'f', -1, 64))
}

// Luminance returns the perceived luminance of a color in [0, 1]:
// (0.299·R + 0.587·G + 0.114·B) / 255.
func Luminance(hex string) (float64, bool) {
	c, ok := parse(hex)
	if !ok {
		return 0, false
	}

	r, g, b := c.RGB255()
	return (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255, true
}

// IsLight reports whether a color sits above LightThreshold. Unreadable input is dark.
func IsLight(hex string) bool {
	l, ok := Luminance(hex)
	return ok && l > LightThreshold
}
