// Package stylesettings translates flat, mode-suffixed style-settings bags
// into the engine's internal theme properties.
package stylesettings

import (
	"fmt"
	"strings"
)

// Mode is the host UI mode used to disambiguate mode-suffixed keys.
type Mode string

const (
	Dark  Mode = "dark"
	Light Mode = "light"
)

// Opposite returns the other mode.
func (m Mode) Opposite() Mode {
	if m == Light {
		return Dark
	}
	return Light
}

// ParseMode reads a mode name case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Dark:
		return Dark, nil
	case Light:
		return Light, nil
	default:
		return "", fmt.Errorf("unknown mode %q, expected dark or light", s)
	}
}

// ModeFromDark converts the host's "is dark mode" signal.
func ModeFromDark(dark bool) Mode {
	if dark {
		return Dark
	}
	return Light
}
