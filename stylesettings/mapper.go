package stylesettings

import "github.com/prism-vault/prism/theme"

// Mapper translates external style-settings bags using a table.
type Mapper struct {
	entries []Entry
}

// NewMapper returns a mapper over entries; a nil slice selects the built-in table.
func NewMapper(entries []Entry) *Mapper {
	if entries == nil {
		entries = table
	}
	return &Mapper{entries: entries}
}

// Map returns the internal properties present in external for mode.
//
// A mode-specific entry takes the same-mode key when it holds a truthy value,
// otherwise the opposite-mode key; if neither is set the property stays absent.
// Falsy values never reach the output.
func (m *Mapper) Map(external theme.Bag, mode Mode) theme.Bag {
	mapped := make(theme.Bag)
	for _, e := range m.entries {
		if v, ok := lookup(external, e, mode); ok {
			mapped[string(e.Target)] = v
		}
	}
	return mapped
}

func lookup(external theme.Bag, e Entry, mode Mode) (any, bool) {
	if v := external[e.Key(mode)]; theme.Truthy(v) {
		return v, true
	}
	if !e.ModeSpecific {
		return nil, false
	}
	if v := external[e.Key(mode.Opposite())]; theme.Truthy(v) {
		return v, true
	}
	return nil, false
}

// Map translates external with the built-in table.
func Map(external theme.Bag, mode Mode) theme.Bag {
	return NewMapper(nil).Map(external, mode)
}

// HostAccent reads the host accent color from an external bag, with the same
// opposite-mode fallback as Map.
func HostAccent(external theme.Bag, mode Mode) (string, bool) {
	v, ok := lookup(external, HostAccentSlot, mode)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// AccentKey returns the external key the host accent is read from in mode.
func AccentKey(mode Mode) string {
	return HostAccentSlot.Key(mode)
}
