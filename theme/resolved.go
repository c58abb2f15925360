package theme

// Resolved is a complete, derived theme ready for consumers.
//
// Besides the rendered properties it retains the raw style settings it was
// built from so a later synchronization can replay them. A Resolved handed out
// by a cache is shared; use With to obtain a modified copy.
type Resolved struct {
	Props Bag

	styleSettingsOverride Bag
	styleSettings         Bag
}

// NewResolved assembles a resolved theme. override is the raw color-override
// document, embedded the raw style-settings object of the theme document; both may be nil.
func NewResolved(props, override, embedded Bag) *Resolved {
	return &Resolved{
		Props:                 props,
		styleSettingsOverride: override,
		styleSettings:         embedded,
	}
}

// ID returns the theme-id the theme was resolved for.
func (r *Resolved) ID() string {
	return r.Props.String(ID)
}

// Get returns a property rendered as a string.
func (r *Resolved) Get(p Property) string {
	return r.Props.String(p)
}

// StyleSettingsOverride returns the raw color-override document, if one was applied.
func (r *Resolved) StyleSettingsOverride() (Bag, bool) {
	return r.styleSettingsOverride, r.styleSettingsOverride != nil
}

// EmbeddedStyleSettings returns the raw style-settings object of the theme document, if any.
func (r *Resolved) EmbeddedStyleSettings() (Bag, bool) {
	return r.styleSettings, r.styleSettings != nil
}

// SyncStyleSettings picks the style settings to replay: the override document
// when present, otherwise the embedded object.
func (r *Resolved) SyncStyleSettings() (Bag, bool) {
	if bag, ok := r.StyleSettingsOverride(); ok {
		return bag, true
	}
	return r.EmbeddedStyleSettings()
}

// With returns a copy of r with key set to value. A falsy value removes the key.
// The receiver is left untouched.
func (r *Resolved) With(key string, value any) *Resolved {
	props := r.Props.Clone()
	if Truthy(value) {
		props[key] = value
	} else {
		delete(props, key)
	}

	return &Resolved{
		Props:                 props,
		styleSettingsOverride: r.styleSettingsOverride,
		styleSettings:         r.styleSettings,
	}
}
