package theme

// Info describes an available theme document without resolving it.
type Info struct {
	ID          string `json:"id" jsonschema:"description=Value of the theme-id field."`
	Name        string `json:"name" jsonschema:"description=Display name; defaults to the id."`
	Description string `json:"description,omitempty"`
	Path        string `json:"path" jsonschema:"description=Vault-relative path of the theme document."`
	HasSprite   bool   `json:"has_sprite" jsonschema:"description=Whether the theme ships a bar or toggle sprite."`
	Version     string `json:"version"`
	Author      string `json:"author,omitempty"`
}

// InfoFrom extracts listing metadata from a theme document's properties.
// It returns false when the document carries no theme-id.
func InfoFrom(path string, props Bag) (Info, bool) {
	id := props.String(ID)
	if id == "" {
		return Info{}, false
	}

	info := Info{
		ID:          id,
		Name:        props.String(Name),
		Description: props.String(Description),
		Path:        path,
		HasSprite:   props.Has(BarSprite) || props.Has(ToggleSprite),
		Version:     props.String(Version),
		Author:      props.String(Author),
	}

	if info.Name == "" {
		info.Name = id
	}
	if info.Version == "" {
		info.Version = "1.0"
	}

	return info, true
}
