// Package settings reads and writes the active theme selection kept in the
// vault's settings document.
package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/prism-vault/prism/constant"
	"github.com/prism-vault/prism/document"
	"github.com/prism-vault/prism/theme"
)

// ErrMissing is returned by Load when the settings document does not exist.
var ErrMissing = errors.New("settings document is missing")

// Frontmatter fields of the settings document.
const (
	FieldTheme             = "widget-theme"
	FieldColorOverride     = "color-override"
	FieldSync              = "sync-to-obsidian"
	FieldWidgetBackgrounds = "widget-backgrounds"
	FieldFlashyMode        = "flashy-mode"
)

// Selection is the persisted theme choice.
type Selection struct {
	ThemeID           string `json:"widget-theme" jsonschema:"description=theme-id of the active theme."`
	ColorOverrideID   string `json:"color-override,omitempty" jsonschema:"description=Name of the style-settings-<name>.json color override. Empty for none."`
	ShouldSync        bool   `json:"sync-to-obsidian" jsonschema:"description=Propagate the theme to the host stores when switching.,default=true"`
	WidgetBackgrounds bool   `json:"widget-backgrounds" jsonschema:"description=Render widget backgrounds.,default=true"`
	FlashyMode        bool   `json:"flashy-mode" jsonschema:"description=Enable animated widget effects.,default=true"`
}

// defaultSelection is the selection of a vault without settings. Sync and
// both widget flags are on until a document turns them off.
func defaultSelection(themeID string) Selection {
	return Selection{
		ThemeID:           themeID,
		ShouldSync:        true,
		WidgetBackgrounds: true,
		FlashyMode:        true,
	}
}

// Load reads the selection from store. An unset theme falls back to defaultID
// and an absent flag counts as enabled.
func Load(ctx context.Context, store document.Store, defaultID string) (Selection, error) {
	props, err := store.Read(ctx, constant.SettingsDocument)
	if errors.Is(err, document.ErrNotFound) {
		return defaultSelection(defaultID), fmt.Errorf("%w: %v", ErrMissing, err)
	}
	if err != nil {
		return defaultSelection(defaultID), fmt.Errorf("load settings: %w", err)
	}

	sel := defaultSelection(defaultID)
	if id := props.String(FieldTheme); id != "" {
		sel.ThemeID = id
	}
	sel.ColorOverrideID = props.String(FieldColorOverride)

	for field, flag := range map[string]*bool{
		FieldSync:              &sel.ShouldSync,
		FieldWidgetBackgrounds: &sel.WidgetBackgrounds,
		FieldFlashyMode:        &sel.FlashyMode,
	} {
		if v, ok := props[field]; ok {
			*flag = theme.Truthy(v)
		}
	}
	return sel, nil
}

// Save records the theme and override of sel, leaving every other field of
// the document as it was.
func Save(ctx context.Context, store document.Store, sel Selection) error {
	props, err := store.Read(ctx, constant.SettingsDocument)
	if errors.Is(err, document.ErrNotFound) {
		props = make(theme.Bag)
	} else if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	props[FieldTheme] = sel.ThemeID
	props[FieldColorOverride] = sel.ColorOverrideID

	if err := store.Write(ctx, constant.SettingsDocument, props); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
