// Package resolver turns a theme selection into a complete, derived theme,
// caching results until the host clears its state.
package resolver

import (
	"context"
	"errors"
	"fmt"

	"github.com/prism-vault/prism/constant"
	"github.com/prism-vault/prism/derive"
	"github.com/prism-vault/prism/document"
	"github.com/prism-vault/prism/internal/cache"
	"github.com/prism-vault/prism/key"
	"github.com/prism-vault/prism/log"
	"github.com/prism-vault/prism/notify"
	"github.com/prism-vault/prism/stylesettings"
	"github.com/prism-vault/prism/theme"
	"github.com/spf13/viper"
)

// ModeSource reports the host's current UI mode.
type ModeSource func() stylesettings.Mode

// ConfiguredMode reads the mode from configuration, defaulting to dark.
func ConfiguredMode() stylesettings.Mode {
	mode, err := stylesettings.ParseMode(viper.GetString(key.ThemeMode))
	if err != nil {
		return stylesettings.Dark
	}
	return mode
}

// Resolver resolves theme selections against a document store.
type Resolver struct {
	Store    document.Store
	State    *State
	Notifier notify.Notifier
	Mode     ModeSource
	Mapper   *stylesettings.Mapper
}

// New returns a resolver using the built-in key mapping table.
func New(store document.Store, state *State, notifier notify.Notifier, mode ModeSource) *Resolver {
	if notifier == nil {
		notifier = notify.Discard
	}
	if mode == nil {
		mode = ConfiguredMode
	}
	return &Resolver{
		Store:    store,
		State:    state,
		Notifier: notifier,
		Mode:     mode,
		Mapper:   stylesettings.NewMapper(nil),
	}
}

// Resolve returns the complete theme for themeID with the color override
// overrideID applied (empty for none).
//
// Resolve never fails: a missing theme resolves to the default theme and an
// unusable override is ignored, both reported through the notifier. Repeated
// calls return the same cached value until the state is cleared; concurrent
// calls for the same selection share one resolution.
func (r *Resolver) Resolve(ctx context.Context, themeID, overrideID string) *theme.Resolved {
	k := cache.Key(themeID, overrideID)
	if hit, ok := r.State.resolved.Get(k).Get(); ok {
		log.WithFields(log.Fields{"key": k}).Debug("resolved theme cache hit")
		return hit
	}

	gen := r.State.generation.Load()
	v, _, shared := r.State.flight.Do(r.State.flightKey(gen, k), func() (any, error) {
		if hit, ok := r.State.resolved.Get(k).Get(); ok {
			return hit, nil
		}

		resolved := r.resolve(ctx, themeID, overrideID)
		r.State.store(gen, func() { r.State.resolved.Set(k, resolved) })
		return resolved, nil
	})

	log.WithFields(log.Fields{"key": k, "shared": shared}).Debug("resolved theme cache miss")
	return v.(*theme.Resolved)
}

func (r *Resolver) resolve(ctx context.Context, themeID, overrideID string) *theme.Resolved {
	var props theme.Bag
	if doc, ok := r.findTheme(ctx, themeID); ok {
		props = doc.Props
	}

	var override theme.Bag
	if overrideID != "" {
		raw, err := r.LoadColorOverride(ctx, overrideID)
		if err != nil {
			log.WithFields(log.Fields{"override": overrideID, "error": err}).Warn("ignoring color override")
			r.Notifier.Notify(notify.Warning, fmt.Sprintf("Color override %q could not be loaded, using the theme colors", overrideID))
		} else {
			override = raw
		}
	}

	return r.build(props, override)
}

// build layers props, its embedded style settings and override over the
// default theme and derives the result. Blank values in props keep the default.
func (r *Resolver) build(props, override theme.Bag) *theme.Resolved {
	mode := r.Mode()
	bag := theme.Default().MergeTruthy(props)

	var embedded theme.Bag
	if nested, ok := props.Object(string(theme.StyleSettings)); ok {
		embedded = nested
		bag = bag.Merge(r.Mapper.Map(nested, mode))
	}
	if override != nil {
		bag = bag.Merge(r.Mapper.Map(override, mode))
	}

	return theme.NewResolved(derive.Derive(bag), override, embedded)
}

func (r *Resolver) findTheme(ctx context.Context, themeID string) (*document.Document, bool) {
	if themeID == "" {
		return nil, false
	}

	doc, err := r.FindTheme(ctx, themeID)
	switch {
	case err == nil:
		return doc, true
	case errors.Is(err, document.ErrNotFound):
		log.WithFields(log.Fields{"theme": themeID}).Info("theme not found, using defaults")

		msg := fmt.Sprintf("Theme %q not found, using the default theme", themeID)
		if suggestion, ok := r.Suggest(ctx, themeID); ok {
			msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
		}
		r.Notifier.Notify(notify.Warning, msg)
	default:
		log.WithFields(log.Fields{"theme": themeID, "error": err}).Error("theme lookup failed")
		r.Notifier.Notify(notify.Failure, fmt.Sprintf("Theme %q could not be read, using the default theme", themeID))
	}
	return nil, false
}

// LoadColorOverride returns the raw color-override document named id.
// Successful loads are cached until the state is cleared.
func (r *Resolver) LoadColorOverride(ctx context.Context, id string) (theme.Bag, error) {
	if hit, ok := r.State.overrides.Get(id).Get(); ok {
		return hit, nil
	}

	gen := r.State.generation.Load()
	raw, err := r.Store.Read(ctx, OverridePath(id))
	if err != nil {
		return nil, fmt.Errorf("load color override %s: %w", id, err)
	}

	r.State.store(gen, func() { r.State.overrides.Set(id, raw) })
	return raw, nil
}

// OverridePath returns the store path of the color override named id.
func OverridePath(id string) string {
	return constant.ThemesDir + "/" + constant.OverridePrefix + id + constant.OverrideExtension
}

// FindTheme finds the theme document whose theme-id is id.
func (r *Resolver) FindTheme(ctx context.Context, id string) (*document.Document, error) {
	return r.Store.FindByField(ctx, constant.ThemesDir, constant.ThemeIDField, id)
}

// LoadThemeByID builds the complete theme for id without a color override,
// ready to be pushed as a preview. Nothing is cached; a missing theme yields
// the default theme.
func (r *Resolver) LoadThemeByID(ctx context.Context, id string) *theme.Resolved {
	var props theme.Bag
	if doc, ok := r.findTheme(ctx, id); ok {
		props = doc.Props
	}
	return r.build(props, nil)
}

// LoadThemeFromPath is LoadThemeByID for the theme document at path.
func (r *Resolver) LoadThemeFromPath(ctx context.Context, path string) *theme.Resolved {
	props, err := r.Store.Read(ctx, path)
	if err != nil {
		log.WithFields(log.Fields{"path": path, "error": err}).Warn("theme document unreadable, using defaults")
		r.Notifier.Notify(notify.Warning, fmt.Sprintf("Theme %s could not be read, using the default theme", path))
		props = nil
	}
	return r.build(props, nil)
}
