// Package switcher implements the theme switching workflows: persisting the
// selection, invalidating caches, propagating the theme and reloading the host.
package switcher

import (
	"context"
	"errors"
	"fmt"

	"github.com/prism-vault/prism/cssvars"
	"github.com/prism-vault/prism/document"
	themesync "github.com/prism-vault/prism/internal/sync"
	"github.com/prism-vault/prism/log"
	"github.com/prism-vault/prism/notify"
	"github.com/prism-vault/prism/resolver"
	"github.com/prism-vault/prism/settings"
	"github.com/prism-vault/prism/stylesettings"
	"github.com/prism-vault/prism/theme"
	"github.com/spf13/afero"
)

// Switcher changes the active theme.
type Switcher struct {
	Store    document.Store
	Resolver *resolver.Resolver
	Sync     *themesync.Engine
	Notifier notify.Notifier
	Reloader Reloader

	// DefaultThemeID is used when the settings document names no theme.
	DefaultThemeID string

	// CSS receives the exported variables snippet; nil disables the export.
	CSS *afero.Afero
}

// SwitchTheme persists the selection and applies it. It returns false only
// when the selection could not be saved, in which case nothing else happened.
func (s *Switcher) SwitchTheme(ctx context.Context, themeID, overrideID string, shouldSync bool) bool {
	fields := log.Fields{"theme": themeID, "override": overrideID, "sync": shouldSync}

	sel := settings.Selection{ThemeID: themeID, ColorOverrideID: overrideID}
	if err := settings.Save(ctx, s.Store, sel); err != nil {
		fields["error"] = err
		log.WithFields(fields).Error("could not save theme selection")
		s.Notifier.Notify(notify.Failure, fmt.Sprintf("Could not switch to %q: %v", themeID, err))
		return false
	}

	log.WithFields(fields).Info("switching theme")
	s.apply(ctx, themeID, overrideID, shouldSync)
	return true
}

// SetColorOverride changes the color override and keeps the current theme.
func (s *Switcher) SetColorOverride(ctx context.Context, overrideID string, shouldSync bool) bool {
	sel := s.current(ctx)
	return s.SwitchTheme(ctx, sel.ThemeID, overrideID, shouldSync)
}

// ApplyCurrentTheme re-applies the persisted selection, honoring its sync flag.
// It is used after the settings document was edited by hand.
func (s *Switcher) ApplyCurrentTheme(ctx context.Context) bool {
	sel := s.current(ctx)
	log.WithFields(log.Fields{"theme": sel.ThemeID, "override": sel.ColorOverrideID}).Info("applying current theme")
	s.apply(ctx, sel.ThemeID, sel.ColorOverrideID, sel.ShouldSync)
	return true
}

func (s *Switcher) current(ctx context.Context) settings.Selection {
	sel, err := settings.Load(ctx, s.Store, s.DefaultThemeID)
	if err != nil && !errors.Is(err, settings.ErrMissing) {
		log.WithFields(log.Fields{"error": err}).Warn("could not read theme selection")
		s.Notifier.Notify(notify.Warning, "Could not read the settings document, using the default theme")
	}
	return sel
}

func (s *Switcher) apply(ctx context.Context, themeID, overrideID string, shouldSync bool) {
	s.Resolver.State.Clear()

	resolved := s.Resolver.Resolve(ctx, themeID, overrideID)

	if shouldSync && s.Sync != nil {
		result := s.Sync.Sync(ctx, WithHostAccent(resolved, s.Resolver.Mode()))
		log.WithFields(log.Fields{"theme": themeID, "result": result}).Info("synced theme")
	}

	if s.CSS != nil {
		if err := cssvars.Export(*s.CSS, resolved); err != nil {
			log.WithFields(log.Fields{"error": err}).Warn("css export failed")
			s.Notifier.Notify(notify.Warning, "Could not write the CSS snippet")
		}
	}

	name := themeID
	if resolved.ID() == themeID {
		name = resolved.Get(theme.Name)
	}
	s.Notifier.Notify(notify.Success, fmt.Sprintf("Theme set to %s", name))

	if s.Reloader != nil {
		if err := s.Reloader.Reload(ctx); err != nil {
			log.WithFields(log.Fields{"error": err}).Warn("reload failed")
			s.Notifier.Notify(notify.Warning, "Could not reload the host, reload it manually")
		}
	}
}

// WithHostAccent returns r with the host accent taken from its color override
// when the override sets one. Otherwise r is returned as is.
func WithHostAccent(r *theme.Resolved, mode stylesettings.Mode) *theme.Resolved {
	raw, ok := r.StyleSettingsOverride()
	if !ok {
		return r
	}

	accent, ok := stylesettings.HostAccent(raw, mode)
	if !ok {
		return r
	}
	return r.With(string(theme.HostAccentColor), accent)
}
