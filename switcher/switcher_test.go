package switcher

import (
	"context"
	"errors"
	"testing"

	"github.com/prism-vault/prism/constant"
	"github.com/prism-vault/prism/document"
	themesync "github.com/prism-vault/prism/internal/sync"
	"github.com/prism-vault/prism/notify"
	"github.com/prism-vault/prism/resolver"
	"github.com/prism-vault/prism/settings"
	"github.com/prism-vault/prism/stylesettings"
	"github.com/prism-vault/prism/theme"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

// lockedSettings rejects every write to the settings document.
type lockedSettings struct {
	document.Store
}

func (s lockedSettings) Write(ctx context.Context, path string, props theme.Bag) error {
	if path == constant.SettingsDocument {
		return errors.New("permission denied")
	}
	return s.Store.Write(ctx, path, props)
}

type recorder struct {
	kinds []notify.Kind
}

func (r *recorder) Notify(kind notify.Kind, _ string) {
	r.kinds = append(r.kinds, kind)
}

const ocean = `---
theme-id: ocean
theme-name: Ocean
color-accent: "#0077be"
minimal-settings:
  lineWidth: 40
---
`

type fixture struct {
	fs       afero.Afero
	vault    *document.VaultStore
	switcher *Switcher
	notes    *recorder
	reloads  int
}

func newFixture(store func(document.Store) document.Store) *fixture {
	f := &fixture{fs: afero.Afero{Fs: afero.NewMemMapFs()}, notes: &recorder{}}
	_ = f.fs.WriteFile("System/Themes/ocean.md", []byte(ocean), 0o644)
	_ = f.fs.WriteFile("System/Themes/style-settings-deep.json", []byte(`{"minimal-style@@ui3@@dark": "#555555"}`), 0o644)
	f.vault = document.NewVaultStore(f.fs)

	var s document.Store = f.vault
	if store != nil {
		s = store(f.vault)
	}

	dark := func() stylesettings.Mode { return stylesettings.Dark }
	f.switcher = &Switcher{
		Store:          s,
		Resolver:       resolver.New(s, resolver.NewState(), f.notes, dark),
		Sync:           themesync.NewEngine(s, f.notes),
		Notifier:       f.notes,
		Reloader:       ReloadFunc(func(context.Context) error { f.reloads++; return nil }),
		DefaultThemeID: "nyanCat",
		CSS:            &f.fs,
	}
	return f
}

func TestSwitchTheme(t *testing.T) {
	ctx := context.Background()

	Convey("Given a vault with a theme and an override", t, func() {
		f := newFixture(nil)
		s := f.switcher

		Convey("Switching persists, syncs, exports and reloads", func() {
			before := s.Resolver.Resolve(ctx, "ocean", "deep")

			So(s.SwitchTheme(ctx, "ocean", "deep", true), ShouldBeTrue)

			sel, err := settings.Load(ctx, f.vault, "nyanCat")
			So(err, ShouldBeNil)
			So(sel.ThemeID, ShouldEqual, "ocean")
			So(sel.ColorOverrideID, ShouldEqual, "deep")

			So(s.Resolver.Resolve(ctx, "ocean", "deep"), ShouldNotPointTo, before)

			appearance, err := f.vault.Read(ctx, constant.AppearancePath)
			So(err, ShouldBeNil)
			So(appearance["accentColor"], ShouldEqual, "#555555")

			minimal, err := f.vault.Read(ctx, constant.MinimalSettingsPath)
			So(err, ShouldBeNil)
			So(minimal["lineWidth"], ShouldEqual, 40)

			exists, _ := f.fs.Exists(constant.SnippetPath)
			So(exists, ShouldBeTrue)
			So(f.reloads, ShouldEqual, 1)
			So(f.notes.kinds, ShouldResemble, []notify.Kind{notify.Success})
		})

		Convey("Switching without sync leaves the sinks alone", func() {
			So(s.SwitchTheme(ctx, "ocean", "", false), ShouldBeTrue)
			exists, _ := f.fs.Exists(constant.AppearancePath)
			So(exists, ShouldBeFalse)
		})

		Convey("Changing the override keeps the theme", func() {
			So(s.SwitchTheme(ctx, "ocean", "", false), ShouldBeTrue)
			So(s.SetColorOverride(ctx, "deep", false), ShouldBeTrue)

			sel, _ := settings.Load(ctx, f.vault, "nyanCat")
			So(sel.ThemeID, ShouldEqual, "ocean")
			So(sel.ColorOverrideID, ShouldEqual, "deep")
		})

		Convey("A failing reload does not fail the switch", func() {
			s.Reloader = ReloadFunc(func(context.Context) error { return errors.New("no host") })
			So(s.SwitchTheme(ctx, "ocean", "", false), ShouldBeTrue)
			So(f.notes.kinds, ShouldResemble, []notify.Kind{notify.Success, notify.Warning})
		})
	})

	Convey("Given a settings document that cannot be written", t, func() {
		f := newFixture(func(s document.Store) document.Store { return lockedSettings{Store: s} })
		s := f.switcher

		cached := s.Resolver.Resolve(ctx, "ocean", "")
		stats := s.Resolver.State.Stats()

		Convey("Switching fails and leaves the caches untouched", func() {
			So(s.SwitchTheme(ctx, "foo", "", false), ShouldBeFalse)
			So(s.Resolver.State.Stats(), ShouldResemble, stats)
			So(s.Resolver.Resolve(ctx, "ocean", ""), ShouldPointTo, cached)
			So(f.notes.kinds, ShouldResemble, []notify.Kind{notify.Failure})
			So(f.reloads, ShouldEqual, 0)
		})
	})
}

func TestApplyCurrentTheme(t *testing.T) {
	ctx := context.Background()

	Convey("Given a hand-edited settings document", t, func() {
		f := newFixture(nil)
		So(f.vault.Write(ctx, constant.SettingsDocument, theme.Bag{
			settings.FieldTheme: "ocean",
			settings.FieldSync:  true,
		}), ShouldBeNil)

		Convey("The persisted selection is applied and synced", func() {
			So(f.switcher.ApplyCurrentTheme(ctx), ShouldBeTrue)

			appearance, err := f.vault.Read(ctx, constant.AppearancePath)
			So(err, ShouldBeNil)
			So(appearance["accentColor"], ShouldEqual, "#7c3aed")
			So(f.reloads, ShouldEqual, 1)
		})

		Convey("A disabled sync flag is honored", func() {
			So(f.vault.Write(ctx, constant.SettingsDocument, theme.Bag{
				settings.FieldTheme: "ocean",
				settings.FieldSync:  false,
			}), ShouldBeNil)

			So(f.switcher.ApplyCurrentTheme(ctx), ShouldBeTrue)
			exists, _ := f.fs.Exists(constant.AppearancePath)
			So(exists, ShouldBeFalse)
		})
	})

	Convey("Without a settings document the default theme is applied", t, func() {
		f := newFixture(nil)
		So(f.switcher.ApplyCurrentTheme(ctx), ShouldBeTrue)
		So(f.notes.kinds, ShouldContain, notify.Success)
	})
}

func TestWithHostAccent(t *testing.T) {
	Convey("The override accent replaces the host accent", t, func() {
		r := theme.NewResolved(theme.Bag{"obsidian-accent-color": "#000000"}, theme.Bag{"minimal-style@@ui3@@light": "#abcdef"}, nil)
		So(WithHostAccent(r, stylesettings.Dark).Get(theme.HostAccentColor), ShouldEqual, "#abcdef")
		So(r.Get(theme.HostAccentColor), ShouldEqual, "#000000")

		plain := theme.NewResolved(theme.Bag{"obsidian-accent-color": "#000000"}, nil, nil)
		So(WithHostAccent(plain, stylesettings.Dark), ShouldPointTo, plain)
	})
}

func TestNewReloader(t *testing.T) {
	Convey("Reloaders are picked from the configured value", t, func() {
		So(NewReloader("", notify.Discard), ShouldHaveSameTypeAs, ReminderReloader{})
		So(NewReloader("obsidian://advanced-uri?commandid=app%3Areload", nil), ShouldResemble, URIReloader{URI: "obsidian://advanced-uri?commandid=app%3Areload"})
		So(NewReloader(" pkill -HUP obsidian ", nil), ShouldResemble, CommandReloader{Command: "pkill -HUP obsidian"})
	})

	Convey("An unbalanced command line is rejected", t, func() {
		err := CommandReloader{Command: `echo "unterminated`}.Reload(context.Background())
		So(err, ShouldNotBeNil)
	})
}
