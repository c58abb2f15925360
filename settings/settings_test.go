package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/prism-vault/prism/constant"
	"github.com/prism-vault/prism/document"
	"github.com/prism-vault/prism/theme"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func TestSettings(t *testing.T) {
	ctx := context.Background()

	Convey("Given an empty vault", t, func() {
		store := document.NewVaultStore(afero.Afero{Fs: afero.NewMemMapFs()})

		Convey("Load reports the missing document and falls back", func() {
			sel, err := Load(ctx, store, "nyanCat")
			So(errors.Is(err, ErrMissing), ShouldBeTrue)
			So(sel.ThemeID, ShouldEqual, "nyanCat")
			So(sel.ShouldSync, ShouldBeTrue)
			So(sel.WidgetBackgrounds, ShouldBeTrue)
			So(sel.FlashyMode, ShouldBeTrue)
		})

		Convey("Save creates the document", func() {
			So(Save(ctx, store, Selection{ThemeID: "ocean", ColorOverrideID: "deep"}), ShouldBeNil)

			sel, err := Load(ctx, store, "nyanCat")
			So(err, ShouldBeNil)
			So(sel.ThemeID, ShouldEqual, "ocean")
			So(sel.ColorOverrideID, ShouldEqual, "deep")
		})
	})

	Convey("Given an existing settings document", t, func() {
		store := document.NewVaultStore(afero.Afero{Fs: afero.NewMemMapFs()})
		So(store.Write(ctx, constant.SettingsDocument, theme.Bag{
			FieldTheme:         "nyanCat",
			FieldSync:          false,
			FieldFlashyMode:    true,
			"daily-note-label": "Today",
		}), ShouldBeNil)

		Convey("Flags are read", func() {
			sel, err := Load(ctx, store, "default")
			So(err, ShouldBeNil)
			So(sel.ShouldSync, ShouldBeFalse)
			So(sel.FlashyMode, ShouldBeTrue)
			So(sel.WidgetBackgrounds, ShouldBeTrue)
		})

		Convey("Flags present but falsy turn off", func() {
			So(store.Write(ctx, constant.SettingsDocument, theme.Bag{
				FieldTheme:             "nyanCat",
				FieldWidgetBackgrounds: false,
				FieldFlashyMode:        "",
			}), ShouldBeNil)

			sel, err := Load(ctx, store, "default")
			So(err, ShouldBeNil)
			So(sel.WidgetBackgrounds, ShouldBeFalse)
			So(sel.FlashyMode, ShouldBeFalse)
			So(sel.ShouldSync, ShouldBeTrue)
		})

		Convey("Save keeps unrelated fields", func() {
			So(Save(ctx, store, Selection{ThemeID: "ocean"}), ShouldBeNil)

			props, err := store.Read(ctx, constant.SettingsDocument)
			So(err, ShouldBeNil)
			So(props[FieldTheme], ShouldEqual, "ocean")
			So(props["daily-note-label"], ShouldEqual, "Today")
			So(props[FieldSync], ShouldEqual, false)
		})
	})
}
