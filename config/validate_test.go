package config

import (
	"errors"
	"testing"

	"github.com/prism-vault/prism/filesystem"
	"github.com/prism-vault/prism/key"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("Converts values to the type of the default", func() {
			v, err := Parse(key.SyncOnSwitch, []string{"false"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, false)

			v, err = Parse(key.CliReload, []string{"obsidian --reload"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "obsidian --reload")

			_, err = Parse(key.SyncOnSwitch, []string{"maybe"})
			So(err, ShouldNotBeNil)
		})

		Convey("Rejects unknown keys and missing values", func() {
			_, err := Parse("theme.colour", []string{"x"})
			So(errors.Is(err, ErrUnknownKey), ShouldBeTrue)

			_, err = Parse(key.ThemeMode, nil)
			So(err, ShouldNotBeNil)
		})

		Convey("Theme mode must be dark or light", func() {
			v, err := Parse(key.ThemeMode, []string{"light"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "light")

			_, err = Parse(key.ThemeMode, []string{"sepia"})
			So(err, ShouldNotBeNil)
		})

		Convey("The vault path must be an existing directory", func() {
			So(filesystem.API().MkdirAll("/vaults/notes", 0o755), ShouldBeNil)
			So(filesystem.API().WriteFile("/vaults/file.md", []byte("x"), 0o644), ShouldBeNil)

			_, err := Parse(key.VaultPath, []string{"/vaults/notes"})
			So(err, ShouldBeNil)

			_, err = Parse(key.VaultPath, []string{"/vaults/missing"})
			So(err, ShouldNotBeNil)

			_, err = Parse(key.VaultPath, []string{"/vaults/file.md"})
			So(err, ShouldNotBeNil)
		})

		Convey("Enumerated keys only take their options", func() {
			So(Validate(key.IconsVariant, "nerd"), ShouldBeNil)
			So(Validate(key.IconsVariant, "ascii"), ShouldNotBeNil)
			So(Validate(key.LogsLevel, "debug"), ShouldBeNil)
			So(Validate(key.LogsLevel, "loud"), ShouldNotBeNil)
			So(Validate(key.ThemeDefaultID, " "), ShouldNotBeNil)
		})
	})

	Convey("Only selection keys affect resolution", t, func() {
		So(AffectsResolution(key.ThemeMode), ShouldBeTrue)
		So(AffectsResolution(key.VaultPath), ShouldBeTrue)
		So(AffectsResolution(key.LogsJson), ShouldBeFalse)
	})
}
