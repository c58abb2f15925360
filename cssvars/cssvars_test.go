package cssvars

import (
	"testing"

	"github.com/prism-vault/prism/constant"
	"github.com/prism-vault/prism/derive"
	"github.com/prism-vault/prism/theme"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func TestRender(t *testing.T) {
	Convey("Given a small theme", t, func() {
		props := theme.Bag{
			"color-accent":      "#ff0000",
			"bar-sprite-width":  34,
			"glow-enabled":      true,
			"style-settings":    map[string]any{"x": "y"},
			"evil":              "red; } body { display: none",
			"transition-easing": "ease",
		}

		css := Render(props)

		Convey("Scalars are declared under the theme prefix", func() {
			So(css, ShouldContainSubstring, "  --theme-color-accent: #ff0000;\n")
			So(css, ShouldContainSubstring, "  --theme-bar-sprite-width: 34;\n")
			So(css, ShouldContainSubstring, "  --theme-transition-easing: ease;\n")
		})

		Convey("Minimal variables are declared when set", func() {
			So(css, ShouldContainSubstring, "  --ax1: #ff0000;\n")
			So(css, ShouldNotContainSubstring, "--bg1")
		})

		Convey("Fonts are only declared when set", func() {
			So(css, ShouldNotContainSubstring, "--font-interface-theme")
			So(Render(theme.Bag{"font-text": "Inter"}), ShouldContainSubstring, "--font-text-theme: Inter;")
		})

		Convey("Objects, booleans and unsafe values are skipped", func() {
			So(css, ShouldNotContainSubstring, "style-settings")
			So(css, ShouldNotContainSubstring, "glow-enabled")
			So(css, ShouldNotContainSubstring, "evil")
		})

		Convey("Output is deterministic", func() {
			So(Render(props), ShouldEqual, css)
		})
	})
}

func TestExport(t *testing.T) {
	Convey("The snippet is written into the vault", t, func() {
		fs := afero.Afero{Fs: afero.NewMemMapFs()}
		r := theme.NewResolved(derive.Derive(theme.Default()), nil, nil)

		So(Export(fs, r), ShouldBeNil)

		data, err := fs.ReadFile(constant.SnippetPath)
		So(err, ShouldBeNil)
		So(string(data), ShouldStartWith, "/* prism: default */\n:root {\n")
		So(string(data), ShouldContainSubstring, "--tx1: #ffffff;")
	})
}
