package derive

import (
	"testing"

	"github.com/prism-vault/prism/theme"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDerive(t *testing.T) {
	Convey("Given the default theme", t, func() {
		derived := Derive(theme.Default())

		Convey("Every well-known property is set", func() {
			for _, p := range theme.WellKnown {
				So(derived.Has(p), ShouldBeTrue)
			}
		})

		Convey("Deriving twice changes nothing", func() {
			So(Derive(derived), ShouldResemble, derived)
		})

		Convey("Glow comes from the accent", func() {
			So(derived.String(theme.GlowColorActive), ShouldEqual, "rgba(124, 58, 237, 0.4)")
			So(derived.String(theme.GlowColorHover), ShouldEqual, "rgba(139, 92, 246, 0.25)")
		})

		Convey("Charts come from the extended palette", func() {
			So(derived.String(theme.ChartColor1), ShouldEqual, "#8b5cf6")
			So(derived.String(theme.ChartColor5), ShouldEqual, "#3b82f6")
			So(derived.String(theme.HeatmapFilled), ShouldEqual, "#8b5cf6")
		})
	})

	Convey("Given a sparse bag", t, func() {
		sparse := theme.Bag{"color-accent": "#ff0000", "color-background": "#fafafa"}
		derived := Derive(sparse)

		Convey("The input is not modified", func() {
			So(sparse, ShouldHaveLength, 2)
		})

		Convey("Text is dark on a light background", func() {
			So(derived.String(theme.ColorText), ShouldEqual, "#1e1e1e")
			So(derived.String(theme.ColorTextMuted), ShouldEqual, "rgba(30, 30, 30, 0.6)")
			So(derived.String(theme.ColorTextFaint), ShouldEqual, "rgba(30, 30, 30, 0.4)")
		})

		Convey("Links, icons and graph nodes follow the accent", func() {
			So(derived.String(theme.ColorLink), ShouldEqual, "#ff0000")
			So(derived.String(theme.ColorIcon), ShouldEqual, "#ff0000")
			So(derived.String(theme.ColorIconHover), ShouldEqual, "#ff0000")
			So(derived.String(theme.ColorGraphNode), ShouldEqual, "#ff0000")
			So(derived.String(theme.ColorDivider), ShouldEqual, "#ff0000")
		})

		Convey("Semantic colors use literals when the palette is empty", func() {
			So(derived.String(theme.ColorSuccess), ShouldEqual, "#10b981")
			So(derived.String(theme.ColorWarning), ShouldEqual, "#f59e0b")
			So(derived.String(theme.ColorError), ShouldEqual, "#ef4444")
		})
	})

	Convey("Accent slots fall back through hover and active", t, func() {
		derived := Derive(theme.Bag{"color-accent-active": "#00ff00"})
		So(derived.String(theme.ColorLink), ShouldEqual, "#00ff00")
		So(derived.String(theme.ColorText), ShouldEqual, "#ffffff")
	})

	Convey("Set values are never replaced", t, func() {
		derived := Derive(theme.Bag{"color-accent": "#ff0000", "color-link": "#0000ff", "color-success": "#123456"})
		So(derived.String(theme.ColorLink), ShouldEqual, "#0000ff")
		So(derived.String(theme.ColorSuccess), ShouldEqual, "#123456")
	})
}

func TestUpdateProperty(t *testing.T) {
	Convey("Given a resolved theme", t, func() {
		original := theme.NewResolved(Derive(theme.Bag{"color-accent": "#ff0000"}), nil, nil)

		Convey("Updating returns a new theme and leaves the original alone", func() {
			next := UpdateProperty(original, "label-active", "On")
			So(next, ShouldNotPointTo, original)
			So(next.Props["label-active"], ShouldEqual, "On")
			So(original.Props, ShouldNotContainKey, "label-active")
		})

		Convey("Clearing a color slot derives it again", func() {
			next := UpdateProperty(original, string(theme.ColorLink), "")
			So(next.Get(theme.ColorLink), ShouldEqual, "#ff0000")
		})

		Convey("Clearing a plain key removes it", func() {
			withLabel := UpdateProperty(original, "label-active", "On")
			So(UpdateProperty(withLabel, "label-active", "").Props, ShouldNotContainKey, "label-active")
		})
	})
}
