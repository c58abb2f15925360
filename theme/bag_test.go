package theme

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBag(t *testing.T) {
	Convey("Given a bag with a nested object", t, func() {
		bag := Bag{
			"color-accent":   "#222",
			"style-settings": map[string]any{"minimal-style@@ax1@@dark": "#333"},
			"tags":           []any{"a", map[string]any{"b": 1}},
		}

		Convey("Clone is deep", func() {
			clone := bag.Clone()
			nested, ok := clone.Object("style-settings")
			So(ok, ShouldBeTrue)
			nested["minimal-style@@ax1@@dark"] = "#444"

			original, _ := bag.Object("style-settings")
			So(original["minimal-style@@ax1@@dark"], ShouldEqual, "#333")

			clone["tags"].([]any)[1].(map[string]any)["b"] = 2
			So(bag["tags"].([]any)[1].(map[string]any)["b"], ShouldEqual, 1)
		})

		Convey("Merge lets the overlay win and keeps unrelated keys", func() {
			merged := bag.Merge(Bag{"color-accent": "#333", "extra": "kept"})
			So(merged["color-accent"], ShouldEqual, "#333")
			So(merged["extra"], ShouldEqual, "kept")
			So(merged["style-settings"], ShouldNotBeNil)
			So(bag["color-accent"], ShouldEqual, "#222")
		})

		Convey("MergeTruthy keeps set values under blank overlays", func() {
			merged := bag.MergeTruthy(Bag{"color-accent": "", "color-link": nil, "extra": false, "tags": []any{"c"}})
			So(merged["color-accent"], ShouldEqual, "#222")
			So(merged["tags"], ShouldResemble, []any{"c"})

			_, present := merged["color-link"]
			So(present, ShouldBeTrue)
			So(merged.Has(ColorLink), ShouldBeFalse)
			So(merged["extra"], ShouldEqual, false)
		})

		Convey("SetIfAbsent only fills unset keys", func() {
			So(bag.SetIfAbsent(ColorAccent, "#999"), ShouldBeFalse)
			So(bag.String(ColorAccent), ShouldEqual, "#222")

			bag["color-link"] = ""
			So(bag.SetIfAbsent(ColorLink, "#999"), ShouldBeTrue)
			So(bag.String(ColorLink), ShouldEqual, "#999")

			So(bag.SetIfAbsent(ColorIcon, ""), ShouldBeFalse)
			_, present := bag[string(ColorIcon)]
			So(present, ShouldBeFalse)
		})
	})

	Convey("Truthy follows unset semantics", t, func() {
		So(Truthy(nil), ShouldBeFalse)
		So(Truthy(""), ShouldBeFalse)
		So(Truthy(false), ShouldBeFalse)
		So(Truthy(0), ShouldBeFalse)
		So(Truthy(0.0), ShouldBeFalse)
		So(Truthy("x"), ShouldBeTrue)
		So(Truthy(34), ShouldBeTrue)
		So(Truthy(map[string]any{}), ShouldBeTrue)
	})

	Convey("String renders non-string values", t, func() {
		bag := Bag{"bar-sprite-width": 34, "theme-version": 1.5}
		So(bag.String("bar-sprite-width"), ShouldEqual, "34")
		So(bag.String(Version), ShouldEqual, "1.5")
		So(bag.String("missing"), ShouldBeEmpty)
	})
}

func TestDefault(t *testing.T) {
	Convey("Default", t, func() {
		Convey("Returns an independent copy", func() {
			a := Default()
			a[string(ColorAccent)] = "#000000"
			So(Default().String(ColorAccent), ShouldEqual, "#7c3aed")
		})

		Convey("Holds no empty placeholders", func() {
			for _, v := range Default() {
				So(Truthy(v), ShouldBeTrue)
			}
		})

		Convey("Every default key is in the well-known catalog", func() {
			catalog := make(map[Property]bool)
			for _, p := range WellKnown {
				catalog[p] = true
			}
			for k := range Default() {
				So(catalog[Property(k)], ShouldBeTrue)
			}
			for _, p := range derivedOnly {
				So(catalog[p], ShouldBeTrue)
			}
		})
	})
}

func TestResolved(t *testing.T) {
	Convey("Given a resolved theme", t, func() {
		override := Bag{"minimal-style@@ax1@@dark": "#333"}
		embedded := Bag{"minimal-style@@ax1@@dark": "#222"}
		r := NewResolved(Bag{"theme-id": "nyanCat", "color-accent": "#333"}, override, embedded)

		Convey("Style settings replay prefers the override document", func() {
			bag, ok := r.SyncStyleSettings()
			So(ok, ShouldBeTrue)
			So(bag, ShouldResemble, override)
		})

		Convey("Without an override the embedded object is replayed", func() {
			bag, ok := NewResolved(Bag{}, nil, embedded).SyncStyleSettings()
			So(ok, ShouldBeTrue)
			So(bag, ShouldResemble, embedded)

			_, ok = NewResolved(Bag{}, nil, nil).SyncStyleSettings()
			So(ok, ShouldBeFalse)
		})

		Convey("With produces a new theme and leaves the receiver intact", func() {
			next := r.With("color-accent", "#444")
			So(next, ShouldNotPointTo, r)
			So(next.Get(ColorAccent), ShouldEqual, "#444")
			So(r.Get(ColorAccent), ShouldEqual, "#333")

			cleared := r.With("color-accent", "")
			_, present := cleared.Props["color-accent"]
			So(present, ShouldBeFalse)
		})

		Convey("ID reads theme-id", func() {
			So(r.ID(), ShouldEqual, "nyanCat")
		})
	})
}

func TestInfoFrom(t *testing.T) {
	Convey("InfoFrom", t, func() {
		Convey("Requires a theme-id", func() {
			_, ok := InfoFrom("System/Themes/x.md", Bag{"theme-name": "X"})
			So(ok, ShouldBeFalse)
		})

		Convey("Fills name and version defaults", func() {
			info, ok := InfoFrom("System/Themes/nyan.md", Bag{"theme-id": "nyanCat", "bar-sprite": "data:image/png;base64,AA"})
			So(ok, ShouldBeTrue)
			So(info.Name, ShouldEqual, "nyanCat")
			So(info.Version, ShouldEqual, "1.0")
			So(info.HasSprite, ShouldBeTrue)
			So(info.Path, ShouldEqual, "System/Themes/nyan.md")
		})
	})
}
