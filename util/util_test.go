package util

import (
	"testing"

	"github.com/prism-vault/prism/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "theme", "themes"), ShouldEqual, "1 theme")
		So(Quantify(2, "theme", "themes"), ShouldEqual, "2 themes")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestTerminalWidth(t *testing.T) {
	Convey("A non-terminal stdout falls back", t, func() {
		So(TerminalWidth(80), ShouldBeGreaterThan, 0)
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		fs := filesystem.API()
		So(fs.WriteFile("/tmp/prism/a/b.txt", []byte("x"), 0o644), ShouldBeNil)

		Convey("Removes files", func() {
			So(Delete("/tmp/prism/a/b.txt"), ShouldBeNil)
			exists, _ := fs.Exists("/tmp/prism/a/b.txt")
			So(exists, ShouldBeFalse)
		})

		Convey("Removes directories recursively", func() {
			So(Delete("/tmp/prism"), ShouldBeNil)
			exists, _ := fs.Exists("/tmp/prism/a")
			So(exists, ShouldBeFalse)
		})

		Convey("Reports missing paths", func() {
			So(Delete("/nowhere"), ShouldNotBeNil)
		})
	})
}
