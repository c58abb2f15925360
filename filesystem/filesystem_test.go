package filesystem

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestRooted(t *testing.T) {
	Convey("Given an in-memory backend", t, func() {
		SetMemMapFs()

		Convey("A rooted view writes below its root", func() {
			vault := Rooted("/vault")
			So(vault.WriteFile("System/Settings.md", []byte("---\n---\n"), 0o644), ShouldBeNil)
			So(lo.Must(API().Exists("/vault/System/Settings.md")), ShouldBeTrue)
		})

		Convey("An empty root is the backend itself", func() {
			So(Rooted("").Name(), ShouldEqual, API().Name())
			So(Rooted(".").Name(), ShouldEqual, API().Name())
		})
	})
}
