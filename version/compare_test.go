package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Versions are compared component by component", t, func() {
		c, err := Compare("1.2.0", "1.10.0")
		So(err, ShouldBeNil)
		So(c, ShouldEqual, -1)

		c, err = Compare("v2.0", "1.9.9")
		So(err, ShouldBeNil)
		So(c, ShouldEqual, 1)

		c, err = Compare("1.0", "1.0.0")
		So(err, ShouldBeNil)
		So(c, ShouldEqual, 0)
	})

	Convey("Garbage is rejected", t, func() {
		_, err := Compare("one", "1.0")
		So(err, ShouldNotBeNil)
		_, err = Compare("1.0.0.0", "1.0")
		So(err, ShouldNotBeNil)
	})

	Convey("Newer never trusts unreadable versions", t, func() {
		So(Newer("1.1", "1.0"), ShouldBeTrue)
		So(Newer("1.0", "1.0"), ShouldBeFalse)
		So(Newer("latest", "1.0"), ShouldBeFalse)
	})
}
