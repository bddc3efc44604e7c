package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		Convey("Orders semantic versions", func() {
			comp, err := Compare("1.2.3", "1.2.2")
			So(err, ShouldBeNil)
			So(comp, ShouldEqual, 1)

			comp, err = Compare("0.9.0", "1.0.0")
			So(err, ShouldBeNil)
			So(comp, ShouldEqual, -1)

			comp, err = Compare("2.0.0", "2.0.0")
			So(err, ShouldBeNil)
			So(comp, ShouldEqual, 0)
		})

		Convey("Tolerates the v prefix", func() {
			comp, err := Compare("v1.0.1", "1.0.0")
			So(err, ShouldBeNil)
			So(comp, ShouldEqual, 1)
		})

		Convey("Rejects malformed versions", func() {
			_, err := Compare("not-a-version", "1.0.0")
			So(err, ShouldNotBeNil)
		})
	})
}
