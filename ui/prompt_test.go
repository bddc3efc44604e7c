package ui

import (
	"io"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestAskResolution(t *testing.T) {
	Convey("askResolution", t, func() {
		labels := []string{"1080p", "720p", "480p"}

		Convey("Accepts a valid ordinal", func() {
			out := &strings.Builder{}
			label, err := askResolution(labels, strings.NewReader("2\n"), out)
			So(err, ShouldBeNil)
			So(label, ShouldEqual, "720p")
			So(out.String(), ShouldContainSubstring, "1) 1080p")
		})

		Convey("Re-prompts silently on malformed input", func() {
			out := &strings.Builder{}
			label, err := askResolution(labels, strings.NewReader("abc\n\n3\n"), out)
			So(err, ShouldBeNil)
			So(label, ShouldEqual, "480p")
			So(out.String(), ShouldNotContainSubstring, "between")
		})

		Convey("Re-prompts with a notice on out-of-range ordinals", func() {
			out := &strings.Builder{}
			label, err := askResolution(labels, strings.NewReader("9\n1\n"), out)
			So(err, ShouldBeNil)
			So(label, ShouldEqual, "1080p")
			So(out.String(), ShouldContainSubstring, "between 1 and 3")
		})

		Convey("Surfaces exhausted input", func() {
			_, err := askResolution(labels, strings.NewReader("nope\n"), io.Discard)
			So(err, ShouldNotBeNil)
		})
	})
}
