package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/ytmux-cli/ytmux/filesystem"
)

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should replace invalid chars", func() {
			So(SanitizeFilename("file:name?.txt"), ShouldEqual, "file_name_.txt")
		})
		Convey("Should collapse underscores", func() {
			So(SanitizeFilename("file__name.txt"), ShouldEqual, "file_name.txt")
		})
		Convey("Should trim separators", func() {
			So(SanitizeFilename("-file-name-"), ShouldEqual, "file-name")
		})
		Convey("Should flatten whitespace-heavy titles", func() {
			So(SanitizeFilename("Never Gonna Give You Up"), ShouldEqual, "Never_Gonna_Give_You_Up")
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "stream", "streams"), ShouldEqual, "1 stream")
		So(Quantify(2, "stream", "streams"), ShouldEqual, "2 streams")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestFileStem(t *testing.T) {
	Convey("FileStem", t, func() {
		So(FileStem("path/to/file.mp4"), ShouldEqual, "file")
		So(FileStem("file"), ShouldEqual, "file")
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		filesystem.SetMemMapFs()

		Convey("Removes a file", func() {
			So(filesystem.API().WriteFile("/tmp/a.bin", []byte("x"), 0644), ShouldBeNil)
			So(Delete("/tmp/a.bin"), ShouldBeNil)
			exists, _ := filesystem.API().Exists("/tmp/a.bin")
			So(exists, ShouldBeFalse)
		})

		Convey("Removes a directory recursively", func() {
			So(filesystem.API().MkdirAll("/tmp/dir/sub", 0755), ShouldBeNil)
			So(Delete("/tmp/dir"), ShouldBeNil)
			exists, _ := filesystem.API().Exists("/tmp/dir")
			So(exists, ShouldBeFalse)
		})

		Convey("Errors on a missing path", func() {
			So(Delete("/tmp/nope"), ShouldNotBeNil)
		})
	})
}
