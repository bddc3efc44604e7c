package history

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/ytmux-cli/ytmux/catalog"
	"github.com/ytmux-cli/ytmux/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	Convey("Given a completed download", t, func() {
		asset := catalog.Asset{
			ID:     "dQw4w9WgXcQ",
			Title:  "Never Gonna Give You Up",
			Author: "Rick Astley",
		}

		Convey("When saving the download", func() {
			err := Save(asset, "1080p", "/out/Never_Gonna_Give_You_Up_1080p.mp4")

			Convey("Then the record should be persisted", func() {
				So(err, ShouldBeNil)

				downloads, err := Get()
				So(err, ShouldBeNil)
				So(len(downloads), ShouldBeGreaterThan, 0)

				record := downloads["dQw4w9WgXcQ (1080p)"]
				So(record, ShouldNotBeNil)
				So(record.Title, ShouldEqual, asset.Title)
				So(record.Path, ShouldEqual, "/out/Never_Gonna_Give_You_Up_1080p.mp4")
			})

			Convey("Then removing it should empty the registry entry", func() {
				downloads, err := Get()
				So(err, ShouldBeNil)

				record := downloads["dQw4w9WgXcQ (1080p)"]
				So(record, ShouldNotBeNil)
				So(Remove(record), ShouldBeNil)

				downloads, err = Get()
				So(err, ShouldBeNil)
				So(downloads["dQw4w9WgXcQ (1080p)"], ShouldBeNil)
			})
		})
	})
}
