package ui

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/ytmux-cli/ytmux/catalog"
)

func TestFormatDuration(t *testing.T) {
	Convey("formatDuration", t, func() {
		So(formatDuration(3*time.Minute+32*time.Second), ShouldEqual, "3:32")
		So(formatDuration(time.Hour+time.Minute+5*time.Second), ShouldEqual, "1:01:05")
		So(formatDuration(0), ShouldEqual, "0:00")
	})
}

func TestRenderAsset(t *testing.T) {
	Convey("RenderAsset", t, func() {
		rendered := RenderAsset(catalog.Asset{
			Title:    "Never Gonna Give You Up",
			Author:   "Rick Astley",
			Duration: 3*time.Minute + 32*time.Second,
			Views:    1234567,
		})

		So(rendered, ShouldContainSubstring, "Never Gonna Give You Up")
		So(rendered, ShouldContainSubstring, "Rick Astley")
		So(rendered, ShouldContainSubstring, "3:32")
		So(rendered, ShouldContainSubstring, "1,234,567")
	})
}
