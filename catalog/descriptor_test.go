package catalog

import (
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDescriptor(t *testing.T) {
	Convey("Descriptor", t, func() {
		video := Descriptor{
			Kind:       KindVideo,
			Resolution: mo.Some("1080p"),
			Container:  "mp4",
			MimeType:   `video/mp4; codecs="avc1.640028"`,
		}
		audio := Descriptor{
			Kind:      KindAudio,
			Bitrate:   mo.Some(128000),
			Container: "mp4",
			MimeType:  `audio/mp4; codecs="mp4a.40.2"`,
		}
		webm := Descriptor{
			Kind:       KindVideo,
			Resolution: mo.Some("1080p"),
			Container:  "webm",
			MimeType:   `video/webm; codecs="vp9"`,
		}

		Convey("Classifies MP4 video", func() {
			So(video.IsMP4Video(), ShouldBeTrue)
			So(video.IsMP4Audio(), ShouldBeFalse)
		})

		Convey("Classifies MP4 audio", func() {
			So(audio.IsMP4Audio(), ShouldBeTrue)
			So(audio.IsMP4Video(), ShouldBeFalse)
		})

		Convey("Rejects non-MP4 containers", func() {
			So(webm.IsMP4Video(), ShouldBeFalse)
		})

		Convey("Renders human-readable labels", func() {
			So(video.String(), ShouldEqual, "1080p (mp4)")
			So(audio.String(), ShouldEqual, "128kbps (mp4)")
		})
	})
}

func TestSplitMimeType(t *testing.T) {
	Convey("splitMimeType", t, func() {
		Convey("Parses a codec-qualified type", func() {
			mediaType, container := splitMimeType(`video/mp4; codecs="avc1.640028"`)
			So(mediaType, ShouldEqual, "video/mp4")
			So(container, ShouldEqual, "mp4")
		})

		Convey("Parses a bare type", func() {
			mediaType, container := splitMimeType("audio/webm")
			So(mediaType, ShouldEqual, "audio/webm")
			So(container, ShouldEqual, "webm")
		})
	})
}
