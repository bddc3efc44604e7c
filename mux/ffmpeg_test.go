package mux

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestArgs(t *testing.T) {
	Convey("Args", t, func() {
		muxer := &FFmpeg{Binary: "ffmpeg", AudioCodec: "aac"}
		args := muxer.Args("/tmp/id_video.mp4", "/tmp/id_audio.mp4", "/out/title_1080p.mp4")

		Convey("Overwrites without prompting", func() {
			So(args[0], ShouldEqual, "-y")
		})

		Convey("Feeds video before audio", func() {
			joined := strings.Join(args, " ")
			So(joined, ShouldContainSubstring, "-i /tmp/id_video.mp4 -i /tmp/id_audio.mp4")
		})

		Convey("Copies the video track and transcodes audio", func() {
			joined := strings.Join(args, " ")
			So(joined, ShouldContainSubstring, "-c:v copy")
			So(joined, ShouldContainSubstring, "-c:a aac")
			So(joined, ShouldContainSubstring, "-strict experimental")
		})

		Convey("Ends with the output path", func() {
			So(args[len(args)-1], ShouldEqual, "/out/title_1080p.mp4")
		})
	})
}

func TestTailBuffer(t *testing.T) {
	Convey("tailBuffer", t, func() {
		Convey("Keeps short writes intact", func() {
			b := newTailBuffer(16)
			_, err := b.Write([]byte("hello"))
			So(err, ShouldBeNil)
			So(b.String(), ShouldEqual, "hello")
		})

		Convey("Retains only the tail once over the limit", func() {
			b := newTailBuffer(4)
			_, _ = b.Write([]byte("abcdef"))
			So(b.String(), ShouldEqual, "cdef")

			_, _ = b.Write([]byte("gh"))
			So(b.String(), ShouldEqual, "efgh")
		})
	})
}
