package selector

import (
	"errors"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/ytmux-cli/ytmux/catalog"
)

func video(label, container string) catalog.Descriptor {
	return catalog.Descriptor{
		Kind:       catalog.KindVideo,
		Resolution: mo.Some(label),
		Container:  container,
	}
}

func audio(bitrate int) catalog.Descriptor {
	return catalog.Descriptor{
		Kind:      catalog.KindAudio,
		Bitrate:   mo.Some(bitrate),
		Container: "mp4",
	}
}

func TestAvailableResolutions(t *testing.T) {
	Convey("AvailableResolutions", t, func() {
		Convey("Deduplicates, filters and orders highest first", func() {
			descriptors := []catalog.Descriptor{
				video("720p", "mp4"),
				video("1080p", "mp4"),
				video("720p", "mp4"),
				audio(128000),
				audio(256000),
			}

			So(AvailableResolutions(descriptors), ShouldResemble, []string{"1080p", "720p"})
		})

		Convey("Ignores non-MP4 video streams", func() {
			descriptors := []catalog.Descriptor{
				video("2160p", "webm"),
				video("1080p", "mp4"),
			}

			So(AvailableResolutions(descriptors), ShouldResemble, []string{"1080p"})
		})

		Convey("Sorts frame-rate qualified labels by height", func() {
			descriptors := []catalog.Descriptor{
				video("720p60", "mp4"),
				video("1080p", "mp4"),
				video("144p", "mp4"),
			}

			So(AvailableResolutions(descriptors), ShouldResemble, []string{"1080p", "720p60", "144p"})
		})

		Convey("Returns nothing for an empty catalog", func() {
			So(AvailableResolutions(nil), ShouldBeEmpty)
		})
	})
}

func TestHeight(t *testing.T) {
	Convey("Height", t, func() {
		So(Height("1080p"), ShouldEqual, 1080)
		So(Height("720p60"), ShouldEqual, 720)
		So(Height("unknown"), ShouldEqual, 0)
	})
}

func TestParseChoice(t *testing.T) {
	Convey("ParseChoice", t, func() {
		Convey("Accepts an in-range ordinal", func() {
			ordinal, err := ParseChoice("2", 3)
			So(err, ShouldBeNil)
			So(ordinal, ShouldEqual, 2)
		})

		Convey("Tolerates surrounding whitespace", func() {
			ordinal, err := ParseChoice("  1 ", 3)
			So(err, ShouldBeNil)
			So(ordinal, ShouldEqual, 1)
		})

		Convey("Rejects non-numeric input", func() {
			_, err := ParseChoice("abc", 3)
			So(errors.Is(err, ErrMalformedChoice), ShouldBeTrue)
		})

		Convey("Rejects out-of-range ordinals", func() {
			_, err := ParseChoice("0", 3)
			So(errors.Is(err, ErrChoiceOutOfRange), ShouldBeTrue)

			_, err = ParseChoice("4", 3)
			So(errors.Is(err, ErrChoiceOutOfRange), ShouldBeTrue)
		})
	})
}

func TestResolve(t *testing.T) {
	Convey("Resolve", t, func() {
		descriptors := []catalog.Descriptor{
			video("1080p", "mp4"),
			video("720p", "mp4"),
			video("720p", "mp4"),
			audio(128000),
			audio(256000),
		}

		Convey("Pairs the chosen video with the best audio", func() {
			selection, err := Resolve(descriptors, "720p")
			So(err, ShouldBeNil)
			So(selection.Resolution, ShouldEqual, "720p")
			So(selection.Video.Resolution.OrEmpty(), ShouldEqual, "720p")
			So(selection.Audio.Bitrate.OrEmpty(), ShouldEqual, 256000)
		})

		Convey("Fails when the resolution has no video stream", func() {
			_, err := Resolve(descriptors, "480p")
			So(errors.Is(err, ErrStreamsUnavailable), ShouldBeTrue)
		})

		Convey("Fails when no audio stream exists", func() {
			_, err := Resolve([]catalog.Descriptor{video("1080p", "mp4")}, "1080p")
			So(errors.Is(err, ErrStreamsUnavailable), ShouldBeTrue)
		})

		Convey("Fails on an empty catalog", func() {
			_, err := Resolve(nil, "1080p")
			So(errors.Is(err, ErrStreamsUnavailable), ShouldBeTrue)
		})
	})
}
