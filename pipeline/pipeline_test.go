package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/ytmux-cli/ytmux/catalog"
	"github.com/ytmux-cli/ytmux/filesystem"
	"github.com/ytmux-cli/ytmux/selector"
)

type fakeMuxer struct {
	calls int
	fail  bool
}

func (m *fakeMuxer) Mux(_ context.Context, _, _, outputPath string) error {
	m.calls++
	if m.fail {
		return errors.New("codec mismatch")
	}
	return filesystem.API().WriteFile(outputPath, []byte("muxed"), 0644)
}

type recordingReporter struct {
	states []State
}

func (r *recordingReporter) Transition(state State, _ string) {
	r.states = append(r.states, state)
}

func fakeDescriptor(kind catalog.Kind, payload string, fail bool) catalog.Descriptor {
	d := catalog.Descriptor{
		Kind:      kind,
		Container: "mp4",
		Retrieve: func(_ context.Context, path string) error {
			if fail {
				return errors.New("connection reset")
			}
			return filesystem.API().WriteFile(path, []byte(payload), 0644)
		},
	}
	if kind == catalog.KindVideo {
		d.Resolution = mo.Some("1080p")
	} else {
		d.Bitrate = mo.Some(128000)
	}
	return d
}

func exists(path string) bool {
	ok, _ := filesystem.API().Exists(path)
	return ok
}

func TestPipelineRun(t *testing.T) {
	Convey("Pipeline.Run", t, func() {
		filesystem.SetMemMapFs()
		So(filesystem.API().MkdirAll("/out", 0755), ShouldBeNil)
		So(filesystem.API().MkdirAll("/tmp/ytmux", 0755), ShouldBeNil)

		asset := catalog.Asset{ID: "dQw4w9WgXcQ", Title: "Never Gonna Give You Up"}
		selection := selector.Selection{
			Video:      fakeDescriptor(catalog.KindVideo, "video-bytes", false),
			Audio:      fakeDescriptor(catalog.KindAudio, "audio-bytes", false),
			Resolution: "1080p",
		}

		videoTemp := "/tmp/ytmux/dQw4w9WgXcQ_video.mp4"
		audioTemp := "/tmp/ytmux/dQw4w9WgXcQ_audio.mp4"

		Convey("Produces the output and removes temporary artifacts", func() {
			reporter := &recordingReporter{}
			muxer := &fakeMuxer{}
			p := New("/out", "/tmp/ytmux", muxer, reporter)

			output, err := p.Run(context.Background(), asset, selection)
			So(err, ShouldBeNil)
			So(output, ShouldEqual, "/out/Never_Gonna_Give_You_Up_1080p.mp4")
			So(exists(output), ShouldBeTrue)
			So(exists(videoTemp), ShouldBeFalse)
			So(exists(audioTemp), ShouldBeFalse)
			So(muxer.calls, ShouldEqual, 1)
			So(reporter.states, ShouldResemble, []State{
				StateRetrieving, StateRetrieving, StateMuxing, StateCleaning, StateDone,
			})
		})

		Convey("Keeps temporary artifacts when the mux fails", func() {
			reporter := &recordingReporter{}
			p := New("/out", "/tmp/ytmux", &fakeMuxer{fail: true}, reporter)

			_, err := p.Run(context.Background(), asset, selection)
			So(err, ShouldNotBeNil)
			So(exists(videoTemp), ShouldBeTrue)
			So(exists(audioTemp), ShouldBeTrue)
			So(exists("/out/Never_Gonna_Give_You_Up_1080p.mp4"), ShouldBeFalse)
			So(reporter.states[len(reporter.states)-1], ShouldEqual, StateFailed)
		})

		Convey("Never muxes when video retrieval fails", func() {
			muxer := &fakeMuxer{}
			failing := selection
			failing.Video = fakeDescriptor(catalog.KindVideo, "", true)
			p := New("/out", "/tmp/ytmux", muxer, nil)

			_, err := p.Run(context.Background(), asset, failing)
			So(errors.Is(err, ErrRetrievalFailed), ShouldBeTrue)
			So(muxer.calls, ShouldEqual, 0)
		})

		Convey("Never muxes when audio retrieval fails", func() {
			muxer := &fakeMuxer{}
			failing := selection
			failing.Audio = fakeDescriptor(catalog.KindAudio, "", true)
			p := New("/out", "/tmp/ytmux", muxer, nil)

			_, err := p.Run(context.Background(), asset, failing)
			So(errors.Is(err, ErrRetrievalFailed), ShouldBeTrue)
			So(muxer.calls, ShouldEqual, 0)
		})
	})
}

func TestPaths(t *testing.T) {
	Convey("TempArtifactPath", t, func() {
		So(
			TempArtifactPath("/tmp/ytmux", "abc123", catalog.KindVideo, "mp4"),
			ShouldEqual,
			"/tmp/ytmux/abc123_video.mp4",
		)
		So(
			TempArtifactPath("/tmp/ytmux", "abc123", catalog.KindAudio, "mp4"),
			ShouldEqual,
			"/tmp/ytmux/abc123_audio.mp4",
		)
	})

	Convey("OutputPath", t, func() {
		So(
			OutputPath("/out", "What? A Title: Really", "720p"),
			ShouldEqual,
			"/out/What_A_Title_Really_720p.mp4",
		)
	})
}
