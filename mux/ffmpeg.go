// Package mux shells out to ffmpeg to combine separate video and audio
// artifacts into a single MP4 container.
package mux

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/spf13/viper"

	"github.com/ytmux-cli/ytmux/key"
	"github.com/ytmux-cli/ytmux/log"
)

// ErrMuxFailed indicates ffmpeg exited non-zero. The wrapped message carries
// the tail of its diagnostic output.
var ErrMuxFailed = errors.New("mux failed")

// FFmpeg invokes an external ffmpeg binary as the muxing engine.
type FFmpeg struct {
	Binary     string
	AudioCodec string
}

// NewFFmpeg constructs a muxer from the configured binary path and audio codec.
func NewFFmpeg() *FFmpeg {
	return &FFmpeg{
		Binary:     viper.GetString(key.MuxFFmpegPath),
		AudioCodec: viper.GetString(key.MuxAudioCodec),
	}
}

// Available reports whether the ffmpeg binary can be found on the system.
func (f *FFmpeg) Available() error {
	if _, err := exec.LookPath(f.Binary); err != nil {
		return fmt.Errorf("%s not found in PATH: %w", f.Binary, err)
	}
	return nil
}

// Args builds the ffmpeg invocation. The video track is copied without
// re-encoding, the audio track is transcoded to the configured codec.
func (f *FFmpeg) Args(videoPath, audioPath, outputPath string) []string {
	return []string{
		"-y",
		"-i", videoPath,
		"-i", audioPath,
		"-c:v", "copy",
		"-c:a", f.AudioCodec,
		"-strict", "experimental",
		outputPath,
	}
}

// Mux runs ffmpeg over the two temporary artifacts, producing outputPath.
// ffmpeg's own output never reaches the terminal; on failure the captured
// tail is folded into the returned error.
func (f *FFmpeg) Mux(ctx context.Context, videoPath, audioPath, outputPath string) error {
	args := f.Args(videoPath, audioPath, outputPath)
	log.Debugf("mux: %s %s", f.Binary, strings.Join(args, " "))

	diagnostics := newTailBuffer(diagnosticsLimit)
	cmd := exec.CommandContext(ctx, f.Binary, args...)
	cmd.Stdout = diagnostics
	cmd.Stderr = diagnostics

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		tail := strings.TrimSpace(diagnostics.String())
		log.Errorf("mux: %s: %s", err, tail)
		return fmt.Errorf("%w: %s: %s", ErrMuxFailed, err, tail)
	}
	return nil
}
