// Package pipeline orchestrates a single download run: retrieve the selected
// video and audio streams into temporary artifacts, mux them into the final
// MP4 and clean up.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/ytmux-cli/ytmux/catalog"
	"github.com/ytmux-cli/ytmux/filesystem"
	"github.com/ytmux-cli/ytmux/log"
	"github.com/ytmux-cli/ytmux/selector"
)

// ErrRetrievalFailed indicates a stream could not be fully written to disk.
var ErrRetrievalFailed = errors.New("stream retrieval failed")

// Muxer combines the two temporary artifacts into the output container.
type Muxer interface {
	Mux(ctx context.Context, videoPath, audioPath, outputPath string) error
}

// Pipeline runs the retrieval and muxing phases for one selection.
// Both directories are injected by the caller; the pipeline itself stays
// ignorant of configuration and platform conventions.
type Pipeline struct {
	OutputDir string
	TempDir   string
	Muxer     Muxer
	Reporter  Reporter
}

// New constructs a pipeline. A nil reporter is replaced with a no-op one.
func New(outputDir, tempDir string, muxer Muxer, reporter Reporter) *Pipeline {
	if reporter == nil {
		reporter = NopReporter{}
	}

	return &Pipeline{
		OutputDir: outputDir,
		TempDir:   tempDir,
		Muxer:     muxer,
		Reporter:  reporter,
	}
}

// Run executes the full sequence and returns the output path. Temporary
// artifacts are removed only after a successful mux, so a failed run leaves
// them on disk for inspection. A cleanup failure never fails the run.
func (p *Pipeline) Run(ctx context.Context, asset catalog.Asset, selection selector.Selection) (string, error) {
	videoPath := TempArtifactPath(p.TempDir, asset.ID, catalog.KindVideo, selection.Video.Container)
	audioPath := TempArtifactPath(p.TempDir, asset.ID, catalog.KindAudio, selection.Audio.Container)
	outputPath := OutputPath(p.OutputDir, asset.Title, selection.Resolution)

	p.transition(StateRetrieving, fmt.Sprintf("video %s", selection.Resolution))
	if err := selection.Video.Retrieve(ctx, videoPath); err != nil {
		return "", p.fail(fmt.Errorf("%w: video: %w", ErrRetrievalFailed, err))
	}

	p.transition(StateRetrieving, "audio")
	if err := selection.Audio.Retrieve(ctx, audioPath); err != nil {
		return "", p.fail(fmt.Errorf("%w: audio: %w", ErrRetrievalFailed, err))
	}

	p.transition(StateMuxing, selection.Resolution)
	if err := p.Muxer.Mux(ctx, videoPath, audioPath, outputPath); err != nil {
		return "", p.fail(err)
	}

	p.transition(StateCleaning, "")
	for _, path := range []string{videoPath, audioPath} {
		if err := filesystem.API().Remove(path); err != nil {
			log.Warnf("cleanup: %s", err)
		}
	}

	p.transition(StateDone, outputPath)
	return outputPath, nil
}

func (p *Pipeline) transition(state State, detail string) {
	log.Debugf("pipeline: %s %s", state, detail)
	p.Reporter.Transition(state, detail)
}

func (p *Pipeline) fail(err error) error {
	p.transition(StateFailed, err.Error())
	return err
}
