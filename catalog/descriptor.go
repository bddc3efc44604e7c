package catalog

import (
	"context"
	"fmt"

	"github.com/samber/mo"
)

// Kind discriminates the two stream variants the pipeline knows how to handle.
type Kind uint8

const (
	KindVideo Kind = iota + 1
	KindAudio
)

func (k Kind) String() string {
	switch k {
	case KindVideo:
		return "video"
	case KindAudio:
		return "audio"
	default:
		return "unknown"
	}
}

// RetrieveFunc streams the descriptor's payload to the given filesystem path.
// It blocks until completion or until ctx is cancelled.
type RetrieveFunc func(ctx context.Context, path string) error

// Descriptor is an immutable value describing one retrievable stream of an asset.
// Resolution is present only for video descriptors, Bitrate only for audio ones.
type Descriptor struct {
	Kind       Kind
	Resolution mo.Option[string]
	Bitrate    mo.Option[int]
	Container  string
	MimeType   string

	// Retrieve performs the actual transfer. Populated by the resolver,
	// injectable for tests.
	Retrieve RetrieveFunc
}

// IsMP4Video reports whether the descriptor is a video-only MP4 stream,
// the only video variant eligible for selection.
func (d Descriptor) IsMP4Video() bool {
	return d.Kind == KindVideo && d.Container == "mp4"
}

// IsMP4Audio reports whether the descriptor is an audio-only MP4 stream.
func (d Descriptor) IsMP4Audio() bool {
	return d.Kind == KindAudio && d.Container == "mp4"
}

func (d Descriptor) String() string {
	switch d.Kind {
	case KindVideo:
		return fmt.Sprintf("%s (%s)", d.Resolution.OrElse("unknown"), d.Container)
	case KindAudio:
		return fmt.Sprintf("%dkbps (%s)", d.Bitrate.OrElse(0)/1000, d.Container)
	default:
		return "unknown stream"
	}
}
