package catalog

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/kkdai/youtube/v2"
	"github.com/samber/mo"

	"github.com/ytmux-cli/ytmux/filesystem"
	"github.com/ytmux-cli/ytmux/log"
	"github.com/ytmux-cli/ytmux/network"
	"github.com/ytmux-cli/ytmux/util"
)

// YouTube resolves asset locators against the YouTube media host.
type YouTube struct {
	client *youtube.Client
}

// NewYouTube constructs a resolver backed by the shared network session.
func NewYouTube() *YouTube {
	return &YouTube{
		client: &youtube.Client{
			HTTPClient: network.Session(),
		},
	}
}

// Resolve fetches the asset metadata and enumerates its stream descriptors.
// Any host-side failure is surfaced as ErrAssetUnavailable.
func (y *YouTube) Resolve(ctx context.Context, locator string) (*Catalog, error) {
	video, err := y.client.GetVideoContext(ctx, locator)
	if err != nil {
		log.Errorf("resolve %q: %s", locator, err)
		return nil, fmt.Errorf("%w: %s", ErrAssetUnavailable, err)
	}

	catalog := &Catalog{
		Asset: Asset{
			ID:          video.ID,
			Title:       video.Title,
			Author:      video.Author,
			Duration:    video.Duration,
			Views:       video.Views,
			PublishDate: video.PublishDate,
		},
	}

	for i := range video.Formats {
		format := &video.Formats[i]
		descriptor, ok := y.describe(video, format)
		if !ok {
			continue
		}
		catalog.Descriptors = append(catalog.Descriptors, descriptor)
	}

	log.Debugf("resolved %q: %s", video.ID, util.Quantify(len(catalog.Descriptors), "descriptor", "descriptors"))
	return catalog, nil
}

// describe converts a raw host format into a stream descriptor. Muxed formats
// (video with embedded audio) and non video/audio payloads are skipped.
func (y *YouTube) describe(video *youtube.Video, format *youtube.Format) (Descriptor, bool) {
	mediaType, container := splitMimeType(format.MimeType)

	switch {
	case strings.HasPrefix(mediaType, "video/"):
		if format.AudioChannels != 0 || format.QualityLabel == "" {
			return Descriptor{}, false
		}
		return Descriptor{
			Kind:       KindVideo,
			Resolution: mo.Some(format.QualityLabel),
			Container:  container,
			MimeType:   format.MimeType,
			Retrieve:   y.retriever(video, format),
		}, true
	case strings.HasPrefix(mediaType, "audio/"):
		return Descriptor{
			Kind:      KindAudio,
			Bitrate:   mo.Some(format.Bitrate),
			Container: container,
			MimeType:  format.MimeType,
			Retrieve:  y.retriever(video, format),
		}, true
	default:
		return Descriptor{}, false
	}
}

// retriever captures the host handles needed to stream one format to disk.
func (y *YouTube) retriever(video *youtube.Video, format *youtube.Format) RetrieveFunc {
	return func(ctx context.Context, path string) error {
		stream, _, err := y.client.GetStreamContext(ctx, video, format)
		if err != nil {
			return fmt.Errorf("open stream: %w", err)
		}
		defer util.Ignore(stream.Close)

		file, err := filesystem.API().Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		defer util.Ignore(file.Close)

		if _, err = io.Copy(file, stream); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		return nil
	}
}

// splitMimeType separates "video/mp4; codecs=..." into its media type and container.
func splitMimeType(mimeType string) (mediaType, container string) {
	mediaType, _, _ = strings.Cut(mimeType, ";")
	mediaType = strings.TrimSpace(mediaType)
	_, container, _ = strings.Cut(mediaType, "/")
	return mediaType, container
}
