// Package selector derives the selectable resolution menu from a stream catalog
// and picks the concrete video and audio streams for a chosen resolution.
package selector

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"

	"github.com/ytmux-cli/ytmux/catalog"
)

var (
	// ErrStreamsUnavailable indicates no video and audio stream pair could be
	// selected from the catalog.
	ErrStreamsUnavailable = errors.New("no suitable streams available")

	// ErrMalformedChoice indicates the raw selection input is not a number.
	ErrMalformedChoice = errors.New("choice is not a number")

	// ErrChoiceOutOfRange indicates a numeric selection outside the menu bounds.
	ErrChoiceOutOfRange = errors.New("choice is out of range")
)

// Selection pairs the video stream chosen by the user with the
// highest-fidelity audio stream available for it.
type Selection struct {
	Video catalog.Descriptor
	Audio catalog.Descriptor

	// Resolution is the menu label the selection was made against.
	Resolution string
}

// AvailableResolutions derives the resolution menu from the catalog:
// video-only MP4 streams, deduplicated by label, ordered highest first.
func AvailableResolutions(descriptors []catalog.Descriptor) []string {
	var labels []string
	for _, d := range descriptors {
		if !d.IsMP4Video() {
			continue
		}

		label := d.Resolution.OrEmpty()
		if label == "" || lo.Contains(labels, label) {
			continue
		}
		labels = append(labels, label)
	}

	slices.SortStableFunc(labels, func(a, b string) int {
		return Height(b) - Height(a)
	})
	return labels
}

// Height extracts the numeric vertical resolution from a label such as
// "1080p" or "720p60". Labels without a leading number sort last.
func Height(label string) int {
	digits := label
	for i, r := range label {
		if r < '0' || r > '9' {
			digits = label[:i]
			break
		}
	}

	height, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return height
}

// ParseChoice validates raw ordinal input against a menu of the given size
// and returns the one-based ordinal.
func ParseChoice(raw string, available int) (int, error) {
	ordinal, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, ErrMalformedChoice
	}

	if ordinal < 1 || ordinal > available {
		return 0, fmt.Errorf("%w: %d", ErrChoiceOutOfRange, ordinal)
	}
	return ordinal, nil
}

// Resolve picks the first video stream matching the chosen resolution label
// and the audio stream with the highest bitrate.
func Resolve(descriptors []catalog.Descriptor, label string) (Selection, error) {
	video, found := lo.Find(descriptors, func(d catalog.Descriptor) bool {
		return d.IsMP4Video() && d.Resolution.OrEmpty() == label
	})
	if !found {
		return Selection{}, fmt.Errorf("%w: no %s video stream", ErrStreamsUnavailable, label)
	}

	audios := lo.Filter(descriptors, func(d catalog.Descriptor, _ int) bool {
		return d.IsMP4Audio()
	})
	if len(audios) == 0 {
		return Selection{}, fmt.Errorf("%w: no audio stream", ErrStreamsUnavailable)
	}

	audio := lo.MaxBy(audios, func(a, b catalog.Descriptor) bool {
		return a.Bitrate.OrEmpty() > b.Bitrate.OrEmpty()
	})

	return Selection{
		Video:      video,
		Audio:      audio,
		Resolution: label,
	}, nil
}
