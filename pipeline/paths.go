package pipeline

import (
	"fmt"
	"path/filepath"

	"github.com/ytmux-cli/ytmux/catalog"
	"github.com/ytmux-cli/ytmux/util"
)

// TempArtifactPath returns the deterministic location of one intermediate
// stream artifact, e.g. "<dir>/dQw4w9WgXcQ_video.mp4".
func TempArtifactPath(dir, assetID string, kind catalog.Kind, container string) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s.%s", assetID, kind, container))
}

// OutputPath derives the final artifact location from the asset title and the
// chosen resolution label, e.g. "<dir>/Some_Title_1080p.mp4".
func OutputPath(dir, title, resolution string) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s.mp4", util.SanitizeFilename(title), resolution))
}
