package history

import (
	"fmt"
	"time"

	"github.com/ytmux-cli/ytmux/catalog"
)

// SavedDownload represents a single completed download preserved in the user's history.
type SavedDownload struct {
	AssetID    string    `json:"asset_id"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	Resolution string    `json:"resolution"`
	Path       string    `json:"path"`
	CreatedAt  time.Time `json:"created_at"`
}

func (s *SavedDownload) encode() string {
	return fmt.Sprintf("%s (%s)", s.AssetID, s.Resolution)
}

func (s *SavedDownload) String() string {
	return fmt.Sprintf("%s [%s]", s.Title, s.Resolution)
}

func newSavedDownload(asset catalog.Asset, resolution, path string) *SavedDownload {
	return &SavedDownload{
		AssetID:    asset.ID,
		Title:      asset.Title,
		Author:     asset.Author,
		Resolution: resolution,
		Path:       path,
		CreatedAt:  time.Now(),
	}
}
