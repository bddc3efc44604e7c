// Package history provides the implementation for tracking and persisting completed downloads.
package history

import (
	"github.com/metafates/gache"

	"github.com/ytmux-cli/ytmux/catalog"
	"github.com/ytmux-cli/ytmux/filesystem"
	"github.com/ytmux-cli/ytmux/where"
)

// cacher provides an abstracted, disk-backed registry for download records.
var cacher = gache.New[map[string]*SavedDownload](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns the complete collection of download records from the persistent store.
func Get() (map[string]*SavedDownload, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*SavedDownload), nil
	}
	return cached, nil
}

// Save persists a completed download to the history registry.
// Re-downloading the same asset at the same resolution overwrites the record.
func Save(asset catalog.Asset, resolution, path string) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	record := newSavedDownload(asset, resolution, path)
	saved[record.encode()] = record

	return cacher.Set(saved)
}

// Remove permanently deletes a specific download record from the history registry.
func Remove(download *SavedDownload) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, download.encode())
	return cacher.Set(saved)
}
