// Package catalog defines the domain models and the adapter for enumerating
// retrievable representations of a remote media asset.
package catalog

import (
	"context"
	"errors"
	"time"
)

// ErrAssetUnavailable indicates the remote host could not resolve the asset locator.
// A single failed resolution is terminal for the run; no retry is applied at this layer.
var ErrAssetUnavailable = errors.New("asset unavailable")

// Asset represents the remote media entity resolved from a user-supplied locator.
// It is read-only and fetched once per run.
type Asset struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Author      string        `json:"author"`
	Duration    time.Duration `json:"duration"`
	Views       int           `json:"views"`
	PublishDate time.Time     `json:"publish_date"`
}

// Catalog couples a resolved asset with its retrievable stream descriptors.
type Catalog struct {
	Asset       Asset
	Descriptors []Descriptor
}

// Resolver is the boundary to the remote media-hosting collaborator.
type Resolver interface {
	// Resolve queries the remote host for one asset and its stream descriptors.
	Resolve(ctx context.Context, locator string) (*Catalog, error)
}
