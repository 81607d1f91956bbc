// Package storage defines the durable backend abstraction behind the
// composite cache and the layer fetcher.
//
// Implementations MUST be byte-for-byte transparent: FetchCached must
// return exactly the same []byte that was previously passed to
// SaveToCache for a key (no prepended/appended metadata, no re-encoding,
// no mutation). Composite bytes are immutable once stored; a repeated
// SaveToCache for the same key carries identical bytes, so writes are
// idempotent and at-least-once semantics are safe.
//
// Absence is an expected outcome, never an error: every fetch returns
// (value, true, nil) on hit and (zero, false, nil) on miss. An error
// return means a genuine I/O or remote failure and must not be used to
// signal a missing object.
package storage

import (
	"context"

	"github.com/unkn0wn-root/layersmith/layer"
)

// Backend is a durable store for garment layers, composites and
// auxiliary JSON documents. Must be safe for concurrent use.
type Backend interface {
	// FetchLayer returns the image bytes for one garment layer of the
	// given view. The sku is already normalized by the caller.
	FetchLayer(ctx context.Context, category, sku string, view layer.View, extension string) ([]byte, bool, error)

	// FetchCached returns a previously stored composite.
	FetchCached(ctx context.Context, key string) ([]byte, bool, error)

	// SaveToCache persists a composite under key.
	SaveToCache(ctx context.Context, key string, data []byte) error

	// FetchCachedJSON returns an auxiliary JSON document stored
	// alongside composites (e.g. the product listing). Not used by the
	// render pipeline itself.
	FetchCachedJSON(ctx context.Context, key string) (string, bool, error)
}
