// Package cache stores rendered diagrams between CLI runs.
//
// Rendering a large hierarchy through Graphviz is far slower than building
// its index, so the dot command keys each artifact by a hash of the input
// file and the render options and reuses it while the input is unchanged.
//
//	c, _ := cache.NewFileCache(dir)
//	key := cache.ArtifactKey(input, cache.ArtifactKeyOpts{Format: "svg"})
//	if data, ok, _ := c.Get(ctx, key); ok {
//	    return data
//	}
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional per-entry expiry.
// A miss is reported as ok == false with a nil error.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
