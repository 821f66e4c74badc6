// Package cache stores rendered scene output keyed by content hash.
//
// Rendering is deterministic: the same scene rendered at the same size with
// the same flags always yields the same bytes. The CLI and the HTTP server
// use that to skip rebuilding canvas trees for repeated requests.
//
// # Implementations
//
//   - [FileCache]: one JSON file per entry under a directory, for the CLI
//   - [MemoryCache]: an in-process map with a size bound, for the server
//   - [RedisCache]: entries shared between server instances
//   - [NullCache]: never stores anything (caching disabled)
//
// # Keys
//
// A [Keyer] derives keys from a scene hash and render options. Wrap it in a
// [ScopedKeyer] to namespace keys, e.g. by build version so stale output from
// an older renderer is never served.
package cache

import (
	"context"
	"time"
)

// TTLRender is how long rendered output stays valid.
const TTLRender = 7 * 24 * time.Hour

// Cache is a byte store with per-entry expiry. A zero ttl never expires.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// NullCache never stores anything.
type NullCache struct{}

// NewNullCache creates a cache that always misses.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Close() error                                             { return nil }
