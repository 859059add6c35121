// Package cache stores rendered artifacts so repeated plots of the same
// graph skip Graphviz entirely.
//
// Three backends implement the same interface: a file cache for normal
// CLI use, a redis cache for shared environments, and a null cache that
// disables caching. Keys are content-addressed: sha-256 over the graph
// bytes plus the render options, so any change to either misses cleanly.
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long rendered artifacts stay cached. Renders are
// deterministic for a given graph and options, so the TTL only bounds
// disk usage, not staleness.
const TTLArtifact = 7 * 24 * time.Hour

// Cache is the interface all backends implement.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ArtifactKeyOpts are the render parameters that distinguish cached
// artifacts produced from the same graph.
type ArtifactKeyOpts struct {
	Format    string // "svg" or "png"
	Style     string // plot style C/N/P
	Attribute string // attribute used by style P
}

// ArtifactKey builds the cache key for a rendered artifact.
func ArtifactKey(graphHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", graphHash, opts)
}
