package cache

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cache defines the interface for caching operations.
type Cache interface {
	// Set stores a value in cache with TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	// Get retrieves a value from cache. Returns false if key doesn't exist.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	// Delete removes a key from cache.
	Delete(ctx context.Context, key string) error
}

// TeamSlugKey generates a cache key for a slug lookup.
func TeamSlugKey(slug string) string {
	return fmt.Sprintf("team:slug:%s", slug)
}

// CompletionKey generates a cache key for a team's completion summary.
func CompletionKey(teamID primitive.ObjectID) string {
	return fmt.Sprintf("team:completion:%s", teamID.Hex())
}

// Ensure Redis implements Cache interface
var _ Cache = (*Redis)(nil)
