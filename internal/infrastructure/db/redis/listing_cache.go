package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/creatorhub/marketplace/internal/core/domain"
)

const listingTTL = 5 * time.Minute

// ListingCache caches listing-by-id lookups as JSON blobs.
// Key format: listing:<id>
type ListingCache struct {
	client *redis.Client
}

// NewListingCache creates a ListingCache wrapping the given Redis client.
func NewListingCache(client *redis.Client) *ListingCache {
	return &ListingCache{client: client}
}

// Get returns the cached listing, or (nil, nil) on a miss.
func (c *ListingCache) Get(ctx context.Context, id string) (*domain.ServiceListing, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing cache get: %w", err)
	}

	var l domain.ServiceListing
	if err := json.Unmarshal(raw, &l); err != nil {
		// An undecodable entry is treated as a miss; it will be
		// overwritten on the next Set.
		return nil, nil
	}
	return &l, nil
}

// Set stores the listing (expires after listingTTL).
func (c *ListingCache) Set(ctx context.Context, l *domain.ServiceListing) error {
	raw, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("listing cache marshal: %w", err)
	}
	return c.client.Set(ctx, c.key(l.ID), raw, listingTTL).Err()
}

// Invalidate drops the cached listing after a write.
func (c *ListingCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *ListingCache) key(id string) string {
	return "listing:" + id
}
