package service

import (
	"context"
	"time"
)

// ReferenceCache stores small, read-mostly reference data with a TTL.
type ReferenceCache interface {
	// Get decodes the cached value into dest. It reports false on a miss.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// Delete removes key.
	Delete(ctx context.Context, key string) error
}
