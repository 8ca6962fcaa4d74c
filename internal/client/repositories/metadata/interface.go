// Package metadata is the client-side key/value table. The session store
// keeps the auth token and the serialized user profile in it.
package metadata

import (
	"context"
)

// Repository is a durable key/value map. Get returns (nil, nil) for a
// missing key; Delete is a no-op for missing keys.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}
