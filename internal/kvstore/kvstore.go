package kvstore

import "context"

// Store is the persistence contract for serialized blobs. Implementations must
// treat a missing key as (nil, false, nil), not as an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}
