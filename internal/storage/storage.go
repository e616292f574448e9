// Package storage implements the key-value persistence boundary. The domain
// store reads and writes whole serialized collections through an Adapter;
// nothing above this package touches the filesystem.
package storage

import "context"

// Adapter is a synchronous string-keyed store of opaque byte payloads.
//
// Get returns common.ErrNotFound (wrapped or bare) when the key has never
// been written. Put replaces the previous value atomically.
type Adapter interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
}
