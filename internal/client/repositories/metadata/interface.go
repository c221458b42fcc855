// Package metadata is the client's durable key-value slot. It currently
// holds the persisted session credential; values are opaque bytes.
package metadata

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error

	// Update runs fn against a transaction-scoped repository, so writes to
	// multiple keys land atomically.
	Update(ctx context.Context, fn func(ctx context.Context, r Repository) error) error
}
