package repository

import "context"

// Repository is a key/value settings store.
type Repository interface {
	// Get returns the stored value or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set creates or replaces the value of key.
	Set(ctx context.Context, key, value string) error
}
