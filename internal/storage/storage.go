package storage

import (
	"context"
	"errors"
)

// Store is the key-value persistence port the cart rides on. Implementations
// must return ErrNotFound for absent keys so callers can tell "no saved
// state" apart from a real failure.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

var ErrNotFound = errors.New("key not found")
