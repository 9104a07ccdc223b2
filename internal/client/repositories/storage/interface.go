package storage

import "context"

// Store is the capability the panel is given. Get returns
// common.ErrorNotFound when the key is absent. Set overwrites unconditionally.
//
// Update reads the current value, passes it to fn and writes fn's result
// back as one step. It returns common.ErrorNotFound without calling fn when
// the key is absent, and leaves the value untouched when fn fails.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Update(ctx context.Context, key string, fn func(current string) (string, error)) error
}
