// Package session persists the signed-in session between CLI runs.
package session

import "context"

// KeyRefreshToken holds the refresh token of the last signed-in account.
const KeyRefreshToken = "refresh_token"

// Repository is a small key/value store. Get returns (nil, nil) for an
// absent key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
