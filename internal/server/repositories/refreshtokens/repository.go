// Package refreshtokens stores the opaque refresh tokens issued at sign-in.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/userdir/internal/server/models"
)

type Repository interface {
	// Issue stores token for identityID until expiresAt.
	Issue(ctx context.Context, identityID, token string, expiresAt time.Time) error

	// Lookup returns common.ErrorNotFound when the token is absent.
	Lookup(ctx context.Context, token string) (*models.RefreshToken, error)

	// Revoke removes token and reports whether it was still present. A
	// rotation that finds nothing to revoke lost a race with another one.
	Revoke(ctx context.Context, token string) (bool, error)

	// RevokeAll removes every token of identityID.
	RevokeAll(ctx context.Context, identityID string) (int64, error)
}
