// Package identities persists credential records.
package identities

import (
	"context"

	"github.com/dmitrijs2005/userdir/internal/server/models"
)

// Repository stores identities keyed by id and unique by email.
type Repository interface {
	// Create inserts identity and returns it with server-assigned timestamps.
	// A duplicate email yields common.ErrEmailInUse.
	Create(ctx context.Context, identity *models.Identity) (*models.Identity, error)
	// GetByEmail returns common.ErrorNotFound when no identity has email.
	GetByEmail(ctx context.Context, email string) (*models.Identity, error)
	GetByID(ctx context.Context, id string) (*models.Identity, error)
	// TouchLastSignIn sets last_sign_in_at to now and returns the stored identity.
	TouchLastSignIn(ctx context.Context, id string) (*models.Identity, error)
	// Delete removes the identity; its refresh tokens go with it.
	Delete(ctx context.Context, id string) error
}
