// Package profiles persists the user directory.
package profiles

import (
	"context"

	"github.com/dmitrijs2005/userdir/internal/server/models"
)

// Repository stores directory profiles keyed by uid.
type Repository interface {
	// List returns every profile ordered by uid.
	List(ctx context.Context) ([]models.Profile, error)
	// Get returns common.ErrorNotFound for an unknown uid.
	Get(ctx context.Context, uid string) (*models.Profile, error)
	// GetForUpdate is Get with a row lock; use it inside a transaction.
	GetForUpdate(ctx context.Context, uid string) (*models.Profile, error)
	// Upsert writes the whole profile, creating it when absent.
	Upsert(ctx context.Context, p *models.Profile) error
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, uid string) (bool, error)
	// ListOrphans returns profiles whose uid has no identity.
	ListOrphans(ctx context.Context) ([]models.Profile, error)
}
