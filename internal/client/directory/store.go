package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/userdir/internal/rpc"
)

// CollectionPath addresses the whole directory.
const CollectionPath = rpc.CollectionPath

// ProfilePath addresses the profile owned by uid.
func ProfilePath(uid string) string {
	return rpc.ProfilePath(uid)
}

// ErrStore marks failures reported by the remote store.
var ErrStore = errors.New("directory store error")

func storeError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStore, op, err)
}

// Snapshot is the full content of the collection at one point in time.
// Exists is false when nothing is stored under the collection path.
type Snapshot struct {
	Exists   bool
	Profiles map[string]UserProfile
}

// Subscription is a live collection subscription.
type Subscription interface {
	// Unsubscribe releases the subscription. Safe to call more than once.
	Unsubscribe()
	// Done is closed once no further callbacks will be delivered.
	Done() <-chan struct{}
	// Err reports why delivery ended; nil after a plain Unsubscribe.
	Err() error
}

// Store is the remote document collection holding the directory.
//
// Subscribe delivers snapshots to fn one at a time, in the order the store
// emits them, until the subscription is released or ctx is done. ReadOne
// reports ok=false for an absent record. MergeWrite updates only the given
// fields of an existing record.
type Store interface {
	Subscribe(ctx context.Context, path string, fn func(Snapshot)) (Subscription, error)
	ReadOne(ctx context.Context, path string) (profile UserProfile, ok bool, err error)
	SetOne(ctx context.Context, path string, profile UserProfile) error
	MergeWrite(ctx context.Context, path string, fields map[string]string) error
	DeleteOne(ctx context.Context, path string) error
}
