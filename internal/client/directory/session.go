package directory

import (
	"context"
	"errors"
	"time"
)

// ErrNoSession is returned by operations that need a signed-in identity.
var ErrNoSession = errors.New("no active session")

// Metadata carries provider-issued timestamps. Zero values mean the
// provider did not report them.
type Metadata struct {
	CreationTime   time.Time
	LastSignInTime time.Time
}

// Identity is an authenticated account.
type Identity struct {
	UID      string
	Email    string
	Metadata Metadata
}

// CredentialError is a rejection by the identity service. Message is
// shown to the user as is.
type CredentialError struct {
	Message string
}

func (e *CredentialError) Error() string {
	return e.Message
}

// SessionProvider is the identity service.
//
// Restore resumes a previously persisted session and returns (nil, nil)
// when there is none. CurrentIdentity returns nil when signed out.
type SessionProvider interface {
	SignUp(ctx context.Context, email, password string) (*Identity, error)
	SignIn(ctx context.Context, email, password string) (*Identity, error)
	SignOut(ctx context.Context) error
	DeleteAccount(ctx context.Context, identity *Identity) error
	Restore(ctx context.Context) (*Identity, error)
	CurrentIdentity() *Identity
}
