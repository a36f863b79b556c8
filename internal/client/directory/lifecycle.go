package directory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/logging"
)

// ErrInvalidInput is returned when sign-up form values are rejected locally.
var ErrInvalidInput = errors.New("invalid input")

// Lifecycle creates, resumes and removes accounts together with their
// directory profiles.
type Lifecycle struct {
	provider SessionProvider
	store    Store
	sync     *Synchronizer
	logger   logging.Logger
}

func NewLifecycle(provider SessionProvider, store Store, sync *Synchronizer, logger logging.Logger) *Lifecycle {
	return &Lifecycle{
		provider: provider,
		store:    store,
		sync:     sync,
		logger:   logger.With("module", "lifecycle"),
	}
}

func validateSignUp(userName, email, password string) error {
	switch {
	case strings.TrimSpace(userName) == "":
		return fmt.Errorf("%w: user name is required", ErrInvalidInput)
	case utf8.RuneCountInString(userName) > common.MaxUserNameLength:
		return fmt.Errorf("%w: user name must be at most %d characters", ErrInvalidInput, common.MaxUserNameLength)
	case strings.TrimSpace(email) == "":
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	case password == "":
		return fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	return nil
}

// SignUp creates the credential and then the profile. Provider errors are
// returned untouched. A failed profile write is logged and does not fail the
// sign-up: the credential already exists.
func (l *Lifecycle) SignUp(ctx context.Context, userName, email, password string) (*Identity, error) {
	if err := validateSignUp(userName, email, password); err != nil {
		return nil, err
	}

	identity, err := l.provider.SignUp(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if err := l.CreateProfileIfAbsent(ctx, identity, userName, email); err != nil {
		l.logger.Error(ctx, "profile create failed", "uid", identity.UID, "error", err)
	}
	return identity, nil
}

// CreateProfileIfAbsent writes a fresh active profile for identity unless one
// is already stored. The read and the write are not atomic; only the owning
// session ever creates its own profile.
func (l *Lifecycle) CreateProfileIfAbsent(ctx context.Context, identity *Identity, userName, email string) error {
	if identity == nil {
		return ErrNoSession
	}
	path := ProfilePath(identity.UID)

	_, exists, err := l.store.ReadOne(ctx, path)
	if err != nil {
		return storeError("read profile", err)
	}
	if exists {
		return nil
	}

	// the credential email is normalized by the provider
	if identity.Email != "" {
		email = identity.Email
	}
	profile := UserProfile{
		UID:       identity.UID,
		UserName:  userName,
		UserEmail: email,
		Status:    StatusActive,
	}
	if err := l.store.SetOne(ctx, path, profile); err != nil {
		return storeError("create profile", err)
	}
	return nil
}

// SignIn authenticates. The profile is not touched here; timestamps are
// reconciled once the directory subscription delivers.
func (l *Lifecycle) SignIn(ctx context.Context, email, password string) (*Identity, error) {
	return l.provider.SignIn(ctx, email, password)
}

// Restore resumes a persisted session, if any.
func (l *Lifecycle) Restore(ctx context.Context) (*Identity, error) {
	return l.provider.Restore(ctx)
}

// SignOut stops the directory subscription bound to the session before
// ending the session, so no reconciliation write can follow sign-out.
func (l *Lifecycle) SignOut(ctx context.Context, h *Handle) error {
	l.sync.Stop(h)
	l.sync.Reset()
	return l.provider.SignOut(ctx)
}

// DeleteAccount removes the credential and then the profile. When the
// credential delete fails the profile is left alone. When the profile delete
// fails the credential is already gone, so the leftover profile is only
// logged as an orphan.
func (l *Lifecycle) DeleteAccount(ctx context.Context, identity *Identity, h *Handle) error {
	if identity == nil {
		return ErrNoSession
	}

	if err := l.provider.DeleteAccount(ctx, identity); err != nil {
		return err
	}

	l.sync.Stop(h)
	l.sync.Reset()

	if err := l.store.DeleteOne(ctx, ProfilePath(identity.UID)); err != nil {
		l.logger.Error(ctx, "orphan profile left behind", "uid", identity.UID, "error", err)
	}
	return nil
}
