package directory

import (
	"context"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/dmitrijs2005/userdir/internal/logging"
)

// Session is the single owned object consumers are handed. It binds the
// account lifecycle, the synchronizer and the moderation engine to the
// current identity: signing in starts the directory subscription, signing
// out or deleting the account stops it. A subscription that ends on its own
// while bound is reopened with backoff.
type Session struct {
	lifecycle  *Lifecycle
	sync       *Synchronizer
	moderation *Moderation
	logger     logging.Logger
	backoff    func() retry.Backoff

	mu          sync.Mutex
	identity    *Identity
	handle      *Handle
	cancelWatch context.CancelFunc
	listener    func(View)
}

func NewSession(provider SessionProvider, store Store, logger logging.Logger, opts ...SynchronizerOption) *Session {
	syncer := NewSynchronizer(store, logger, opts...)
	return &Session{
		lifecycle:  NewLifecycle(provider, store, syncer, logger),
		sync:       syncer,
		moderation: NewModeration(store, logger),
		logger:     logger.With("module", "session"),
		backoff:    resubscribeBackoff,
	}
}

func resubscribeBackoff() retry.Backoff {
	b := retry.NewExponential(500 * time.Millisecond)
	b = retry.WithJitterPercent(10, b)
	return retry.WithCappedDuration(30*time.Second, b)
}

// OnChange registers fn to be called with the recomposed view after every
// directory snapshot.
func (s *Session) OnChange(fn func(View)) {
	s.mu.Lock()
	s.listener = fn
	s.mu.Unlock()
}

func (s *Session) Identity() *Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

func (s *Session) Mirror() Mirror {
	return s.sync.Mirror()
}

func (s *Session) View() View {
	return Compose(s.Identity(), s.sync.Mirror())
}

func (s *Session) Moderation() *Moderation {
	return s.moderation
}

// Handle returns the running subscription, or nil when signed out.
func (s *Session) Handle() *Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handle
}

func (s *Session) SignUp(ctx context.Context, userName, email, password string) error {
	identity, err := s.lifecycle.SignUp(ctx, userName, email, password)
	if err != nil {
		return err
	}
	return s.bind(ctx, identity)
}

func (s *Session) SignIn(ctx context.Context, email, password string) error {
	identity, err := s.lifecycle.SignIn(ctx, email, password)
	if err != nil {
		return err
	}
	return s.bind(ctx, identity)
}

// Restore resumes a persisted session and reports whether one was found.
func (s *Session) Restore(ctx context.Context) (bool, error) {
	identity, err := s.lifecycle.Restore(ctx)
	if err != nil || identity == nil {
		return false, err
	}
	return true, s.bind(ctx, identity)
}

func (s *Session) SignOut(ctx context.Context) error {
	h := s.unbind()
	s.moderation.Clear()
	return s.lifecycle.SignOut(ctx, h)
}

func (s *Session) DeleteAccount(ctx context.Context) error {
	s.mu.Lock()
	identity, h := s.identity, s.handle
	s.mu.Unlock()

	if err := s.lifecycle.DeleteAccount(ctx, identity, h); err != nil {
		return err
	}
	// a reopened subscription may have replaced h meanwhile
	s.sync.Stop(s.unbind())
	s.moderation.Clear()
	return nil
}

// ApplyBulkStatus moderates the current selection against the current mirror.
func (s *Session) ApplyBulkStatus(ctx context.Context, target Status) ([]string, error) {
	return s.moderation.ApplyBulkStatus(ctx, target, s.sync.Mirror())
}

// Close stops the subscription without signing out.
func (s *Session) Close() {
	s.mu.Lock()
	h, cancel := s.handle, s.cancelWatch
	s.handle, s.cancelWatch = nil, nil
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	s.sync.Stop(h)
}

func (s *Session) bind(ctx context.Context, identity *Identity) error {
	s.mu.Lock()
	prev, prevCancel := s.handle, s.cancelWatch
	s.identity = identity
	s.handle, s.cancelWatch = nil, nil
	s.mu.Unlock()
	if prevCancel != nil {
		prevCancel()
	}
	s.sync.Stop(prev)

	// The subscription outlives the call that opened it.
	watchCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	h, err := s.start(watchCtx)
	if err != nil {
		cancel()
		return err
	}

	s.mu.Lock()
	s.handle, s.cancelWatch = h, cancel
	s.mu.Unlock()
	go s.keepAlive(watchCtx, h)

	s.logger.Info(ctx, "session bound", "uid", identity.UID)
	return nil
}

func (s *Session) start(ctx context.Context) (*Handle, error) {
	return s.sync.Start(ctx, func(m Mirror) {
		s.onMirror(ctx, m)
	})
}

// keepAlive reopens the subscription each time the current one ends without
// Stop having been called. It returns once ctx is cancelled or the handle it
// watches is no longer the session's.
func (s *Session) keepAlive(ctx context.Context, h *Handle) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-h.Done():
		}
		if ctx.Err() != nil || h.released() {
			return
		}
		s.logger.Warn(ctx, "directory subscription ended", "error", h.Err())

		next, err := retry.DoValue(ctx, s.backoff(), func(ctx context.Context) (*Handle, error) {
			nh, err := s.start(ctx)
			if err != nil {
				s.logger.Warn(ctx, "resubscribe failed", "error", err)
				return nil, retry.RetryableError(err)
			}
			return nh, nil
		})
		if err != nil {
			return
		}

		released := h.released()
		s.mu.Lock()
		current := s.handle == h && !released
		if current {
			s.handle = next
		}
		s.mu.Unlock()
		if !current {
			s.sync.Stop(next)
			return
		}
		s.sync.Stop(h)
		s.logger.Info(ctx, "directory subscription reopened")
		h = next
	}
}

func (s *Session) unbind() *Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := s.handle
	if s.cancelWatch != nil {
		s.cancelWatch()
	}
	s.identity = nil
	s.handle, s.cancelWatch = nil, nil
	return h
}

func (s *Session) onMirror(ctx context.Context, m Mirror) {
	s.mu.Lock()
	identity, listener := s.identity, s.listener
	s.mu.Unlock()

	if s.sync.needsReconcile(identity, m) {
		if err := s.sync.ReconcileOwnProfile(ctx, identity, m); err != nil {
			s.logger.Warn(ctx, "reconcile failed", "uid", identity.UID, "error", err)
		}
	}
	if listener != nil {
		listener(Compose(identity, m))
	}
}
