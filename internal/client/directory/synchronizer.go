package directory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/userdir/internal/logging"
)

// Synchronizer owns the local Mirror. It subscribes to the whole collection
// and replaces the mirror wholesale on every snapshot, and it writes the
// session's derived timestamps back into the session owner's own profile.
type Synchronizer struct {
	store  Store
	logger logging.Logger
	loc    *time.Location

	mu     sync.RWMutex
	mirror Mirror
}

type SynchronizerOption func(*Synchronizer)

// WithLocation sets the zone derived timestamps are rendered in (UTC by default).
func WithLocation(loc *time.Location) SynchronizerOption {
	return func(s *Synchronizer) {
		s.loc = loc
	}
}

func NewSynchronizer(store Store, logger logging.Logger, opts ...SynchronizerOption) *Synchronizer {
	s := &Synchronizer{
		store:  store,
		logger: logger.With("module", "synchronizer"),
		loc:    time.UTC,
		mirror: Mirror{},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Handle identifies one running subscription started by Start.
type Handle struct {
	sub  Subscription
	once sync.Once

	// deliver serializes snapshot delivery with Stop.
	deliver sync.Mutex
	stopped bool
}

// Done is closed when the underlying subscription stops delivering.
func (h *Handle) Done() <-chan struct{} {
	return h.sub.Done()
}

// Err reports why the subscription ended, if it failed.
func (h *Handle) Err() error {
	return h.sub.Err()
}

// released reports whether Stop was called for h.
func (h *Handle) released() bool {
	h.deliver.Lock()
	defer h.deliver.Unlock()
	return h.stopped
}

// Start subscribes to the collection. Every snapshot replaces the mirror and
// is passed to onChange, which may be nil. Snapshots that arrive after Stop
// are dropped. onChange must not call Stop for its own handle.
func (s *Synchronizer) Start(ctx context.Context, onChange func(Mirror)) (*Handle, error) {
	h := &Handle{}

	sub, err := s.store.Subscribe(ctx, CollectionPath, func(snap Snapshot) {
		h.deliver.Lock()
		defer h.deliver.Unlock()
		if h.stopped {
			return
		}
		m := mirrorFromSnapshot(snap)
		s.mu.Lock()
		s.mirror = m
		s.mu.Unlock()

		s.logger.Debug(ctx, "mirror replaced", "profiles", len(m))
		if onChange != nil {
			onChange(m)
		}
	})
	if err != nil {
		return nil, storeError("subscribe", err)
	}
	h.sub = sub
	return h, nil
}

// Stop releases h. It waits for a snapshot that is being applied, so once it
// returns the mirror no longer changes on behalf of h. It is idempotent and
// accepts nil.
func (s *Synchronizer) Stop(h *Handle) {
	if h == nil {
		return
	}
	h.once.Do(func() {
		h.deliver.Lock()
		h.stopped = true
		h.deliver.Unlock()
		h.sub.Unsubscribe()
	})
}

// Mirror returns the most recent snapshot. The result must not be modified.
func (s *Synchronizer) Mirror() Mirror {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mirror
}

// Reset drops the mirror, e.g. after sign-out.
func (s *Synchronizer) Reset() {
	s.mu.Lock()
	s.mirror = Mirror{}
	s.mu.Unlock()
}

// ReconcileOwnProfile merge-writes registrationTime and lastSignInTime,
// derived from the identity's metadata, into the identity's own profile.
// Nothing is written without an identity, with an empty mirror, or when
// either timestamp is missing.
func (s *Synchronizer) ReconcileOwnProfile(ctx context.Context, identity *Identity, mirror Mirror) error {
	if identity == nil || len(mirror) == 0 {
		return nil
	}
	fields, ok := s.derivedTimestamps(identity)
	if !ok {
		return nil
	}
	if err := s.store.MergeWrite(ctx, ProfilePath(identity.UID), fields); err != nil {
		return storeError(fmt.Sprintf("reconcile %s", identity.UID), err)
	}
	return nil
}

func (s *Synchronizer) derivedTimestamps(identity *Identity) (map[string]string, bool) {
	md := identity.Metadata
	if md.CreationTime.IsZero() || md.LastSignInTime.IsZero() {
		return nil, false
	}
	return map[string]string{
		FieldRegistrationTime: FormatTimestamp(md.CreationTime, s.loc),
		FieldLastSignInTime:   FormatTimestamp(md.LastSignInTime, s.loc),
	}, true
}

// needsReconcile reports whether the own profile in mirror is present and
// its timestamps differ from what the identity derives to.
func (s *Synchronizer) needsReconcile(identity *Identity, mirror Mirror) bool {
	if identity == nil {
		return false
	}
	own, ok := mirror.Lookup(identity.UID)
	if !ok {
		return false
	}
	fields, ok := s.derivedTimestamps(identity)
	if !ok {
		return false
	}
	return own.RegistrationTime != fields[FieldRegistrationTime] ||
		own.LastSignInTime != fields[FieldLastSignInTime]
}

func mirrorFromSnapshot(snap Snapshot) Mirror {
	m := make(Mirror, len(snap.Profiles))
	if !snap.Exists {
		return m
	}
	for uid, p := range snap.Profiles {
		if p.UID == "" {
			p.UID = uid
		}
		m[uid] = p
	}
	return m
}
