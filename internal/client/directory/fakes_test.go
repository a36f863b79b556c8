package directory

import (
	"context"
	"errors"
	"maps"
	"strings"
	"sync"

	"github.com/dmitrijs2005/userdir/internal/common"
)

type mergeCall struct {
	path   string
	fields map[string]string
}

type fakeSub struct {
	once       sync.Once
	done       chan struct{}
	unsubCalls int
	err        error
}

func newFakeSub() *fakeSub { return &fakeSub{done: make(chan struct{})} }

func (s *fakeSub) Unsubscribe() {
	s.unsubCalls++
	s.once.Do(func() { close(s.done) })
}
func (s *fakeSub) Done() <-chan struct{} { return s.done }
func (s *fakeSub) Err() error            { return s.err }

// end terminates the subscription the way a dropped stream does.
func (s *fakeSub) end(err error) {
	s.once.Do(func() {
		s.err = err
		close(s.done)
	})
}

type fakeStore struct {
	mu       sync.Mutex
	profiles map[string]UserProfile

	subscribeErr error
	readErr      error
	setErr       error
	deleteErr    error
	mergeErr     map[string]error

	setCalls    int
	deleteCalls int
	merges      []mergeCall

	fn  func(Snapshot)
	sub *fakeSub

	subscribeCalls int
	failSubscribes int
}

func newFakeStore(profiles ...UserProfile) *fakeStore {
	s := &fakeStore{profiles: map[string]UserProfile{}, mergeErr: map[string]error{}}
	for _, p := range profiles {
		s.profiles[p.UID] = p
	}
	return s
}

func uidOf(path string) string {
	return strings.TrimPrefix(path, CollectionPath+"/")
}

func (s *fakeStore) Subscribe(_ context.Context, _ string, fn func(Snapshot)) (Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribeCalls++
	if s.subscribeErr != nil {
		return nil, s.subscribeErr
	}
	if s.failSubscribes > 0 {
		s.failSubscribes--
		return nil, errors.New("connection refused")
	}
	s.fn = fn
	s.sub = newFakeSub()
	return s.sub, nil
}

func (s *fakeStore) subscriptions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subscribeCalls
}

func (s *fakeStore) currentSub() *fakeSub {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sub
}

// emit delivers a snapshot of the current contents.
func (s *fakeStore) emit() {
	s.mu.Lock()
	snap := Snapshot{Exists: len(s.profiles) > 0, Profiles: maps.Clone(s.profiles)}
	fn := s.fn
	s.mu.Unlock()
	fn(snap)
}

func (s *fakeStore) emitSnapshot(snap Snapshot) {
	s.mu.Lock()
	fn := s.fn
	s.mu.Unlock()
	fn(snap)
}

func (s *fakeStore) ReadOne(_ context.Context, path string) (UserProfile, bool, error) {
	if s.readErr != nil {
		return UserProfile{}, false, s.readErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[uidOf(path)]
	return p, ok, nil
}

func (s *fakeStore) SetOne(_ context.Context, path string, p UserProfile) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setCalls++
	s.profiles[uidOf(path)] = p
	return nil
}

func (s *fakeStore) MergeWrite(_ context.Context, path string, fields map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	uid := uidOf(path)
	s.merges = append(s.merges, mergeCall{path: path, fields: maps.Clone(fields)})
	if err := s.mergeErr[uid]; err != nil {
		return err
	}
	p, ok := s.profiles[uid]
	if !ok {
		return common.ErrorNotFound
	}
	for k, v := range fields {
		switch k {
		case FieldStatus:
			p.Status = Status(v)
		case FieldRegistrationTime:
			p.RegistrationTime = v
		case FieldLastSignInTime:
			p.LastSignInTime = v
		case FieldUserName:
			p.UserName = v
		case FieldUserEmail:
			p.UserEmail = v
		}
	}
	s.profiles[uid] = p
	return nil
}

func (s *fakeStore) DeleteOne(_ context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteCalls++
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.profiles, uidOf(path))
	return nil
}

func (s *fakeStore) profile(uid string) (UserProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[uid]
	return p, ok
}

func (s *fakeStore) mergeCalls() []mergeCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]mergeCall(nil), s.merges...)
}

type fakeProvider struct {
	current *Identity
	next    *Identity
	saved   *Identity

	signUpErr  error
	signInErr  error
	deleteErr  error
	signOutErr error
	restoreErr error

	signUpCalls  int
	deleteCalls  int
	signOutCalls int
}

func (p *fakeProvider) SignUp(_ context.Context, email, _ string) (*Identity, error) {
	p.signUpCalls++
	if p.signUpErr != nil {
		return nil, p.signUpErr
	}
	id := p.next
	if id == nil {
		id = &Identity{UID: "new-uid", Email: email}
	}
	p.current = id
	return id, nil
}

func (p *fakeProvider) SignIn(_ context.Context, _, _ string) (*Identity, error) {
	if p.signInErr != nil {
		return nil, p.signInErr
	}
	p.current = p.next
	return p.next, nil
}

func (p *fakeProvider) SignOut(context.Context) error {
	p.signOutCalls++
	p.current = nil
	return p.signOutErr
}

func (p *fakeProvider) DeleteAccount(context.Context, *Identity) error {
	p.deleteCalls++
	if p.deleteErr != nil {
		return p.deleteErr
	}
	p.current = nil
	return nil
}

func (p *fakeProvider) Restore(context.Context) (*Identity, error) {
	if p.restoreErr != nil {
		return nil, p.restoreErr
	}
	p.current = p.saved
	return p.saved, nil
}

func (p *fakeProvider) CurrentIdentity() *Identity { return p.current }
