package services

import (
	"context"
	"database/sql"
	"sort"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/dbx"
	"github.com/dmitrijs2005/userdir/internal/server/models"
	"github.com/dmitrijs2005/userdir/internal/server/repositories/identities"
	"github.com/dmitrijs2005/userdir/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/userdir/internal/server/repositories/refreshtokens"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

type fakeIdentitiesRepo struct {
	byID      map[string]*models.Identity
	createErr error
	getErr    error
	touchErr  error
	deleteErr error
}

func newFakeIdentitiesRepo() *fakeIdentitiesRepo {
	return &fakeIdentitiesRepo{byID: map[string]*models.Identity{}}
}

func (f *fakeIdentitiesRepo) Create(_ context.Context, i *models.Identity) (*models.Identity, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	for _, existing := range f.byID {
		if existing.Email == i.Email {
			return nil, common.ErrEmailInUse
		}
	}
	now := time.Now()
	i.CreatedAt, i.LastSignInAt = now, now
	cp := *i
	f.byID[i.ID] = &cp
	return i, nil
}

func (f *fakeIdentitiesRepo) GetByEmail(_ context.Context, email string) (*models.Identity, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, i := range f.byID {
		if i.Email == email {
			cp := *i
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeIdentitiesRepo) GetByID(_ context.Context, id string) (*models.Identity, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	i, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *i
	return &cp, nil
}

func (f *fakeIdentitiesRepo) TouchLastSignIn(_ context.Context, id string) (*models.Identity, error) {
	if f.touchErr != nil {
		return nil, f.touchErr
	}
	i, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	i.LastSignInAt = time.Now()
	cp := *i
	return &cp, nil
}

func (f *fakeIdentitiesRepo) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeRefreshRepo struct {
	tokens    map[string]*models.RefreshToken
	findErr   error
	delErr    error
	createErr error
	// stolen makes Revoke report that a concurrent rotation got there first.
	stolen bool
}

func newFakeRefreshRepo() *fakeRefreshRepo {
	return &fakeRefreshRepo{tokens: map[string]*models.RefreshToken{}}
}

func (f *fakeRefreshRepo) Issue(_ context.Context, identityID, token string, expiresAt time.Time) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.tokens[token] = &models.RefreshToken{IdentityID: identityID, Token: token, Expires: expiresAt}
	return nil
}

func (f *fakeRefreshRepo) Lookup(_ context.Context, token string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	t, ok := f.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return t, nil
}

func (f *fakeRefreshRepo) Revoke(_ context.Context, token string) (bool, error) {
	if f.delErr != nil {
		return false, f.delErr
	}
	if f.stolen {
		return false, nil
	}
	_, ok := f.tokens[token]
	delete(f.tokens, token)
	return ok, nil
}

func (f *fakeRefreshRepo) RevokeAll(_ context.Context, identityID string) (int64, error) {
	if f.delErr != nil {
		return 0, f.delErr
	}
	var n int64
	for tok, rt := range f.tokens {
		if rt.IdentityID == identityID {
			delete(f.tokens, tok)
			n++
		}
	}
	return n, nil
}

type fakeProfilesRepo struct {
	rows      map[string]models.Profile
	upsertErr error
	listErr   error
	upserts   int
}

func newFakeProfilesRepo(ps ...models.Profile) *fakeProfilesRepo {
	f := &fakeProfilesRepo{rows: map[string]models.Profile{}}
	for _, p := range ps {
		f.rows[p.UID] = p
	}
	return f
}

func (f *fakeProfilesRepo) List(context.Context) ([]models.Profile, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Profile, 0, len(f.rows))
	for _, p := range f.rows {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UID < out[j].UID })
	return out, nil
}

func (f *fakeProfilesRepo) Get(_ context.Context, uid string) (*models.Profile, error) {
	p, ok := f.rows[uid]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &p, nil
}

func (f *fakeProfilesRepo) GetForUpdate(ctx context.Context, uid string) (*models.Profile, error) {
	return f.Get(ctx, uid)
}

func (f *fakeProfilesRepo) Upsert(_ context.Context, p *models.Profile) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserts++
	f.rows[p.UID] = *p
	return nil
}

func (f *fakeProfilesRepo) Delete(_ context.Context, uid string) (bool, error) {
	_, ok := f.rows[uid]
	delete(f.rows, uid)
	return ok, nil
}

func (f *fakeProfilesRepo) ListOrphans(context.Context) ([]models.Profile, error) {
	return nil, nil
}

type fakeRepoManager struct {
	ids *fakeIdentitiesRepo
	rt  *fakeRefreshRepo
	pr  *fakeProfilesRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{ids: newFakeIdentitiesRepo(), rt: newFakeRefreshRepo(), pr: newFakeProfilesRepo()}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error    { return nil }
func (m *fakeRepoManager) Identities(dbx.DBTX) identities.Repository       { return m.ids }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return m.rt }
func (m *fakeRepoManager) Profiles(dbx.DBTX) profiles.Repository           { return m.pr }

type fakePublisher struct {
	calls int
	err   error
}

func (p *fakePublisher) Publish(context.Context) error {
	p.calls++
	return p.err
}
