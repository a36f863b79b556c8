package grpc

import (
	"context"
	"net"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"

	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/logging"
	"github.com/dmitrijs2005/userdir/internal/rpc"
	"github.com/dmitrijs2005/userdir/internal/server/auth"
	"github.com/dmitrijs2005/userdir/internal/server/broker"
	"github.com/dmitrijs2005/userdir/internal/server/models"
	"github.com/dmitrijs2005/userdir/internal/server/services"
)

const testSecret = "test-secret"

type fakeIdentities struct {
	result     *services.AuthResult
	err        error
	deletedUID string
	signedOut  string
}

func (f *fakeIdentities) SignUp(context.Context, string, string) (*services.AuthResult, error) {
	return f.result, f.err
}

func (f *fakeIdentities) SignIn(context.Context, string, string) (*services.AuthResult, error) {
	return f.result, f.err
}

func (f *fakeIdentities) RefreshToken(context.Context, string) (*services.AuthResult, error) {
	return f.result, f.err
}

func (f *fakeIdentities) SignOut(_ context.Context, token string) error {
	f.signedOut = token
	return f.err
}

func (f *fakeIdentities) DeleteAccount(_ context.Context, uid string) error {
	f.deletedUID = uid
	return f.err
}

// fakeDirectory is an in-memory DirectoryService publishing to a Hub.
type fakeDirectory struct {
	mu   sync.Mutex
	rows map[string]models.Profile
	hub  *broker.Hub
	err  error
}

func newFakeDirectory(ps ...models.Profile) *fakeDirectory {
	d := &fakeDirectory{rows: map[string]models.Profile{}, hub: broker.NewHub()}
	for _, p := range ps {
		d.rows[p.UID] = p
	}
	return d
}

func (d *fakeDirectory) Snapshot(context.Context) ([]models.Profile, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return nil, d.err
	}
	out := make([]models.Profile, 0, len(d.rows))
	for _, p := range d.rows {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UID < out[j].UID })
	return out, nil
}

func (d *fakeDirectory) Get(_ context.Context, uid string) (*models.Profile, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return nil, d.err
	}
	p, ok := d.rows[uid]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &p, nil
}

func (d *fakeDirectory) Set(ctx context.Context, p *models.Profile) error {
	d.mu.Lock()
	if d.err != nil {
		d.mu.Unlock()
		return d.err
	}
	d.rows[p.UID] = *p
	d.mu.Unlock()
	return d.hub.Publish(ctx)
}

func (d *fakeDirectory) Merge(ctx context.Context, uid string, fields map[string]string) (bool, error) {
	d.mu.Lock()
	if d.err != nil {
		d.mu.Unlock()
		return false, d.err
	}
	p, ok := d.rows[uid]
	if !ok {
		d.mu.Unlock()
		return false, common.ErrorNotFound
	}
	if s, ok := fields["status"]; ok {
		p.Status = s
	}
	if s, ok := fields["userName"]; ok {
		p.UserName = s
	}
	d.rows[uid] = p
	d.mu.Unlock()
	return true, d.hub.Publish(ctx)
}

func (d *fakeDirectory) Delete(ctx context.Context, uid string) error {
	d.mu.Lock()
	delete(d.rows, uid)
	d.mu.Unlock()
	return d.hub.Publish(ctx)
}

func (d *fakeDirectory) status(uid string) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rows[uid].Status
}

func newTestServer(ids IdentityService, dir *fakeDirectory, opts ...Option) *GRPCServer {
	return NewGRPCServer("127.0.0.1:0", logging.Discard(), ids, dir, dir.hub, testSecret, opts...)
}

// startBufconn serves s over an in-memory listener and returns a client.
func startBufconn(t *testing.T, s *GRPCServer) rpc.DirectoryClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = s.Serve(ctx, lis)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return rpc.NewDirectoryClient(conn)
}

func withToken(t *testing.T, uid string, ttl time.Duration) context.Context {
	t.Helper()
	token, err := auth.GenerateToken(uid, []byte(testSecret), ttl)
	require.NoError(t, err)
	return metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, token)
}
