package client

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/dmitrijs2005/userdir/internal/client/directory"
	"github.com/dmitrijs2005/userdir/internal/client/repositories/session"
	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/logging"
	"github.com/dmitrijs2005/userdir/internal/rpc"
)

/*************
 * Fake rpc client
 *************/

type fakeRPC struct {
	rpc.DirectoryClient

	authResp *rpc.AuthResponse
	authErr  error

	lastCreds   *rpc.CredentialsRequest
	lastRefresh *rpc.RefreshTokenRequest
	lastSignOut *rpc.SignOutRequest
	lastSet     *rpc.SetOneRequest
	lastMerge   *rpc.MergeWriteRequest

	signOutErr error
	deleteErr  error
	deletes    int

	readResp *rpc.ReadOneResponse
	callErr  error
	pingResp *rpc.PingResponse
}

func (f *fakeRPC) SignUp(_ context.Context, in *rpc.CredentialsRequest, _ ...grpc.CallOption) (*rpc.AuthResponse, error) {
	f.lastCreds = in
	return f.authResp, f.authErr
}

func (f *fakeRPC) SignIn(_ context.Context, in *rpc.CredentialsRequest, _ ...grpc.CallOption) (*rpc.AuthResponse, error) {
	f.lastCreds = in
	return f.authResp, f.authErr
}

func (f *fakeRPC) RefreshToken(_ context.Context, in *rpc.RefreshTokenRequest, _ ...grpc.CallOption) (*rpc.AuthResponse, error) {
	f.lastRefresh = in
	return f.authResp, f.authErr
}

func (f *fakeRPC) SignOut(_ context.Context, in *rpc.SignOutRequest, _ ...grpc.CallOption) (*emptypb.Empty, error) {
	f.lastSignOut = in
	return &emptypb.Empty{}, f.signOutErr
}

func (f *fakeRPC) DeleteAccount(context.Context, *emptypb.Empty, ...grpc.CallOption) (*emptypb.Empty, error) {
	f.deletes++
	return &emptypb.Empty{}, f.deleteErr
}

func (f *fakeRPC) Ping(context.Context, *emptypb.Empty, ...grpc.CallOption) (*rpc.PingResponse, error) {
	return f.pingResp, f.callErr
}

func (f *fakeRPC) ReadOne(context.Context, *rpc.PathRequest, ...grpc.CallOption) (*rpc.ReadOneResponse, error) {
	return f.readResp, f.callErr
}

func (f *fakeRPC) SetOne(_ context.Context, in *rpc.SetOneRequest, _ ...grpc.CallOption) (*emptypb.Empty, error) {
	f.lastSet = in
	return &emptypb.Empty{}, f.callErr
}

func (f *fakeRPC) MergeWrite(_ context.Context, in *rpc.MergeWriteRequest, _ ...grpc.CallOption) (*emptypb.Empty, error) {
	f.lastMerge = in
	return &emptypb.Empty{}, f.callErr
}

type memSessions struct {
	mu sync.Mutex
	kv map[string][]byte
}

func newMemSessions() *memSessions { return &memSessions{kv: map[string][]byte{}} }

func (m *memSessions) Get(_ context.Context, k string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.kv[k], nil
}

func (m *memSessions) Set(_ context.Context, k string, v []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.kv[k] = v
	return nil
}

func (m *memSessions) Delete(_ context.Context, k string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.kv, k)
	return nil
}

func (m *memSessions) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.kv = map[string][]byte{}
	return nil
}

func newFakeClient(f *fakeRPC, sessions session.Repository) *GRPCClient {
	return &GRPCClient{client: f, sessions: sessions, logger: logging.Discard()}
}

func authResp(uid, access, refresh string) *rpc.AuthResponse {
	return &rpc.AuthResponse{
		Identity: &rpc.Identity{
			Uid:            uid,
			Email:          uid + "@x.io",
			CreationTime:   timestamppb.New(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
			LastSignInTime: timestamppb.New(time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)),
		},
		AccessToken:  access,
		RefreshToken: refresh,
	}
}

func TestSignIn_StoresSession(t *testing.T) {
	f := &fakeRPC{authResp: authResp("u1", "a1", "r1")}
	sessions := newMemSessions()
	c := newFakeClient(f, sessions)

	id, err := c.SignIn(context.Background(), "u1@x.io", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "u1", id.UID)
	assert.Equal(t, time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC), id.Metadata.LastSignInTime)
	assert.Equal(t, "u1@x.io", f.lastCreds.GetEmail())
	assert.Equal(t, "secret1", f.lastCreds.GetPassword())

	access, refresh := c.tokens()
	assert.Equal(t, "a1", access)
	assert.Equal(t, "r1", refresh)
	assert.Equal(t, []byte("r1"), sessions.kv[session.KeyRefreshToken])
	assert.Equal(t, "u1", c.CurrentIdentity().UID)
}

func TestSignUp_CredentialErrors(t *testing.T) {
	tests := []struct {
		code codes.Code
		msg  string
	}{
		{codes.AlreadyExists, "email already in use"},
		{codes.InvalidArgument, "password should be at least 6 characters"},
		{codes.Unauthenticated, "invalid email or password"},
		{codes.ResourceExhausted, "too many attempts, try again later"},
	}
	for _, tt := range tests {
		f := &fakeRPC{authErr: status.Error(tt.code, tt.msg)}
		c := newFakeClient(f, nil)

		_, err := c.SignUp(context.Background(), "neo@x.io", "123")
		var ce *directory.CredentialError
		require.ErrorAs(t, err, &ce, tt.msg)
		assert.Equal(t, tt.msg, ce.Message)
		assert.Nil(t, c.CurrentIdentity())
	}

	c := newFakeClient(&fakeRPC{authErr: status.Error(codes.Unavailable, "down")}, nil)
	_, err := c.SignIn(context.Background(), "neo@x.io", "secret1")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestSignOut_ClearsEvenWhenRevokeFails(t *testing.T) {
	f := &fakeRPC{authResp: authResp("u1", "a1", "r1"), signOutErr: status.Error(codes.Unavailable, "down")}
	sessions := newMemSessions()
	c := newFakeClient(f, sessions)
	_, err := c.SignIn(context.Background(), "u1@x.io", "secret1")
	require.NoError(t, err)

	require.NoError(t, c.SignOut(context.Background()))
	assert.Equal(t, "r1", f.lastSignOut.RefreshToken)
	assert.Nil(t, c.CurrentIdentity())
	access, refresh := c.tokens()
	assert.Empty(t, access)
	assert.Empty(t, refresh)
	assert.NotContains(t, sessions.kv, session.KeyRefreshToken)
}

func TestDeleteAccount(t *testing.T) {
	f := &fakeRPC{authResp: authResp("u1", "a1", "r1")}
	sessions := newMemSessions()
	c := newFakeClient(f, sessions)
	id, err := c.SignIn(context.Background(), "u1@x.io", "secret1")
	require.NoError(t, err)

	assert.ErrorIs(t, c.DeleteAccount(context.Background(), &directory.Identity{UID: "other"}), directory.ErrNoSession)
	assert.Zero(t, f.deletes)

	f.deleteErr = status.Error(codes.Internal, "boom")
	require.Error(t, c.DeleteAccount(context.Background(), id))
	assert.NotNil(t, c.CurrentIdentity())

	f.deleteErr = nil
	require.NoError(t, c.DeleteAccount(context.Background(), id))
	assert.Nil(t, c.CurrentIdentity())
	access, refresh := c.tokens()
	assert.Equal(t, "a1", access, "access token stays for the profile delete")
	assert.Empty(t, refresh)
	assert.NotContains(t, sessions.kv, session.KeyRefreshToken)
}

func TestRestore(t *testing.T) {
	t.Run("nothing persisted", func(t *testing.T) {
		c := newFakeClient(&fakeRPC{}, newMemSessions())
		id, err := c.Restore(context.Background())
		require.NoError(t, err)
		assert.Nil(t, id)
	})

	t.Run("valid token", func(t *testing.T) {
		sessions := newMemSessions()
		sessions.kv[session.KeyRefreshToken] = []byte("r0")
		f := &fakeRPC{authResp: authResp("u1", "a1", "r1")}
		c := newFakeClient(f, sessions)

		id, err := c.Restore(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "u1", id.UID)
		assert.Equal(t, "r0", f.lastRefresh.RefreshToken)
		assert.Equal(t, []byte("r1"), sessions.kv[session.KeyRefreshToken])
	})

	t.Run("rejected token is dropped", func(t *testing.T) {
		sessions := newMemSessions()
		sessions.kv[session.KeyRefreshToken] = []byte("r0")
		c := newFakeClient(&fakeRPC{authErr: status.Error(codes.Unauthenticated, "refresh token expired")}, sessions)

		id, err := c.Restore(context.Background())
		require.NoError(t, err)
		assert.Nil(t, id)
		assert.NotContains(t, sessions.kv, session.KeyRefreshToken)
	})

	t.Run("server down keeps token", func(t *testing.T) {
		sessions := newMemSessions()
		sessions.kv[session.KeyRefreshToken] = []byte("r0")
		c := newFakeClient(&fakeRPC{authErr: status.Error(codes.Unavailable, "down")}, sessions)

		_, err := c.Restore(context.Background())
		assert.ErrorIs(t, err, ErrUnavailable)
		assert.Contains(t, sessions.kv, session.KeyRefreshToken)
	})
}

func TestStoreCalls(t *testing.T) {
	f := &fakeRPC{readResp: &rpc.ReadOneResponse{Exists: true, Profile: &rpc.Profile{Uid: "u1", Status: "blocked"}}}
	c := newFakeClient(f, nil)
	ctx := context.Background()

	p, ok, err := c.ReadOne(ctx, rpc.ProfilePath("u1"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, directory.StatusBlocked, p.Status)

	f.readResp = &rpc.ReadOneResponse{}
	_, ok, err = c.ReadOne(ctx, rpc.ProfilePath("u1"))
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.SetOne(ctx, rpc.ProfilePath("u1"), directory.UserProfile{UID: "u1", UserName: "neo", Status: directory.StatusActive}))
	assert.Equal(t, "active", f.lastSet.Profile.Status)
	assert.Equal(t, "neo", f.lastSet.Profile.UserName)

	require.NoError(t, c.MergeWrite(ctx, rpc.ProfilePath("u1"), map[string]string{"status": "blocked"}))
	assert.Equal(t, map[string]string{"status": "blocked"}, f.lastMerge.Fields)

	f.callErr = status.Error(codes.NotFound, "not found")
	assert.ErrorIs(t, c.MergeWrite(ctx, rpc.ProfilePath("u1"), nil), common.ErrorNotFound)
}

func TestPing(t *testing.T) {
	c := newFakeClient(&fakeRPC{pingResp: &rpc.PingResponse{Status: "OK"}}, nil)
	require.NoError(t, c.Ping(context.Background()))

	c = newFakeClient(&fakeRPC{pingResp: &rpc.PingResponse{Status: "degraded"}}, nil)
	assert.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)

	c = newFakeClient(&fakeRPC{callErr: status.Error(codes.Unavailable, "x")}, nil)
	assert.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

func TestMapError(t *testing.T) {
	assert.NoError(t, mapError(nil))
	assert.ErrorIs(t, mapError(status.Error(codes.Unauthenticated, "x")), ErrUnauthorized)
	assert.ErrorIs(t, mapError(status.Error(codes.PermissionDenied, "x")), ErrUnauthorized)
	assert.ErrorIs(t, mapError(status.Error(codes.DeadlineExceeded, "x")), ErrUnavailable)
	plain := errors.New("plain")
	assert.Same(t, plain, mapError(plain))
	assert.ErrorContains(t, mapError(status.Error(codes.Internal, "boom")), "rpc error")
}

/*************
 * Interceptors over bufconn
 *************/

// tokenServer accepts only access token "new" and rotates "r1" into it.
type tokenServer struct {
	rpc.UnimplementedDirectoryServer

	mu        sync.Mutex
	refreshes int
	watches   int
}

func tokenFrom(ctx context.Context) string {
	md, _ := metadata.FromIncomingContext(ctx)
	if v := md.Get(common.AccessTokenHeaderName); len(v) > 0 {
		return v[0]
	}
	return ""
}

func (s *tokenServer) RefreshToken(_ context.Context, in *rpc.RefreshTokenRequest) (*rpc.AuthResponse, error) {
	s.mu.Lock()
	s.refreshes++
	s.mu.Unlock()
	if in.RefreshToken != "r1" {
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}
	return authResp("u1", "new", "r2"), nil
}

func (s *tokenServer) ReadOne(ctx context.Context, in *rpc.PathRequest) (*rpc.ReadOneResponse, error) {
	if tokenFrom(ctx) != "new" {
		return nil, status.Error(codes.Unauthenticated, "token expired")
	}
	return &rpc.ReadOneResponse{Exists: true, Profile: &rpc.Profile{Uid: "u1", Status: "active"}}, nil
}

func (s *tokenServer) Watch(in *rpc.PathRequest, stream rpc.Directory_WatchServer) error {
	s.mu.Lock()
	s.watches++
	s.mu.Unlock()
	if tokenFrom(stream.Context()) != "new" {
		return status.Error(codes.Unauthenticated, "token expired")
	}
	snap := &rpc.Snapshot{Exists: true, Profiles: map[string]*rpc.Profile{"u1": {Uid: "u1", Status: "active"}}}
	if err := stream.Send(snap); err != nil {
		return err
	}
	<-stream.Context().Done()
	return nil
}

func startTokenServer(t *testing.T) (*GRPCClient, *tokenServer) {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	ts := &tokenServer{}
	rpc.RegisterDirectoryServer(srv, ts)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	c, err := NewGRPCClient("passthrough:///bufnet", newMemSessions(), logging.Discard(),
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	c.accessToken, c.refreshToken = "old", "r1"
	return c, ts
}

func TestInterceptor_RefreshesAndRetries(t *testing.T) {
	c, ts := startTokenServer(t)

	p, ok, err := c.ReadOne(context.Background(), rpc.ProfilePath("u1"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "u1", p.UID)
	assert.Equal(t, 1, ts.refreshes)

	access, refresh := c.tokens()
	assert.Equal(t, "new", access)
	assert.Equal(t, "r2", refresh)

	_, _, err = c.ReadOne(context.Background(), rpc.ProfilePath("u1"))
	require.NoError(t, err)
	assert.Equal(t, 1, ts.refreshes, "fresh token needs no refresh")
}

func TestInterceptor_NoRefreshTokenGivesUp(t *testing.T) {
	c, ts := startTokenServer(t)
	c.refreshToken = ""

	_, _, err := c.ReadOne(context.Background(), rpc.ProfilePath("u1"))
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Zero(t, ts.refreshes)
}

func TestSubscribe_ReopensAfterRefresh(t *testing.T) {
	c, ts := startTokenServer(t)

	got := make(chan directory.Snapshot, 4)
	sub, err := c.Subscribe(context.Background(), rpc.CollectionPath, func(s directory.Snapshot) { got <- s })
	require.NoError(t, err)

	select {
	case s := <-got:
		assert.True(t, s.Exists)
		assert.Equal(t, directory.StatusActive, s.Profiles["u1"].Status)
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot delivered")
	}

	ts.mu.Lock()
	assert.Equal(t, 2, ts.watches)
	assert.Equal(t, 1, ts.refreshes)
	ts.mu.Unlock()

	sub.Unsubscribe()
	select {
	case <-sub.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("subscription did not end")
	}
	assert.NoError(t, sub.Err())
}

func TestSubscribe_EndsWithErrorWhenRefreshFails(t *testing.T) {
	c, _ := startTokenServer(t)
	c.refreshToken = "stale"

	sub, err := c.Subscribe(context.Background(), rpc.CollectionPath, func(directory.Snapshot) {
		t.Error("no snapshot expected")
	})
	require.NoError(t, err)

	select {
	case <-sub.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("subscription did not end")
	}
	assert.Error(t, sub.Err())
}
