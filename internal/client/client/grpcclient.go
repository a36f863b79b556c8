package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/dmitrijs2005/userdir/internal/client/directory"
	"github.com/dmitrijs2005/userdir/internal/client/repositories/session"
	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/logging"
	"github.com/dmitrijs2005/userdir/internal/rpc"
)

// GRPCClient talks to the userdir server. It is both the session provider
// and the directory store of the client library.
type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      rpc.DirectoryClient
	sessions    session.Repository
	logger      logging.Logger

	refreshMu sync.Mutex

	mu           sync.Mutex
	accessToken  string
	refreshToken string
	identity     *directory.Identity
}

var (
	_ directory.Store           = (*GRPCClient)(nil)
	_ directory.SessionProvider = (*GRPCClient)(nil)
)

// NewGRPCClient connects to endpointURL. sessions may be nil, in which case
// nothing survives a restart.
func NewGRPCClient(endpointURL string, sessions session.Repository, logger logging.Logger, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{
		endpointURL: endpointURL,
		sessions:    sessions,
		logger:      logger.With("module", "grpc_client"),
	}

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
		grpc.WithStreamInterceptor(c.streamAccessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = rpc.NewDirectoryClient(conn)
	return c, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)
	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) tokens() (access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

func isTokenExpired(err error) bool {
	if err == nil {
		return false
	}
	st, ok := status.FromError(err)
	return ok && st.Code() == codes.Unauthenticated && st.Message() == common.ErrTokenExpired.Error()
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	access, _ := s.tokens()
	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
	if !isTokenExpired(err) {
		return err
	}

	if err := s.refresh(ctx, access); err != nil {
		return err
	}

	access, _ = s.tokens()
	return invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
}

func (s *GRPCClient) streamAccessTokenInterceptor(
	ctx context.Context,
	desc *grpc.StreamDesc,
	cc *grpc.ClientConn,
	method string,
	streamer grpc.Streamer,
	opts ...grpc.CallOption,
) (grpc.ClientStream, error) {
	access, _ := s.tokens()
	return streamer(withAccessToken(ctx, access), desc, cc, method, opts...)
}

// refresh rotates the token pair unless another caller already did so
// since stale was read.
func (s *GRPCClient) refresh(ctx context.Context, stale string) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	access, refresh := s.tokens()
	if access != stale {
		return nil
	}
	if refresh == "" {
		return ErrUnauthorized
	}

	resp, err := s.client.RefreshToken(ctx, &rpc.RefreshTokenRequest{RefreshToken: refresh})
	if err != nil {
		return err
	}
	s.setSession(ctx, resp)
	return nil
}

func (s *GRPCClient) setSession(ctx context.Context, resp *rpc.AuthResponse) *directory.Identity {
	identity := toIdentity(resp.Identity)

	s.mu.Lock()
	s.accessToken = resp.AccessToken
	s.refreshToken = resp.RefreshToken
	s.identity = identity
	s.mu.Unlock()

	if s.sessions != nil {
		if err := s.sessions.Set(ctx, session.KeyRefreshToken, []byte(resp.RefreshToken)); err != nil {
			s.logger.Warn(ctx, "session not persisted", "error", err)
		}
	}
	return identity
}

func (s *GRPCClient) forget(ctx context.Context) {
	if s.sessions == nil {
		return
	}
	if err := s.sessions.Delete(ctx, session.KeyRefreshToken); err != nil {
		s.logger.Warn(ctx, "persisted session not cleared", "error", err)
	}
}

func (s *GRPCClient) SignUp(ctx context.Context, email, password string) (*directory.Identity, error) {
	resp, err := s.client.SignUp(ctx, &rpc.CredentialsRequest{Email: email, Password: password})
	if err != nil {
		return nil, mapCredentialError(err)
	}
	return s.setSession(ctx, resp), nil
}

func (s *GRPCClient) SignIn(ctx context.Context, email, password string) (*directory.Identity, error) {
	resp, err := s.client.SignIn(ctx, &rpc.CredentialsRequest{Email: email, Password: password})
	if err != nil {
		return nil, mapCredentialError(err)
	}
	return s.setSession(ctx, resp), nil
}

// SignOut revokes the refresh token on the server and forgets the local
// session. A failed revoke is logged; the local session ends regardless.
func (s *GRPCClient) SignOut(ctx context.Context) error {
	_, refresh := s.tokens()
	if refresh != "" {
		if _, err := s.client.SignOut(ctx, &rpc.SignOutRequest{RefreshToken: refresh}); err != nil {
			s.logger.Warn(ctx, "refresh token not revoked", "error", mapError(err))
		}
	}

	s.mu.Lock()
	s.accessToken, s.refreshToken, s.identity = "", "", nil
	s.mu.Unlock()
	s.forget(ctx)
	return nil
}

// DeleteAccount deletes the signed-in credential. The access token is kept
// until the next sign-in so the caller can still remove the profile.
func (s *GRPCClient) DeleteAccount(ctx context.Context, identity *directory.Identity) error {
	cur := s.CurrentIdentity()
	if identity == nil || cur == nil || cur.UID != identity.UID {
		return directory.ErrNoSession
	}

	if _, err := s.client.DeleteAccount(ctx, &emptypb.Empty{}); err != nil {
		return mapError(err)
	}

	s.mu.Lock()
	s.refreshToken, s.identity = "", nil
	s.mu.Unlock()
	s.forget(ctx)
	return nil
}

// Restore signs in again with the persisted refresh token. A token the
// server no longer accepts is discarded and reported as no session.
func (s *GRPCClient) Restore(ctx context.Context) (*directory.Identity, error) {
	if s.sessions == nil {
		return nil, nil
	}
	raw, err := s.sessions.Get(ctx, session.KeyRefreshToken)
	if err != nil || len(raw) == 0 {
		return nil, err
	}

	resp, err := s.client.RefreshToken(ctx, &rpc.RefreshTokenRequest{RefreshToken: string(raw)})
	if err != nil {
		err = mapError(err)
		if errors.Is(err, ErrUnauthorized) {
			s.forget(ctx)
			return nil, nil
		}
		return nil, err
	}
	return s.setSession(ctx, resp), nil
}

func (s *GRPCClient) CurrentIdentity() *directory.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return nil
	}
	cp := *s.identity
	return &cp
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &emptypb.Empty{})
	if err != nil {
		return mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) ReadOne(ctx context.Context, path string) (directory.UserProfile, bool, error) {
	resp, err := s.client.ReadOne(ctx, &rpc.PathRequest{Path: path})
	if err != nil {
		return directory.UserProfile{}, false, mapError(err)
	}
	if !resp.Exists || resp.Profile == nil {
		return directory.UserProfile{}, false, nil
	}
	return toProfile(resp.Profile), true, nil
}

func (s *GRPCClient) SetOne(ctx context.Context, path string, p directory.UserProfile) error {
	_, err := s.client.SetOne(ctx, &rpc.SetOneRequest{Path: path, Profile: fromProfile(p)})
	return mapError(err)
}

func (s *GRPCClient) MergeWrite(ctx context.Context, path string, fields map[string]string) error {
	_, err := s.client.MergeWrite(ctx, &rpc.MergeWriteRequest{Path: path, Fields: fields})
	return mapError(err)
}

func (s *GRPCClient) DeleteOne(ctx context.Context, path string) error {
	_, err := s.client.DeleteOne(ctx, &rpc.PathRequest{Path: path})
	return mapError(err)
}

type subscription struct {
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

func (w *subscription) Unsubscribe()          { w.cancel() }
func (w *subscription) Done() <-chan struct{} { return w.done }

func (w *subscription) Err() error {
	select {
	case <-w.done:
		return w.err
	default:
		return nil
	}
}

// Subscribe opens a Watch stream and feeds every snapshot to fn from a
// single goroutine. An expired access token is refreshed once per failure
// and the stream reopened.
func (s *GRPCClient) Subscribe(ctx context.Context, path string, fn func(directory.Snapshot)) (directory.Subscription, error) {
	ctx, cancel := context.WithCancel(ctx)

	access, _ := s.tokens()
	stream, err := s.client.Watch(ctx, &rpc.PathRequest{Path: path})
	if err != nil {
		cancel()
		return nil, mapError(err)
	}

	sub := &subscription{cancel: cancel, done: make(chan struct{})}
	go s.watch(ctx, path, access, stream, fn, sub)
	return sub, nil
}

func (s *GRPCClient) watch(ctx context.Context, path, access string, stream rpc.Directory_WatchClient, fn func(directory.Snapshot), sub *subscription) {
	defer close(sub.done)
	defer sub.cancel()

	retried := false
	for {
		snap, err := stream.Recv()
		if err == nil {
			retried = false
			fn(toSnapshot(snap))
			continue
		}
		if ctx.Err() != nil {
			return
		}

		if isTokenExpired(err) && !retried {
			retried = true
			if rerr := s.refresh(ctx, access); rerr == nil {
				access, _ = s.tokens()
				if stream, err = s.client.Watch(ctx, &rpc.PathRequest{Path: path}); err == nil {
					continue
				}
			} else {
				err = rerr
			}
		}

		if errors.Is(err, io.EOF) {
			sub.err = ErrUnavailable
		} else {
			sub.err = mapError(err)
		}
		s.logger.Warn(ctx, "directory watch ended", "error", sub.err)
		return
	}
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return fmt.Errorf("%w: %s", common.ErrorNotFound, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

// mapCredentialError turns rejections of SignUp and SignIn into
// CredentialErrors carrying the server's message.
func mapCredentialError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.InvalidArgument, codes.AlreadyExists, codes.Unauthenticated, codes.ResourceExhausted:
		return &directory.CredentialError{Message: st.Message()}
	}
	return mapError(err)
}
