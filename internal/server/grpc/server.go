package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/dmitrijs2005/userdir/internal/logging"
	"github.com/dmitrijs2005/userdir/internal/rpc"
	"github.com/dmitrijs2005/userdir/internal/server/broker"
	"github.com/dmitrijs2005/userdir/internal/server/metrics"
	"github.com/dmitrijs2005/userdir/internal/server/models"
	"github.com/dmitrijs2005/userdir/internal/server/ratelimit"
	"github.com/dmitrijs2005/userdir/internal/server/services"
)

// IdentityService is the account backend, satisfied by *services.IdentityService.
type IdentityService interface {
	SignUp(ctx context.Context, email, password string) (*services.AuthResult, error)
	SignIn(ctx context.Context, email, password string) (*services.AuthResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.AuthResult, error)
	SignOut(ctx context.Context, refreshToken string) error
	DeleteAccount(ctx context.Context, uid string) error
}

// DirectoryService is the profile backend, satisfied by *services.DirectoryService.
type DirectoryService interface {
	Snapshot(ctx context.Context) ([]models.Profile, error)
	Get(ctx context.Context, uid string) (*models.Profile, error)
	Set(ctx context.Context, p *models.Profile) error
	Merge(ctx context.Context, uid string, fields map[string]string) (bool, error)
	Delete(ctx context.Context, uid string) error
}

type GRPCServer struct {
	rpc.UnimplementedDirectoryServer
	address    string
	identities IdentityService
	directory  DirectoryService
	notifier   broker.Notifier
	limiter    *ratelimit.LimiterStore
	metrics    *metrics.Registry
	logger     logging.Logger
	jwtSecret  []byte
}

type Option func(*GRPCServer)

// WithRateLimiter throttles SignUp and SignIn per peer.
func WithRateLimiter(l *ratelimit.LimiterStore) Option {
	return func(s *GRPCServer) { s.limiter = l }
}

func WithMetrics(m *metrics.Registry) Option {
	return func(s *GRPCServer) { s.metrics = m }
}

func NewGRPCServer(a string, l logging.Logger, ids IdentityService, dir DirectoryService, n broker.Notifier, secretKey string, opts ...Option) *GRPCServer {
	s := &GRPCServer{
		address:    a,
		logger:     l.With("module", "grpc_server"),
		identities: ids,
		directory:  dir,
		notifier:   n,
		jwtSecret:  []byte(secretKey),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *GRPCServer) newServer() *grpc.Server {
	unary := []grpc.UnaryServerInterceptor{}
	if s.limiter != nil {
		unary = append(unary, ratelimit.UnaryInterceptor(s.limiter, rpc.Directory_SignUp_FullMethodName, rpc.Directory_SignIn_FullMethodName))
	}
	unary = append(unary, s.accessTokenInterceptor)

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(unary...),
		grpc.ChainStreamInterceptor(s.streamAccessTokenInterceptor),
	)
	rpc.RegisterDirectoryServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve serves on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	return srv.Serve(lis)
}
