package grpc

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/rpc"
	"github.com/dmitrijs2005/userdir/internal/server/models"
	"github.com/dmitrijs2005/userdir/internal/server/services"
)

func (s *GRPCServer) SignUp(ctx context.Context, req *rpc.CredentialsRequest) (*rpc.AuthResponse, error) {
	res, err := s.identities.SignUp(ctx, req.Email, req.Password)
	err = s.toStatus(ctx, err)
	s.observeAuth("SignUp", err)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "Registered", "uid", res.Identity.ID)
	return toAuthResponse(res), nil
}

func (s *GRPCServer) SignIn(ctx context.Context, req *rpc.CredentialsRequest) (*rpc.AuthResponse, error) {
	res, err := s.identities.SignIn(ctx, req.Email, req.Password)
	err = s.toStatus(ctx, err)
	s.observeAuth("SignIn", err)
	if err != nil {
		return nil, err
	}
	return toAuthResponse(res), nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *rpc.RefreshTokenRequest) (*rpc.AuthResponse, error) {
	res, err := s.identities.RefreshToken(ctx, req.RefreshToken)
	err = s.toStatus(ctx, err)
	s.observeAuth("RefreshToken", err)
	if err != nil {
		return nil, err
	}
	return toAuthResponse(res), nil
}

func (s *GRPCServer) SignOut(ctx context.Context, req *rpc.SignOutRequest) (*emptypb.Empty, error) {
	if err := s.identities.SignOut(ctx, req.RefreshToken); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) DeleteAccount(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	uid, ok := UserIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	err := s.toStatus(ctx, s.identities.DeleteAccount(ctx, uid))
	s.observeAuth("DeleteAccount", err)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "Account deleted", "uid", uid)
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *emptypb.Empty) (*rpc.PingResponse, error) {
	return &rpc.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) ReadOne(ctx context.Context, req *rpc.PathRequest) (*rpc.ReadOneResponse, error) {
	uid, err := rpc.ParseProfilePath(req.Path)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	p, err := s.directory.Get(ctx, uid)
	if errors.Is(err, common.ErrorNotFound) {
		return &rpc.ReadOneResponse{}, nil
	}
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &rpc.ReadOneResponse{Exists: true, Profile: toRPCProfile(*p)}, nil
}

func (s *GRPCServer) SetOne(ctx context.Context, req *rpc.SetOneRequest) (*emptypb.Empty, error) {
	uid, err := rpc.ParseProfilePath(req.Path)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	p := fromRPCProfile(req.Profile)
	p.UID = uid
	err = s.directory.Set(ctx, &p)
	s.observeWrite("set", err)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) MergeWrite(ctx context.Context, req *rpc.MergeWriteRequest) (*emptypb.Empty, error) {
	uid, err := rpc.ParseProfilePath(req.Path)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	_, err = s.directory.Merge(ctx, uid, req.Fields)
	s.observeWrite("merge", err)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) DeleteOne(ctx context.Context, req *rpc.PathRequest) (*emptypb.Empty, error) {
	uid, err := rpc.ParseProfilePath(req.Path)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	err = s.directory.Delete(ctx, uid)
	s.observeWrite("delete", err)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

// Watch sends the whole directory right away and again after every change
// until the client goes away.
func (s *GRPCServer) Watch(req *rpc.PathRequest, stream rpc.Directory_WatchServer) error {
	ctx := stream.Context()
	if req.Path != rpc.CollectionPath {
		return status.Errorf(codes.InvalidArgument, "%v: %q", common.ErrInvalidPath, req.Path)
	}

	signals, cancel := s.notifier.Subscribe()
	defer cancel()

	if s.metrics != nil {
		s.metrics.Watchers.Inc()
		defer s.metrics.Watchers.Dec()
	}

	for {
		snap, err := s.snapshot(ctx)
		if err != nil {
			return s.toStatus(ctx, err)
		}
		if err := stream.Send(snap); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-signals:
		}
	}
}

func (s *GRPCServer) snapshot(ctx context.Context) (*rpc.Snapshot, error) {
	ps, err := s.directory.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	snap := &rpc.Snapshot{Exists: len(ps) > 0}
	if snap.Exists {
		snap.Profiles = make(map[string]*rpc.Profile, len(ps))
		for _, p := range ps {
			snap.Profiles[p.UID] = toRPCProfile(p)
		}
	}
	return snap, nil
}

func (s *GRPCServer) observeAuth(method string, err error) {
	if s.metrics != nil {
		s.metrics.ObserveAuth(method, err)
	}
}

func (s *GRPCServer) observeWrite(op string, err error) {
	if s.metrics != nil {
		s.metrics.ObserveWrite(op, err)
	}
}

func toAuthResponse(res *services.AuthResult) *rpc.AuthResponse {
	return &rpc.AuthResponse{
		Identity: &rpc.Identity{
			Uid:            res.Identity.ID,
			Email:          res.Identity.Email,
			CreationTime:   toTimestamp(res.Identity.CreatedAt),
			LastSignInTime: toTimestamp(res.Identity.LastSignInAt),
		},
		AccessToken:  res.Tokens.AccessToken,
		RefreshToken: res.Tokens.RefreshToken,
	}
}

// toTimestamp leaves an unset time unset on the wire.
func toTimestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func toRPCProfile(p models.Profile) *rpc.Profile {
	return &rpc.Profile{
		Uid:              p.UID,
		UserName:         p.UserName,
		UserEmail:        p.UserEmail,
		RegistrationTime: p.RegistrationTime,
		LastSignInTime:   p.LastSignInTime,
		Status:           p.Status,
	}
}

func fromRPCProfile(p *rpc.Profile) models.Profile {
	return models.Profile{
		UID:              p.GetUid(),
		UserName:         p.GetUserName(),
		UserEmail:        p.GetUserEmail(),
		RegistrationTime: p.GetRegistrationTime(),
		LastSignInTime:   p.GetLastSignInTime(),
		Status:           p.GetStatus(),
	}
}
