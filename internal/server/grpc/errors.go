package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/userdir/internal/common"
)

// errorCodes maps service errors to status codes. Credential messages are
// shown to the user as is, so the sentinel text goes on the wire.
var errorCodes = []struct {
	err    error
	code   codes.Code
	detail bool
}{
	{err: common.ErrEmailInUse, code: codes.AlreadyExists},
	{err: common.ErrInvalidEmail, code: codes.InvalidArgument},
	{err: common.ErrWeakPassword, code: codes.InvalidArgument},
	{err: common.ErrInvalidCredentials, code: codes.Unauthenticated},
	{err: common.ErrRefreshTokenExpired, code: codes.Unauthenticated},
	{err: common.ErrTokenExpired, code: codes.Unauthenticated},
	{err: common.ErrInvalidToken, code: codes.Unauthenticated},
	{err: common.ErrorNotFound, code: codes.NotFound},
	{err: common.ErrInvalidPath, code: codes.InvalidArgument, detail: true},
	{err: common.ErrInvalidStatus, code: codes.InvalidArgument, detail: true},
	{err: common.ErrInvalidField, code: codes.InvalidArgument, detail: true},
	{err: context.Canceled, code: codes.Canceled},
	{err: context.DeadlineExceeded, code: codes.DeadlineExceeded},
}

func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	for _, e := range errorCodes {
		if errors.Is(err, e.err) {
			msg := e.err.Error()
			if e.detail {
				msg = err.Error()
			}
			return status.Error(e.code, msg)
		}
	}
	s.logger.Error(ctx, "request failed", "error", err)
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}
