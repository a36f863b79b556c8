package rpc

import (
	"context"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/dmitrijs2005/userdir/internal/common"
)

type echoServer struct {
	UnimplementedDirectoryServer
	lastFields map[string]string
	method     string
}

var signedUpAt = time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

func (s *echoServer) SignIn(_ context.Context, in *CredentialsRequest) (*AuthResponse, error) {
	return &AuthResponse{
		Identity: &Identity{
			Uid:          "u1",
			Email:        in.GetEmail(),
			CreationTime: timestamppb.New(signedUpAt),
		},
		AccessToken: "at-" + in.GetPassword(),
	}, nil
}

func (s *echoServer) MergeWrite(_ context.Context, in *MergeWriteRequest) (*emptypb.Empty, error) {
	s.lastFields = in.GetFields()
	return &emptypb.Empty{}, nil
}

func (s *echoServer) ReadOne(_ context.Context, in *PathRequest) (*ReadOneResponse, error) {
	uid, err := ParseProfilePath(in.GetPath())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return &ReadOneResponse{Exists: true, Profile: &Profile{Uid: uid, Status: "active"}}, nil
}

func (s *echoServer) Watch(in *PathRequest, stream Directory_WatchServer) error {
	for i, name := range []string{"a", "b"} {
		snap := &Snapshot{Exists: true, Profiles: map[string]*Profile{name: {Uid: name}}}
		if i == 0 {
			snap.Profiles["path"] = &Profile{Uid: in.GetPath()}
		}
		if err := stream.Send(snap); err != nil {
			return err
		}
	}
	return nil
}

func startServer(t *testing.T, srv DirectoryServer, opts ...grpc.ServerOption) DirectoryClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer(opts...)
	RegisterDirectoryServer(s, srv)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewDirectoryClient(conn)
}

func TestUnaryRoundTrip(t *testing.T) {
	srv := &echoServer{}
	c := startServer(t, srv)
	ctx := context.Background()

	resp, err := c.SignIn(ctx, &CredentialsRequest{Email: "a@b.c", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "u1", resp.GetIdentity().GetUid())
	assert.Equal(t, "a@b.c", resp.GetIdentity().GetEmail())
	assert.Equal(t, signedUpAt, resp.GetIdentity().GetCreationTime().AsTime())
	assert.Nil(t, resp.GetIdentity().GetLastSignInTime())
	assert.Equal(t, "at-secret", resp.GetAccessToken())

	_, err = c.MergeWrite(ctx, &MergeWriteRequest{
		Path:   ProfilePath("u1"),
		Fields: map[string]string{"registrationTime": "x", "lastSignInTime": "y"},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"registrationTime": "x", "lastSignInTime": "y"}, srv.lastFields)

	one, err := c.ReadOne(ctx, &PathRequest{Path: ProfilePath("u9")})
	require.NoError(t, err)
	require.NotNil(t, one.GetProfile())
	assert.Equal(t, "u9", one.GetProfile().GetUid())

	_, err = c.ReadOne(ctx, &PathRequest{Path: CollectionPath})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestUnimplemented(t *testing.T) {
	c := startServer(t, &echoServer{})

	_, err := c.Ping(context.Background(), &emptypb.Empty{})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestInterceptorSeesFullMethod(t *testing.T) {
	var seen string
	icpt := func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		seen = info.FullMethod
		return handler(ctx, req)
	}
	c := startServer(t, &echoServer{}, grpc.UnaryInterceptor(icpt))

	_, err := c.SignIn(context.Background(), &CredentialsRequest{Email: "x@y.z"})
	require.NoError(t, err)
	assert.Equal(t, Directory_SignIn_FullMethodName, seen)
}

func TestWatchStream(t *testing.T) {
	c := startServer(t, &echoServer{})

	stream, err := c.Watch(context.Background(), &PathRequest{Path: CollectionPath})
	require.NoError(t, err)

	first, err := stream.Recv()
	require.NoError(t, err)
	assert.Contains(t, first.GetProfiles(), "a")
	assert.Equal(t, CollectionPath, first.GetProfiles()["path"].GetUid())

	second, err := stream.Recv()
	require.NoError(t, err)
	assert.Contains(t, second.GetProfiles(), "b")

	_, err = stream.Recv()
	assert.ErrorIs(t, err, io.EOF)
}

func TestWireFormatIsProtobuf(t *testing.T) {
	in := &MergeWriteRequest{
		Path:   ProfilePath("u1"),
		Fields: map[string]string{"status": "blocked"},
	}
	data, err := proto.Marshal(in)
	require.NoError(t, err)

	out := &MergeWriteRequest{}
	require.NoError(t, proto.Unmarshal(data, out))
	assert.True(t, proto.Equal(in, out))

	// an empty snapshot and a snapshot without profiles encode the same
	data, err = proto.Marshal(&Snapshot{Exists: false, Profiles: map[string]*Profile{}})
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestParseProfilePath(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{path: "usersList/u1", want: "u1"},
		{path: "usersList", wantErr: true},
		{path: "usersList/", wantErr: true},
		{path: "usersList/a/b", wantErr: true},
		{path: "other/u1", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := ParseProfilePath(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrInvalidPath)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.path, ProfilePath(got))
		})
	}
}
