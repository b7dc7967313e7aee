package adapter

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/MKhiriev/go-keyplace/internal/config"
	"github.com/MKhiriev/go-keyplace/internal/logger"
	"github.com/MKhiriev/go-keyplace/internal/utils"
	"github.com/MKhiriev/go-keyplace/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// fakeCustodian answers the custodian methods with canned values.
type fakeCustodian struct {
	registerErr error
	lastAuth    string
}

func unary[Req any](fn func(ctx context.Context, req *Req) (any, error)) grpc.MethodHandler {
	return func(_ any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
		req := new(Req)
		if err := dec(req); err != nil {
			return nil, err
		}
		return fn(ctx, req)
	}
}

func (f *fakeCustodian) desc() *grpc.ServiceDesc {
	return &grpc.ServiceDesc{
		ServiceName: utils.GRPCServiceName,
		HandlerType: (*any)(nil),
		Methods: []grpc.MethodDesc{
			{MethodName: "Register", Handler: unary(func(_ context.Context, req *models.RegisterRequest) (any, error) {
				if f.registerErr != nil {
					return nil, f.registerErr
				}
				return &models.Session{AccountID: req.AccountID, Token: "tok"}, nil
			})},
			{MethodName: "Authenticate", Handler: unary(func(_ context.Context, req *models.AuthRequest) (any, error) {
				return &models.AuthResponse{
					Session: models.Session{AccountID: req.AccountID, Token: "tok"},
					Match:   models.AuthMatch{Label: req.Query.Label},
				}, nil
			})},
			{MethodName: "SetKeys", Handler: unary(func(ctx context.Context, _ *models.SetKeysRequest) (any, error) {
				md, _ := metadata.FromIncomingContext(ctx)
				if v := md.Get(utils.GRPCSessionMetadataKey); len(v) > 0 {
					f.lastAuth = v[0]
				}
				if f.lastAuth == "" {
					return nil, status.Error(codes.Unauthenticated, "session is expired or invalid")
				}
				return &models.Empty{}, nil
			})},
			{MethodName: "Recover", Handler: unary(func(_ context.Context, req *models.RecoverRequest) (any, error) {
				if len(req.Attempts) == 0 {
					return nil, status.Error(codes.Unauthenticated, "authentication failed")
				}
				return &models.AuthMatch{Label: req.Attempts[len(req.Attempts)-1].Label}, nil
			})},
		},
	}
}

func newBufconnAdapter(t *testing.T, f *fakeCustodian) CustodianAdapter {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	srv.RegisterService(f.desc(), f)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	a, err := NewGRPCCustodianAdapter(
		config.ClientAdapter{GRPCAddress: "passthrough:///bufnet", RequestTimeout: 5 * time.Second},
		logger.Nop(),
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestGRPCAdapter_RoundTrip(t *testing.T) {
	ctx := context.Background()
	f := &fakeCustodian{}
	a := newBufconnAdapter(t, f)

	session, err := a.Register(ctx, models.RegisterRequest{AccountID: "alice"})
	require.NoError(t, err)
	assert.Equal(t, models.Session{AccountID: "alice", Token: "tok"}, session)

	auth, err := a.Authenticate(ctx, models.AuthRequest{AccountID: "alice", Query: models.AuthQuery{Label: "primary"}})
	require.NoError(t, err)
	assert.Equal(t, "primary", auth.Match.Label)
	assert.Equal(t, "tok", auth.Session.Token)

	require.NoError(t, a.SetKeys(ctx, "tok", models.SetKeysRequest{}))
	assert.Equal(t, "Bearer tok", f.lastAuth)

	match, err := a.Recover(ctx, models.RecoverRequest{AccountID: "alice", Attempts: []models.AuthQuery{{Label: "a"}, {Label: "b"}}})
	require.NoError(t, err)
	assert.Equal(t, "b", match.Label)
}

func TestGRPCAdapter_ErrorMapping(t *testing.T) {
	ctx := context.Background()

	f := &fakeCustodian{registerErr: status.Error(codes.AlreadyExists, "account already exists")}
	a := newBufconnAdapter(t, f)

	_, err := a.Register(ctx, models.RegisterRequest{AccountID: "alice"})
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "account already exists")

	_, err = a.Recover(ctx, models.RecoverRequest{AccountID: "alice"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	assert.ErrorIs(t, a.SetKeys(ctx, "", models.SetKeysRequest{}), ErrUnauthorized)
}

func TestNewGRPCCustodianAdapter_EmptyAddress(t *testing.T) {
	_, err := NewGRPCCustodianAdapter(config.ClientAdapter{}, logger.Nop())
	assert.Error(t, err)
}

func TestMapGRPCError(t *testing.T) {
	tests := []struct {
		code codes.Code
		want error
	}{
		{codes.InvalidArgument, ErrBadRequest},
		{codes.Unauthenticated, ErrUnauthorized},
		{codes.PermissionDenied, ErrForbidden},
		{codes.NotFound, ErrNotFound},
		{codes.AlreadyExists, ErrConflict},
		{codes.ResourceExhausted, ErrTooManyRequests},
		{codes.Unavailable, ErrUnavailable},
		{codes.Internal, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			assert.ErrorIs(t, mapGRPCError(status.Error(tt.code, "x")), tt.want)
		})
	}

	assert.NoError(t, mapGRPCError(nil))
	assert.Contains(t, mapGRPCError(status.Error(codes.DataLoss, "gone")).Error(), "gone")
}
