package grpc

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/MKhiriev/go-keyplace/internal/adapter"
	"github.com/MKhiriev/go-keyplace/internal/app"
	"github.com/MKhiriev/go-keyplace/internal/config"
	"github.com/MKhiriev/go-keyplace/internal/crypto"
	"github.com/MKhiriev/go-keyplace/internal/logger"
	"github.com/MKhiriev/go-keyplace/internal/mock"
	"github.com/MKhiriev/go-keyplace/internal/service"
	"github.com/MKhiriev/go-keyplace/internal/store"
	"github.com/MKhiriev/go-keyplace/internal/utils"
	"github.com/MKhiriev/go-keyplace/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func startServer(t *testing.T, custodian service.CustodianService) *bufconn.Listener {
	t.Helper()

	h := NewHandler(&service.Services{CustodianService: custodian}, logger.Nop())
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(h.UnaryInterceptors()...))
	RegisterCustodianServer(srv, h)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)
	return lis
}

func bufDialer(lis *bufconn.Listener) grpc.DialOption {
	return grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	})
}

func newGRPCAdapter(t *testing.T, lis *bufconn.Listener) adapter.CustodianAdapter {
	t.Helper()
	a, err := adapter.NewGRPCCustodianAdapter(
		config.ClientAdapter{GRPCAddress: "passthrough:///bufnet", RequestTimeout: 5 * time.Second},
		logger.Nop(),
		bufDialer(lis),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func rawConn(t *testing.T, lis *bufconn.Listener) *grpc.ClientConn {
	t.Helper()
	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(utils.JSONCodecName)),
		bufDialer(lis),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// ─────────────────────────────────────────────
// Round trip over the real service
// ─────────────────────────────────────────────

func TestGRPC_RoundTrip(t *testing.T) {
	ctx := context.Background()
	log := logger.Nop()
	appCfg := config.App{TokenSignKey: "grpc-test", TokenIssuer: "keyplace-test", TokenDuration: time.Minute}
	custodian := service.NewCustodianService(store.NewMemoryCustodianRepository(log), appCfg, nil, nil, log)
	client := newGRPCAdapter(t, startServer(t, custodian))

	kdf, err := crypto.NewKeyDerivation(crypto.KDFParams{N: 1 << 10, R: 8, P: 1})
	require.NoError(t, err)
	key, err := crypto.GenerateAgentKey(nil)
	require.NoError(t, err)
	defer key.Destroy()

	pk, err := kdf.Derive(crypto.NewPassphrase("pw"))
	require.NoError(t, err)
	defer pk.Destroy()
	ck, err := key.CustodialKey(pk, nil)
	require.NoError(t, err)
	primary := models.KeyRecord{Label: "primary", UserAuthKey: pk.Auth(), CustodialKey: ck}

	session, err := client.Register(ctx, models.RegisterRequest{AccountID: "bob", Name: "Bob", Keys: []models.KeyRecord{primary}})
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)

	auth, err := client.Authenticate(ctx, models.AuthRequest{AccountID: "bob", Query: models.AuthQuery{Label: "primary", UserAuthKey: pk.Auth()}})
	require.NoError(t, err)
	assert.Equal(t, ck, auth.Match.CustodialKey)

	backupPK, err := kdf.Derive(crypto.NewPassphrase("backup"))
	require.NoError(t, err)
	defer backupPK.Destroy()
	backupCK, err := key.CustodialKey(backupPK, nil)
	require.NoError(t, err)
	records := []models.KeyRecord{{Label: "backup", UserAuthKey: backupPK.Auth(), CustodialKey: backupCK}}
	sig, err := crypto.Sign(key, crypto.String("bob"), crypto.Bytes(crypto.KeyRecordsDigest(records)))
	require.NoError(t, err)

	require.NoError(t, client.SetKeys(ctx, auth.Session.Token, models.SetKeysRequest{Keys: records, Signature: sig.String()}))

	match, err := client.Recover(ctx, models.RecoverRequest{AccountID: "bob", Attempts: []models.AuthQuery{{Label: "backup", UserAuthKey: backupPK.Auth()}}})
	require.NoError(t, err)
	assert.Equal(t, "backup", match.Label)

	// the primary passphrase does not open the backup label
	_, err = client.Recover(ctx, models.RecoverRequest{AccountID: "bob", Attempts: []models.AuthQuery{{Label: "backup", UserAuthKey: pk.Auth()}}})
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

// ─────────────────────────────────────────────
// Error mapping
// ─────────────────────────────────────────────

func TestGRPC_ServiceErrorsReachClient(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    error
		wantMsg string
	}{
		{"invalid", service.ErrInvalidDataProvided, adapter.ErrBadRequest, app.MsgInvalidDataProvided},
		{"empty", service.ErrEmptyKeyList, adapter.ErrBadRequest, app.MsgEmptyKeyList},
		{"exists", service.ErrAccountAlreadyExists, adapter.ErrConflict, app.MsgAccountAlreadyExists},
		{"rate limited", service.ErrRateLimited, adapter.ErrTooManyRequests, app.MsgTooManyRequests},
		{"internal", errors.New("db down"), adapter.ErrInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			custodian := mock.NewMockCustodianService(gomock.NewController(t))
			custodian.EXPECT().Register(gomock.Any(), "carol", "Carol", gomock.Any()).Return(models.Session{}, tt.err)
			client := newGRPCAdapter(t, startServer(t, custodian))

			_, err := client.Register(context.Background(), models.RegisterRequest{AccountID: "carol", Name: "Carol"})
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorContains(t, err, tt.wantMsg)
			assert.NotContains(t, err.Error(), "db down")
		})
	}
}

func TestGRPC_SetKeys_Session(t *testing.T) {
	ctx := context.Background()
	var sig crypto.Signature
	req := models.SetKeysRequest{Keys: []models.KeyRecord{{Label: "a"}}, Signature: sig.String()}

	t.Run("token forwarded", func(t *testing.T) {
		custodian := mock.NewMockCustodianService(gomock.NewController(t))
		custodian.EXPECT().SetKeys(gomock.Any(), "tok", req.Keys, sig).Return(nil)
		client := newGRPCAdapter(t, startServer(t, custodian))

		assert.NoError(t, client.SetKeys(ctx, "tok", req))
	})

	t.Run("missing token", func(t *testing.T) {
		custodian := mock.NewMockCustodianService(gomock.NewController(t))
		client := newGRPCAdapter(t, startServer(t, custodian))

		err := client.SetKeys(ctx, "", req)
		assert.ErrorIs(t, err, adapter.ErrUnauthorized)
		assert.ErrorContains(t, err, app.MsgSessionInvalid)
	})

	t.Run("bad signature", func(t *testing.T) {
		custodian := mock.NewMockCustodianService(gomock.NewController(t))
		custodian.EXPECT().SetKeys(gomock.Any(), "tok", gomock.Any(), gomock.Any()).Return(crypto.ErrSignature)
		client := newGRPCAdapter(t, startServer(t, custodian))

		assert.ErrorIs(t, client.SetKeys(ctx, "tok", req), adapter.ErrForbidden)
	})

	t.Run("malformed signature", func(t *testing.T) {
		custodian := mock.NewMockCustodianService(gomock.NewController(t))
		client := newGRPCAdapter(t, startServer(t, custodian))

		bad := req
		bad.Signature = "AAAA"
		assert.ErrorIs(t, client.SetKeys(ctx, "tok", bad), adapter.ErrBadRequest)
	})
}

func TestGRPC_PanicBecomesInternal(t *testing.T) {
	custodian := mock.NewMockCustodianService(gomock.NewController(t))
	custodian.EXPECT().Recover(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, []models.AuthQuery) (models.AuthMatch, error) {
			panic("boom")
		})
	client := newGRPCAdapter(t, startServer(t, custodian))

	_, err := client.Recover(context.Background(), models.RecoverRequest{AccountID: "dave"})
	assert.ErrorIs(t, err, adapter.ErrInternalServerError)
}

func TestGRPC_TraceIDEchoed(t *testing.T) {
	custodian := mock.NewMockCustodianService(gomock.NewController(t))
	custodian.EXPECT().Recover(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.AuthMatch{Label: "x"}, nil)
	conn := rawConn(t, startServer(t, custodian))

	ctx := metadata.AppendToOutgoingContext(context.Background(), traceIDMetadataKey, "trace-42")
	var header metadata.MD
	var out models.AuthMatch
	err := conn.Invoke(ctx, utils.GRPCMethodRecover, &models.RecoverRequest{AccountID: "erin"}, &out, grpc.Header(&header))

	require.NoError(t, err)
	assert.Equal(t, "x", out.Label)
	assert.Equal(t, []string{"trace-42"}, header.Get(traceIDMetadataKey))
}

func TestGRPC_UnknownMethod(t *testing.T) {
	conn := rawConn(t, startServer(t, mock.NewMockCustodianService(gomock.NewController(t))))

	err := conn.Invoke(context.Background(), "/"+utils.GRPCServiceName+"/Delete", &models.Empty{}, &models.Empty{})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestCodeFromError(t *testing.T) {
	tests := []struct {
		err  error
		want codes.Code
	}{
		{service.ErrNotFound, codes.Unauthenticated},
		{service.ErrSessionInvalid, codes.Unauthenticated},
		{crypto.ErrSignature, codes.PermissionDenied},
		{context.DeadlineExceeded, codes.DeadlineExceeded},
		{context.Canceled, codes.Canceled},
		{errors.New("other"), codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			code, _ := codeFromError(tt.err)
			assert.Equal(t, tt.want, code)
		})
	}

	_, msg := codeFromError(service.ErrNotFound)
	assert.Equal(t, app.MsgAuthenticationFailed, msg)
}
