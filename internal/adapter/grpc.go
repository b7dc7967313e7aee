package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-keyplace/internal/config"
	"github.com/MKhiriev/go-keyplace/internal/logger"
	"github.com/MKhiriev/go-keyplace/internal/utils"
	"github.com/MKhiriev/go-keyplace/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

type grpcCustodianAdapter struct {
	conn    *grpc.ClientConn
	timeout time.Duration
	logger  *logger.Logger
}

// NewGRPCCustodianAdapter dials cfg.GRPCAddress lazily (grpc.NewClient does
// not connect until the first call). Extra dial options are appended after
// the defaults, which lets tests swap in a bufconn dialer.
func NewGRPCCustodianAdapter(cfg config.ClientAdapter, log *logger.Logger, opts ...grpc.DialOption) (CustodianAdapter, error) {
	addr := strings.TrimSpace(cfg.GRPCAddress)
	if addr == "" {
		return nil, fmt.Errorf("invalid adapter grpc address: empty address")
	}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(utils.JSONCodecName)),
	}, opts...)

	conn, err := grpc.NewClient(addr, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("grpc client: %w", err)
	}

	return &grpcCustodianAdapter{conn: conn, timeout: cfg.RequestTimeout, logger: log}, nil
}

func (g *grpcCustodianAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.Session, error) {
	var session models.Session
	if err := g.invoke(ctx, utils.GRPCMethodRegister, &req, &session); err != nil {
		return models.Session{}, err
	}
	return session, nil
}

func (g *grpcCustodianAdapter) Authenticate(ctx context.Context, req models.AuthRequest) (models.AuthResponse, error) {
	var out models.AuthResponse
	if err := g.invoke(ctx, utils.GRPCMethodAuthenticate, &req, &out); err != nil {
		return models.AuthResponse{}, err
	}
	return out, nil
}

func (g *grpcCustodianAdapter) SetKeys(ctx context.Context, sessionToken string, req models.SetKeysRequest) error {
	if token := strings.TrimSpace(sessionToken); token != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, utils.GRPCSessionMetadataKey, "Bearer "+token)
	}
	return g.invoke(ctx, utils.GRPCMethodSetKeys, &req, &models.Empty{})
}

func (g *grpcCustodianAdapter) Recover(ctx context.Context, req models.RecoverRequest) (models.AuthMatch, error) {
	var match models.AuthMatch
	if err := g.invoke(ctx, utils.GRPCMethodRecover, &req, &match); err != nil {
		return models.AuthMatch{}, err
	}
	return match, nil
}

func (g *grpcCustodianAdapter) Close() error {
	return g.conn.Close()
}

func (g *grpcCustodianAdapter) invoke(ctx context.Context, method string, in, out any) error {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	if err := g.conn.Invoke(ctx, method, in, out); err != nil {
		g.logger.Debug().Err(err).Str("method", method).Msg("grpc call failed")
		return mapGRPCError(err)
	}
	return nil
}
