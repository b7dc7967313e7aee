package server

import (
	"context"
	"fmt"
	"net"

	myGRPC "github.com/MKhiriev/go-keyplace/internal/handler/grpc"
	"github.com/MKhiriev/go-keyplace/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	server   *grpc.Server
	listener net.Listener
	logger   *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, address string, logger *logger.Logger) (*grpcServer, error) {
	lis, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w: grpc %s: %w", errListen, address, err)
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(handler.UnaryInterceptors()...))
	myGRPC.RegisterCustodianServer(srv, handler)

	return &grpcServer{
		server:   srv,
		listener: lis,
		logger:   logger,
	}, nil
}

func (g *grpcServer) RunServer() {
	g.logger.Info().Str("address", g.listener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.listener); err != nil {
		g.logger.Error().Err(err).Msg("gRPC server Serve")
	}
}

// Shutdown waits for running calls and falls back to a hard stop when ctx
// expires first.
func (g *grpcServer) Shutdown(ctx context.Context) {
	g.logger.Info().Msg("gRPC server Shutdown")

	done := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		g.logger.Warn().Msg("gRPC graceful stop timed out")
		g.server.Stop()
	}
}
