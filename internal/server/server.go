package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/go-keyplace/internal/config"
	"github.com/MKhiriev/go-keyplace/internal/handler"
	"github.com/MKhiriev/go-keyplace/internal/logger"
)

const shutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

// NewServer opens a listener for every transport that has both an address
// in cfg and a handler.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	var err error
	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		if servers.httpServer, err = newHTTPServer(handlers.HTTP.Init(), cfg.HTTPAddress, logger); err != nil {
			return nil, err
		}
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		if servers.gRPCServer, err = newGRPCServer(handlers.GRPC, cfg.GRPCAddress, logger); err != nil {
			if servers.httpServer != nil {
				_ = servers.httpServer.listener.Close()
			}
			return nil, err
		}
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown(ctx context.Context) {
	var wg sync.WaitGroup
	if s.httpServer != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.httpServer.Shutdown(ctx)
		}()
	}
	if s.gRPCServer != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.gRPCServer.Shutdown(ctx)
		}()
	}
	wg.Wait()
}

// run serves until ctx is done, then shuts every server down and waits for
// the serve loops to return.
func (s *server) run(ctx context.Context) {
	var wg sync.WaitGroup

	if s.httpServer != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.httpServer.RunServer()
		}()
	}
	if s.gRPCServer != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.gRPCServer.RunServer()
		}()
	}

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.Shutdown(shutdownCtx)

	wg.Wait()
	s.logger.Info().Msg("server Shutdown gracefully")
}
