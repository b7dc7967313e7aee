package grpc

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/MKhiriev/go-keyplace/internal/app"
	"github.com/MKhiriev/go-keyplace/internal/logger"
	"github.com/MKhiriev/go-keyplace/internal/utils"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// traceIDMetadataKey mirrors the HTTP X-Trace-ID header.
const traceIDMetadataKey = "x-trace-id"

// UnaryInterceptors returns the interceptor chain of the custodian server,
// outermost first.
func (h *Handler) UnaryInterceptors() []grpc.UnaryServerInterceptor {
	return []grpc.UnaryServerInterceptor{
		h.withTraceID,
		withLogging,
		withRecovery,
	}
}

// withTraceID attaches a child logger carrying the caller's trace id (or a
// fresh uuid) and echoes the id back in the response header.
func (h *Handler) withTraceID(ctx context.Context, req any, _ *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	var traceID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDMetadataKey); len(values) > 0 {
			traceID = values[0]
		}
	}
	if traceID == "" {
		traceID = utils.NewTimeOrderedID()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})

	_ = grpc.SetHeader(ctx, metadata.Pairs(traceIDMetadataKey, traceID))
	return next(l.WithContext(ctx), req)
}

func withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := next(ctx, req)

	log := logger.FromContext(ctx)
	code := status.Code(err)
	event := log.Info()
	if code == codes.Internal || code == codes.Unknown {
		event = log.Warn()
	}
	event.
		Str("method", info.FullMethod).
		Str("code", code.String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

// withRecovery turns a handler panic into codes.Internal.
func withRecovery(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (resp any, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Error().
				Interface("panic", r).
				Str("method", info.FullMethod).
				Bytes("stack", debug.Stack()).
				Msg("handler panicked")
			resp, err = nil, status.Error(codes.Internal, app.MsgInternalServerError)
		}
	}()
	return next(ctx, req)
}
