package grpc

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-keyplace/internal/app"
	"github.com/MKhiriev/go-keyplace/internal/crypto"
	"github.com/MKhiriev/go-keyplace/internal/logger"
	"github.com/MKhiriev/go-keyplace/internal/service"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type errorStatus struct {
	target  error
	code    codes.Code
	message string
}

// errorStatuses matches the HTTP table entry for entry, so a client sees
// the same message over either transport.
var errorStatuses = []errorStatus{
	{service.ErrEmptyKeyList, codes.InvalidArgument, app.MsgEmptyKeyList},
	{service.ErrInvalidDataProvided, codes.InvalidArgument, app.MsgInvalidDataProvided},
	{service.ErrAccountAlreadyExists, codes.AlreadyExists, app.MsgAccountAlreadyExists},
	{service.ErrSessionInvalid, codes.Unauthenticated, app.MsgSessionInvalid},
	{service.ErrNotFound, codes.Unauthenticated, app.MsgAuthenticationFailed},
	{crypto.ErrSignature, codes.PermissionDenied, app.MsgSignatureInvalid},
	{service.ErrRateLimited, codes.ResourceExhausted, app.MsgTooManyRequests},
}

func codeFromError(err error) (codes.Code, string) {
	for _, s := range errorStatuses {
		if errors.Is(err, s.target) {
			return s.code, s.message
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return codes.DeadlineExceeded, context.DeadlineExceeded.Error()
	}
	if errors.Is(err, context.Canceled) {
		return codes.Canceled, context.Canceled.Error()
	}
	return codes.Internal, app.MsgInternalServerError
}

// statusFromError converts a service error into a gRPC status. Internal
// details only reach the log.
func statusFromError(ctx context.Context, err error) error {
	code, msg := codeFromError(err)

	log := logger.FromContext(ctx)
	if code == codes.Internal {
		log.Error().Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("code", code.String()).Msg("request rejected")
	}

	return status.Error(code, msg)
}
