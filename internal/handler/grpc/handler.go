package grpc

import (
	"context"

	"github.com/MKhiriev/go-keyplace/internal/app"
	"github.com/MKhiriev/go-keyplace/internal/crypto"
	"github.com/MKhiriev/go-keyplace/internal/logger"
	"github.com/MKhiriev/go-keyplace/internal/service"
	"github.com/MKhiriev/go-keyplace/internal/utils"
	"github.com/MKhiriev/go-keyplace/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Handler is the gRPC face of the custodian. It implements [CustodianServer]
// on top of the same service layer as the HTTP handler, so both transports
// answer with the same errors.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

func (h *Handler) Register(ctx context.Context, req *models.RegisterRequest) (*models.Session, error) {
	session, err := h.services.CustodianService.Register(ctx, req.AccountID, req.Name, req.Keys)
	if err != nil {
		return nil, statusFromError(ctx, err)
	}
	return &session, nil
}

func (h *Handler) Authenticate(ctx context.Context, req *models.AuthRequest) (*models.AuthResponse, error) {
	session, match, err := h.services.CustodianService.Authenticate(ctx, req.AccountID, req.Query)
	if err != nil {
		return nil, statusFromError(ctx, err)
	}
	return &models.AuthResponse{Session: session, Match: match}, nil
}

func (h *Handler) SetKeys(ctx context.Context, req *models.SetKeysRequest) (*models.Empty, error) {
	token, err := sessionToken(ctx)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("missing session metadata")
		return nil, status.Error(codes.Unauthenticated, app.MsgSessionInvalid)
	}

	sig, err := crypto.ParseSignatureString(req.Signature)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("malformed signature")
		return nil, status.Error(codes.InvalidArgument, app.MsgInvalidDataProvided)
	}

	if err = h.services.CustodianService.SetKeys(ctx, token, req.Keys, sig); err != nil {
		return nil, statusFromError(ctx, err)
	}
	return &models.Empty{}, nil
}

func (h *Handler) Recover(ctx context.Context, req *models.RecoverRequest) (*models.AuthMatch, error) {
	match, err := h.services.CustodianService.Recover(ctx, req.AccountID, req.Attempts)
	if err != nil {
		return nil, statusFromError(ctx, err)
	}
	return &match, nil
}

// sessionToken reads "authorization: Bearer <token>" from the incoming
// metadata.
func sessionToken(ctx context.Context) (string, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	values := md.Get(utils.GRPCSessionMetadataKey)
	if len(values) == 0 {
		return "", errMissingSession
	}
	return utils.ParseBearerToken(values[0])
}
