package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-keyplace/internal/config"
	"github.com/MKhiriev/go-keyplace/internal/logger"
	"github.com/MKhiriev/go-keyplace/internal/utils"
	"github.com/MKhiriev/go-keyplace/models"
	"github.com/go-resty/resty/v2"
)

// Custodian HTTP routes.
const (
	pathRegister = "/api/custodian/register"
	pathAuth     = "/api/custodian/auth"
	pathKeys     = "/api/custodian/keys"
	pathRecover  = "/api/custodian/recover"
)

type httpCustodianAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPCustodianAdapter constructs the resty implementation of
// [CustodianAdapter]. cfg.HTTPAddress may be a full URL or a bare
// "host:port", in which case http is assumed.
func NewHTTPCustodianAdapter(cfg config.ClientAdapter, log *logger.Logger) (CustodianAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpCustodianAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Register POSTs to /api/custodian/register and decodes the session.
func (h *httpCustodianAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.Session, error) {
	var session models.Session

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&session).
		Post(pathRegister)
	if err != nil {
		return models.Session{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	return withHeaderToken(session, resp)
}

// Authenticate POSTs to /api/custodian/auth.
func (h *httpCustodianAdapter) Authenticate(ctx context.Context, req models.AuthRequest) (models.AuthResponse, error) {
	var out models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post(pathAuth)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("authenticate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	out.Session, err = withHeaderToken(out.Session, resp)
	if err != nil {
		return models.AuthResponse{}, err
	}
	return out, nil
}

// SetKeys PUTs to /api/custodian/keys with the session as bearer token.
func (h *httpCustodianAdapter) SetKeys(ctx context.Context, sessionToken string, req models.SetKeysRequest) error {
	resp, err := h.authedRequest(ctx, sessionToken).
		SetBody(req).
		Put(pathKeys)
	if err != nil {
		return fmt.Errorf("set keys request: %w", err)
	}

	return mapHTTPError(resp)
}

// Recover POSTs to /api/custodian/recover.
func (h *httpCustodianAdapter) Recover(ctx context.Context, req models.RecoverRequest) (models.AuthMatch, error) {
	var match models.AuthMatch

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&match).
		Post(pathRecover)
	if err != nil {
		return models.AuthMatch{}, fmt.Errorf("recover request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthMatch{}, err
	}

	return match, nil
}

// Close is a no-op; resty keeps no per-adapter connection.
func (h *httpCustodianAdapter) Close() error {
	return nil
}

func (h *httpCustodianAdapter) authedRequest(ctx context.Context, token string) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token = strings.TrimSpace(token); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// withHeaderToken fills session.Token from the Authorization header when
// the body did not carry it.
func withHeaderToken(session models.Session, resp *resty.Response) (models.Session, error) {
	if session.Token != "" {
		return session, nil
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Session{}, fmt.Errorf("parse bearer token: %w", err)
	}
	session.Token = token
	return session, nil
}
