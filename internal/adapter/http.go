package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-zk-vault/internal/config"
	"github.com/MKhiriev/go-zk-vault/internal/interceptor"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/utils"
	"github.com/MKhiriev/go-zk-vault/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout. A non-nil ic is installed as the client transport, so every
// request and response passes through the field encryption interceptor.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, ic *interceptor.Interceptor, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	if ic != nil {
		client.SetTransport(interceptor.NewTransport(http.DefaultTransport, ic).WithBasePath(basePath(baseURL)))
	}

	return &httpServerAdapter{client: client, logger: log.WithComponent("adapter")}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
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

// basePath returns the path component of a normalized base URL, so the
// interceptor sees "/api/..." even when the server is mounted under a prefix.
func basePath(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		return ""
	}
	return strings.TrimRight(u.Path, "/")
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the account to
// POST /api/auth/register and keeps the bearer token from the
// Authorization response header.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register parse bearer token: %w", err)
	}
	if user.UserID, err = utils.ParseUserIDFromJWT(token); err != nil {
		return models.User{}, fmt.Errorf("register parse user id: %w", err)
	}

	h.SetToken(token)
	return user, nil
}

// RequestParams implements [ServerAdapter]. It POSTs login to
// POST /api/auth/params.
func (h *httpServerAdapter) RequestParams(ctx context.Context, login string) (models.KeyParams, error) {
	var params models.KeyParams

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.User{Login: login}).
		SetResult(&params).
		Post("/api/auth/params")
	if err != nil {
		return models.KeyParams{}, fmt.Errorf("params request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.KeyParams{}, err
	}

	return params, nil
}

// Login implements [ServerAdapter]. It POSTs the auth hash to
// POST /api/auth/login, keeps the bearer token and returns the account
// record with the password-wrapped master key.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	var found models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&found).
		Post("/api/auth/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("login parse bearer token: %w", err)
	}
	if found.UserID, err = utils.ParseUserIDFromJWT(token); err != nil {
		return models.User{}, fmt.Errorf("login parse user id: %w", err)
	}

	h.SetToken(token)
	return found, nil
}

// GetKeyParams implements [ServerAdapter] and keystore.KeySource.
func (h *httpServerAdapter) GetKeyParams(ctx context.Context) (models.KeyParams, error) {
	var params models.KeyParams

	resp, err := h.authedRequest(ctx).
		SetResult(&params).
		Get("/api/keys/params")
	if err != nil {
		return models.KeyParams{}, fmt.Errorf("key params request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.KeyParams{}, err
	}

	return params, nil
}

// GetWrappedMasterKey implements [ServerAdapter] and keystore.KeySource.
func (h *httpServerAdapter) GetWrappedMasterKey(ctx context.Context) (models.WrappedMasterKey, error) {
	var wrapped models.WrappedMasterKey

	resp, err := h.authedRequest(ctx).
		SetResult(&wrapped).
		Get("/api/keys/master")
	if err != nil {
		return models.WrappedMasterKey{}, fmt.Errorf("wrapped master key request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.WrappedMasterKey{}, err
	}

	return wrapped, nil
}

// RotateMasterKey implements [ServerAdapter]. PUT /api/keys/master.
func (h *httpServerAdapter) RotateMasterKey(ctx context.Context, rotation models.MasterKeyRotation) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(rotation).
		Put("/api/keys/master")
	if err != nil {
		return fmt.Errorf("rotate master key request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetRecoveryKey implements [ServerAdapter]. A 404 is the same as a null
// blob: the account has no recovery wrap.
func (h *httpServerAdapter) GetRecoveryKey(ctx context.Context) (models.RecoveryKey, error) {
	var key models.RecoveryKey

	resp, err := h.authedRequest(ctx).
		SetResult(&key).
		Get("/api/recovery-key")
	if err != nil {
		return models.RecoveryKey{}, fmt.Errorf("recovery key request: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return models.RecoveryKey{}, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RecoveryKey{}, err
	}

	return key, nil
}

// PutRecoveryKey implements [ServerAdapter]. POST /api/recovery-key.
func (h *httpServerAdapter) PutRecoveryKey(ctx context.Context, key models.RecoveryKey) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(key).
		Post("/api/recovery-key")
	if err != nil {
		return fmt.Errorf("upload recovery key request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteRecoveryKey implements [ServerAdapter]. DELETE /api/recovery-key.
func (h *httpServerAdapter) DeleteRecoveryKey(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Delete("/api/recovery-key")
	if err != nil {
		return fmt.Errorf("delete recovery key request: %w", err)
	}

	return mapHTTPError(resp)
}

// Do implements [ServerAdapter].
func (h *httpServerAdapter) Do(ctx context.Context, method, path string, body, result any) error {
	req := h.authedRequest(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
