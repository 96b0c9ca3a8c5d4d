package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/jaekyeom/go-bulletin-board/internal/config"
	"github.com/jaekyeom/go-bulletin-board/internal/logger"
	"github.com/jaekyeom/go-bulletin-board/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client    *resty.Client
	transport string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL, configures the
// underlying resty client with the request timeout, and — in cookie transport
// mode — attaches an in-memory cookie jar so the session cookie set at login
// rides along on every subsequent request.
//
// Returns an error if cfg.ServerURL is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(cfg config.ClientConfig, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	if cfg.Transport == config.TransportCookie {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("create cookie jar: %w", err)
		}
		client.SetCookieJar(jar)
	}

	return &httpServerAdapter{client: client, transport: cfg.Transport, logger: log}, nil
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

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of subsequent authenticated requests.
// Ignored in cookie transport mode.
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

// Register implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/register. The server responds with an empty body on success
// and a {message} body on conflict, which mapHTTPError surfaces verbatim.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(user).
		Post("/api/auth/register")
	if err != nil {
		return fmt.Errorf("register request: %w: %v", ErrNetwork, err)
	}

	return mapHTTPError(resp)
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login. In bearer transport mode the access token is required
// in the response body and stored via SetToken; in cookie mode the session is
// carried by the Set-Cookie header and the body may be empty.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.LoginResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(user).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	var lr models.LoginResponse
	if len(resp.Body()) > 0 {
		if err = json.Unmarshal(resp.Body(), &lr); err != nil {
			return models.LoginResponse{}, fmt.Errorf("%w: decode login response: %v", ErrMalformedResponse, err)
		}
	}

	if h.transport == config.TransportBearer {
		if lr.AccessToken == "" {
			return models.LoginResponse{}, fmt.Errorf("%w: login response carries no access token", ErrMalformedResponse)
		}
		h.SetToken(lr.AccessToken)
	}

	return lr, nil
}

// Logout implements [ServerAdapter]. It POSTs to POST /api/auth/logout with
// the current credential attached. The success body is empty and is never
// parsed.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w: %v", ErrNetwork, err)
	}

	return mapHTTPError(resp)
}

// Me implements [ServerAdapter]. It GETs GET /api/auth/me and decodes the
// identity, failing closed when the username field is absent.
func (h *httpServerAdapter) Me(ctx context.Context) (models.MeResponse, error) {
	resp, err := h.authedRequest(ctx).Get("/api/auth/me")
	if err != nil {
		return models.MeResponse{}, fmt.Errorf("me request: %w: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MeResponse{}, err
	}

	var me models.MeResponse
	if len(resp.Body()) == 0 {
		return models.MeResponse{}, fmt.Errorf("%w: empty me response", ErrMalformedResponse)
	}
	if err = json.Unmarshal(resp.Body(), &me); err != nil {
		return models.MeResponse{}, fmt.Errorf("%w: decode me response: %v", ErrMalformedResponse, err)
	}
	if me.Username == "" {
		return models.MeResponse{}, fmt.Errorf("%w: me response carries no username", ErrMalformedResponse)
	}

	return me, nil
}

// ListPosts implements [ServerAdapter]. It GETs GET /api/posts and decodes
// the post array, failing closed when any element is missing its id or title.
func (h *httpServerAdapter) ListPosts(ctx context.Context) ([]models.Post, error) {
	resp, err := h.authedRequest(ctx).Get("/api/posts")
	if err != nil {
		return nil, fmt.Errorf("list posts request: %w: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var posts []models.Post
	if len(resp.Body()) == 0 {
		return nil, fmt.Errorf("%w: empty post list response", ErrMalformedResponse)
	}
	if err = json.Unmarshal(resp.Body(), &posts); err != nil {
		return nil, fmt.Errorf("%w: decode post list: %v", ErrMalformedResponse, err)
	}
	for _, p := range posts {
		if p.ID == 0 || p.Title == "" {
			return nil, fmt.Errorf("%w: post record missing id or title", ErrMalformedResponse)
		}
	}

	return posts, nil
}

// CreatePost implements [ServerAdapter]. It POSTs the draft to
// POST /api/posts. A 2xx with an empty body returns (nil, nil) — the caller
// re-fetches the list for the authoritative record. When the server echoes
// the created post it is decoded and returned instead.
func (h *httpServerAdapter) CreatePost(ctx context.Context, draft models.PostDraft) (*models.Post, error) {
	resp, err := h.authedRequest(ctx).
		SetBody(draft).
		Post("/api/posts")
	if err != nil {
		return nil, fmt.Errorf("create post request: %w: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if len(resp.Body()) == 0 {
		return nil, nil
	}

	var created models.Post
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return nil, fmt.Errorf("%w: decode created post: %v", ErrMalformedResponse, err)
	}
	if created.ID == 0 {
		return nil, fmt.Errorf("%w: created post carries no id", ErrMalformedResponse)
	}

	return &created, nil
}

// DeletePost implements [ServerAdapter]. It sends DELETE /api/posts/{id}.
// The success body is empty and is never parsed.
func (h *httpServerAdapter) DeletePost(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).Delete(fmt.Sprintf("/api/posts/%d", id))
	if err != nil {
		return fmt.Errorf("delete post request: %w: %v", ErrNetwork, err)
	}

	return mapHTTPError(resp)
}

// authedRequest prepares a request with the current credential attached.
// Bearer and cookie transports are mutually exclusive: the Authorization
// header is only set in bearer mode, and the cookie jar only exists in
// cookie mode.
func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.transport == config.TransportBearer {
		if token := h.Token(); token != "" {
			req.SetHeader("Authorization", "Bearer "+token)
		}
	}
	return req
}
