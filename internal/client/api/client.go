// Package api implements the HTTP client for the Yes-Chef API: JSON codec,
// anti-forgery token handling and the status-code recovery rules.
//
// The token is read from the credential store on every request and attached
// as the X-CSRFToken header; it is never cached on the client. Any token the
// API returns, in the response header or a csrfToken body field, is persisted
// back into the store. A 403 triggers exactly one token refresh followed by
// one replay of the original request; a 401 fires the configured hook so the
// application can send the user to the login screen.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/JanieKaren/yeschef-cli/internal/client/credstore"
	"github.com/JanieKaren/yeschef-cli/internal/common"
	"github.com/JanieKaren/yeschef-cli/internal/logging"
	"github.com/google/uuid"
)

const csrfPath = "/auth/csrf/"

type Client struct {
	baseURL        string
	http           *http.Client
	creds          credstore.Store
	log            logging.Logger
	onUnauthorized func()
}

type Option func(*Client)

// WithHTTPClient replaces the underlying transport, e.g. for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTimeout sets the per-request timeout on the underlying transport.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithLogger replaces the default slog-backed logger.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithUnauthorizedHook registers fn to run whenever a response comes back
// 401. This is the application's cue to route the user to login.
func WithUnauthorizedHook(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// NewClient builds a client for the API rooted at baseURL (e.g.
// "http://127.0.0.1:8000/api"). Session cookies are kept in an in-memory jar;
// the anti-forgery token lives in creds.
func NewClient(baseURL string, creds credstore.Store, opts ...Option) (*Client, error) {
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Jar: jar, Timeout: 15 * time.Second},
		creds:   creds,
		log:     logging.NewSlogLogger(slog.Default()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Do performs one JSON request against the API and decodes a successful
// response into out (out may be nil). path is relative to the base URL and
// may carry a query string. At most one extra round trip happens per call:
// the 403 refresh-and-retry described in the package comment.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	resp, data, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusForbidden {
		if rerr := c.FetchCSRFToken(ctx); rerr != nil {
			// The refresh failed; surface the original 403.
			c.log.Warn(ctx, "csrf refresh failed", "error", rerr)
			return fmt.Errorf("%s %s: %w", method, path, ErrForbidden)
		}
		c.log.Info(ctx, "csrf token refreshed, retrying request", "method", method, "path", path)
		resp, data, err = c.send(ctx, method, path, body)
		if err != nil {
			return err
		}
	}

	return c.finish(ctx, method, path, resp, data, out)
}

// FetchCSRFToken asks the dedicated endpoint for a fresh anti-forgery token.
// send persists any token it sees, so success means the store now holds one.
func (c *Client) FetchCSRFToken(ctx context.Context) error {
	resp, data, err := c.send(ctx, http.MethodGet, csrfPath, nil)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Code: resp.StatusCode, Body: string(data)}
	}

	token, err := c.creds.Token(ctx)
	if err != nil {
		return err
	}
	if token == "" {
		return ErrNoToken
	}
	return nil
}

// send performs a single exchange: marshal, attach headers, capture any
// returned token. It applies no status-code policy beyond transport errors.
func (c *Client) send(ctx context.Context, method, path string, body any) (*http.Response, []byte, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	// Token is read fresh per request, never cached on the client.
	token, err := c.creds.Token(ctx)
	if err != nil {
		return nil, nil, err
	}
	if token != "" {
		req.Header.Set(common.CSRFHeaderName, token)
	}

	c.log.Debug(ctx, "sending request",
		"method", method, "path", path,
		"request_id", req.Header.Get(common.RequestIDHeaderName))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read response: %w", err)
	}

	if err := c.captureToken(ctx, resp, data); err != nil {
		return nil, nil, err
	}

	return resp, data, nil
}

// captureToken persists an anti-forgery token found in the response header
// or in a csrfToken body field.
func (c *Client) captureToken(ctx context.Context, resp *http.Response, data []byte) error {
	token := resp.Header.Get(common.CSRFHeaderName)
	if token == "" && len(data) > 0 {
		var probe struct {
			CSRFToken string `json:"csrfToken"`
		}
		// Not every response is a JSON object; a parse failure just means
		// there is no token to capture.
		if err := json.Unmarshal(data, &probe); err == nil {
			token = probe.CSRFToken
		}
	}
	if token == "" {
		return nil
	}
	return c.creds.SetToken(ctx, token)
}

// finish maps the response status to the error taxonomy and decodes the body.
func (c *Client) finish(ctx context.Context, method, path string, resp *http.Response, data []byte, out any) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out != nil && len(data) > 0 {
			if err := json.Unmarshal(data, out); err != nil {
				return fmt.Errorf("decode response: %w", err)
			}
		}
		return nil

	case resp.StatusCode == http.StatusUnauthorized:
		c.log.Warn(ctx, "unauthorized", "method", method, "path", path)
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return fmt.Errorf("%s %s: %w", method, path, ErrUnauthorized)

	case resp.StatusCode == http.StatusForbidden:
		// Second 403 after the retry in Do; no further recovery.
		return fmt.Errorf("%s %s: %w", method, path, ErrForbidden)

	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", method, path, ErrNotFound)

	default:
		return &StatusError{Code: resp.StatusCode, Body: string(data)}
	}
}
