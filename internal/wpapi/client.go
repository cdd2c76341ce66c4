// Package wpapi talks to the WordPress REST API. It serves the block-editor
// registries as a registry.Provider and wp_block posts as a posts.Store.
//
// Requests authenticate with an application password over HTTP basic auth.
// Anonymous requests work for public registries but the synced-pattern and
// template routes need an editor account.
package wpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultTimeout bounds each request when Config.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// perPage is the largest page size WordPress accepts.
const perPage = 100

// ErrNoURL is returned by New without a site URL.
var ErrNoURL = errors.New("site URL is required")

// Config configures a Client.
type Config struct {
	URL         string // site root, e.g. https://example.com
	User        string
	AppPassword string
	Version     string // declared WordPress version; empty skips version checks
	Timeout     time.Duration
}

// Client is a WordPress REST API client.
type Client struct {
	base    *url.URL
	http    *http.Client
	user    string
	pass    string
	version string
}

// New returns a client for the site at cfg.URL.
func New(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, ErrNoURL
	}
	u, err := url.Parse(strings.TrimRight(cfg.URL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse site url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("site url %q: scheme must be http or https", cfg.URL)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		base:    u,
		http:    &http.Client{Timeout: timeout},
		user:    cfg.User,
		pass:    cfg.AppPassword,
		version: cfg.Version,
	}, nil
}

// APIError is a non-2xx REST response.
type APIError struct {
	Status  int
	Code    string // WordPress error code, e.g. rest_post_invalid_id
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("wordpress api: http %d", e.Status)
	}
	return e.Message
}

// NotFound reports a 404 response.
func (e *APIError) NotFound() bool { return e.Status == http.StatusNotFound }

// endpoint returns the URL of a wp/v2 route.
func (c *Client) endpoint(route string, q url.Values) string {
	u := *c.base
	u.Path = c.base.Path + "/wp-json/wp/v2/" + strings.TrimLeft(route, "/")
	u.RawQuery = q.Encode()
	return u.String()
}

// do sends a request and decodes a JSON response into out. It returns the
// response headers for pagination.
func (c *Client) do(ctx context.Context, method, route string, q url.Values, body, out any) (http.Header, error) {
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(data)
	}

	target := c.endpoint(route, q)
	req, err := http.NewRequestWithContext(ctx, method, target, rd)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.user != "" {
		req.SetBasicAuth(c.user, c.pass)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, route, err)
	}
	defer resp.Body.Close()
	slog.Debug("wordpress api", "method", method, "route", route, "status", resp.StatusCode, "took", time.Since(start))

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	// WordPress error bodies carry a code and a human-readable message; the
	// message is what the user sees, the status is the fallback.
	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		var wpErr struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &wpErr) == nil {
			apiErr.Code, apiErr.Message = wpErr.Code, wpErr.Message
		}
		return resp.Header, apiErr
	}
	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return resp.Header, fmt.Errorf("decode %s: %w", route, err)
		}
	}
	return resp.Header, nil
}

// get is do for GET requests.
func (c *Client) get(ctx context.Context, route string, q url.Values, out any) error {
	_, err := c.do(ctx, http.MethodGet, route, q, nil, out)
	return err
}

// getAll follows X-WP-TotalPages and concatenates every page.
func getAll[T any](ctx context.Context, c *Client, route string, q url.Values) ([]T, error) {
	if q == nil {
		q = url.Values{}
	}
	q.Set("per_page", strconv.Itoa(perPage))

	var all []T
	for page := 1; ; page++ {
		q.Set("page", strconv.Itoa(page))
		var batch []T
		h, err := c.do(ctx, http.MethodGet, route, q, nil, &batch)
		if err != nil {
			return nil, err
		}
		all = append(all, batch...)
		total, _ := strconv.Atoi(h.Get("X-WP-TotalPages"))
		if page >= total {
			return all, nil
		}
	}
}

// isNotFound reports whether err is a 404 from the API.
func isNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.NotFound()
}
