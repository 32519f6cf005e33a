// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api is the single chokepoint for all clinic API traffic.
//
// Every call goes through Client.Do: it attaches the bearer token, sets the
// JSON content type, enforces a response size cap and decodes the uniform
// {success, data, error} envelope. A 401 from any endpoint surfaces as
// ErrSessionInvalid; callers never see a successful result after that.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Configuration constants for the API client.
const (
	// DefaultTimeout bounds each request when no custom client is supplied.
	DefaultTimeout = 30 * time.Second

	// MaxResponseSize caps response bodies to keep a misbehaving server
	// from exhausting memory.
	MaxResponseSize = 10 * 1024 * 1024 // 10MB
)

// TokenSource supplies the current credential token. The session store
// implements this; the gateway itself never touches persisted state.
type TokenSource interface {
	Token() string
}

// envelope is the uniform response wrapper every endpoint uses.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Client talks to the clinic API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// NewClient creates a client for the given base URL. tokens may be nil for
// a client that only performs unauthenticated calls.
func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		tokens:     tokens,
	}
}

// WithTimeout sets the request timeout.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	c.httpClient.Timeout = timeout
	return c
}

// WithHTTPClient replaces the underlying HTTP client. Used by tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// RequestOption adjusts a single outgoing request after the default
// headers are set.
type RequestOption func(*http.Request)

// WithHeader adds a header to one request. Defaults win: a header the
// client already set (Content-Type, User-Agent, Authorization) is never
// clobbered.
func WithHeader(key, value string) RequestOption {
	return func(req *http.Request) {
		if req.Header.Get(key) == "" {
			req.Header.Set(key, value)
		}
	}
}

// Do performs a request and decodes the envelope's data field into out.
// body is JSON-encoded when non-nil; out may be nil when the caller only
// cares about success.
func (c *Client) Do(ctx context.Context, method, path string, body, out any, opts ...RequestOption) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)
	for _, opt := range opts {
		opt(req)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	c.logResponse(req, resp, time.Since(start))

	raw, err := readResponse(resp)
	if err != nil {
		return err
	}

	// An authorization failure is terminal for the session regardless of
	// which endpoint produced it.
	if resp.StatusCode == http.StatusUnauthorized {
		return ErrSessionInvalid
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := ""
		if decodeErr == nil {
			msg = env.Error
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if decodeErr != nil {
		return fmt.Errorf("failed to parse response: %w", decodeErr)
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to parse response data: %w", err)
	}
	return nil
}

// Get is shorthand for a GET request.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

// setHeaders attaches the default headers. The bearer token is only set
// when one is available.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "clinic-tui/"+Version)
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
}

// logResponse logs one line per request without headers or bodies.
func (c *Client) logResponse(req *http.Request, resp *http.Response, duration time.Duration) {
	log.Printf("API %s %s: %d (%v)", req.Method, req.URL.Path, resp.StatusCode, duration)
}

// readResponse reads the body with a size cap.
func readResponse(resp *http.Response) ([]byte, error) {
	limited := io.LimitReader(resp.Body, MaxResponseSize)
	raw, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if int64(len(raw)) == MaxResponseSize {
		return nil, fmt.Errorf("response exceeded maximum size of %d bytes", MaxResponseSize)
	}
	return raw, nil
}

// Version is the client version reported in the User-Agent header.
// Overridden at build time.
var Version = "0.1.0"

// =============================================================================
// LIST QUERIES
// =============================================================================

// ListQuery holds the parameters every list endpoint accepts.
type ListQuery struct {
	Search string
	Status string
	Page   int
}

// Encode renders the query as URL parameters. Page zero is sent as 1 so a
// fresh controller always lands on the first page.
func (q ListQuery) Encode() string {
	v := url.Values{}
	v.Set("search", q.Search)
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	v.Set("page", strconv.Itoa(page))
	return v.Encode()
}
