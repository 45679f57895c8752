// Package api is the HTTP client for the memory-puzzle event service.
//
// Every endpoint answers with the same envelope ({Code, Message, data}).
// A non-200 status is turned into a *ServerError carrying the server's
// message; a 200 response is returned as-is so callers can decide whether a
// Message other than "OK" is fatal or worth retrying.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultBaseURL is the production event host.
const DefaultBaseURL = "https://gf2-h5ump45gacha-us-api.sunborngame.com"

// Endpoint paths, relative to the base URL.
const (
	PathInfo    = "/info"
	PathRefresh = "/refresh"
	PathClick   = "/play_click"
	PathGacha   = "/gacha"
)

// Config holds what the client needs to reach the service.
type Config struct {
	// BaseURL is the scheme and host, without a trailing slash.
	// Empty means DefaultBaseURL.
	BaseURL string

	// Token is sent verbatim in the Authorization header.
	Token string

	// HTTPClient is optional; a zero http.Client is used when nil.
	HTTPClient *http.Client

	Logger *log.Logger
}

// Client talks to the event service. It is safe for sequential use; the
// solver never issues two requests at once.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	logger  *log.Logger
}

// New creates a client. The token must be non-empty.
func New(cfg Config) (*Client, error) {
	if cfg.Token == "" {
		return nil, errors.New("api: auth token is empty")
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Client{
		baseURL: baseURL,
		token:   cfg.Token,
		http:    hc,
		logger:  logger,
	}, nil
}

// Info fetches play counters and the current board.
func (c *Client) Info(ctx context.Context) (Envelope[InfoData], error) {
	return call[InfoData](ctx, c, "info", http.MethodGet, PathInfo, nil)
}

// Refresh discards the current board and deals a new one.
func (c *Client) Refresh(ctx context.Context) (Envelope[RefreshData], error) {
	return call[RefreshData](ctx, c, "refresh", http.MethodPost, PathRefresh, struct{}{})
}

// Click flips the card at index.
func (c *Client) Click(ctx context.Context, index int) (Envelope[ClickData], error) {
	body := struct {
		Index int `json:"index"`
	}{Index: index}
	return call[ClickData](ctx, c, "click", http.MethodPost, PathClick, body)
}

// Gacha spends one roll.
func (c *Client) Gacha(ctx context.Context) (Envelope[GachaData], error) {
	return call[GachaData](ctx, c, "gacha", http.MethodPost, PathGacha, nil)
}

// call sends one request and decodes the envelope.
// A nil body sends no payload; anything else is JSON-encoded.
//
// The data field is only decoded when it holds an object: rejected requests
// come back as 200 with a non-OK message and a scalar (or null) data field.
func call[T any](ctx context.Context, c *Client, op, method, path string, body any) (Envelope[T], error) {
	var env Envelope[T]

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return env, fmt.Errorf("api: %s: cannot encode request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return env, fmt.Errorf("api: %s: cannot build request: %w", op, err)
	}
	req.Header.Set("Authorization", c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return env, fmt.Errorf("api: %s: request failed: %w", op, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("response", "op", op, "status", resp.StatusCode)

	var rawEnv Envelope[json.RawMessage]
	if err := json.NewDecoder(resp.Body).Decode(&rawEnv); err != nil {
		return env, fmt.Errorf("api: %s: cannot decode response (status %d): %w", op, resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK {
		return env, &ServerError{Op: op, Status: resp.StatusCode, Message: rawEnv.Message}
	}

	env.Code = rawEnv.Code
	env.Message = rawEnv.Message
	if isObject(rawEnv.Data) {
		if err := json.Unmarshal(rawEnv.Data, &env.Data); err != nil {
			return env, fmt.Errorf("api: %s: cannot decode response data: %w", op, err)
		}
	} else if env.OK() {
		return env, fmt.Errorf("api: %s: response data is not an object: %s", op, rawEnv.Data)
	}
	return env, nil
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
