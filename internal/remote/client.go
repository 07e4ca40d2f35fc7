package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/healthcalc/healthcalc/internal/config"
)

const (
	defaultRequestTimeout = 10 * time.Second

	// maxPayloadBytes bounds how much of a response body is decoded.
	maxPayloadBytes = 1 << 20

	headerKey  = "X-RapidAPI-Key"
	headerHost = "X-RapidAPI-Host"
)

// ErrNotConfigured is returned by New when the remote section has no base URL.
var ErrNotConfigured = errors.New("remote: base_url not configured")

// Client calls the remote calculator API. It is safe for concurrent use.
type Client struct {
	base   string
	client *http.Client
}

// New builds a Client for cfg. The API key is resolved from the environment
// once, at construction.
func New(cfg config.RemoteConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, ErrNotConfigured
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("remote: parse base_url: %w", err)
	}
	return &Client{
		base:   strings.TrimRight(cfg.BaseURL, "/"),
		client: buildHTTPClient(cfg.Key(), cfg.Host),
	}, nil
}

// authRoundTripper injects the API key and host headers into every outgoing request.
type authRoundTripper struct {
	base http.RoundTripper
	key  string
	host string
}

func (t *authRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	if t.key != "" {
		req.Header.Set(headerKey, t.key)
	}
	if t.host != "" {
		req.Header.Set(headerHost, t.host)
	}
	return t.base.RoundTrip(req)
}

// buildHTTPClient constructs an http.Client that authenticates every request.
func buildHTTPClient(key, host string) *http.Client {
	return &http.Client{
		Transport: &authRoundTripper{base: http.DefaultTransport, key: key, host: host},
		Timeout:   defaultRequestTimeout,
	}
}

// Fetch calls /calculate/{path} with params as the query string and returns
// the numeric fields of the response. Empty parameter values are omitted.
func (c *Client) Fetch(ctx context.Context, path string, params map[string]string) (map[string]float64, error) {
	u := c.base + "/calculate/" + url.PathEscape(path)
	if q := encodeParams(params); q != "" {
		u += "?" + q
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		slog.Warn("remote: request failed", "path", path, "err", err)
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Warn("remote: unexpected status", "path", path, "status", resp.StatusCode)
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return decodePayload(io.LimitReader(resp.Body, maxPayloadBytes))
}

// encodeParams renders the non-empty params as a query string in key order.
func encodeParams(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if strings.TrimSpace(v) != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	q := url.Values{}
	for _, k := range keys {
		q.Set(k, params[k])
	}
	return q.Encode()
}

// decodePayload reads a flat JSON object and keeps its numeric fields.
// Numbers encoded as strings ("22.9") are accepted.
func decodePayload(r io.Reader) (map[string]float64, error) {
	var raw map[string]json.RawMessage
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}

	out := make(map[string]float64, len(raw))
	for k, msg := range raw {
		if v, ok := numeric(msg); ok {
			out[k] = v
		}
	}
	return out, nil
}

func numeric(msg json.RawMessage) (float64, bool) {
	var n json.Number
	if err := json.Unmarshal(msg, &n); err == nil {
		f, err := n.Float64()
		return f, err == nil
	}
	var s string
	if err := json.Unmarshal(msg, &s); err != nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f, err == nil
}
