// Package backend is the typed REST client for the parlor backend, which
// remains the source of truth for every record.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"tattooparlor/internal/observability/metrics"
	"tattooparlor/internal/pkg/logging"
)

const defaultTimeout = 15 * time.Second

// Client wraps JSON calls to the parlor backend.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logging.Logger
	metrics    *metrics.BackendMetrics
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

func WithMetrics(m *metrics.BackendMetrics) Option {
	return func(c *Client) { c.metrics = m }
}

// NewClient builds a client for baseURL. Outbound requests are traced with an
// otelhttp transport unless WithHTTPClient replaces it.
func NewClient(baseURL string, logger *logging.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	c := &Client{
		httpClient: &http.Client{
			Timeout:   defaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		logger:  logger.With("component", "backend"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// doJSON sends body (if any) as JSON and decodes a 2xx answer into out (if any).
// A non-empty token is sent as a bearer credential.
func (c *Client) doJSON(ctx context.Context, resource, method, path, token string, body, out any) error {
	endpoint := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveRequest(resource, method, "error", time.Since(start).Seconds())
		c.logger.Warn("backend request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	c.metrics.ObserveRequest(resource, method, strconv.Itoa(resp.StatusCode), time.Since(start).Seconds())

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return fmt.Errorf("%w: read response: %w", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode, Message: errorMessage(respBody, resp.Status)}
		c.logger.Warn("backend non-2xx response",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"message", apiErr.Message,
		)
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func errorMessage(body []byte, status string) string {
	var payload struct {
		Error   any    `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		switch v := payload.Error.(type) {
		case string:
			if v != "" {
				return v
			}
		case map[string]any:
			if msg, ok := v["message"].(string); ok && msg != "" {
				return msg
			}
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	text := strings.TrimSpace(string(body))
	if text == "" {
		return status
	}
	return truncate(text, maxErrorBody)
}

// unwrap returns raw[key] when raw is an object carrying key, else raw itself.
// The backend is inconsistent about wrapping single records and lists.
func unwrap(raw json.RawMessage, key string) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return trimmed
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return trimmed
	}
	if v, ok := obj[key]; ok {
		return v
	}
	return trimmed
}

// decodeList decodes an array that may sit under key.
func decodeList[T any](raw json.RawMessage, key string) ([]T, error) {
	inner := unwrap(raw, key)
	out := make([]T, 0)
	if len(inner) == 0 || bytes.Equal(inner, []byte("null")) {
		return out, nil
	}
	if err := json.Unmarshal(inner, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return out, nil
}

// decodeOne decodes a record that may sit under key.
func decodeOne[T any](raw json.RawMessage, key string) (*T, error) {
	inner := unwrap(raw, key)
	var out T
	if len(inner) == 0 || bytes.Equal(inner, []byte("null")) {
		return &out, nil
	}
	if err := json.Unmarshal(inner, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return &out, nil
}

// MessageResponse is the backend's plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}
