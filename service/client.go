package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	defaultBaseURL   = "http://localhost:8080/v1"
	defaultUserAgent = "cinema-tui"
	requestIDHeader  = "X-Request-ID"
)

// TokenSource supplies the bearer token attached to each request. An empty
// token sends the request anonymously.
type TokenSource interface {
	Token() string
}

// Client wraps HTTP access to the cinema booking API. Requests are attempted
// exactly once; callers decide how to surface failures.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	tokens     TokenSource
	logger     logrus.FieldLogger
}

// APIError is returned when the API responds with a non-2xx status.
type APIError struct {
	StatusCode int
	Status     string
	Endpoint   string
	Body       string
}

func (e *APIError) Error() string {
	if e == nil {
		return "cinema api error"
	}
	if e.Body == "" {
		return fmt.Sprintf("cinema api error: %s", e.Status)
	}
	return fmt.Sprintf("cinema api error: %s: %s", e.Status, e.Body)
}

// IsNotFound reports whether the error represents a 404 from the API.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized reports whether the API rejected the credentials or token.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized) || hasStatus(err, http.StatusForbidden)
}

func hasStatus(err error, code int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == code
	}
	return false
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/"); baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

func WithTokenSource(tokens TokenSource) Option {
	return func(c *Client) {
		c.tokens = tokens
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a new API client. If httpClient is nil, a default client
// without a timeout is used.
func NewClient(httpClient *http.Client, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	c := &Client{
		httpClient: httpClient,
		baseURL:    defaultBaseURL,
		userAgent:  defaultUserAgent,
		logger:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetTokenSource swaps the token source, e.g. after a login.
func (c *Client) SetTokenSource(tokens TokenSource) {
	c.tokens = tokens
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) doJSON(ctx context.Context, method string, path string, in any, out any) error {
	endpoint := c.baseURL + path

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	log := c.logger.WithFields(logrus.Fields{
		"method":     method,
		"endpoint":   endpoint,
		"request_id": requestID,
	})

	res, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Debug("request failed")
		return fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()
	log.WithField("status", res.StatusCode).Debug("request done")

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, 8<<10))
		return &APIError{
			StatusCode: res.StatusCode,
			Status:     res.Status,
			Endpoint:   endpoint,
			Body:       errorMessage(snippet),
		}
	}

	if out == nil {
		return nil
	}
	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("read response from %s: %w", endpoint, err)
	}
	if err := decodeData(raw, out); err != nil {
		return fmt.Errorf("decode response from %s: %w", endpoint, err)
	}
	return nil
}

// decodeData unmarshals either a bare payload or one wrapped as {"data": ...}.
func decodeData(raw []byte, out any) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}
	if raw[0] == '{' {
		var env struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
			return json.Unmarshal(env.Data, out)
		}
	}
	return json.Unmarshal(raw, out)
}

// errorMessage extracts a human readable message from an error body.
func errorMessage(body []byte) string {
	text := strings.TrimSpace(string(body))
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return text
}
