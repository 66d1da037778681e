package datban

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

const defaultBaseURL = "http://localhost:3001"

// HTTPClient is implemented by http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// TokenSource supplies the bearer token attached to authenticated requests.
// An empty token means anonymous access.
type TokenSource interface {
	Token() string
}

// Client is the single HTTP access point to the booking platform backend.
// Each request is attempted exactly once; retrying is a caller concern.
type Client struct {
	httpClient     HTTPClient
	baseURL        string
	tokens         TokenSource
	verboseOutput  io.Writer
	verboseOutputM sync.RWMutex
}

// Option applies Client options.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL points the client at a non-default backend.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.SetBaseURL(baseURL)
	}
}

// WithTokenSource wires the session store the client reads tokens from.
func WithTokenSource(tokens TokenSource) Option {
	return func(c *Client) {
		c.tokens = tokens
	}
}

// WithVerboseOutput enables per-request trace output.
func WithVerboseOutput(out io.Writer) Option {
	return func(c *Client) {
		c.SetVerboseOutput(out)
	}
}

// NewClient creates a production gateway client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 20 * time.Second},
		baseURL:    defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetBaseURL repoints the client at a different backend. Empty values are
// ignored so a blank flag never clobbers the configured URL.
func (c *Client) SetBaseURL(baseURL string) {
	if trimmed := strings.TrimSpace(baseURL); trimmed != "" {
		c.baseURL = strings.TrimRight(trimmed, "/")
	}
}

// SetVerboseOutput sets the destination for request trace lines.
func (c *Client) SetVerboseOutput(out io.Writer) {
	c.verboseOutputM.Lock()
	c.verboseOutput = out
	c.verboseOutputM.Unlock()
}

func (c *Client) tracef(format string, args ...any) {
	c.verboseOutputM.RLock()
	out := c.verboseOutput
	c.verboseOutputM.RUnlock()
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, format+"\n", args...)
}

func (c *Client) token() string {
	if c.tokens == nil {
		return ""
	}
	return strings.TrimSpace(c.tokens.Token())
}

// do performs one JSON request and returns the raw response body. Every
// failure mode is converted into a *RequestError.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, body any) ([]byte, error) {
	rawURL := c.baseURL + path
	if len(params) > 0 {
		rawURL = rawURL + "?" + params.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	startedAt := time.Now()
	c.tracef("[http] -> %s %s", method, rawURL)

	res, err := c.httpClient.Do(req)
	if err != nil {
		reqErr := &RequestError{
			Method:  method,
			URL:     rawURL,
			Message: "Network error",
			Cause:   err,
		}
		c.tracef("[http] <- %s %s error=%v duration=%s", method, rawURL, reqErr, time.Since(startedAt).Round(time.Millisecond))
		return nil, reqErr
	}
	defer func() {
		_ = res.Body.Close()
	}()

	rawResponse, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &RequestError{
			Method:     method,
			URL:        rawURL,
			StatusCode: res.StatusCode,
			Message:    "Network error",
			Cause:      fmt.Errorf("read response body: %w", err),
		}
	}

	c.tracef("[http] <- %s %s status=%d duration=%s bytes=%d", method, rawURL, res.StatusCode, time.Since(startedAt).Round(time.Millisecond), len(rawResponse))

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, &RequestError{
			Method:     method,
			URL:        rawURL,
			StatusCode: res.StatusCode,
			Message:    errorMessage(rawResponse, res.StatusCode),
		}
	}
	return rawResponse, nil
}

// errorMessage extracts the server's error envelope, falling back to the
// HTTP status text.
func errorMessage(rawResponse []byte, statusCode int) string {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(rawResponse, &envelope); err == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if envelope.Error != "" {
			return envelope.Error
		}
	}
	if text := http.StatusText(statusCode); text != "" {
		return text
	}
	return "Request failed"
}

// invalidResponseError types a decode failure so callers still match
// ErrBackend. Decoding only runs on success responses, so the backend did
// answer; the status keeps IsUnreachable false.
func invalidResponseError(cause error) *RequestError {
	return &RequestError{
		StatusCode: http.StatusOK,
		Message:    "Invalid response",
		Cause:      fmt.Errorf("decode response body: %w", cause),
	}
}

func decodeObject[T any](raw []byte) (T, error) {
	var out T
	if len(bytes.TrimSpace(raw)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, invalidResponseError(err)
	}
	return out, nil
}

// listPayload unwraps list responses: the backend answers either with a bare
// array or with a {data: [...], meta: {...}} envelope. Callers always see a
// plain array.
func listPayload(raw []byte) []byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return []byte("[]")
	}
	if trimmed[0] == '[' {
		return trimmed
	}
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err == nil && len(envelope.Data) > 0 {
		return envelope.Data
	}
	return []byte("[]")
}

func decodeList[T any](raw []byte) ([]T, error) {
	var out []T
	if err := json.Unmarshal(listPayload(raw), &out); err != nil {
		return nil, invalidResponseError(err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func setParam(values url.Values, key, value string) {
	if strings.TrimSpace(value) != "" {
		values.Set(key, value)
	}
}

func setIntParam(values url.Values, key string, value int) {
	if value > 0 {
		values.Set(key, strconv.Itoa(value))
	}
}

// addListParam flattens array-valued parameters into repeated keys, dropping
// empty entries entirely.
func addListParam(values url.Values, key string, entries []string) {
	for _, entry := range entries {
		if trimmed := strings.TrimSpace(entry); trimmed != "" {
			values.Add(key, trimmed)
		}
	}
}
