// Package gateway is the only component of the client that performs network I/O.
// Every backend call goes through Client.Do, which attaches the CSRF header on
// mutating requests and folds transport, decoding and application failures into
// a single returned error.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

const (
	CSRFCookie = "csrftoken"
	CSRFHeader = "X-CSRFToken"

	requestIDHeader = "X-Request-ID"
)

// TokenSource returns the current CSRF token, or "" when there is none.
type TokenSource func() string

// Error is an application-level failure: the backend answered with a JSON body
// whose error field is set, whatever the HTTP status.
type Error struct {
	Method  string
	Path    string
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

type Client struct {
	BaseURL string
	HTTP    *http.Client
	Token   TokenSource
}

// New returns a client rooted at baseURL. An empty baseURL keeps request URLs
// relative, which is what the browser build wants.
func New(baseURL string, token TokenSource) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    http.DefaultClient,
		Token:   token,
	}
}

// Do sends one request and decodes the JSON answer into out (which may be nil).
// There are no retries and no client-side timeout beyond ctx.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	reqID := uuid.NewString()
	err := c.do(ctx, reqID, method, path, body, out)
	if err != nil {
		log.Printf("gateway: %s %s [%s]: %v", method, path, reqID, err)
	}
	return err
}

func (c *Client) do(ctx context.Context, reqID, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set(requestIDHeader, reqID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if mutating(method) && c.Token != nil {
		req.Header.Set(CSRFHeader, c.Token())
	}

	resp, err := c.client().Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if msg, ok := envelopeError(data); ok {
		return &Error{Method: method, Path: path, Status: resp.StatusCode, Message: msg}
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return &Error{Method: method, Path: path, Status: resp.StatusCode, Message: resp.Status}
	}
	if out == nil {
		if len(bytes.TrimSpace(data)) > 0 && !json.Valid(data) {
			return fmt.Errorf("decode response: invalid JSON")
		}
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Fetch downloads a raw resource, such as a stored sketch image.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	u := rawURL
	if parsed, err := url.Parse(rawURL); err == nil && !parsed.IsAbs() {
		u = c.BaseURL + rawURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set(requestIDHeader, uuid.NewString())

	resp, err := c.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: %s", rawURL, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func (c *Client) client() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

func mutating(method string) bool {
	return method == http.MethodPost || method == http.MethodPut
}

// envelopeError reports the error field of a JSON object body when it is truthy.
func envelopeError(data []byte) (string, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return "", false
	}
	var env struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return "", false
	}
	raw := strings.TrimSpace(string(env.Error))
	switch raw {
	case "", "null", "false", "0", `""`:
		return "", false
	}
	var s string
	if err := json.Unmarshal(env.Error, &s); err == nil {
		return s, true
	}
	return raw, true
}

// CookieToken returns a TokenSource reading name from a document.cookie style
// string produced by cookies.
func CookieToken(cookies func() string, name string) TokenSource {
	return func() string {
		return CookieValue(cookies(), name)
	}
}

// CookieValue extracts one cookie from a "a=1; b=2" string, URL-decoded.
func CookieValue(header, name string) string {
	for _, part := range strings.Split(header, ";") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok || k != name {
			continue
		}
		if dec, err := url.PathUnescape(v); err == nil {
			return dec
		}
		return v
	}
	return ""
}
