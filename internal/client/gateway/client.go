package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/akodina/shopfront/internal/client/storage"
)

// Navigator is the forced-navigation hook invoked when the session expires.
// A web surface would change the location; the CLI prints a login hint.
type Navigator interface {
	RedirectToLogin()
}

// Client is the single chokepoint for all HTTP calls to the storefront
// backend. It attaches bearer credentials, negotiates the content type,
// normalizes error payloads and enforces the expired-session policy.
//
// Failures are two-tier: transport errors (DNS, refused connection,
// timeout) are wrapped and returned as-is, while error-status responses
// are always reduced to an *APIError carrying a single display-ready
// message. Raw backend payload shapes never reach callers.
type Client struct {
	httpClient *http.Client
	creds      storage.CredentialStorage
	nav        Navigator
	logger     *slog.Logger
	baseURL    string
	clientID   string
}

// Descriptor describes a single API call. Body and Multipart are mutually
// exclusive; when Multipart is set the payload's own boundary-bearing
// content type is used and no JSON serialization happens.
type Descriptor struct {
	Method    string
	Path      string
	Body      any
	Multipart *MultipartPayload
	Header    http.Header
}

// NewClient creates a gateway client. baseURL is set once and immutable;
// creds is re-read on every request so a mid-session login or logout is
// reflected immediately. clientID may be empty, in which case the
// X-Client-Id header is omitted.
func NewClient(baseURL string, creds storage.CredentialStorage, nav Navigator, logger *slog.Logger, clientID string) *Client {
	return &Client{
		baseURL:  baseURL,
		creds:    creds,
		nav:      nav,
		logger:   logger,
		clientID: clientID,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Carry the Authorization header across redirects
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Execute performs a single API call described by d and returns the raw
// parsed body on success. Callers receive the backend's native shape.
//
// A 401 on any endpoint, auth-related or not, wipes both stored tokens,
// fires the login redirect and returns ErrSessionExpired before any body
// parsing happens.
func (c *Client) Execute(ctx context.Context, d Descriptor) (json.RawMessage, error) {
	url := c.baseURL + d.Path

	var bodyReader io.Reader
	contentType := ""

	switch {
	case d.Multipart != nil:
		// The payload supplies its own multipart/form-data content type
		// with the boundary; never override it.
		bodyReader = d.Multipart.Reader()
		contentType = d.Multipart.ContentType()
	case d.Body != nil:
		jsonData, err := json.Marshal(d.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, d.Method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, values := range d.Header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.clientID != "" {
		req.Header.Set("X-Client-Id", c.clientID)
	}

	if err := c.attachAuth(ctx, req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Session-expiry short-circuit: wipe tokens and redirect before any
	// response parsing, regardless of which endpoint was called.
	if resp.StatusCode == http.StatusUnauthorized {
		if err := c.creds.Clear(ctx); err != nil {
			c.logger.Error("failed to clear credentials on session expiry", "error", err)
		}
		c.nav.RedirectToLogin()
		return nil, ErrSessionExpired
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			Status:  resp.StatusCode,
			Message: normalizeMessage(respBody),
		}
	}

	return json.RawMessage(respBody), nil
}

// attachAuth sets the Authorization header from the current credential.
// No credential means no header at all, never a malformed or empty one.
func (c *Client) attachAuth(ctx context.Context, req *http.Request) error {
	creds, err := c.creds.Get(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrCredentialsNotFound) {
			return nil
		}
		return fmt.Errorf("failed to read credentials: %w", err)
	}
	if creds.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+creds.AccessToken)
	}
	return nil
}

// Get issues a GET with no body.
func (c *Client) Get(ctx context.Context, path string) (json.RawMessage, error) {
	return c.Execute(ctx, Descriptor{Method: http.MethodGet, Path: path})
}

// Post issues a POST. body may be a JSON-serializable value or a
// pre-built *MultipartPayload, which is passed through unchanged.
func (c *Client) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.Execute(ctx, c.bodyDescriptor(http.MethodPost, path, body))
}

// Put issues a PUT with the same body handling as Post.
func (c *Client) Put(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.Execute(ctx, c.bodyDescriptor(http.MethodPut, path, body))
}

// Delete issues a DELETE with no body.
func (c *Client) Delete(ctx context.Context, path string) (json.RawMessage, error) {
	return c.Execute(ctx, Descriptor{Method: http.MethodDelete, Path: path})
}

func (c *Client) bodyDescriptor(method, path string, body any) Descriptor {
	d := Descriptor{Method: method, Path: path}
	if payload, ok := body.(*MultipartPayload); ok {
		d.Multipart = payload
	} else {
		d.Body = body
	}
	return d
}
