package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akodina/shopfront/internal/client/storage"
)

// fakeCredentialStore is an in-memory CredentialStorage for tests.
type fakeCredentialStore struct {
	mu    sync.Mutex
	creds *storage.Credentials
}

func (f *fakeCredentialStore) Get(ctx context.Context) (*storage.Credentials, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.creds == nil {
		return nil, storage.ErrCredentialsNotFound
	}
	copy := *f.creds
	return &copy, nil
}

func (f *fakeCredentialStore) Set(ctx context.Context, creds *storage.Credentials) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy := *creds
	f.creds = &copy
	return nil
}

func (f *fakeCredentialStore) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creds = nil
	return nil
}

// fakeNavigator records login redirects.
type fakeNavigator struct {
	mu        sync.Mutex
	redirects int
}

func (f *fakeNavigator) RedirectToLogin() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.redirects++
}

func (f *fakeNavigator) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.redirects
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(serverURL string, creds storage.CredentialStorage, nav Navigator) *Client {
	return NewClient(serverURL, creds, nav, testLogger(), "")
}

func TestNewClient(t *testing.T) {
	store := &fakeCredentialStore{}
	client := newTestClient("http://localhost:8000/api", store, &fakeNavigator{})

	assert.NotNil(t, client)
	assert.Equal(t, "http://localhost:8000/api", client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

func TestClient_AuthHeaderWithCredentials(t *testing.T) {
	var gotAuth []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Values("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	store := &fakeCredentialStore{creds: &storage.Credentials{
		AccessToken:  "token-abc",
		RefreshToken: "refresh-xyz",
	}}
	client := newTestClient(server.URL, store, &fakeNavigator{})

	_, err := client.Get(context.Background(), "/cart/")
	require.NoError(t, err)

	// Exactly one header, and it carries the access token only.
	require.Len(t, gotAuth, 1)
	assert.Equal(t, "Bearer token-abc", gotAuth[0])
}

func TestClient_NoAuthHeaderWithoutCredentials(t *testing.T) {
	var gotAuth []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Values("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, &fakeCredentialStore{}, &fakeNavigator{})

	_, err := client.Get(context.Background(), "/products/newest/")
	require.NoError(t, err)

	assert.Empty(t, gotAuth, "no credential must mean no Authorization header at all")
}

func TestClient_CredentialReadPerRequest(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	store := &fakeCredentialStore{}
	client := newTestClient(server.URL, store, &fakeNavigator{})
	ctx := context.Background()

	_, err := client.Get(ctx, "/products/newest/")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)

	// A login happening mid-session is reflected on the very next call.
	require.NoError(t, store.Set(ctx, &storage.Credentials{AccessToken: "fresh"}))

	_, err = client.Get(ctx, "/products/newest/")
	require.NoError(t, err)
	assert.Equal(t, "Bearer fresh", gotAuth)
}

func TestClient_JSONContentType(t *testing.T) {
	var gotContentType string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, &fakeCredentialStore{}, &fakeNavigator{})

	_, err := client.Post(context.Background(), "/cart/add/", map[string]any{
		"product_id": 7,
		"quantity":   2,
	})
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, float64(7), gotBody["product_id"])
}

func TestClient_MultipartContentType(t *testing.T) {
	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, &fakeCredentialStore{}, &fakeNavigator{})

	payload, err := NewMultipartPayload(map[string]any{"name": "Shoes"}, &FileAttachment{
		Filename: "shoes.png",
		Reader:   strings.NewReader("png-bytes"),
	})
	require.NoError(t, err)

	_, err = client.Post(context.Background(), "/products/admin/products/", payload)
	require.NoError(t, err)

	// The boundary-bearing type comes from the payload itself; the
	// client never forces application/json onto a multipart body.
	assert.True(t, strings.HasPrefix(gotContentType, "multipart/form-data; boundary="), gotContentType)
}

func TestClient_SessionExpired(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
	}{
		{name: "Cart endpoint", method: http.MethodGet, path: "/cart/"},
		{name: "Profile endpoint", method: http.MethodGet, path: "/auth/profile/"},
		{name: "Admin endpoint", method: http.MethodDelete, path: "/orders/admin/3/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			}))
			defer server.Close()

			store := &fakeCredentialStore{creds: &storage.Credentials{
				AccessToken:  "stale",
				RefreshToken: "stale-refresh",
			}}
			nav := &fakeNavigator{}
			client := newTestClient(server.URL, store, nav)

			ctx := context.Background()
			_, err := client.Execute(ctx, Descriptor{Method: tt.method, Path: tt.path})

			// The 401 policy is uniform regardless of the endpoint:
			// wipe both tokens, redirect, terminal error.
			require.ErrorIs(t, err, ErrSessionExpired)
			_, getErr := store.Get(ctx)
			assert.ErrorIs(t, getErr, storage.ErrCredentialsNotFound)
			assert.Equal(t, 1, nav.count())
		})
	}
}

func TestClient_SuccessPassthrough(t *testing.T) {
	body := `{"items":[{"id":1,"quantity":2}],"custom_field":"untouched"}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	client := newTestClient(server.URL, &fakeCredentialStore{}, &fakeNavigator{})

	raw, err := client.Get(context.Background(), "/cart/")
	require.NoError(t, err)

	// The backend's native shape reaches the caller verbatim.
	assert.JSONEq(t, body, string(raw))
}

func TestClient_ApplicationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"quantity exceeds stock"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, &fakeCredentialStore{}, &fakeNavigator{})

	_, err := client.Post(context.Background(), "/cart/add/", map[string]any{"product_id": 1, "quantity": 99})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "quantity exceeds stock", apiErr.Message)
	assert.Equal(t, "quantity exceeds stock", apiErr.Error())
}

func TestClient_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	store := &fakeCredentialStore{creds: &storage.Credentials{AccessToken: "tok"}}
	nav := &fakeNavigator{}
	client := newTestClient(server.URL, store, nav)

	ctx := context.Background()
	_, err := client.Get(ctx, "/cart/")
	require.Error(t, err)

	// Transport failures bypass the normalization tier entirely and
	// leave the session untouched.
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.NotErrorIs(t, err, ErrSessionExpired)

	creds, getErr := store.Get(ctx)
	require.NoError(t, getErr)
	assert.Equal(t, "tok", creds.AccessToken)
	assert.Equal(t, 0, nav.count())
}

func TestClient_ClientIDHeader(t *testing.T) {
	var gotClientID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClientID = r.Header.Get("X-Client-Id")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, &fakeCredentialStore{}, &fakeNavigator{}, testLogger(), "install-42")

	_, err := client.Get(context.Background(), "/products/newest/")
	require.NoError(t, err)
	assert.Equal(t, "install-42", gotClientID)
}
