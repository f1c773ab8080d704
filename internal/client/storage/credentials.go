package storage

import "context"

// Credentials is the bearer token pair identifying an authenticated session.
// The refresh token is persisted for parity with the backend contract but is
// never exchanged for a new access token: a 401 always ends the session.
type Credentials struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// CredentialStorage is the durable token store. Only the login,
// registration and logout flows write to it, plus the gateway's 401 wipe.
type CredentialStorage interface {
	// Get returns the stored credentials.
	// Returns ErrCredentialsNotFound if no session is stored.
	Get(ctx context.Context) (*Credentials, error)

	// Set replaces the stored credentials.
	Set(ctx context.Context, creds *Credentials) error

	// Clear removes the stored credentials. Clearing an empty store is not
	// an error: the 401 wipe must be safe to run at any time.
	Clear(ctx context.Context) error
}

// MetadataStorage holds small per-install client metadata.
type MetadataStorage interface {
	// ClientID returns the persistent identifier of this client install,
	// creating one on first use.
	ClientID(ctx context.Context) (string, error)
}
