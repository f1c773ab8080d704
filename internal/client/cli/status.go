package cli

import (
	"context"
	"errors"
	"time"

	"github.com/akodina/shopfront/internal/client/session"
	"github.com/akodina/shopfront/internal/client/storage"
)

// RunStatus shows whether a session is stored and, when possible, how
// long the access token remains valid.
func (c *Cli) RunStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	creds, err := c.creds.Get(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrCredentialsNotFound) {
			c.io.Println("Not logged in.")
			return nil
		}
		return err
	}

	if identity := c.sessions.Current(); identity != nil {
		c.io.Printf("Logged in as: %s %s <%s>\n", identity.FirstName, identity.LastName, identity.Email)
		if identity.IsAdmin() {
			c.io.Println("Role: ADMIN")
		}
	} else {
		c.io.Println("Session stored, profile not loaded.")
	}

	expiry, err := session.TokenExpiry(creds.AccessToken)
	if err != nil {
		c.io.Println("Access token: unreadable expiry")
		return nil
	}

	if remaining := time.Until(expiry); remaining > 0 {
		c.io.Printf("Access token expires in: %s\n", remaining.Round(time.Second))
	} else {
		c.io.Println("Access token expired; the next call will require a new login.")
	}

	summary := c.cart.Summary()
	c.io.Printf("Cart: %d item(s)\n", summary.ItemCount)

	return nil
}
