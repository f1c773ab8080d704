package cli

import (
	"context"
	"fmt"
)

// RunLogin prompts for credentials and establishes a session.
func (c *Cli) RunLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	identity, err := c.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Logged in as: %s %s <%s>\n", identity.FirstName, identity.LastName, identity.Email)

	summary := c.cart.Summary()
	c.io.Printf("Cart: %d item(s)\n", summary.ItemCount)

	return nil
}
