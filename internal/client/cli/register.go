package cli

import (
	"context"
	"fmt"

	"github.com/akodina/shopfront/pkg/api"
)

// RunRegister prompts for account details and creates the account. A
// successful registration logs the new user in immediately.
func (c *Cli) RunRegister(ctx context.Context) error {
	c.io.Println("=== Register ===")
	c.io.Println()

	req := api.RegisterRequest{}
	var err error

	if req.Email, err = c.io.ReadInput("Email: "); err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	if req.FirstName, err = c.io.ReadInput("First name: "); err != nil {
		return fmt.Errorf("failed to read first name: %w", err)
	}
	if req.LastName, err = c.io.ReadInput("Last name: "); err != nil {
		return fmt.Errorf("failed to read last name: %w", err)
	}
	if req.PhoneNumber, err = c.io.ReadInput("Phone number (optional): "); err != nil {
		return fmt.Errorf("failed to read phone number: %w", err)
	}
	if req.Address, err = c.io.ReadInput("Address (optional): "); err != nil {
		return fmt.Errorf("failed to read address: %w", err)
	}
	if req.City, err = c.io.ReadInput("City (optional): "); err != nil {
		return fmt.Errorf("failed to read city: %w", err)
	}
	if req.State, err = c.io.ReadInput("State (optional): "); err != nil {
		return fmt.Errorf("failed to read state: %w", err)
	}
	if req.ZipCode, err = c.io.ReadInput("Zip code (optional): "); err != nil {
		return fmt.Errorf("failed to read zip code: %w", err)
	}
	if req.Password, err = c.io.ReadPassword("Password: "); err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if req.Password2, err = c.io.ReadPassword("Repeat password: "); err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Creating account...")

	identity, err := c.auth.Register(ctx, req)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Registration successful!")
	c.io.Printf("Logged in as: %s %s <%s>\n", identity.FirstName, identity.LastName, identity.Email)

	return nil
}
