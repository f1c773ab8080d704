package cli

import (
	"context"
	"fmt"

	"github.com/akodina/shopfront/pkg/api"
)

// RunProfile shows the profile, or edits it when called as `profile edit`.
func (c *Cli) RunProfile(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "edit" {
		return c.runProfileEdit(ctx)
	}

	user, err := c.gateway.GetProfile(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Profile ===")
	c.io.Printf("Name:    %s %s\n", user.FirstName, user.LastName)
	c.io.Printf("Email:   %s\n", user.Email)
	if user.PhoneNumber != "" {
		c.io.Printf("Phone:   %s\n", user.PhoneNumber)
	}
	if user.Address != "" {
		c.io.Printf("Address: %s, %s, %s %s\n", user.Address, user.City, user.State, user.ZipCode)
	}
	c.io.Printf("Role:    %s\n", user.Role)

	return nil
}

func (c *Cli) runProfileEdit(ctx context.Context) error {
	current, err := c.gateway.GetProfile(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Edit profile ===")
	c.io.Println("Press Enter to keep the current value.")
	c.io.Println()

	req := api.ProfileUpdateRequest{
		FirstName:   current.FirstName,
		LastName:    current.LastName,
		PhoneNumber: current.PhoneNumber,
		Address:     current.Address,
		City:        current.City,
		State:       current.State,
		ZipCode:     current.ZipCode,
	}

	prompts := []struct {
		label string
		field *string
	}{
		{"First name", &req.FirstName},
		{"Last name", &req.LastName},
		{"Phone number", &req.PhoneNumber},
		{"Address", &req.Address},
		{"City", &req.City},
		{"State", &req.State},
		{"Zip code", &req.ZipCode},
	}

	for _, p := range prompts {
		value, err := c.io.ReadInput(fmt.Sprintf("%s [%s]: ", p.label, *p.field))
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", p.label, err)
		}
		if value != "" {
			*p.field = value
		}
	}

	identity, err := c.auth.UpdateProfile(ctx, req)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Profile updated!")
	c.io.Printf("Name: %s %s\n", identity.FirstName, identity.LastName)

	return nil
}
