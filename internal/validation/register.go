package validation

import (
	"fmt"
	"regexp"

	"github.com/akodina/shopfront/pkg/api"
)

// EmailPattern is a pragmatic email shape check. The backend performs the
// authoritative validation; this only catches obvious typos before a
// network round-trip.
var EmailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const (
	// MinPasswordLen is the minimum accepted password length
	MinPasswordLen = 8
)

// ValidateEmail checks that email looks like an email address.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("email address is not valid")
	}

	return nil
}

// ValidatePassword checks the minimum password requirements.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}

	return nil
}

// ValidateRegistration checks a registration request before it is sent.
func ValidateRegistration(req api.RegisterRequest) error {
	if err := ValidateEmail(req.Email); err != nil {
		return err
	}

	if err := ValidatePassword(req.Password); err != nil {
		return err
	}

	if req.Password != req.Password2 {
		return fmt.Errorf("passwords do not match")
	}

	if req.FirstName == "" {
		return fmt.Errorf("first name cannot be empty")
	}

	if req.LastName == "" {
		return fmt.Errorf("last name cannot be empty")
	}

	return nil
}
