package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry returns the expiry time embedded in the access token.
// The signature is NOT verified: the client has no verification key and
// the value is used for display only (the `status` command). Authorization
// decisions stay with the server: an expired or forged token simply earns
// a 401 and the hard logout that follows.
func TokenExpiry(accessToken string) (time.Time, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()

	if _, _, err := parser.ParseUnverified(accessToken, claims); err != nil {
		return time.Time{}, fmt.Errorf("failed to parse access token: %w", err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read token expiry: %w", err)
	}
	if exp == nil {
		return time.Time{}, fmt.Errorf("access token carries no expiry claim")
	}

	return exp.Time, nil
}
