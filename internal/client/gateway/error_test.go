package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMessage_Precedence(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{
			name:     "Message field wins",
			body:     `{"message":"out of stock"}`,
			expected: "out of stock",
		},
		{
			name:     "Message beats error",
			body:     `{"error":"ignored","message":"shown"}`,
			expected: "shown",
		},
		{
			name:     "Message beats error and detail",
			body:     `{"detail":"ignored","error":"also ignored","message":"shown"}`,
			expected: "shown",
		},
		{
			name:     "Error field second",
			body:     `{"error":"bad request","detail":"ignored"}`,
			expected: "bad request",
		},
		{
			name:     "Detail field third",
			body:     `{"detail":"authentication credentials were not provided"}`,
			expected: "authentication credentials were not provided",
		},
		{
			name:     "Validation map with list complaints",
			body:     `{"email":["already taken"],"password":["too short","too common"]}`,
			expected: "email: already taken; password: too short, too common",
		},
		{
			name:     "Validation map with scalar complaint",
			body:     `{"quantity":"must be positive"}`,
			expected: "quantity: must be positive",
		},
		{
			name:     "Validation map keys sorted",
			body:     `{"zip_code":["invalid"],"address":["required"]}`,
			expected: "address: required; zip_code: invalid",
		},
		{
			name:     "Empty object falls back",
			body:     `{}`,
			expected: fallbackMessage,
		},
		{
			name:     "Non-JSON body falls back",
			body:     `<html>Bad Gateway</html>`,
			expected: fallbackMessage,
		},
		{
			name:     "JSON array falls back",
			body:     `["not","an","object"]`,
			expected: fallbackMessage,
		},
		{
			name:     "Empty message falls through to error",
			body:     `{"message":"","error":"real cause"}`,
			expected: "real cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeMessage([]byte(tt.body)))
		})
	}
}
