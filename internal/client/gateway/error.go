package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrSessionExpired is returned when any call receives a 401. By the time
// the caller sees it the stored tokens are already wiped and the login
// redirect has fired, so it is terminal: callers must not render it or
// retry, the navigation has preempted the original action.
var ErrSessionExpired = errors.New("session expired")

// fallbackMessage is used when an error body matches none of the known
// shapes.
const fallbackMessage = "something went wrong"

// APIError is an application-level failure: the backend answered with an
// error status and its payload has been reduced to a single
// display-ready message.
type APIError struct {
	Message string
	Status  int
}

func (e *APIError) Error() string {
	return e.Message
}

// normalizeMessage derives a single message from a backend error body.
// The backend speaks several error dialects; precedence, stopping at the
// first match:
//
//  1. top-level "message"
//  2. top-level "error"
//  3. top-level "detail"
//  4. a field→complaints validation map, rendered as
//     "field: complaint, complaint; field2: complaint"
//  5. the generic fallback
//
// Shape detection is total: malformed or unexpected bodies land on the
// fallback, never on a decode error.
func normalizeMessage(body []byte) string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || len(fields) == 0 {
		return fallbackMessage
	}

	for _, key := range []string{"message", "error", "detail"} {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		var msg string
		if err := json.Unmarshal(raw, &msg); err == nil && msg != "" {
			return msg
		}
	}

	// Validation shape: every value is a complaint or a list of
	// complaints keyed by field name. Field names are sorted so the
	// synthesized message is deterministic.
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, renderComplaints(fields[name])))
	}

	if len(parts) == 0 {
		return fallbackMessage
	}
	return strings.Join(parts, "; ")
}

// renderComplaints renders one field's complaint value: a list is joined
// with ", ", a plain string is used as-is, anything else is rendered raw.
func renderComplaints(raw json.RawMessage) string {
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return strings.Join(list, ", ")
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return single
	}

	return string(raw)
}
