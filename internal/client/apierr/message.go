// Package apierr turns errors into the single human-readable string shown
// to the user.
package apierr

import (
	"errors"

	"github.com/dmitrijs2005/gophvault/internal/client/client"
)

// Fallback is shown when nothing more specific is available.
const Fallback = "Something went wrong"

// Unavailable is shown when the server could not be reached.
const Unavailable = "Server unavailable"

// Message resolves the user-facing message for err, in priority order:
// the "message" field sent by the server, the generic error message (the
// status line for API errors), the "error" field sent by the server, and
// finally Fallback. Transport failures resolve to Unavailable.
func Message(err error) string {
	if err == nil {
		return Fallback
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Message != "":
			return apiErr.Message
		case apiErr.Status != "":
			return apiErr.Status
		case apiErr.ErrorField != "":
			return apiErr.ErrorField
		default:
			return Fallback
		}
	}

	if errors.Is(err, client.ErrUnavailable) {
		return Unavailable
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return Fallback
}
