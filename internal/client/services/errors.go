// Package services contains the application services of the vault client:
// authentication flows (register, login, logout) and vault entry
// management. Every failure is reported to the user exactly once through
// a notify.Notifier and also returned to the caller.
package services

import (
	"errors"

	"github.com/dmitrijs2005/gophvault/internal/client/client"
)

// UnexpectedMessage is shown for failures that are neither validation nor
// API errors.
const UnexpectedMessage = "An unexpected error occurred"

var (
	ErrUnexpected       = errors.New("unexpected error")
	ErrAlreadyLoggedIn  = errors.New("already logged in")
	ErrEmptyToken       = errors.New("server returned an empty token")
	ErrUnknownCopyField = errors.New("unknown field")
	ErrNothingToCopy    = errors.New("field is empty")
)

// isAPIFailure reports whether err came from talking to the server.
func isAPIFailure(err error) bool {
	var apiErr *client.APIError
	return errors.As(err, &apiErr) || errors.Is(err, client.ErrUnavailable)
}
