// Package common defines shared constants and sentinel errors used across
// client layers. Callers should use errors.Is to match these values.
package common

import "errors"

// ErrorNotFound is returned by repositories for unknown keys or ids.
var ErrorNotFound = errors.New("not found")
