package session

import "github.com/dmitrijs2005/gophvault/internal/client/models"

// Action is one of Authenticate, SetUser, SetIsAuthenticated or Logout.
type Action interface {
	// Kind names the action for logs.
	Kind() string

	sealed()
}

// Authenticate replaces the profile and token after a login or register.
type Authenticate struct {
	User  models.User
	Token string
}

// SetUser merges the fields present in Fields into the current profile and
// stores Token.
type SetUser struct {
	Fields models.UserPatch
	Token  string
}

// SetIsAuthenticated overwrites only the authentication flag.
type SetIsAuthenticated struct {
	Value bool
}

// Logout resets the session to the empty identity.
type Logout struct{}

func (Authenticate) Kind() string       { return "authenticate" }
func (SetUser) Kind() string            { return "set_user" }
func (SetIsAuthenticated) Kind() string { return "set_is_authenticated" }
func (Logout) Kind() string             { return "logout" }

func (Authenticate) sealed()       {}
func (SetUser) sealed()            {}
func (SetIsAuthenticated) sealed() {}
func (Logout) sealed()             {}
