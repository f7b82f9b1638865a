package session

import "github.com/dmitrijs2005/gophvault/internal/client/models"

// State is a snapshot of the session. AuthToken is "" when absent.
type State struct {
	IsAuthenticated bool
	AuthToken       string
	User            models.User
}

// Initial returns the logged-out state the process starts in.
func Initial() State {
	return State{User: models.EmptyUser()}
}

func (s State) clone() State {
	s.User = s.User.Clone()
	return s
}
