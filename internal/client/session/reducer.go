package session

import (
	"fmt"

	"github.com/dmitrijs2005/gophvault/internal/client/models"
)

// Reduce returns the state that follows prev after a. It never mutates
// prev and performs no I/O.
func Reduce(prev State, a Action) State {
	next := prev.clone()

	switch a := a.(type) {
	case Authenticate:
		next.IsAuthenticated = true
		next.User = a.User.Clone()
		next.AuthToken = a.Token
	case SetUser:
		next.IsAuthenticated = true
		next.User = next.User.Merge(a.Fields)
		next.AuthToken = a.Token
	case SetIsAuthenticated:
		next.IsAuthenticated = a.Value
	case Logout:
		next.IsAuthenticated = false
		next.User = models.EmptyUser()
		next.AuthToken = ""
	default:
		panic(fmt.Sprintf("session: unhandled action %T", a))
	}

	return next
}
