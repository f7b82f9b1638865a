package session

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophvault/internal/client/tokenstore"
	"github.com/dmitrijs2005/gophvault/internal/logging"
)

// Binder sets the credential carried by outbound requests.
type Binder interface {
	Bind(token string)
}

// Effects performs the side effects of session transitions.
type Effects struct {
	binder Binder
	tokens tokenstore.TokenStore
	log    logging.Logger
}

func NewEffects(binder Binder, tokens tokenstore.TokenStore, log logging.Logger) *Effects {
	return &Effects{binder: binder, tokens: tokens, log: log}
}

// Attach subscribes e to store.
func (e *Effects) Attach(store *Store) {
	store.Subscribe(e.Handle)
}

// Handle binds the token after Authenticate and SetUser, and unbinds it and
// removes the persisted token after Logout. SetIsAuthenticated has no
// effect.
func (e *Effects) Handle(ctx context.Context, a Action, next State) error {
	switch a.(type) {
	case Authenticate, SetUser:
		e.binder.Bind(next.AuthToken)
	case Logout:
		e.binder.Bind("")
		if err := e.tokens.Remove(ctx); err != nil {
			return fmt.Errorf("remove persisted token: %w", err)
		}
		e.log.Debug(ctx, "persisted token removed")
	case SetIsAuthenticated:
	}
	return nil
}
