// Package session holds the authentication state of the client.
//
// State changes only through Store.Dispatch with one of four actions
// (Authenticate, SetUser, SetIsAuthenticated, Logout). Reduce computes the
// next state and has no side effects; Effects subscribes to the store and
// performs the consequences of a transition: binding the token to the HTTP
// transport and removing the persisted token on logout.
//
// Bootstrapper runs once at start-up and moves the session from IDLE through
// LOADING to AUTHENTICATED or LOGGED_OUT based on the persisted token.
package session
