package session

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/gophvault/internal/logging"
)

// Subscriber is notified after every transition with the action that
// caused it and the resulting state.
type Subscriber func(ctx context.Context, a Action, next State) error

// Store owns the session state. One Store is built per process and passed
// to every consumer.
type Store struct {
	mu          sync.Mutex
	state       State
	subscribers []Subscriber
	log         logging.Logger
}

func NewStore(log logging.Logger) *Store {
	return &Store{state: Initial(), log: log}
}

// State returns a snapshot of the current session.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe registers fn for every later transition, in registration order.
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Dispatch applies a and then runs the subscribers. The transition itself
// cannot fail; the returned error joins subscriber failures, and the new
// state is kept regardless.
func (s *Store) Dispatch(ctx context.Context, a Action) (State, error) {
	s.mu.Lock()
	s.state = Reduce(s.state, a)
	next := s.state.clone()
	subs := append([]Subscriber(nil), s.subscribers...)
	s.mu.Unlock()

	s.log.Info(ctx, "session transition", "action", a.Kind(), "authenticated", next.IsAuthenticated)

	var errs []error
	for _, fn := range subs {
		if err := fn(ctx, a, next.clone()); err != nil {
			s.log.Error(ctx, "session subscriber failed", "action", a.Kind(), "error", err)
			errs = append(errs, err)
		}
	}

	return next, errors.Join(errs...)
}
