package session

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/dmitrijs2005/gophvault/internal/client/apierr"
	"github.com/dmitrijs2005/gophvault/internal/client/models"
	"github.com/dmitrijs2005/gophvault/internal/client/notify"
	"github.com/dmitrijs2005/gophvault/internal/client/tokenstore"
	"github.com/dmitrijs2005/gophvault/internal/logging"
)

// ErrSessionFetch wraps a failed current-user fetch during bootstrap.
// It is never retried automatically.
var ErrSessionFetch = errors.New("session fetch failed")

// Phase is the bootstrap state: Idle → Loading → {Authenticated | LoggedOut}.
type Phase int32

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseAuthenticated
	PhaseLoggedOut
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseAuthenticated:
		return "authenticated"
	case PhaseLoggedOut:
		return "logged_out"
	default:
		return fmt.Sprintf("phase(%d)", int32(p))
	}
}

// UserFetcher requests the profile of the account owning the bound token.
type UserFetcher interface {
	Me(ctx context.Context) (models.User, error)
}

// Bootstrapper restores the session from the persisted token at start-up.
type Bootstrapper struct {
	store    *Store
	tokens   tokenstore.TokenStore
	binder   Binder
	fetcher  UserFetcher
	notifier notify.Notifier
	log      logging.Logger

	phase   atomic.Int32
	onPhase func(Phase)
}

// BootstrapOption configures a Bootstrapper.
type BootstrapOption func(*Bootstrapper)

// WithPhaseHook calls fn on every phase change, e.g. to show a loading
// indicator while the profile is fetched.
func WithPhaseHook(fn func(Phase)) BootstrapOption {
	return func(b *Bootstrapper) {
		b.onPhase = fn
	}
}

func NewBootstrapper(
	store *Store,
	tokens tokenstore.TokenStore,
	binder Binder,
	fetcher UserFetcher,
	notifier notify.Notifier,
	log logging.Logger,
	opts ...BootstrapOption,
) *Bootstrapper {
	b := &Bootstrapper{
		store:    store,
		tokens:   tokens,
		binder:   binder,
		fetcher:  fetcher,
		notifier: notifier,
		log:      log.With("component", "bootstrap"),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Phase returns the current bootstrap phase.
func (b *Bootstrapper) Phase() Phase {
	return Phase(b.phase.Load())
}

// IsLoading reports whether the profile fetch is in flight.
func (b *Bootstrapper) IsLoading() bool {
	return b.Phase() == PhaseLoading
}

func (b *Bootstrapper) setPhase(ctx context.Context, p Phase) {
	b.phase.Store(int32(p))
	b.log.Debug(ctx, "bootstrap phase", "phase", p.String())
	if b.onPhase != nil {
		b.onPhase(p)
	}
}

// Run performs the start-up sequence:
//
//  1. No persisted token: dispatch Logout, no network call.
//  2. Token present and the session already authenticated: nothing to do.
//  3. Otherwise bind the token, fetch the profile and dispatch SetUser on
//     success, or Logout plus one error notice on failure.
//
// The already-authenticated check is a plain read, not a lock; two
// overlapping Runs may both fetch. If ctx is cancelled before the fetch
// returns, its result is discarded, no transition is applied, the phase
// returns to Idle and ctx.Err() is returned.
func (b *Bootstrapper) Run(ctx context.Context) error {
	token, ok, err := b.tokens.Get(ctx)
	if err != nil {
		b.log.Error(ctx, "reading persisted token failed, treating as absent", "error", err)
		ok = false
	}

	if !ok {
		if _, dErr := b.store.Dispatch(ctx, Logout{}); dErr != nil {
			err = errors.Join(err, dErr)
		}
		b.setPhase(ctx, PhaseLoggedOut)
		if err != nil {
			return fmt.Errorf("bootstrap without token: %w", err)
		}
		return nil
	}

	if b.store.State().IsAuthenticated {
		b.setPhase(ctx, PhaseAuthenticated)
		return nil
	}

	b.binder.Bind(token)
	b.setPhase(ctx, PhaseLoading)

	user, fetchErr := b.fetcher.Me(ctx)

	if ctxErr := ctx.Err(); ctxErr != nil {
		b.log.Info(ctx, "bootstrap cancelled, discarding fetch result")
		b.binder.Bind("")
		b.setPhase(ctx, PhaseIdle)
		return ctxErr
	}

	if fetchErr != nil {
		_, dErr := b.store.Dispatch(ctx, Logout{})
		b.notifier.Error(apierr.Message(fetchErr))
		b.setPhase(ctx, PhaseLoggedOut)
		return errors.Join(fmt.Errorf("%w: %w", ErrSessionFetch, fetchErr), dErr)
	}

	if _, err := b.store.Dispatch(ctx, SetUser{Fields: user.Patch(), Token: token}); err != nil {
		b.setPhase(ctx, PhaseAuthenticated)
		return fmt.Errorf("apply fetched user: %w", err)
	}
	b.setPhase(ctx, PhaseAuthenticated)
	return nil
}
