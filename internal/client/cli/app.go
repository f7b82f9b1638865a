package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/dmitrijs2005/gophvault/internal/client/client"
	"github.com/dmitrijs2005/gophvault/internal/client/config"
	"github.com/dmitrijs2005/gophvault/internal/client/db"
	"github.com/dmitrijs2005/gophvault/internal/client/notify"
	"github.com/dmitrijs2005/gophvault/internal/client/repositories/entries"
	"github.com/dmitrijs2005/gophvault/internal/client/services"
	"github.com/dmitrijs2005/gophvault/internal/client/session"
	"github.com/dmitrijs2005/gophvault/internal/client/tokenstore"
	"github.com/dmitrijs2005/gophvault/internal/client/validation"
	"github.com/dmitrijs2005/gophvault/internal/client/vault"
	"github.com/dmitrijs2005/gophvault/internal/logging"
)

// LoadingMessage is printed while the session is being restored.
const LoadingMessage = "Initializing your experience..."

// App is the interactive client. One App owns one session store.
type App struct {
	cfg      *config.Config
	log      logging.Logger
	db       *sql.DB
	store    *session.Store
	tokens   tokenstore.TokenStore
	binding  *client.TokenBinding
	boot     *session.Bootstrapper
	auth     *services.AuthService
	entries  *services.EntryService
	engine   *vault.Engine
	notifier *notify.Terminal
	in       io.Reader
	reader   *bufio.Reader
	out      io.Writer
}

type appOptions struct {
	in        io.Reader
	out       io.Writer
	clipboard services.Clipboard
	transport http.RoundTripper
}

// Option customises NewApp.
type Option func(*appOptions)

func WithInput(r io.Reader) Option { return func(o *appOptions) { o.in = r } }

func WithOutput(w io.Writer) Option { return func(o *appOptions) { o.out = w } }

func WithClipboard(c services.Clipboard) Option { return func(o *appOptions) { o.clipboard = c } }

// WithTransport sets the base transport under the token binding.
func WithTransport(rt http.RoundTripper) Option { return func(o *appOptions) { o.transport = rt } }

// NewApp opens the database and wires every component. The session is not
// restored until Run.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger, opts ...Option) (*App, error) {
	o := appOptions{
		in:        os.Stdin,
		out:       os.Stdout,
		clipboard: services.SystemClipboard,
		transport: http.DefaultTransport,
	}
	for _, opt := range opts {
		opt(&o)
	}

	conn, err := db.Open(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	tokens, err := cfg.Token.NewTokenStore(conn)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("error creating token store: %w", err)
	}
	log.Info(ctx, "token storage selected", "storage", string(cfg.Token.Storage))

	if cfg.Demo {
		seeded, err := entries.SeedIfEmpty(ctx, conn, vault.SampleEntries())
		if err != nil {
			_ = conn.Close()
			return nil, err
		}
		if seeded {
			log.Info(ctx, "vault seeded with sample entries")
		}
	}

	notifier := notify.NewTerminal(o.out)
	binding := client.NewTokenBinding(o.transport)
	api := client.NewAPIClient(cfg.ServerURL, binding.HTTPClient(cfg.RequestTimeout), log.With("component", "api"))

	store := session.NewStore(log.With("component", "session"))
	session.NewEffects(binding, tokens, log).Attach(store)

	validator := validation.New()
	repo := entries.NewSQLiteRepository(conn)
	engine := vault.NewEngine(
		vault.WithRepository(repo),
		vault.WithInitialPageSize(cfg.PageSize),
		vault.WithLogger(log.With("component", "vault")),
	)

	a := &App{
		cfg:      cfg,
		log:      log,
		db:       conn,
		store:    store,
		tokens:   tokens,
		binding:  binding,
		auth:     services.NewAuthService(api, store, tokens, validator, notifier, log),
		entries:  services.NewEntryService(repo, engine, validator, notifier, o.clipboard, log),
		engine:   engine,
		notifier: notifier,
		in:       o.in,
		reader:   bufio.NewReader(o.in),
		out:      o.out,
	}
	a.boot = session.NewBootstrapper(store, tokens, binding, api, notifier, log,
		session.WithPhaseHook(a.onBootstrapPhase))
	return a, nil
}

func (a *App) onBootstrapPhase(p session.Phase) {
	if p == session.PhaseLoading {
		a.notifier.Info(LoadingMessage)
	}
}

// Close releases the database.
func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.store.State().IsAuthenticated
}

// statusLine is shown in the prompt.
func (a *App) statusLine() string {
	st := a.store.State()
	if !st.IsAuthenticated {
		return "guest"
	}
	if st.User.Email != "" {
		return st.User.Email
	}
	return st.User.Name
}

// Restore runs the session bootstrap and loads the vault when it succeeds.
// Bootstrap failures have already been reported to the user.
func (a *App) Restore(ctx context.Context) {
	if err := a.boot.Run(ctx); err != nil {
		a.log.Warn(ctx, "session not restored", "error", err)
	}
	if a.isLoggedIn() {
		_ = a.entries.Refresh(ctx)
	}
}

// Run restores the session and blocks in the REPL until the user exits or
// input ends.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to GophVault (type 'help' for commands)")
	a.Restore(ctx)
	runREPL(ctx, a, a.statusLine, a.reader, a.out)
}
