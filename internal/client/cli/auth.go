package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/client/session"
	"github.com/dmitrijs2005/gophvault/internal/client/validation"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	nowFn         = time.Now
)

// Register prompts for name, email and password and creates an account.
// Outcome messages are delivered by the auth service.
func (a *App) Register(ctx context.Context) error {
	if a.isLoggedIn() {
		a.notifier.Info("You are already logged in")
		return nil
	}

	var form validation.RegisterForm
	var err error
	if form.Name, err = getSimpleText(a.reader, "Enter name", a.out); err != nil {
		return err
	}
	if form.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	if form.Password, err = getPassword(a.reader, a.in, "Enter password", a.out); err != nil {
		return err
	}

	if err := a.auth.Register(ctx, form); err != nil {
		return err
	}
	return a.entries.Refresh(ctx)
}

// Login prompts for email and password and signs in.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		a.notifier.Info("You are already logged in")
		return nil
	}

	var form validation.LoginForm
	var err error
	if form.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	if form.Password, err = getPassword(a.reader, a.in, "Enter password", a.out); err != nil {
		return err
	}

	if err := a.auth.Login(ctx, form); err != nil {
		return err
	}
	return a.entries.Refresh(ctx)
}

// Logout ends the session.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.notifier.Info("You are not logged in")
		return nil
	}
	return a.auth.Logout(ctx)
}

// Status prints who is signed in and what the bound token claims.
func (a *App) Status(_ context.Context) error {
	st := a.store.State()
	if !st.IsAuthenticated {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	fmt.Fprintf(a.out, "Logged in as %s <%s>\n", st.User.Name, st.User.Email)

	info, err := session.InspectToken(st.AuthToken)
	if err != nil {
		fmt.Fprintln(a.out, "Token: opaque")
		return nil
	}
	switch {
	case info.ExpiresAt.IsZero():
		fmt.Fprintln(a.out, "Token: no expiry")
	case info.Expired(nowFn()):
		fmt.Fprintf(a.out, "Token: expired at %s\n", info.ExpiresAt.Local().Format(time.RFC1123))
	default:
		fmt.Fprintf(a.out, "Token: valid until %s\n", info.ExpiresAt.Local().Format(time.RFC1123))
	}
	return nil
}
